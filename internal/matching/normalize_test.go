package matching

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"English Premier League", "english premier league"},
		{"  Serie-A ", "serie a"},
		{"la_liga", "la liga"},
		{"Super-League_Greece", "super league greece"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("unexpected normalization of %q: got=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"English Premier League", "Serie-A", "la_liga", "UFC-300_Main", ""}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("normalize not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
