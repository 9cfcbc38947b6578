package scoring

import (
	"testing"

	"github.com/sportatlas/catalog/internal/domain/league"
)

func TestFusedTierBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  league.Tier
	}{
		{0, league.TierD}, {24, league.TierD},
		{25, league.TierC}, {49, league.TierC},
		{50, league.TierB}, {74, league.TierB},
		{75, league.TierA}, {100, league.TierA},
	}
	for _, tc := range cases {
		if got := FusedTier(tc.score); got != tc.want {
			t.Fatalf("unexpected fused tier for %d: got=%s want=%s", tc.score, got, tc.want)
		}
	}
}

func TestSingleSourceTierBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  league.Tier
	}{
		{0, league.TierD}, {39, league.TierD},
		{40, league.TierC}, {59, league.TierC},
		{60, league.TierB}, {79, league.TierB},
		{80, league.TierA}, {100, league.TierA},
	}
	for _, tc := range cases {
		if got := SingleSourceTier(tc.score); got != tc.want {
			t.Fatalf("unexpected single-source tier for %d: got=%s want=%s", tc.score, got, tc.want)
		}
	}
}

func TestTiersMonotone(t *testing.T) {
	rank := map[league.Tier]int{league.TierD: 0, league.TierC: 1, league.TierB: 2, league.TierA: 3}
	for _, ladder := range []func(int) league.Tier{FusedTier, SingleSourceTier} {
		prev := ladder(0)
		for score := 1; score <= 100; score++ {
			cur := ladder(score)
			if rank[cur] < rank[prev] {
				t.Fatalf("tier ladder not monotone at score %d: %s after %s", score, cur, prev)
			}
			prev = cur
		}
	}
}
