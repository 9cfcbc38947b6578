package scoring

import "github.com/sportatlas/catalog/internal/domain/league"

// Two tier ladders exist on purpose. FusedTier bands the combined
// multi-source score; SingleSourceTier is the stricter ladder applied when a
// lone Wikipedia-derived score is rated on its own. They are kept as
// distinct named policies because unifying them would silently reclassify
// leagues.

// FusedTier bands a fused score: >=75 A, >=50 B, >=25 C, else D.
func FusedTier(score int) league.Tier {
	switch {
	case score >= 75:
		return league.TierA
	case score >= 50:
		return league.TierB
	case score >= 25:
		return league.TierC
	default:
		return league.TierD
	}
}

// SingleSourceTier bands a raw single-source score: >=80 A, >=60 B, >=40 C,
// else D.
func SingleSourceTier(score int) league.Tier {
	switch {
	case score >= 80:
		return league.TierA
	case score >= 60:
		return league.TierB
	case score >= 40:
		return league.TierC
	default:
		return league.TierD
	}
}
