// Package scoring combines bullet and formatting results into an overall 0-100 resume score.
package scoring

import (
	"math"

	"github.com/jonathan/ats-scanner/internal/types"
)

// Score components
const (
	baseScore          = 50
	issuePenalty       = 4
	maxSectionPenalty  = 15
	maxBulletBonus     = 35
	lengthPenalty      = 5
	minPreferredWords  = 400
	maxPreferredWords  = 1100
	minScore, maxScore = 0, 100
)

// ComputeScore returns the overall resume score in [0, 100]
func ComputeScore(bullets *types.BulletReport, formatting *types.FormattingReport) int {
	_, score := Compute(bullets, formatting)
	return score
}

// Compute returns the score together with the contribution of each component.
// Nil reports count as empty: no bullets, no issues, zero words.
func Compute(bullets *types.BulletReport, formatting *types.FormattingReport) (types.ScoreBreakdown, int) {
	if bullets == nil {
		bullets = &types.BulletReport{}
	}
	if formatting == nil {
		formatting = &types.FormattingReport{}
	}

	b := types.ScoreBreakdown{
		Base:           baseScore,
		SectionPenalty: min(maxSectionPenalty, len(formatting.Issues)*issuePenalty),
	}

	// Zero bullets contribute nothing rather than dividing by zero
	if bullets.Total > 0 {
		b.BulletBonus = int(math.Round(bullets.StrongRatio() * maxBulletBonus))
	}

	if formatting.WordCount < minPreferredWords || formatting.WordCount > maxPreferredWords {
		b.LengthPenalty = lengthPenalty
	}

	score := b.Base - b.SectionPenalty + b.BulletBonus - b.LengthPenalty
	return b, max(minScore, min(maxScore, score))
}
