// Package types provides type definitions for structured data used throughout the ats-scanner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScoreBreakdown shows how the overall resume score was assembled
type ScoreBreakdown struct {
	Base           int `json:"base"`
	SectionPenalty int `json:"section_penalty"`
	BulletBonus    int `json:"bullet_bonus"`
	LengthPenalty  int `json:"length_penalty"`
}

// ScoreReport is the result of the "score my resume" view
type ScoreReport struct {
	Source     string           `json:"source,omitempty"`
	Score      int              `json:"score"`
	Breakdown  ScoreBreakdown   `json:"breakdown"`
	Bullets    BulletReport     `json:"bullets"`
	Formatting FormattingReport `json:"formatting"`
	Tips       []string         `json:"tips,omitempty"`
}

// TargetReport is the result of matching a resume against a job description
type TargetReport struct {
	Keywords KeywordResult `json:"keywords"`
	Match    MatchResult   `json:"match"`
	Bullets  BulletReport  `json:"bullets"`
	Tips     []string      `json:"tips,omitempty"`
}

// KeywordReport is the result of the keyword scanner view
type KeywordReport struct {
	Keywords KeywordResult `json:"keywords"`
	Tips     []string      `json:"tips,omitempty"`
}
