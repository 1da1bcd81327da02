// Package types provides type definitions for structured data used throughout the ats-scanner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// BulletStrength classifies a single bullet line
type BulletStrength string

const (
	BulletStrong BulletStrength = "strong"
	BulletWeak   BulletStrength = "weak"
)

// BulletLine is one bullet found in a resume, with its marker removed
type BulletLine struct {
	Text       string         `json:"text"`
	Strength   BulletStrength `json:"strength"`
	StrongVerb bool           `json:"strong_verb"`
	HasMetric  bool           `json:"has_metric"`
	WeakOpener bool           `json:"weak_opener"`
}

// BulletReport summarizes bullet quality for a resume
type BulletReport struct {
	Total        int      `json:"total"`
	Strong       int      `json:"strong"`
	Weak         int      `json:"weak"`
	WeakExamples []string `json:"weak_examples"`
}

// StrongRatio returns strong/total, or 0 when there are no bullets
func (b *BulletReport) StrongRatio() float64 {
	if b == nil || b.Total == 0 {
		return 0
	}
	return float64(b.Strong) / float64(b.Total)
}
