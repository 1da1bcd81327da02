package analysis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jonathan/ats-scanner/internal/lexicon"
	"github.com/jonathan/ats-scanner/internal/parsing"
	"github.com/jonathan/ats-scanner/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJD = "Looking for a Product Manager with SQL and Agile experience to own the roadmap."

const sampleResume = `Jane Doe - jane@example.com

Experience
- Led migration to reduce costs by 30%
- Responsible for reporting
- Built SQL dashboards for 4 squads

Education
BSc Economics

Skills
SQL, Jira, roadmap planning`

func TestScoreResume(t *testing.T) {
	a := New(nil, parsing.ModeAlphanumeric)

	report, err := a.ScoreResume(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Bullets.Total)
	assert.Equal(t, 2, report.Bullets.Strong)
	assert.Equal(t, []string{"Responsible for reporting"}, report.Bullets.WeakExamples)
	assert.Empty(t, report.Formatting.Issues)
	// 50 + round(2/3 * 35) - 5 (short resume)
	assert.Equal(t, 68, report.Score)
	assert.Contains(t, report.Tips, TipRewriteWeakBullets)
}

func TestScoreResume_NoBullets(t *testing.T) {
	a := New(nil, parsing.ModeAlphanumeric)

	report, err := a.ScoreResume("Experience at Acme. Education: none. Skills: none. a@b.co")
	require.NoError(t, err)

	assert.Zero(t, report.Bullets.Total)
	assert.Zero(t, report.Bullets.Strong)
	assert.Zero(t, report.Bullets.Weak)
	assert.Empty(t, report.Bullets.WeakExamples)
	assert.Equal(t, 45, report.Score)
	assert.Empty(t, report.Tips)
}

func TestScoreResume_EmptyInput(t *testing.T) {
	a := New(nil, parsing.ModeAlphanumeric)

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := a.ScoreResume(input)
		require.Error(t, err)

		var inputErr *InputError
		require.True(t, errors.As(err, &inputErr))
		assert.Equal(t, "resume", inputErr.Field)
	}
}

func TestTargetResume(t *testing.T) {
	a := New(nil, parsing.ModeAlphanumeric)

	report, err := a.TargetResume(sampleJD, sampleResume)
	require.NoError(t, err)

	assert.Equal(t, []string{"sql"}, report.Keywords.Tools)
	assert.Equal(t, []string{"sql", "roadmap", "experience"}, report.Match.Matched)
	assert.Equal(t, []string{"agile", "product"}, report.Match.Missing)
	assert.Equal(t, 60, report.Match.Score)
	assert.Equal(t, 3, report.Bullets.Total)
	assert.Equal(t, []string{TipUseMissingKeywords}, report.Tips)
}

func TestTargetResume_MissingInput(t *testing.T) {
	a := New(nil, parsing.ModeAlphanumeric)

	tests := []struct {
		name  string
		jd    string
		cv    string
		field string
	}{
		{"Missing JD", "", sampleResume, "job_description"},
		{"Missing resume", sampleJD, " ", "resume"},
		{"Missing both", "", "", "job_description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.TargetResume(tt.jd, tt.cv)
			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestScanKeywords(t *testing.T) {
	a := New(nil, parsing.ModeAlphanumeric)

	report, err := a.ScanKeywords(sampleJD)
	require.NoError(t, err)

	assert.Equal(t, []string{"sql"}, report.Keywords.Tools)
	assert.Equal(t, []string{"agile", "roadmap"}, report.Keywords.Skills)
	assert.Equal(t, []string{TipCopyKeywords}, report.Tips)

	_, err = a.ScanKeywords("  ")
	assert.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	a := New(nil, parsing.Mode("bogus"))

	assert.Same(t, lexicon.Default(), a.Lexicon())
	assert.Equal(t, parsing.ModeAlphanumeric, a.mode)
}

func TestScoreBatch(t *testing.T) {
	a := New(nil, parsing.ModeAlphanumeric)

	docs := make([]Document, 20)
	for i := range docs {
		docs[i] = Document{Source: fmt.Sprintf("resume-%d.txt", i), Text: sampleResume}
	}
	docs[7].Text = "Experience Education Skills"

	reports, err := a.ScoreBatch(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, reports, len(docs))

	for i, r := range reports {
		assert.Equal(t, docs[i].Source, r.Source)
	}
	assert.Equal(t, 68, reports[0].Score)
	assert.Equal(t, []string{validation.IssueMissingEmail}, reports[7].Formatting.Issues)
}

func TestScoreBatch_Error(t *testing.T) {
	a := New(nil, parsing.ModeAlphanumeric)

	_, err := a.ScoreBatch(context.Background(), []Document{
		{Source: "ok.txt", Text: sampleResume},
		{Source: "blank.txt", Text: "   "},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blank.txt")

	var inputErr *InputError
	assert.True(t, errors.As(err, &inputErr))
}

func TestScoreBatch_Empty(t *testing.T) {
	reports, err := New(nil, parsing.ModeAlphanumeric).ScoreBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, reports)
}
