// Package bullets classifies resume bullet points as strong or weak using
// action-verb and metric heuristics.
package bullets

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/ats-scanner/internal/lexicon"
	"github.com/jonathan/ats-scanner/internal/parsing"
	"github.com/jonathan/ats-scanner/internal/types"
)

// maxWeakExamples is how many weak bullets are kept for display
const maxWeakExamples = 3

var digit = regexp.MustCompile(`\d`)

// IsBullet reports whether a trimmed line starts with a bullet marker
func IsBullet(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*")
}

// StripMarker removes the leading bullet marker and the whitespace after it.
// Unicode spaces such as NBSP count as whitespace.
func StripMarker(line string) string {
	for _, marker := range []string{"-", "•", "*"} {
		if rest, ok := strings.CutPrefix(line, marker); ok {
			return strings.TrimLeftFunc(rest, isMarkerSpace)
		}
	}
	return line
}

// isMarkerSpace matches Unicode white space plus the zero-width no-break space
func isMarkerSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Classify inspects one line. It returns false when the line is not a bullet.
// A nil lexicon uses lexicon.Default().
func Classify(lex *lexicon.Lexicon, line string) (types.BulletLine, bool) {
	if lex == nil {
		lex = lexicon.Default()
	}

	line = strings.TrimSpace(line)
	if !IsBullet(line) {
		return types.BulletLine{}, false
	}

	plain := StripMarker(line)
	lower := strings.ToLower(plain)

	b := types.BulletLine{
		Text:       plain,
		StrongVerb: lex.StartsWithStrongVerb(lower),
		HasMetric:  hasMetric(plain),
		WeakOpener: lex.StartsWithWeakOpener(lower),
	}

	// A metric alone is enough unless the bullet opens with weak phrasing
	if (b.StrongVerb && b.HasMetric) || (b.HasMetric && !b.WeakOpener) {
		b.Strength = types.BulletStrong
	} else {
		b.Strength = types.BulletWeak
	}
	return b, true
}

// Lines returns every bullet in text, classified, in encounter order
func Lines(lex *lexicon.Lexicon, text string) []types.BulletLine {
	var out []types.BulletLine
	for _, line := range parsing.SplitLines(text) {
		if b, ok := Classify(lex, line); ok {
			out = append(out, b)
		}
	}
	return out
}

// Analyze counts strong and weak bullets in text and keeps the first few weak ones.
// Text without bullets yields an all-zero report.
func Analyze(lex *lexicon.Lexicon, text string) *types.BulletReport {
	report := &types.BulletReport{WeakExamples: []string{}}

	for _, b := range Lines(lex, text) {
		report.Total++
		if b.Strength == types.BulletStrong {
			report.Strong++
			continue
		}
		report.Weak++
		if len(report.WeakExamples) < maxWeakExamples {
			report.WeakExamples = append(report.WeakExamples, b.Text)
		}
	}

	return report
}

// hasMetric checks if text contains a digit
func hasMetric(text string) bool {
	return digit.MatchString(text)
}
