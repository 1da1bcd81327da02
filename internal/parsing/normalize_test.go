package parsing

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lowercases", "SQL Python", "sql python"},
		{"Punctuation to spaces", "node.js, c++", "node js  c  "},
		{"Keeps digits", "Cut costs 30%", "cut costs 30 "},
		{"Keeps newlines", "a\nb", "a\nb"},
		{"Non-ASCII letters dropped", "café", "caf "},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeLetters(t *testing.T) {
	assert.Equal(t, "q  revenue     ", NormalizeLetters("Q3 revenue +20%"))
	assert.Equal(t, "", NormalizeLetters(""))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Simple sentence", "Led the SQL migration.", []string{"led", "the", "sql", "migration"}},
		{"Digits kept", "Grew ARR 40% in Q3", []string{"grew", "arr", "40", "in", "q3"}},
		{"Email split", "jane.doe@example.com", []string{"jane", "doe", "example", "com"}},
		{"Whitespace only", " \t\n ", []string{}},
		{"Empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(tt.expected) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTokenizeLetters(t *testing.T) {
	assert.Equal(t, []string{"grew", "arr", "in", "q"}, TokenizeLetters("Grew ARR 40% in Q3"))
	assert.Empty(t, TokenizeLetters("2024 - 100%"))
}

func TestTokenize_NoEmptyOrWhitespaceTokens(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"\t\r\n",
		"• Led migration —\treduced costs by 30%!!!",
		"C#/C++ & Node.js; résumé naïve",
		"---***•••",
		strings.Repeat("a ", 50),
	}

	for _, input := range inputs {
		for _, tokenize := range []func(string) []string{Tokenize, TokenizeLetters} {
			for _, tok := range tokenize(input) {
				assert.NotEmpty(t, tok, "input %q", input)
				assert.False(t, strings.ContainsFunc(tok, unicode.IsSpace), "token %q from %q has whitespace", tok, input)
			}
		}
	}
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 4, WordCount("Call 555 0100 now"))
	assert.Equal(t, 3, WordCount("jane@example.com"))
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("SQL sql Agile", Tokenize)
	assert.Len(t, set, 2)
	assert.True(t, set["sql"])
	assert.True(t, set["agile"])
}

func TestSplitLines(t *testing.T) {
	text := "  Experience \r\n\n- Led team\n   \n* Built API  "
	assert.Equal(t, []string{"Experience", "- Led team", "* Built API"}, SplitLines(text))
	assert.Empty(t, SplitLines(""))
	assert.Empty(t, SplitLines("\n\n  \n"))
}

func TestMode_Tokenize(t *testing.T) {
	assert.Equal(t, []string{"q3", "sql"}, ModeAlphanumeric.Tokenize("Q3 SQL"))
	assert.Equal(t, []string{"q", "sql"}, ModeLetters.Tokenize("Q3 SQL"))
	assert.Equal(t, []string{"q3", "sql"}, Mode("").Tokenize("Q3 SQL"))
	assert.True(t, ModeLetters.Valid())
	assert.False(t, Mode("stem").Valid())
}
