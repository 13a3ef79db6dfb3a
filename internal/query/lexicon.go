package query

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Lexicon maps a resource/category label to a pre-composed GDELT
// sub-query. Keys are matched case-insensitively; values may be nested
// boolean expressions and are inserted into compiled queries verbatim.
type Lexicon struct {
	byKey map[string]string
}

// defaultEntries consolidates the category tables that used to be
// duplicated per view, with one quoting convention: multi-word literals
// inside an expression are phrase-quoted.
var defaultEntries = map[string]string{
	"Fossil Fuels":     "(oil OR gas OR petroleum OR lng OR coal)",
	"Oil & Gas":        "petroleum AND lng",
	"Petroleum":        "petroleum",
	"LNG":              "lng",
	"Coal":             "coal",
	"Mining":           "mining",
	"Any Mining":       "mining",
	"ETMs":             `(lithium OR cobalt OR nickel OR copper OR graphite OR manganese OR "rare earths" OR platinum OR palladium OR antimony)`,
	"Aluminum/Bauxite": "(aluminum OR bauxite)",
	"Agroindustry":     `("palm oil" OR soy OR cattle OR beef)`,
	"Cattle/Beef":      "(cattle OR beef)",
	"Logging":          "(logging OR timber AND forest)",
	"Any Logging":      "(logging OR timber AND forest)",
	"Timber":           "timber",
	"Biofuels":         "biofuels",
}

func NewLexicon(entries map[string]string) *Lexicon {
	byKey := make(map[string]string, len(entries))
	for label, expr := range entries {
		k := normalizeKey(label)
		expr = strings.TrimSpace(expr)
		if k == "" || expr == "" {
			continue
		}
		byKey[k] = expr
	}
	return &Lexicon{byKey: byKey}
}

func DefaultLexicon() *Lexicon {
	return NewLexicon(defaultEntries)
}

// LoadLexicon reads a JSON object of label -> expression, e.g.
//
//	{ "Oil & Gas": "petroleum AND lng", "Coal": "coal" }
//
// It replaces the built-in table entirely so deployments can ship their
// own category vocabulary.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	raw := map[string]string{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return NewLexicon(raw), nil
}

// Expand returns the sub-query for a category label, or false when the
// label is not in the table.
func (l *Lexicon) Expand(label string) (string, bool) {
	expr, ok := l.byKey[normalizeKey(label)]
	return expr, ok
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false

	for _, r := range s {
		// Keep letters and digits, collapse everything else to single spaces
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevSpace = false
			continue
		}
		if !prevSpace {
			b.WriteByte(' ')
			prevSpace = true
		}
	}

	return strings.TrimSpace(b.String())
}
