package query

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexiconExpand(t *testing.T) {
	lex := DefaultLexicon()

	expr, ok := lex.Expand("Fossil Fuels")
	assert.True(t, ok)
	assert.Equal(t, "(oil OR gas OR petroleum OR lng OR coal)", expr)

	// Case and punctuation insensitive keys.
	expr, ok = lex.Expand("fossil fuels")
	assert.True(t, ok)
	assert.Equal(t, "(oil OR gas OR petroleum OR lng OR coal)", expr)

	expr, ok = lex.Expand("aluminum/bauxite")
	assert.True(t, ok)
	assert.Equal(t, "(aluminum OR bauxite)", expr)

	_, ok = lex.Expand("geothermal")
	assert.False(t, ok)

	_, ok = lex.Expand("")
	assert.False(t, ok)
}

func TestLoadLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.json")
	data := `{"Solar": "(solar OR photovoltaic)", "Wind": "wind"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)

	expr, ok := lex.Expand("solar")
	assert.True(t, ok)
	assert.Equal(t, "(solar OR photovoltaic)", expr)

	// The file replaces the built-in table, it does not extend it.
	_, ok = lex.Expand("Coal")
	assert.False(t, ok)
}

func TestShippedLexiconMatchesDefaults(t *testing.T) {
	// data/resource_lexicon.json is the documented sample for --lexicon;
	// keep it in lockstep with the built-in table.
	lex, err := LoadLexicon(filepath.Join("..", "..", "data", "resource_lexicon.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLexicon().byKey, lex.byKey)
}

func TestLoadLexiconErrors(t *testing.T) {
	_, err := LoadLexicon(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err = LoadLexicon(path)
	assert.Error(t, err)
}

func TestTimespanLabel(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"1d", "today"},
		{"7d", "past week"},
		{"30d", "past month"},
		{"1m", "past month"},
		{"365d", "past year"},
		{"1y", "past year"},
		{"", ""},
		{"14d", "(14d)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TimespanLabel(tt.code), "code %q", tt.code)
	}
}
