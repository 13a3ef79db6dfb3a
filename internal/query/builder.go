package query

import (
	"strings"
)

// Facets is the user's current filter selection. Empty strings mean the
// facet is unset. When Custom is non-empty it overrides the topic term,
// while location facets still compose with it; clearing Custom when the
// other facets change is the caller's policy, not the builder's.
type Facets struct {
	Resource string
	Region   string
	Country  string
	Custom   string
}

// GlobalRegion is the no-op region sentinel: it never contributes a
// location clause.
const GlobalRegion = "Global"

// DefaultQuery is what callers should dispatch upstream when Build
// returns the empty string. An empty compiled query means "no active
// filter", not an error, and GDELT rejects empty query parameters.
const DefaultQuery = "petroleum OR lng"

// regionMacros expands named macro-regions into a canned location
// expression. Every other region name is used verbatim.
var regionMacros = map[string]string{
	"amazon": `Amazon AND (Brazil OR Peru OR Colombia OR Bolivia OR Venezuela OR Ecuador OR Guyana OR Suriname OR "French Guiana")`,
}

// Builder compiles facet selections into a single boolean query string
// for the GDELT full-text search grammar. It is pure: identical inputs
// always produce byte-identical output.
type Builder struct {
	lex *Lexicon
}

// NewBuilder returns a Builder over the given lexicon; a nil lexicon
// falls back to the built-in table.
func NewBuilder(lex *Lexicon) *Builder {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Builder{lex: lex}
}

// Build compiles the facets into a query string. The result is a
// conjunction of at most two sides: a location expression (region and/or
// country) and a topic expression (lexicon expansion, raw resource text,
// or the custom override). An empty result is valid and signals "no
// filter"; callers substitute DefaultQuery before dispatching.
func (b *Builder) Build(f Facets) string {
	resource := strings.TrimSpace(f.Resource)
	region := strings.TrimSpace(f.Region)
	country := strings.TrimSpace(f.Country)
	custom := normalizeCustom(strings.TrimSpace(f.Custom))

	location := ""
	if region != "" && region != GlobalRegion {
		if macro, ok := regionMacros[normalizeKey(region)]; ok {
			location = macro
		} else {
			location = quotePhrase(region)
		}
	}
	if country != "" {
		c := quotePhrase(country)
		if location != "" {
			location = "(" + location + " OR " + c + ")"
		} else {
			location = c
		}
	}

	// Custom text always overrides the topic term but still composes
	// with the location term.
	if custom != "" {
		if location == "" {
			return custom
		}
		return location + " AND " + custom
	}

	topic := ""
	if resource != "" {
		if expr, ok := b.lex.Expand(resource); ok {
			topic = expr
		} else {
			topic = quotePhrase(resource)
		}
	}

	parts := make([]string, 0, 2)
	if location != "" {
		parts = append(parts, location)
	}
	if topic != "" {
		parts = append(parts, topic)
	}
	return strings.Join(parts, " AND ")
}

// Describe returns a human-readable label for the selection, for section
// titles and report headers. It is not a query.
func Describe(f Facets) string {
	if custom := strings.TrimSpace(f.Custom); custom != "" {
		return custom
	}
	parts := make([]string, 0, 3)
	if r := strings.TrimSpace(f.Resource); r != "" {
		parts = append(parts, r)
	}
	if r := strings.TrimSpace(f.Region); r != "" && r != GlobalRegion {
		parts = append(parts, r)
	}
	if c := strings.TrimSpace(f.Country); c != "" {
		parts = append(parts, c)
	}
	if len(parts) == 0 {
		return "All News"
	}
	return strings.Join(parts, ", ")
}

// normalizeCustom upgrades an implicit comma-separated list into an
// explicit parenthesized disjunction, and parenthesizes a bare top-level
// OR list so it survives conjunction with a location term. Text already
// carrying boolean syntax passes through untouched.
func normalizeCustom(custom string) string {
	if custom == "" {
		return ""
	}
	if strings.Contains(custom, ",") && !hasBooleanSyntax(custom) {
		terms := make([]string, 0, 4)
		for _, part := range strings.Split(custom, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			terms = append(terms, quotePhrase(part))
		}
		switch len(terms) {
		case 0:
			return ""
		case 1:
			custom = terms[0]
		default:
			return "(" + strings.Join(terms, " OR ") + ")"
		}
	}
	if strings.Contains(custom, " OR ") && !strings.HasPrefix(custom, "(") {
		return "(" + custom + ")"
	}
	return custom
}

func hasBooleanSyntax(s string) bool {
	return strings.Contains(s, " AND ") ||
		strings.Contains(s, " OR ") ||
		strings.ContainsAny(s, "()")
}

// quotePhrase applies the one phrase-quoting policy: a literal that the
// grammar would split into separate required terms (whitespace, hyphen,
// comma) gets phrase quotes. Bare single words stay unquoted because the
// upstream grammar rejects a quoted single token as too short, and
// anything already quoted, parenthesized, or carrying boolean syntax is
// left verbatim.
func quotePhrase(s string) string {
	if s == "" {
		return s
	}
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s
	}
	if hasBooleanSyntax(s) {
		return s
	}
	if strings.ContainsAny(s, " \t-,") {
		return `"` + s + `"`
	}
	return s
}
