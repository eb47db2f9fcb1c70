package recipe

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeFirst upper-cases the first rune of s and leaves the rest alone.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// SkillClass folds a skill level into a single token, e.g. "More effort"
// becomes "Moreeffort".
func SkillClass(level string) string {
	return strings.Join(strings.Fields(level), "")
}

// Row returns the printable columns of a summary.
func (s Summary) Row() (string, string, int, string) {
	return s.Name, s.AuthorName, s.IngredientCount, s.SkillLevel
}

// Tags capitalizes every value; used for collections, keywords and diet types.
func Tags(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v == "" {
			continue
		}
		out = append(out, CapitalizeFirst(v))
	}
	return out
}
