package options

import "strings"

// Wrap80 wraps flag help at 80 columns.
func Wrap80(text string) string {
	return Wrap(text, 80)
}

// Wrap breaks text on word boundaries so no line is longer than width,
// except for single words that are longer on their own.
func Wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	var b strings.Builder
	line := 0
	for i, w := range words {
		switch {
		case i == 0:
		case line+1+len(w) > width:
			b.WriteByte('\n')
			line = 0
		default:
			b.WriteByte(' ')
			line++
		}
		b.WriteString(w)
		line += len(w)
	}
	return b.String()
}
