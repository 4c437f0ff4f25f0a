package rst

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Names may not contain any Unicode space, including \v and U+00A0.
var functionNamePattern = regexp.MustCompile(`\*[^\s\v\x1c-\x1f\x{85}\p{Z}]+\*`)

const summarySeparator = "---"

// FunctionSummary renders a FUNCTION block: a hidden target, a section
// title built from the function names and summary, and index entries.
//
// The title underline is as long as the raw body, not the title.
func FunctionSummary(_ string, text string) string {
	names := FunctionNames(text)
	joined := strings.Join(names, ", ")
	summary := Summary(text)

	var b strings.Builder
	b.WriteString(".. " + joined + ":\n\n")
	b.WriteString(joined + " - " + capitalize(summary) + "\n")
	b.WriteString(strings.Repeat("-", utf8.RuneCountInString(text)) + "\n")
	for _, name := range names {
		b.WriteString(".. index:: " + name + "\n")
	}
	b.WriteString(".. index:: " + summary + "\n\n")
	return b.String()
}

// FunctionNames returns every *name* token in text with the asterisks
// trimmed, in order of appearance. Duplicates are kept.
func FunctionNames(text string) []string {
	matches := functionNamePattern.FindAllString(text, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.Trim(m, "*"))
	}
	return names
}

// Summary returns the text after the last "---" separator, or the whole
// text when there is none, with surrounding whitespace removed.
func Summary(text string) string {
	if idx := strings.LastIndex(text, summarySeparator); idx >= 0 {
		text = text[idx+len(summarySeparator):]
	}
	return strings.TrimSpace(text)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
