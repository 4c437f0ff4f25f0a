package rst

import "strings"

// Label returns the heading text rendered for command.
func Label(command string) string {
	switch command {
	case "RETURNS":
		return "STATUS CODES"
	case "SYNOPSIS":
		return "CALLING SEQUENCE"
	default:
		return command
	}
}

// Normalize rewrites makedoc emphasis, quote and code markers in text into
// their reStructuredText equivalents. Replacements run one after another, so
// a marker exposed by an earlier deletion is still rewritten.
func Normalize(command, text string) string {
	text = strings.ReplaceAll(text, "<<", "*")
	text = strings.ReplaceAll(text, ">>", "*")
	text = strings.ReplaceAll(text, "'", "`")
	openMark, closeMark := "``", "``"
	if command == "SYNOPSIS" {
		// Synopsis bodies already sit inside a code block.
		openMark, closeMark = "", ""
	}
	text = strings.ReplaceAll(text, "<[", openMark)
	return strings.ReplaceAll(text, "]>", closeMark)
}
