package rst

import "fmt"

// Formatter renders one command block as a markup fragment.
type Formatter interface {
	Format(command, text string) string
}

// FormatterFunc adapts a plain function to Formatter.
type FormatterFunc func(command, text string) string

// Format calls f.
func (f FormatterFunc) Format(command, text string) string {
	return f(command, text)
}

// CodeBlock renders text as a C code block under a bold label.
func CodeBlock(command, text string) string {
	return fmt.Sprintf("**%s:**\n\n.. code-block:: c\n\n%s\n\n", Label(command), Normalize(command, text))
}

// LabeledBlock renders text as a paragraph under a bold label.
func LabeledBlock(command, text string) string {
	return fmt.Sprintf("**%s:**\n\n%s\n\n", Label(command), Normalize(command, text))
}

// Suppressed renders nothing. Structural markers and unknown commands use it.
func Suppressed(string, string) string {
	return ""
}

// Comment renders text verbatim inside a comment directive.
func Comment(command, text string) string {
	return fmt.Sprintf(".. %s: %s\n\n", command, text)
}
