// Package rst turns makedoc-style command blocks into reStructuredText
// fragments.
//
// A Registry maps each known command name (FUNCTION, SYNOPSIS, DESCRIPTION,
// ...) to a Formatter. Unknown commands are reported through a Reporter and
// rendered as the empty string so the rest of a document still converts.
package rst

import (
	"fmt"
	"io"
	"sort"
)

// Reporter receives diagnostics for commands the registry does not know.
// Any logger with a Warn(msg, args...) method satisfies it.
type Reporter interface {
	Warn(msg string, args ...any)
}

type nopReporter struct{}

func (nopReporter) Warn(string, ...any) {}

// Role groups commands that share a formatter.
type Role string

const (
	RoleFunction   Role = "function"
	RoleCodeBlock  Role = "code-block"
	RoleLabeled    Role = "labeled"
	RoleSuppressed Role = "suppressed"
	RoleComment    Role = "comment"
)

var roleFormatters = map[Role]Formatter{
	RoleFunction:   FormatterFunc(FunctionSummary),
	RoleCodeBlock:  FormatterFunc(CodeBlock),
	RoleLabeled:    FormatterFunc(LabeledBlock),
	RoleSuppressed: FormatterFunc(Suppressed),
	RoleComment:    FormatterFunc(Comment),
}

var commandRoles = map[string]Role{
	"FUNCTION":      RoleFunction,
	"SYNOPSIS":      RoleCodeBlock,
	"ANSI_SYNOPSIS": RoleCodeBlock,
	"TRAD_SYNOPSIS": RoleCodeBlock,
	"TYPEDEF":       RoleCodeBlock,
	"DESCRIPTION":   RoleLabeled,
	"RETURNS":       RoleLabeled,
	"PORTABILITY":   RoleLabeled,
	"NOTES":         RoleLabeled,
	"ERRORS":        RoleLabeled,
	"BUGS":          RoleLabeled,
	"WARNINGS":      RoleLabeled,
	"SEEALSO":       RoleLabeled,
	"ORIGIN":        RoleLabeled,
	"INDEX":         RoleSuppressed,
	"QUICKREF":      RoleSuppressed,
	"MATHREF":       RoleSuppressed,
	"NEWPAGE":       RoleSuppressed,
	"START":         RoleSuppressed,
	"END":           RoleSuppressed,
	"COMMENT":       RoleComment,
}

// Registry resolves command names to formatters. It is immutable once built
// and safe for concurrent use as long as its Reporter is.
type Registry struct {
	formatters map[string]Formatter
	roles      map[string]Role
	reporter   Reporter
}

// Option customizes a Registry.
type Option func(*Registry)

// WithReporter routes unrecognized-command diagnostics to r.
func WithReporter(r Reporter) Option {
	return func(reg *Registry) {
		if r != nil {
			reg.reporter = r
		}
	}
}

// NewRegistry builds the command table.
func NewRegistry(opts ...Option) *Registry {
	reg := &Registry{
		formatters: make(map[string]Formatter, len(commandRoles)),
		roles:      make(map[string]Role, len(commandRoles)),
		reporter:   nopReporter{},
	}
	for command, role := range commandRoles {
		reg.formatters[command] = roleFormatters[role]
		reg.roles[command] = role
	}
	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// Lookup returns the formatter for command. Unknown commands are reported
// once per call and resolve to the suppressed formatter.
func (r *Registry) Lookup(command string) Formatter {
	if f, ok := r.formatters[command]; ok {
		return f
	}
	r.reporter.Warn("command not recognized, skipping", "command", command)
	return FormatterFunc(Suppressed)
}

// Known is Lookup without the diagnostic.
func (r *Registry) Known(command string) (Formatter, bool) {
	f, ok := r.formatters[command]
	return f, ok
}

// Role reports the role a command is registered under.
func (r *Registry) Role(command string) (Role, bool) {
	role, ok := r.roles[command]
	return role, ok
}

// Commands lists the registered command names in sorted order.
func (r *Registry) Commands() []string {
	out := make([]string, 0, len(r.formatters))
	for command := range r.formatters {
		out = append(out, command)
	}
	sort.Strings(out)
	return out
}

// Convert formats a single block.
func (r *Registry) Convert(command, text string) string {
	return r.Lookup(command).Format(command, text)
}

// Block is one (command, body) pair as produced by the upstream tokenizer.
type Block struct {
	Command string `yaml:"command" json:"command"`
	Text    string `yaml:"text" json:"text"`
}

// Stats summarizes a Render call.
type Stats struct {
	Blocks  int
	Skipped []string
}

// Render writes the fragments for blocks to w in document order.
func (r *Registry) Render(w io.Writer, blocks []Block) (Stats, error) {
	var stats Stats
	for i, b := range blocks {
		if _, ok := r.Known(b.Command); !ok {
			stats.Skipped = append(stats.Skipped, b.Command)
		}
		fragment := r.Convert(b.Command, b.Text)
		stats.Blocks++
		if fragment == "" {
			continue
		}
		if _, err := io.WriteString(w, fragment); err != nil {
			return stats, fmt.Errorf("write block %d (%s): %w", i, b.Command, err)
		}
	}
	return stats, nil
}
