// Package config resolves go-docrst settings from defaults, an optional
// config file and GODOCRST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Option documents one configuration key.
type Option struct {
	Key     string
	Default any
	Comment string
}

// Options returns every key with its default and meaning.
func Options() []Option {
	return []Option{
		{Key: "log.level", Default: "warn", Comment: "Minimum diagnostic level: debug, info, warn, error"},
		{Key: "log.format", Default: "console", Comment: "Diagnostic format: console, json, pretty"},
		{Key: "output.path", Default: "", Comment: "Write rendered reStructuredText here instead of stdout"},
		{Key: "strict", Default: false, Comment: "Exit non-zero when any command was skipped as unrecognized"},
	}
}

// Settings is the typed view of a loaded Viper instance.
type Settings struct {
	LogLevel   string
	LogFormat  string
	OutputPath string
	Strict     bool
}

// Load applies defaults, reads the config file when one is found, and
// enables environment overrides. Precedence: defaults < file < env.
// An explicitly configured file that cannot be read is an error; a missing
// file found by search is not.
func Load(v *viper.Viper) error {
	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("docrst")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "go-docrst"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "go-docrst"))
		}
		v.AddConfigPath(".")
	}

	for _, o := range Options() {
		v.SetDefault(o.Key, o.Default)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("godocrst")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return nil
}

// Resolve returns the typed settings.
func Resolve(v *viper.Viper) Settings {
	return Settings{
		LogLevel:   strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
		LogFormat:  strings.ToLower(strings.TrimSpace(v.GetString("log.format"))),
		OutputPath: v.GetString("output.path"),
		Strict:     v.GetBool("strict"),
	}
}

// Validate reports every invalid setting at once.
func Validate(v *viper.Viper) error {
	s := Resolve(v)
	var problems []string
	switch s.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", s.LogLevel))
	}
	switch s.LogFormat {
	case "console", "json", "pretty":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q is not one of console, json, pretty", s.LogFormat))
	}
	// go-logger always writes to stdout, where the rendered document goes.
	if (s.LogFormat == "json" || s.LogFormat == "pretty") && (s.OutputPath == "" || s.OutputPath == "-") {
		problems = append(problems, fmt.Sprintf("log.format %q writes to stdout and requires output.path (-o) to name a file", s.LogFormat))
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.New("invalid config:\n  - " + strings.Join(problems, "\n  - "))
}

// Render prints the resolved configuration as commented key = value lines.
func Render(v *viper.Viper) string {
	opts := Options()
	sort.Slice(opts, func(i, j int) bool { return opts[i].Key < opts[j].Key })
	var b strings.Builder
	if used := v.ConfigFileUsed(); used != "" {
		fmt.Fprintf(&b, "# config file: %s\n", used)
	}
	for _, o := range opts {
		fmt.Fprintf(&b, "# %s\n%s = %q\n", o.Comment, o.Key, fmt.Sprint(v.Get(o.Key)))
	}
	return b.String()
}
