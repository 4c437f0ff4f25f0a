package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/agentflare-ai/go-docrst/internal/blocks"
	"github.com/agentflare-ai/go-docrst/internal/config"
	"github.com/agentflare-ai/go-docrst/internal/logging"
	"github.com/agentflare-ai/go-docrst/internal/rst"
)

type options struct {
	configPath string
	outputPath string
	logLevel   string
	logFormat  string
	strict     bool
}

type cliApp struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	opts   options

	v        *viper.Viper
	settings config.Settings
	logger   logging.Logger
}

func run(argv []string, stdout io.Writer) error {
	return runWith(argv, os.Stdin, stdout, os.Stderr)
}

func runWith(argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := newRootCmd(&cliApp{stdin: stdin, stdout: stdout, stderr: stderr})
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

// setup resolves configuration and the diagnostic logger. Flags were bound
// to v by the caller, so they take precedence over file and env values.
func (app *cliApp) setup(v *viper.Viper) error {
	if app.opts.configPath != "" {
		v.SetConfigFile(app.opts.configPath)
	}
	if err := config.Load(v); err != nil {
		return err
	}
	if err := config.Validate(v); err != nil {
		return err
	}
	app.v = v
	app.settings = config.Resolve(v)
	logger, err := logging.New(logging.Config{
		Level:  app.settings.LogLevel,
		Format: app.settings.LogFormat,
		Writer: app.stderr,
	})
	if err != nil {
		return err
	}
	app.logger = logger
	return nil
}

type source struct {
	name string
	open func() (io.ReadCloser, error)
}

func (app *cliApp) sources(args []string) []source {
	if len(args) == 0 {
		args = []string{"-"}
	}
	out := make([]source, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			out = append(out, source{name: "<stdin>", open: func() (io.ReadCloser, error) {
				return io.NopCloser(app.stdin), nil
			}})
			continue
		}
		path := arg
		out = append(out, source{name: path, open: func() (io.ReadCloser, error) {
			return os.Open(path)
		}})
	}
	return out
}

func (app *cliApp) execute(ctx context.Context, positionals []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var (
		buf     bytes.Buffer
		skipped []string
		total   int
	)
	for _, src := range app.sources(positionals) {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats, err := app.renderSource(&buf, src)
		if err != nil {
			return err
		}
		total += stats.Blocks
		skipped = append(skipped, stats.Skipped...)
	}
	app.logger.Info("rendered blocks", "blocks", total, "skipped", len(skipped))
	if err := writeOutput(app.settings.OutputPath, app.stdout, buf.Bytes()); err != nil {
		return err
	}
	if app.settings.Strict && len(skipped) > 0 {
		return fmt.Errorf("skipped %d unrecognized command(s): %s", len(skipped), strings.Join(unique(skipped), ", "))
	}
	return nil
}

func (app *cliApp) renderSource(w io.Writer, src source) (rst.Stats, error) {
	rc, err := src.open()
	if err != nil {
		return rst.Stats{}, err
	}
	defer rc.Close()
	parsed, err := blocks.Decode(rc, src.name)
	if err != nil {
		return rst.Stats{}, err
	}
	reporter := app.logger.WithFields(map[string]any{"source": src.name})
	registry := rst.NewRegistry(rst.WithReporter(reporter))
	return registry.Render(w, parsed)
}

func (app *cliApp) convert(command string, rest []string) error {
	var text string
	if len(rest) == 1 {
		text = rest[0]
	} else {
		data, err := io.ReadAll(app.stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimSuffix(string(data), "\n")
	}
	registry := rst.NewRegistry(rst.WithReporter(app.logger))
	return writeOutput(app.settings.OutputPath, app.stdout, []byte(registry.Convert(command, text)))
}

func unique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

var errNoCommand = errors.New("a command name is required")

var legacyLongFlagSet = map[string]struct{}{
	"output":     {},
	"config":     {},
	"strict":     {},
	"log-level":  {},
	"log-format": {},
}

// normalizeLegacyArgs rewrites single-dash long flags (-strict, -output=x)
// into their double-dash form so both spellings work.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || len(arg) <= 2 {
			converted = append(converted, arg)
			continue
		}
		name := arg[1:]
		suffix := ""
		if idx := strings.Index(name, "="); idx > 0 {
			name, suffix = name[:idx], name[idx:]
		}
		if _, ok := legacyLongFlagSet[name]; ok {
			converted = append(converted, "--"+name+suffix)
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified {
		return args
	}
	return converted
}
