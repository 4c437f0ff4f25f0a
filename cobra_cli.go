package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
	"github.com/spf13/viper"

	"github.com/agentflare-ai/go-docrst/internal/config"
	"github.com/agentflare-ai/go-docrst/internal/rst"
)

const rootLongDesc = `
go-docrst converts makedoc-style documentation blocks (FUNCTION, SYNOPSIS,
DESCRIPTION, RETURNS, ...) into reStructuredText.

Input is a YAML or JSON list of {command, text} records, read from the named
files or from stdin. Each recognized command is rendered with its formatter
and the fragments are concatenated in document order. Unrecognized commands
are reported on stderr and skipped.

Also included:

  • convert: render a single block straight from the command line
  • commands: list every supported command with its role and label
  • config show: print the resolved configuration
  • completion and gen-docs helpers for shells and CLI reference docs
`

func newRootCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "go-docrst [flags] [file...]",
		Short:         "Render makedoc command blocks as reStructuredText",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetIn(app.stdin)
	cmd.SetOut(app.stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	v := viper.New()
	flags := cmd.PersistentFlags()
	flags.StringVar(&app.opts.configPath, "config", "", "config file (default: search docrst.* in $XDG_CONFIG_HOME/go-docrst, ~/.config/go-docrst, .)")
	flags.StringVarP(&app.opts.outputPath, "output", "o", "", "write reStructuredText to file instead of stdout")
	flags.StringVar(&app.opts.logLevel, "log-level", "warn", "minimum diagnostic level (debug, info, warn, error)")
	flags.StringVar(&app.opts.logFormat, "log-format", "console", "diagnostic format (console, json, pretty)")
	flags.BoolVar(&app.opts.strict, "strict", false, "exit non-zero when any command is skipped as unrecognized")
	_ = v.BindPFlag("output.path", flags.Lookup("output"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = v.BindPFlag("strict", flags.Lookup("strict"))

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(v)
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx, args)
	}

	cmd.AddCommand(newConvertCmd(app))
	cmd.AddCommand(newCommandsCmd())
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newConvertCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert COMMAND [TEXT]",
		Short: "Render a single command block",
		Long: strings.TrimSpace(`
Render one block. The body is taken from TEXT, or from stdin when TEXT is
omitted (a single trailing newline is dropped).

Example:

  go-docrst convert FUNCTION '*abs*, *labs* --- integer absolute value'
`),
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(args[0]) == "" {
			return errNoCommand
		}
		return app.convert(args[0], args[1:])
	}
	return cmd
}

func newCommandsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "commands",
		Short:         "List supported commands",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		registry := rst.NewRegistry()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "COMMAND\tROLE\tLABEL")
		for _, name := range registry.Commands() {
			role, _ := registry.Role(name)
			fmt.Fprintf(tw, "%s\t%s\t%s\n", name, role, rst.Label(name))
		}
		return tw.Flush()
	}
	return cmd
}

func newConfigCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	show := &cobra.Command{
		Use:           "show",
		Short:         "Print the resolved configuration",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	show.RunE = func(cmd *cobra.Command, args []string) error {
		_, err := io.WriteString(cmd.OutOrStdout(), config.Render(app.v))
		return err
	}
	cmd.AddCommand(show)
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for go-docrst.

The output should be evaluated by your shell. For example:

  # bash
  go-docrst completion bash > /usr/local/etc/bash_completion.d/go-docrst

  # zsh
  go-docrst completion zsh > "${fpath[1]}/_go-docrst"

  # fish
  go-docrst completion fish | source

  # PowerShell
  go-docrst completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return nil }
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  go-docrst gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return nil }
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
