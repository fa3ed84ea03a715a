package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

type options struct {
	rule    string
	verbose bool
}

// NewRootCmd returns the dnf command with all subcommands.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dnf",
		Short: "Inspect DnF content expressions",
		Long: `dnf parses strings of DnF game content the way content loaders do
and prints the resulting expression trees.

Flag defaults are read from the environment:
  DNF_RULE     - entry rule of the parse command (default: string)
  DNF_VERBOSE  - log parser diagnostics to stderr`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("rule") {
				opts.rule = cfg.Rule
			}
			if !flags.Changed("verbose") {
				opts.verbose = cfg.Verbose
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log parser diagnostics")
	rootCmd.AddCommand(newParseCmd(opts), newUnitsCmd(), newRulesCmd())
	return rootCmd
}

// Execute runs the dnf command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", msg, err)
}
