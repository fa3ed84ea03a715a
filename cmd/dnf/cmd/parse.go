package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/antlr4-go/antlr/v4"
	"github.com/damedic/dnf-toolbox-go/dnf"
	"github.com/spf13/cobra"
)

func newParseCmd(opts *options) *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse [string...]",
		Short: "Parse strings with an entry rule",
		Long: `Parse each argument with the selected entry rule and print the
canonical form of the expression and the identifiers it references.

Without arguments one string per line is read from stdin.`,
		Example: `  dnf parse --rule distance "10 ft"
  dnf parse --rule amount "2d6 + STR_mod"
  echo "spell.level" | dnf parse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := dnf.LookupRule(opts.rule)
			if err != nil {
				return err
			}

			var listeners []antlr.ErrorListener
			if opts.verbose {
				listeners = append(listeners, &dnf.SlogErrorListener{Logger: opts.logger(cmd)})
			}

			inputs := args
			if len(inputs) == 0 {
				inputs, err = readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			failed := 0
			for _, s := range inputs {
				if err := parseAndPrint(cmd.OutOrStdout(), rule, s, listeners); err != nil {
					printError(cmd, fmt.Sprintf("parse %q as %s", s, rule), err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d inputs failed to parse", failed, len(inputs))
			}
			return nil
		},
	}

	parseCmd.Flags().StringVarP(&opts.rule, "rule", "r", "string", "entry rule, see 'dnf rules'")
	return parseCmd
}

func parseAndPrint(w io.Writer, rule dnf.Rule, s string, listeners []antlr.ErrorListener) error {
	expr, err := dnf.ParseRule(rule, s, listeners...)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\t%T\n", expr, expr)
	for _, ref := range dnf.References(expr) {
		fmt.Fprintf(w, "\t%s (%s)\n", ref.Name, ref.Kind)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
