package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/damedic/dnf-toolbox-go/dnf"
	"github.com/spf13/cobra"
)

var quantityTypes = []dnf.QuantityType{dnf.TimeType, dnf.DistanceType, dnf.DamageType}

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "units [time|distance|damage]",
		Short:     "List the unit symbols of each quantity type",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"time", "distance", "damage"},
		RunE: func(cmd *cobra.Command, args []string) error {
			types := quantityTypes
			if len(args) == 1 {
				t, err := lookupQuantityType(args[0])
				if err != nil {
					return err
				}
				types = []dnf.QuantityType{t}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tUNIT\tSCALE\tSYMBOLS")
			for _, t := range types {
				for _, u := range t.Units() {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t, u.Name, scaleText(u.Factor, u.Divisor, t.BaseUnit()), strings.Join(u.Symbols, ", "))
				}
			}
			return w.Flush()
		},
	}
}

func lookupQuantityType(name string) (dnf.QuantityType, error) {
	for _, t := range quantityTypes {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown quantity type %q", name)
}

func scaleText(factor, divisor int64, base string) string {
	if divisor == 1 {
		return fmt.Sprintf("%d %s", factor, base)
	}
	return fmt.Sprintf("%d/%d %s", factor, divisor, base)
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the entry rules",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, r := range dnf.Rules() {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
		},
	}
}
