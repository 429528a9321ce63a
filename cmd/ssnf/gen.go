package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ssnf/internal/reggen"
)

func newGenCmd() *cobra.Command {
	var cfg reggen.Config

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print random well-formed patterns, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := reggen.New(cfg)
			if err != nil {
				return err
			}
			for _, p := range g.Generate() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), p); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Count, "count", 1, "number of patterns")
	flags.IntVar(&cfg.AlphabetSize, "alphabet-size", 2, "number of distinct letters")
	flags.IntVar(&cfg.MaxStarHeight, "max-height", 1, "max star height")
	flags.IntVar(&cfg.MaxLength, "max-len", 5, "max letters per pattern")
	flags.Uint64Var(&cfg.Seed, "seed", 1, "random seed")
	return cmd
}
