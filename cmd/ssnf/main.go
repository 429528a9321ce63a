package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ssnf/internal/driver"
	"ssnf/internal/regex"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg    driver.Config
		format string
		debug  bool
	)

	rootCmd := &cobra.Command{
		Use:   "ssnf [file...]",
		Short: "Rewrite patterns, one per line, into star normal form",
		Long: `ssnf reads one pattern per line from the given files (or stdin when none
or "-" is given) and prints each pattern in star normal form.

Patterns use '(' ')' for grouping, '|' for alternation and '*' for
repetition; every other character is literal. A blank line is an empty
pattern and is malformed.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Format = driver.Format(format)
			logger := driver.NewLogger(cmd.ErrOrStderr(), debug)
			d, err := driver.New(cfg, logger)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, name := range args {
				if err := runInput(cmd, d, name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&cfg.Raw, "raw", false, "print the parsed pattern without normalizing it")
	flags.BoolVar(&cfg.KeepGoing, "keep-going", false, "report malformed lines, blank ones included, and continue")
	flags.BoolVar(&cfg.Verify, "verify", false, "check that every printed pattern parses again")
	flags.StringVar(&format, "format", string(driver.FormatText), "output format: text or dot")
	flags.IntVar(&cfg.MaxDepth, "max-depth", regex.DefaultMaxDepth, "deepest allowed group nesting")
	flags.BoolVar(&debug, "debug", false, "enable debug output")

	rootCmd.AddCommand(newGenCmd())
	return rootCmd
}

func runInput(cmd *cobra.Command, d *driver.Driver, name string) error {
	var r io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if _, err := d.Run(r, cmd.OutOrStdout()); err != nil {
		if name == "-" {
			return err
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
