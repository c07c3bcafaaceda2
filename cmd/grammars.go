package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nxhl/grammar"
	"nxhl/theme"
)

func (a *app) grammarsCmd() *cobra.Command {
	var themes bool

	cmd := &cobra.Command{
		Use:   "grammars [name]",
		Short: "List the built-in grammars, or the rules of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if themes {
				_, err := fmt.Fprintln(w, strings.Join(theme.Names(), "\n"))
				return err
			}

			if len(args) == 0 {
				for _, name := range grammar.Names() {
					factory, err := grammar.Lookup(name)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%-8s %s\n", name, strings.Join(factory().Keys(), " "))
				}
				return nil
			}

			a.cfg.Grammar, a.cfg.GrammarFile = args[0], ""
			rs, _, err := a.ruleSet("")
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(w, rs.String())
			return err
		},
	}

	cmd.Flags().BoolVar(&themes, "themes", false, "list the themes instead")
	return cmd
}
