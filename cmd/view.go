package cmd

import (
	"github.com/spf13/cobra"

	"nxhl/internal/viewer"
)

func (a *app) viewCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "view file",
		Short: "Page through a highlighted file",
		Long: `Shows the file full screen. Arrows, PgUp/PgDn and Home/End move, / finds,
n and N step through matches, r re-reads the file and q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hl, name, err := a.highlighter(args[0])
			if err != nil {
				return err
			}

			v := viewer.New(args[0], hl, viewer.Options{
				Grammar: name,
				Watch:   watch,
				Logger:  a.logger,
			})
			return v.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-highlight when the file changes")
	return cmd
}
