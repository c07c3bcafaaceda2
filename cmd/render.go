package cmd

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nxhl/render"
)

var formats = []string{"ansi", "html", "htmldoc"}

// colorProfiles maps --color to a forced profile; nil detects it.
var colorProfiles = map[string]*termenv.Profile{
	"auto":   nil,
	"always": ptr(termenv.TrueColor),
	"never":  ptr(termenv.Ascii),
}

func ptr[T any](v T) *T { return &v }

func (a *app) renderCmd() *cobra.Command {
	var (
		out          string
		format       string
		color        string
		title        string
		noBackground bool
	)

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Highlight a file for the terminal or as HTML",
		Example: `  nxhl render script.sh
  nxhl render -g cpp -f htmldoc -o main.html < main.c
  nxhl render --theme monokai --color always script.sh | less -R`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(formats, format) {
				return fmt.Errorf("unknown format %q (want ansi, html or htmldoc)", format)
			}
			profile, ok := colorProfiles[color]
			if !ok {
				return fmt.Errorf("unknown --color %q (want auto, always or never)", color)
			}

			text, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			hl, grammarName, err := a.highlighter(name)
			if err != nil {
				return err
			}

			spans, err := hl.Highlight(cmd.Context(), text)
			if err != nil {
				return err
			}
			a.logger.Debug("rendering",
				zap.String("input", name), zap.String("grammar", grammarName),
				zap.String("format", format), zap.Int("spans", len(spans)))

			w, closeOut, err := output(cmd, out)
			if err != nil {
				return err
			}

			switch format {
			case "ansi":
				r := lipgloss.NewRenderer(w)
				if profile != nil {
					r.SetColorProfile(*profile)
				}
				err = render.WriteANSI(w, text, spans, hl.Defaults(), render.ANSIOptions{
					Renderer:     r,
					NoBackground: noBackground,
				})
			case "html", "htmldoc":
				if title == "" && name != "-" {
					title = filepath.Base(name)
				}
				err = render.WriteHTML(w, text, spans, hl.Defaults(), render.HTMLOptions{
					Document:  format == "htmldoc",
					Title:     title,
					Generator: "nxhl " + version,
				})
			}

			if closeErr := closeOut(); closeErr != nil && err == nil {
				err = closeErr
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "ansi", "output format: ansi, html or htmldoc")
	cmd.Flags().StringVar(&color, "color", "auto", "ansi colour: auto, always or never")
	cmd.Flags().StringVar(&title, "title", "", "htmldoc title (default: the file name)")
	cmd.Flags().BoolVar(&noBackground, "no-background", false, "leave ansi backgrounds to the terminal")
	return cmd
}
