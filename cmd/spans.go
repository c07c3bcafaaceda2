package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"nxhl/highlight"
)

// spanRecord is the serialized form of a span. Colours are #rrggbb, or the
// colour name when it has no RGB value.
type spanRecord struct {
	Key        string `json:"key" yaml:"key"`
	Start      int    `json:"start" yaml:"start"`
	Length     int    `json:"length" yaml:"length"`
	Depth      int    `json:"depth" yaml:"depth"`
	Text       string `json:"text" yaml:"text"`
	Foreground string `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	Font       string `json:"font,omitempty" yaml:"font,omitempty"`
}

func newSpanRecord(text string, s highlight.Span) spanRecord {
	rec := spanRecord{
		Key:    s.Key,
		Start:  s.Start,
		Length: s.Length,
		Depth:  s.Depth,
		Text:   s.Text(text),
	}
	if fg, ok := s.Style.Foreground(); ok {
		rec.Foreground = colorString(fg)
	}
	if bg, ok := s.Style.Background(); ok {
		rec.Background = colorString(bg)
	}
	if f, ok := s.Style.Font(); ok {
		rec.Font = fmt.Sprintf("%s %g %s", f.Family, f.Size, f.Style)
	}
	return rec
}

func colorString(c highlight.Color) string {
	if hex := c.Hex(); hex >= 0 {
		return fmt.Sprintf("#%06x", hex)
	}
	return "default"
}

func writeSpans(w io.Writer, format string, records []spanRecord) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		for _, r := range records {
			if _, err := fmt.Fprintf(w, "%*s%s[%d:%d] %q\n", 2*r.Depth, "", r.Key, r.Start, r.Start+r.Length, r.Text); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
}

func (a *app) spansCmd() *cobra.Command {
	var (
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "spans [file|-]",
		Short: "Print the spans a grammar finds, in emission order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			hl, _, err := a.highlighter(name)
			if err != nil {
				return err
			}

			spans, err := hl.Highlight(cmd.Context(), text)
			if err != nil {
				return err
			}

			records := make([]spanRecord, 0, len(spans))
			for _, s := range spans {
				records = append(records, newSpanRecord(text, s))
			}

			w, closeOut, err := output(cmd, out)
			if err != nil {
				return err
			}
			err = writeSpans(w, format, records)
			if closeErr := closeOut(); closeErr != nil && err == nil {
				err = closeErr
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	return cmd
}
