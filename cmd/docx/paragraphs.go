package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/benjaminschreck/go-docx/pkg/docx"
)

type paragraphView struct {
	Index int    `yaml:"index"`
	Style string `yaml:"style,omitempty"`
	Text  string `yaml:"text"`
}

func (a *app) newParagraphsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "paragraphs <file>",
		Short: "List the paragraphs of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.OutputFormat
			}
			f, err := docx.OpenFile(args[0])
			if err != nil {
				return err
			}
			body, err := f.Document().Body()
			if err != nil {
				return err
			}
			paragraphs := body.Paragraphs()
			views := make([]paragraphView, len(paragraphs))
			for i, p := range paragraphs {
				views[i] = paragraphView{Index: i, Style: p.Style(), Text: p.Text()}
			}
			return writeParagraphs(cmd.OutOrStdout(), views, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")
	return cmd
}

func writeParagraphs(w io.Writer, views []paragraphView, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(views)
	case "text":
		for _, v := range views {
			if v.Style != "" {
				fmt.Fprintf(w, "%d\t[%s]\t%s\n", v.Index, v.Style, v.Text)
				continue
			}
			fmt.Fprintf(w, "%d\t%s\n", v.Index, v.Text)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
