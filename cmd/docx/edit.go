package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-docx/pkg/docx"
)

func (a *app) newAddCmd() *cobra.Command {
	var (
		texts  []string
		style  string
		output string
	)
	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Append paragraphs to a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(texts) == 0 {
				return errors.New("--text is required")
			}
			f, err := docx.OpenFile(args[0])
			if err != nil {
				return err
			}
			body, err := f.Document().Body()
			if err != nil {
				return err
			}
			appendParagraphs(body, texts, style)
			if err := f.SaveFile(outputPath(args[0], output)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %d paragraph(s), %d total\n", len(texts), len(body.Paragraphs()))
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&texts, "text", "t", nil, "paragraph text (repeat for several paragraphs)")
	cmd.Flags().StringVar(&style, "style", "", "paragraph style id")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of modifying the input")
	return cmd
}

func (a *app) newClearCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "clear <file>",
		Short: "Remove all body content, keeping section properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := docx.OpenFile(args[0])
			if err != nil {
				return err
			}
			body, err := f.Document().Body()
			if err != nil {
				return err
			}
			removed := len(body.Paragraphs())
			body.ClearContent()
			if err := f.SaveFile(outputPath(args[0], output)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %d paragraph(s)\n", removed)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of modifying the input")
	return cmd
}

func (a *app) newNewCmd() *cobra.Command {
	var (
		texts []string
		style string
	)
	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create a minimal document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := docx.New()
			if err != nil {
				return err
			}
			body, err := f.Document().Body()
			if err != nil {
				return err
			}
			appendParagraphs(body, texts, style)
			if err := f.SaveFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&texts, "text", "t", nil, "paragraph text (repeat for several paragraphs)")
	cmd.Flags().StringVar(&style, "style", "", "paragraph style id")
	return cmd
}

func appendParagraphs(body *docx.Body, texts []string, style string) {
	for _, text := range texts {
		p := body.AddParagraph().AddText(text)
		if style != "" {
			p.SetStyle(style)
		}
	}
}

func outputPath(input, output string) string {
	if output != "" {
		return output
	}
	return input
}
