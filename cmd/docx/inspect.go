package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/benjaminschreck/go-docx/pkg/docx"
	"github.com/benjaminschreck/go-docx/pkg/docx/oxml"
)

func (a *app) newXMLCmd() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "xml <file>",
		Short: "Print the main document part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := docx.OpenFile(args[0])
			if err != nil {
				return err
			}
			doc := f.Document()

			var blob []byte
			if pretty {
				blob, err = oxml.Render(doc.Element(), oxml.RenderOptions{
					Encoding:    "UTF-8",
					PrettyPrint: true,
					Standalone:  true,
				})
			} else {
				blob, err = doc.Blob()
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := out.Write(blob); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent element-only content")
	return cmd
}

type partView struct {
	Name        string `yaml:"name"`
	ContentType string `yaml:"content_type"`
	Size        int    `yaml:"size"`
}

func (a *app) newPartsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "parts <file>",
		Short: "List package parts and their content types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.OutputFormat
			}
			f, err := docx.OpenFile(args[0])
			if err != nil {
				return err
			}
			pkg := f.Package()
			var views []partView
			for _, name := range pkg.PartNames() {
				part, err := pkg.Part(name)
				if err != nil {
					return err
				}
				views = append(views, partView{Name: part.Name, ContentType: part.ContentType, Size: len(part.Blob)})
			}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				defer enc.Close()
				return enc.Encode(views)
			case "text":
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, v := range views {
					fmt.Fprintf(tw, "%s\t%s\t%d\n", v.Name, v.ContentType, v.Size)
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")
	return cmd
}
