package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-docx/internal/config"
	"github.com/benjaminschreck/go-docx/pkg/docx"
)

const version = "0.1.0"

// app holds state shared by the subcommands of one invocation.
type app struct {
	cfgFile  string
	logLevel string
	cfg      *config.Global
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "docx",
		Short:         "Inspect and edit the body of Word documents",
		Long:          `docx reads the main document part of a .docx file, lists or edits its paragraphs, and writes the file back without disturbing styles, section properties or any markup it does not model.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.go-docx/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error, off (overrides config)")

	cmd.AddCommand(
		a.newParagraphsCmd(),
		a.newAddCmd(),
		a.newClearCmd(),
		a.newXMLCmd(),
		a.newPartsCmd(),
		a.newNewCmd(),
		a.newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

// createsConfig marks commands that may run before their config file exists.
const createsConfig = "creates-config"

func (a *app) loadConfig(cmd *cobra.Command) error {
	load := config.Load
	if _, ok := cmd.Annotations[createsConfig]; ok {
		load = config.LoadIfExists
	}
	c, err := load(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = a.logLevel
		if err := c.Validate(); err != nil {
			return err
		}
	}
	a.cfg = c
	docx.SetGlobalConfig(c.Library())
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docx version %s\n", version)
		},
	}
}
