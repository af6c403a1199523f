// Package main is the entry point for the pdfmd CLI.
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "pdfmd",
		Short: "Convert PDF text layout to Markdown",
		Long: `pdfmd reconstructs readable Markdown from the positioned text of a PDF.
It recovers lines, paragraphs, headings, bullet and numbered lists, and simple
tables from text placement and font sizes. Scanned PDFs without a text layer
are reported rather than converted.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default: ./pdfmd.yaml or ~/.config/pdfmd/pdfmd.yaml)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log per-page diagnostics")

	root.AddCommand(
		newConvertCmd(flags),
		newConfigCmd(flags),
		newVersionCmd(),
	)
	return root
}

// newLogger returns a text logger on w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
