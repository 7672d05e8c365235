// Command docxcat writes the paragraph text of a WordprocessingML
// document.xml part to <input>.txt.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hanpama/docxtext"
	"github.com/hanpama/docxtext/internal/config"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339

	cfg, err := config.Load()
	log.Logger = cfg.Logger(os.Stderr)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring configuration")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docxcat [document.xml]",
		Short: "Extract paragraph text from a Word document.xml part",
		Long: `docxcat reads an unpacked WordprocessingML document.xml and writes
one line per non-empty paragraph to <document.xml>.txt.`,
		Args: cobra.ArbitraryArgs,
		// Every argument is a path, including ones that start with '-'.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			run(cmd.OutOrStdout(), args)
			return nil
		},
	}
}

// run extracts the first argument, if any, and reports the outcome on w.
// Extraction failures are reported, not returned.
func run(w io.Writer, args []string) {
	if len(args) == 0 {
		return
	}
	input := args[0]

	res, err := docxtext.Extract(input)
	if err != nil {
		cause := err
		var extractErr *docxtext.ExtractError
		if errors.As(err, &extractErr) {
			cause = extractErr.Err
		}
		log.Debug().Err(err).Str("input", input).Msg("extraction failed")
		fmt.Fprintf(w, "Error reading %s: %v\n", input, cause)
		return
	}

	fmt.Fprintf(w, "Extracted to %s\n", res.OutputPath)
}
