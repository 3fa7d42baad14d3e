package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtakagi/pptx2text/internal/extract"
)

// Exit codes: 0 success (including archives with zero slides), 1 extraction
// failure, 2 missing argument or invalid flags.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pptx2text <file.pptx>",
		Short: "Extract the visible text of a PowerPoint file",
		Long: `pptx2text opens a PowerPoint (.pptx) archive, locates the slide XML
parts, extracts the visible text runs, and prints them grouped by slide
in ascending slide order.

Besides the default plain text output it can emit the extracted deck as
JSON, as a standalone HTML document, or as an XLSX workbook.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringP("output", "o", "", "Output file path (default: standard output)")
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json, html or xlsx")
	cmd.Flags().Bool("with-metadata", false, "Include document properties in the output")
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn or error")
	cmd.Flags().String("log-format", "text", "Log format: text or json")
	cmd.Flags().BoolP("verbose", "v", false, "Shorthand for --log-level debug")

	return cmd
}

// readCLIOptions validates the parsed flags and assembles the extraction
// options. args must hold the input path as its first element.
func readCLIOptions(cmd *cobra.Command, args []string) (*extract.Options, error) {
	inputPath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	withMetadata, _ := cmd.Flags().GetBool("with-metadata")

	format, _ := cmd.Flags().GetString("format")
	format = strings.ToLower(format)
	switch extract.Format(format) {
	case extract.FormatText, extract.FormatJSON, extract.FormatHTML, extract.FormatXLSX:
	default:
		return nil, fmt.Errorf("--format must be one of text, json, html, xlsx (got %q)", format)
	}

	logLevel, _ := cmd.Flags().GetString("log-level")
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logLevel = "debug"
	}
	switch strings.ToLower(logLevel) {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("--log-level must be one of debug, info, warn, error (got %q)", logLevel)
	}

	logFormat, _ := cmd.Flags().GetString("log-format")
	switch strings.ToLower(logFormat) {
	case "text", "json":
	default:
		return nil, fmt.Errorf("--log-format must be text or json (got %q)", logFormat)
	}

	return &extract.Options{
		InputPath:    inputPath,
		OutputPath:   outputPath,
		Format:       extract.Format(format),
		WithMetadata: withMetadata,
		Logger:       buildLogger(os.Stderr, logLevel, logFormat),
	}, nil
}

// buildLogger creates a slog logger writing to w with the given level and
// format. Unknown values fall back to info/text.
func buildLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// run drives one invocation. All user-facing output, diagnostics included,
// goes to stdout.
func run(args []string, stdout io.Writer) int {
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.InitDefaultHelpFlag()
	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return exitUsage
	}

	if help, _ := cmd.Flags().GetBool("help"); help {
		_ = cmd.Help()
		return exitOK
	}

	positional := cmd.Flags().Args()
	if len(positional) == 0 {
		_ = cmd.Help()
		return exitUsage
	}

	opts, err := readCLIOptions(cmd, positional)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return exitUsage
	}

	p := extract.NewPipeline(*opts)
	if err := p.Run(); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return exitFailure
	}

	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
