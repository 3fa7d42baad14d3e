package extract

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mtakagi/pptx2text/internal/pptx"
)

// Format selects the output representation
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatXLSX Format = "xlsx"
)

// Options holds options for one extraction run.
type Options struct {
	InputPath    string
	OutputPath   string // empty means standard output
	Format       Format // empty means FormatText
	WithMetadata bool   // include document properties in the output
	Logger       *slog.Logger
}

// Pipeline orchestrates the PPTX to text extraction.
type Pipeline struct {
	Options Options
}

// NewPipeline creates a new extraction pipeline.
func NewPipeline(opts Options) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}
	return &Pipeline{Options: opts}
}

// Run executes the extraction pipeline and renders the result to the
// configured destination.
func (p *Pipeline) Run() error {
	deck, err := p.Extract()
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if p.Options.OutputPath != "" {
		f, err := os.Create(p.Options.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return p.Render(out, deck)
}

// Extract opens the archive and builds the deck, slides in ascending
// ordinal order. A failure to open the package is returned as *OpenError;
// a failure to read or decode a slide part is returned as *DecodeError
// and aborts the whole run.
func (p *Pipeline) Extract() (*Deck, error) {
	reader, err := pptx.Open(p.Options.InputPath)
	if err != nil {
		return nil, &OpenError{Path: p.Options.InputPath, Err: err}
	}
	defer reader.Close()

	deck := &Deck{}

	md, err := reader.ReadMetadata()
	if err != nil {
		// properties are auxiliary; extraction continues without them
		p.Options.Logger.Warn("failed to read document properties", "error", err)
	}
	deck.Metadata = md

	entries := reader.Slides()
	p.Options.Logger.Debug("slide entries located", "count", len(entries))

	for _, entry := range entries {
		content, err := reader.ReadFile(entry.Name)
		if err != nil {
			return nil, &DecodeError{Entry: entry.Name, Err: err}
		}

		runs, err := pptx.ExtractTextRuns(content)
		if err != nil {
			return nil, &DecodeError{Entry: entry.Name, Err: err}
		}

		deck.Slides = append(deck.Slides, Slide{
			Ordinal:   entry.Ordinal,
			Name:      entry.Name,
			Label:     entry.Label(),
			Fragments: runs,
		})
	}

	return deck, nil
}

// Render writes the deck to w in the configured format.
func (p *Pipeline) Render(w io.Writer, deck *Deck) error {
	switch p.Options.Format {
	case FormatText:
		return WriteText(w, deck, p.Options.WithMetadata)
	case FormatJSON:
		return WriteJSON(w, deck, p.Options.WithMetadata)
	case FormatHTML:
		return WriteHTML(w, deck)
	case FormatXLSX:
		return WriteXLSX(w, deck)
	default:
		return fmt.Errorf("unknown output format: %q", p.Options.Format)
	}
}
