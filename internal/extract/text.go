package extract

import (
	"fmt"
	"io"

	"github.com/mtakagi/pptx2text/internal/pptx"
)

// WriteText writes the deck in the plain text format: for each slide a
// heading line "--- <LABEL> ---", one space-joined content line (possibly
// empty), and a blank separator line. A deck with no slides produces no
// slide output.
func WriteText(w io.Writer, deck *Deck, withMetadata bool) error {
	if withMetadata {
		if err := writeMetadataBlock(w, deck.Metadata); err != nil {
			return err
		}
	}

	for _, slide := range deck.Slides {
		if _, err := fmt.Fprintf(w, "--- %s ---\n%s\n\n", slide.Label, slide.Text()); err != nil {
			return err
		}
	}

	return nil
}

// writeMetadataBlock prints the non-empty document properties followed by a
// blank line. Nothing is printed when every property is empty.
func writeMetadataBlock(w io.Writer, md pptx.Metadata) error {
	fields := []struct {
		name  string
		value string
	}{
		{"Title", md.Title},
		{"Subject", md.Subject},
		{"Creator", md.Creator},
		{"Last modified by", md.LastModifiedBy},
		{"Modified", md.Modified},
		{"Application", md.Application},
	}

	wrote := false
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", f.name, f.value); err != nil {
			return err
		}
		wrote = true
	}
	if md.SlideCount > 0 {
		if _, err := fmt.Fprintf(w, "Slides: %d\n", md.SlideCount); err != nil {
			return err
		}
		wrote = true
	}

	if wrote {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
