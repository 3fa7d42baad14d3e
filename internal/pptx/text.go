package pptx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// drawingMLNS is the DrawingML main namespace. Visible text runs of a slide
// live in its <a:t> elements.
const drawingMLNS = "http://schemas.openxmlformats.org/drawingml/2006/main"

var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// ExtractTextRuns returns the character data of every DrawingML text run
// (<a:t>) in content, in document order. Empty runs and duplicate runs are
// preserved; entity references are decoded. The returned slice is non-nil
// even when the slide has no text.
func ExtractTextRuns(content []byte) ([]string, error) {
	if !utf8.Valid(content) {
		return nil, ErrInvalidUTF8
	}

	runs := []string{}
	dec := xml.NewDecoder(bytes.NewReader(content))

	// depth tracks element nesting inside the current <a:t>; the schema
	// does not nest elements there, but a broken producer must not be able
	// to desynchronize the scan.
	depth := 0
	var run strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse slide XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				continue
			}
			if t.Name.Space == drawingMLNS && t.Name.Local == "t" {
				depth = 1
				run.Reset()
			}
		case xml.EndElement:
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				runs = append(runs, run.String())
			}
		case xml.CharData:
			if depth > 0 {
				run.Write(t)
			}
		}
	}

	return runs, nil
}
