package extract

import (
	"strings"

	"github.com/mtakagi/pptx2text/internal/pptx"
)

// Deck is the extracted text content of one presentation
type Deck struct {
	Metadata pptx.Metadata
	Slides   []Slide
}

// Slide is the extracted text of a single slide
type Slide struct {
	Ordinal   int      // slide index parsed from the part name
	Name      string   // part name within the package
	Label     string   // display label (e.g. "SLIDE12")
	Fragments []string // text runs in document order
}

// Text returns the slide's fragments joined with single spaces. Empty
// fragments keep their separators, so ["Hello", "", "World"] renders as
// "Hello  World".
func (s Slide) Text() string {
	return strings.Join(s.Fragments, " ")
}
