package pptx

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	slideDirPrefix = "ppt/slides/"
	slideSuffix    = ".xml"
)

// slideNameRe matches slide part names like "ppt/slides/slide12.xml".
// The ordinal group is required, so part names without a decimal component
// never qualify as slides.
var slideNameRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// SlideEntry identifies one slide part of the package
type SlideEntry struct {
	Ordinal int    // slide index parsed from the part name
	Name    string // full part name within the package
}

// Label returns the display label for the slide: the part name uppercased,
// with the slide directory prefix and the .xml suffix removed
// (e.g. "ppt/slides/slide12.xml" -> "SLIDE12").
func (s SlideEntry) Label() string {
	name := strings.TrimPrefix(s.Name, slideDirPrefix)
	name = strings.TrimSuffix(name, slideSuffix)
	return strings.ToUpper(name)
}

// Slides returns the slide entries of the package in ascending ordinal
// order. Zip enumeration order is meaningless for OOXML, so the parsed
// ordinal is the only ordering used. Parts under the slide directory that
// do not match the slide naming pattern (rels, comments, diagrams) are
// excluded.
func (r *Reader) Slides() []SlideEntry {
	var slides []SlideEntry
	for name := range r.files {
		m := slideNameRe.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		ordinal, err := strconv.Atoi(m[1])
		if err != nil {
			// only reachable when the digit run overflows int
			continue
		}
		slides = append(slides, SlideEntry{Ordinal: ordinal, Name: name})
	}

	sort.SliceStable(slides, func(i, j int) bool {
		return slides[i].Ordinal < slides[j].Ordinal
	})

	return slides
}
