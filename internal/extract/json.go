package extract

import (
	"encoding/json"
	"io"
)

type jsonMetadata struct {
	Title          string `json:"title,omitempty"`
	Subject        string `json:"subject,omitempty"`
	Creator        string `json:"creator,omitempty"`
	LastModifiedBy string `json:"lastModifiedBy,omitempty"`
	Created        string `json:"created,omitempty"`
	Modified       string `json:"modified,omitempty"`
	Application    string `json:"application,omitempty"`
	Company        string `json:"company,omitempty"`
	SlideCount     int    `json:"slideCount,omitempty"`
}

type jsonSlide struct {
	Ordinal   int      `json:"ordinal"`
	Label     string   `json:"label"`
	Text      string   `json:"text"`
	Fragments []string `json:"fragments"`
}

type jsonDeck struct {
	Metadata *jsonMetadata `json:"metadata,omitempty"`
	Slides   []jsonSlide   `json:"slides"`
}

// WriteJSON writes the deck as an indented JSON document. Slides keep their
// ascending ordinal order; fragments are emitted verbatim alongside the
// joined text line.
func WriteJSON(w io.Writer, deck *Deck, withMetadata bool) error {
	out := jsonDeck{
		Slides: make([]jsonSlide, 0, len(deck.Slides)),
	}

	if withMetadata {
		md := deck.Metadata
		out.Metadata = &jsonMetadata{
			Title:          md.Title,
			Subject:        md.Subject,
			Creator:        md.Creator,
			LastModifiedBy: md.LastModifiedBy,
			Created:        md.Created,
			Modified:       md.Modified,
			Application:    md.Application,
			Company:        md.Company,
			SlideCount:     md.SlideCount,
		}
	}

	for _, s := range deck.Slides {
		out.Slides = append(out.Slides, jsonSlide{
			Ordinal:   s.Ordinal,
			Label:     s.Label,
			Text:      s.Text(),
			Fragments: s.Fragments,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
