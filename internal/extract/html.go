package extract

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// WriteHTML writes the deck as a standalone HTML document with one section
// per slide, in ascending ordinal order.
func WriteHTML(w io.Writer, deck *Deck) error {
	const templateHTML = `<!DOCTYPE html><html><head><meta charset="utf-8"/></head><body></body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(templateHTML))
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	title := deck.Metadata.Title
	if title == "" {
		title = "Presentation"
	}
	doc.Find("head").AppendHtml(fmt.Sprintf("<title>%s</title>", html.EscapeString(title)))

	body := doc.Find("body")
	body.AppendHtml(fmt.Sprintf("<h1>%s</h1>", html.EscapeString(title)))

	for _, slide := range deck.Slides {
		var section strings.Builder
		section.WriteString(fmt.Sprintf(`<section id="%s">`, strings.ToLower(slide.Label)))
		section.WriteString(fmt.Sprintf("<h2>%s</h2>", html.EscapeString(slide.Label)))
		section.WriteString(fmt.Sprintf("<p>%s</p>", html.EscapeString(slide.Text())))
		section.WriteString("</section>")
		body.AppendHtml(section.String())
	}

	rendered, err := doc.Html()
	if err != nil {
		return fmt.Errorf("failed to generate HTML: %w", err)
	}

	_, err = io.WriteString(w, rendered)
	return err
}
