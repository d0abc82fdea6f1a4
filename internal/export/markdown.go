// Package export converts generated portfolio pages to other formats.
package export

import (
	"fmt"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// Markdown converts html pages to markdown.
type Markdown struct {
	converter *md.Converter
}

// NewMarkdown creates new Markdown instance.
func NewMarkdown() *Markdown {
	converter := md.NewConverter("", true, nil)
	converter.Remove("title")

	return &Markdown{converter: converter}
}

// Convert returns markdown version of html page.
func (m *Markdown) Convert(html []byte) ([]byte, error) {
	b, err := m.converter.ConvertBytes(html)
	if err != nil {
		return nil, fmt.Errorf("converting html to markdown: %w", err)
	}

	return b, nil
}
