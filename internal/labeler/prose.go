package labeler

import (
	"github.com/jdkato/prose/v2"
)

// Prose wraps the prose statistical tagger. Construction is cheap; the model
// loads lazily inside prose on first use.
type Prose struct{}

func NewProse() *Prose { return &Prose{} }

func (p *Prose) Label(text string) ([]Span, error) {
	if text == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}
	var spans []Span
	for _, ent := range doc.Entities() {
		spans = append(spans, Span{Text: ent.Text, Label: ent.Label})
	}
	return spans, nil
}
