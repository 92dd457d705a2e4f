package display

import "github.com/matzehuels/oaiview/pkg/render"

// Kind tells code and image outputs apart.
type Kind int

const (
	KindCode Kind = iota
	KindImage
)

// Output is one captured display call.
type Output struct {
	Kind   Kind
	Lang   Language
	Text   string
	Data   []byte
	Format render.Format
}

// Buffer records display calls in memory.
type Buffer struct {
	Outputs []Output
}

// Code implements [Display].
func (b *Buffer) Code(src string, lang Language) error {
	b.Outputs = append(b.Outputs, Output{Kind: KindCode, Lang: lang, Text: src})
	return nil
}

// Image implements [Display].
func (b *Buffer) Image(data []byte, f render.Format) error {
	b.Outputs = append(b.Outputs, Output{Kind: KindImage, Data: data, Format: f})
	return nil
}

// Last returns the most recent output, or false if nothing was displayed.
func (b *Buffer) Last() (Output, bool) {
	if len(b.Outputs) == 0 {
		return Output{}, false
	}
	return b.Outputs[len(b.Outputs)-1], true
}

// Reset drops all captured outputs.
func (b *Buffer) Reset() { b.Outputs = b.Outputs[:0] }
