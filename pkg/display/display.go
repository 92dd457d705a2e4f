// Package display is where rendered output ends up: highlighted source
// text or an encoded image.
package display

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/matzehuels/oaiview/pkg/errors"
	"github.com/matzehuels/oaiview/pkg/render"
)

// Language names the syntax of a code block.
type Language string

const (
	LangXML    Language = "xml"
	LangTurtle Language = "turtle"
	LangDOT    Language = "dot"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// Display receives code text and images.
type Display interface {
	Code(src string, lang Language) error
	Image(data []byte, f render.Format) error
}

// Console writes to a terminal. Code is highlighted with chroma unless
// Plain is set. Images go to ImagePath when set, otherwise raw to Out.
type Console struct {
	Out       io.Writer
	Style     string
	Plain     bool
	ImagePath string

	// Saved is called with the path of every image written to disk.
	Saved func(path string)
}

// NewConsole returns a Console writing to stdout with the default style.
func NewConsole() *Console {
	return &Console{Out: os.Stdout, Style: DefaultStyle}
}

// Code implements [Display].
func (c *Console) Code(src string, lang Language) error {
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	if c.Plain {
		_, err := io.WriteString(c.Out, src)
		return err
	}
	style := c.Style
	if style == "" {
		style = DefaultStyle
	}
	if err := quick.Highlight(c.Out, src, string(lang), "terminal256", style); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "highlight %s", lang)
	}
	return nil
}

// Image implements [Display].
func (c *Console) Image(data []byte, f render.Format) error {
	if c.ImagePath == "" {
		if _, err := c.Out.Write(data); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s image", f)
		}
		return nil
	}
	if err := os.WriteFile(c.ImagePath, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", c.ImagePath)
	}
	if c.Saved != nil {
		c.Saved(c.ImagePath)
	}
	return nil
}

// HighlightHTML writes src as a standalone highlighted HTML document.
func HighlightHTML(w io.Writer, src string, lang Language, style string) error {
	if style == "" {
		style = DefaultStyle
	}
	if err := quick.Highlight(w, src, string(lang), "html", style); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "highlight %s", lang)
	}
	return nil
}
