package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/oaiview/pkg/errors"
	"github.com/matzehuels/oaiview/pkg/observability"
)

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatJPG Format = "jpg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[Format]bool{FormatPNG: true, FormatSVG: true, FormatJPG: true}

// ParseFormat converts a flag value into a Format. Empty selects PNG.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatPNG, nil
	}
	if f == "jpeg" {
		return FormatJPG, nil
	}
	if !ValidFormats[f] {
		return "", errors.New(errors.ErrCodeInvalidFormat, "invalid image format: %s (must be 'png', 'svg', or 'jpg')", s)
	}
	return f, nil
}

// MIME returns the media type of the format.
func (f Format) MIME() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatJPG:
		return "image/jpeg"
	default:
		return "image/png"
	}
}

// Renderer turns DOT text into image bytes.
type Renderer interface {
	Render(ctx context.Context, dot string, f Format) ([]byte, error)
}

// Graphviz is the in-process Graphviz renderer.
type Graphviz struct{}

// Render implements [Renderer].
func (Graphviz) Render(ctx context.Context, dot string, f Format) ([]byte, error) {
	return Render(ctx, dot, f)
}

// Render lays out dot and encodes the drawing in format f.
func Render(ctx context.Context, dot string, f Format) ([]byte, error) {
	start := time.Now()
	data, err := render(ctx, dot, f)
	observability.Render().OnRender(ctx, string(f), len(data), time.Since(start), err)
	return data, err
}

func render(ctx context.Context, dot string, f Format) ([]byte, error) {
	var gvFormat graphviz.Format
	switch f {
	case FormatPNG, "":
		gvFormat = graphviz.PNG
	case FormatSVG:
		gvFormat = graphviz.SVG
	case FormatJPG:
		gvFormat = graphviz.JPG
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported image format: %s", f)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s", f)
	}
	if f == FormatSVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// RenderPNG renders a DOT graph to PNG.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return Render(ctx, dot, FormatPNG)
}

// RenderSVG renders a DOT graph to SVG with a zero-origin viewBox, so the
// drawing scales cleanly when embedded in HTML.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return Render(ctx, dot, FormatSVG)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
