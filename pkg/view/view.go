// Package view routes XML documents, harvested objects and RDF graphs to a
// display: as highlighted text, or as a rendered graph image.
//
// Every entry point accepting an [XMLSource] unwraps it first. A record
// yields its <record> element, a response or iterator the XML of the
// current page.
package view

import (
	"context"

	"github.com/beevik/etree"

	"github.com/matzehuels/oaiview/pkg/display"
	"github.com/matzehuels/oaiview/pkg/errors"
	"github.com/matzehuels/oaiview/pkg/rdfgraph"
	"github.com/matzehuels/oaiview/pkg/render"
	"github.com/matzehuels/oaiview/pkg/xmltree"
)

// XMLSource is anything that wraps an XML tree: *oai.Record,
// *oai.Response and *oai.Iterator all qualify.
type XMLSource interface {
	XMLTree() *etree.Element
}

// Viewer sends output to a Display, rasterizing graphs with a Renderer.
type Viewer struct {
	Display  display.Display
	Renderer render.Renderer

	// ImageFormat is the encoding of graph images. Empty means PNG.
	ImageFormat render.Format
	// RDFRankDir is the layout direction of RDF graphs. Empty means LR.
	RDFRankDir xmltree.RankDir
}

// New returns a Viewer rendering with the in-process Graphviz renderer.
func New(d display.Display) *Viewer {
	return &Viewer{Display: d, Renderer: render.Graphviz{}, ImageFormat: render.FormatPNG}
}

// XMLString pretty-prints an XML document.
func (v *Viewer) XMLString(s string) error {
	el, err := xmltree.Parse(s)
	if err != nil {
		return err
	}
	return v.XML(el)
}

// XML pretty-prints an element tree.
func (v *Viewer) XML(el *etree.Element) error {
	if el == nil {
		return errors.New(errors.ErrCodeInvalidInput, "no XML to display")
	}
	s, err := xmltree.Pretty(el)
	if err != nil {
		return err
	}
	return v.Display.Code(s, display.LangXML)
}

// OAI pretty-prints the XML wrapped by src.
func (v *Viewer) OAI(src XMLSource) error {
	return v.XML(unwrap(src))
}

// TreeString draws an XML document as a tree diagram.
func (v *Viewer) TreeString(ctx context.Context, s string, dir xmltree.RankDir) error {
	el, err := xmltree.Parse(s)
	if err != nil {
		return err
	}
	return v.Tree(ctx, el, dir)
}

// Tree draws an element tree as a diagram.
func (v *Viewer) Tree(ctx context.Context, el *etree.Element, dir xmltree.RankDir) error {
	if el == nil {
		return errors.New(errors.ErrCodeInvalidInput, "no XML to display")
	}
	return v.image(ctx, xmltree.ToDOT(el, xmltree.Options{RankDir: dir}))
}

// OAITree draws the XML wrapped by src as a diagram.
func (v *Viewer) OAITree(ctx context.Context, src XMLSource, dir xmltree.RankDir) error {
	return v.Tree(ctx, unwrap(src), dir)
}

// Turtle shows a graph in Turtle syntax.
func (v *Viewer) Turtle(g *rdfgraph.Graph) error {
	s, err := g.Turtle()
	if err != nil {
		return err
	}
	return v.Display.Code(s, display.LangTurtle)
}

// Graph draws an RDF graph as a diagram.
func (v *Viewer) Graph(ctx context.Context, g *rdfgraph.Graph) error {
	return v.image(ctx, g.ToDOT(rdfgraph.Options{RankDir: string(v.RDFRankDir)}))
}

// DOT shows a graph description as text instead of rendering it.
func (v *Viewer) DOT(dot string) error {
	return v.Display.Code(dot, display.LangDOT)
}

func (v *Viewer) image(ctx context.Context, dot string) error {
	f := v.ImageFormat
	if f == "" {
		f = render.FormatPNG
	}
	data, err := v.Renderer.Render(ctx, dot, f)
	if err != nil {
		return err
	}
	return v.Display.Image(data, f)
}

func unwrap(src XMLSource) *etree.Element {
	if src == nil {
		return nil
	}
	return src.XMLTree()
}
