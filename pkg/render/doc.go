// Package render rasterizes Graphviz DOT descriptions.
//
// # Overview
//
// DOT text produced by [xmltree] or [rdfgraph] is laid out and drawn
// in-process with [github.com/goccy/go-graphviz]; no dot binary is needed.
//
//	png, err := render.RenderPNG(ctx, dot)
//	svg, err := render.RenderSVG(ctx, dot)
//	img, err := render.Render(ctx, dot, render.FormatJPG)
//
// Malformed DOT text fails with a RENDER_FAILED error wrapping the
// Graphviz diagnostic.
//
// [xmltree]: github.com/matzehuels/oaiview/pkg/xmltree
// [rdfgraph]: github.com/matzehuels/oaiview/pkg/rdfgraph
package render
