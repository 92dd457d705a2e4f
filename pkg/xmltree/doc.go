// Package xmltree parses XML documents into element trees and turns those
// trees into Graphviz graph descriptions.
//
// # Overview
//
// Trees are [github.com/beevik/etree] elements. [Parse] reads a document and
// returns its root element; [Pretty] serializes any element, including one
// buried inside a larger document, as indented standalone XML.
//
// [Build] walks a tree in document order and produces a [Graph]: one node
// per element and one edge per parent-child pair. [Graph.DOT] renders the
// graph in the DOT language, where each node carries an HTML-like table
// label listing the element's local name, its attributes in key order and
// its direct text.
//
//	root, err := xmltree.Parse(`<root><child attr="x"/></root>`)
//	dot := xmltree.ToDOT(root, xmltree.Options{RankDir: xmltree.LeftToRight})
//	png, err := render.RenderPNG(ctx, dot)
//
// # Identity
//
// Node identifiers ("node0", "node1", ...) are assigned on first visit and
// keyed by element pointer, so structurally identical siblings get distinct
// nodes. Identifiers are only stable within a single [Build] call.
package xmltree
