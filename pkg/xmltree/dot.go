package xmltree

import (
	"bytes"
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/beevik/etree"

	"github.com/matzehuels/oaiview/pkg/errors"
)

// RankDir is the Graphviz layout direction.
type RankDir string

const (
	TopToBottom RankDir = "TB"
	LeftToRight RankDir = "LR"
)

// ParseRankDir converts a flag value into a RankDir.
// The empty string selects [TopToBottom].
func ParseRankDir(s string) (RankDir, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "TB":
		return TopToBottom, nil
	case "LR":
		return LeftToRight, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "invalid rank direction: %s (must be 'TB' or 'LR')", s)
}

// Options configures graph description generation.
type Options struct {
	// RankDir sets the layout direction. Zero value means top-to-bottom.
	RankDir RankDir
}

// Attr is a single attribute row of a node label.
type Attr struct {
	Key   string
	Value string
}

// Node is the graph node of one XML element.
type Node struct {
	ID      string
	Element *etree.Element
	Name    string // local tag name
	Attrs   []Attr // sorted by Key, namespace declarations excluded
	Text    string // direct text, empty when absent
}

// Edge connects a parent element's node to a child element's node.
type Edge struct {
	From string
	To   string
}

// Graph is the graph description of an element tree.
type Graph struct {
	RankDir RankDir
	Nodes   []Node
	Edges   []Edge
}

// Build walks the tree rooted at root in document order and returns its
// graph description. Every element becomes exactly one node and every
// parent-child pair exactly one edge; root has no incoming edge even when
// it is attached to a larger document.
func Build(root *etree.Element, opts Options) *Graph {
	g := &Graph{RankDir: opts.RankDir}
	if g.RankDir == "" {
		g.RankDir = TopToBottom
	}
	if root == nil {
		return g
	}

	ids := make(map[*etree.Element]string)
	id := func(el *etree.Element) string {
		if s, ok := ids[el]; ok {
			return s
		}
		s := fmt.Sprintf("node%d", len(ids))
		ids[el] = s
		g.Nodes = append(g.Nodes, newNode(s, el))
		return s
	}

	Walk(root, func(el, parent *etree.Element) bool {
		if parent == nil {
			id(el)
			return true
		}
		g.Edges = append(g.Edges, Edge{From: id(parent), To: id(el)})
		return true
	})
	return g
}

func newNode(id string, el *etree.Element) Node {
	n := Node{ID: id, Element: el, Name: LocalName(el), Text: directText(el)}
	for _, a := range attributes(el) {
		// Keys keep the document's prefix (xlink:href), not {uri}href.
		n.Attrs = append(n.Attrs, Attr{Key: a.FullKey(), Value: a.Value})
	}
	slices.SortStableFunc(n.Attrs, func(a, b Attr) int { return strings.Compare(a.Key, b.Key) })
	return n
}

// ToDOT is shorthand for Build(root, opts).DOT().
func ToDOT(root *etree.Element, opts Options) string {
	return Build(root, opts).DOT()
}

// DOT renders the graph in the Graphviz DOT language.
//
// The output consists of a header (default node font and rankdir), one
// "a -> b ;" statement per edge, and per node a "#" comment line naming the
// source element followed by the node statement with its table label.
func (g *Graph) DOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph { \n node [ fontname=\"DejaVu Sans\" ] ; \n")
	fmt.Fprintf(&buf, "rankdir=%s; \n", g.rankDir())

	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "\t%s -> %s ;\n", e.From, e.To)
	}

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "# %s %s\n", describe(n.Element), n.ID)
		fmt.Fprintf(&buf, "%s [ shape=none, label=< %s > ] \n", n.ID, n.label())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func (g *Graph) rankDir() RankDir {
	if g.RankDir == "" {
		return TopToBottom
	}
	return g.RankDir
}

func (n Node) label() string {
	var b strings.Builder
	b.WriteString("<table color='#666666' cellborder='0' cellspacing='0' border='1'>")
	fmt.Fprintf(&b, "<tr><td colspan='2' bgcolor='grey'><B>%s</B></td></tr>", html.EscapeString(n.Name))
	for _, a := range n.Attrs {
		fmt.Fprintf(&b, "<tr><td align='left'>%s:</td><td align='left'>\"%s\"</td></tr>",
			html.EscapeString(a.Key), html.EscapeString(a.Value))
	}
	if n.Text != "" {
		fmt.Fprintf(&b, "<tr><td align='left' colspan='2'><I>%s</I></td></tr>", html.EscapeString(n.Text))
	}
	b.WriteString("</table>")
	return b.String()
}

// describe echoes the element for the trace comment. Newlines would end
// the comment line, so none may appear.
func describe(el *etree.Element) string {
	if el == nil {
		return "<nil>"
	}
	name := strings.NewReplacer("\n", " ", "\r", " ").Replace(Clark(el))
	return fmt.Sprintf("<Element %s at %p>", name, el)
}
