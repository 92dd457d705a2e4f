package rdfgraph

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/knakk/rdf"
)

// Options configures RDF graph descriptions.
type Options struct {
	// RankDir is the Graphviz layout direction ("TB" or "LR").
	// Empty means "LR", which suits wide resource tables.
	RankDir string
}

const rdfType = NamespaceRDF + "type"

var labelPredicates = []string{
	NamespaceRDFS + "label",
	NamespaceSKOS + "prefLabel",
	NamespaceDC + "title",
}

type resource struct {
	id     string
	term   rdf.Term
	types  []string
	fields [][2]string // predicate qname, formatted literal
	label  string
}

// ToDOT describes the graph in the DOT language.
//
// Every IRI or blank node becomes a table node headed by its label (an
// rdfs:label, skos:prefLabel or dc:title literal when present, otherwise
// its qualified name). rdf:type values and literal-valued properties are
// rows of that table; properties pointing at other resources are labeled
// edges.
func (g *Graph) ToDOT(opts Options) string {
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = "LR"
	}

	var order []*resource
	nodes := make(map[string]*resource)
	node := func(t rdf.Term) *resource {
		key := t.Serialize(rdf.NTriples)
		if r, ok := nodes[key]; ok {
			return r
		}
		r := &resource{id: fmt.Sprintf("node%d", len(nodes)), term: t}
		nodes[key] = r
		order = append(order, r)
		return r
	}

	var edges bytes.Buffer
	for _, t := range g.Triples() {
		subj := node(t.Subj)
		pred := t.Pred.String()
		switch {
		case pred == rdfType && t.Obj.Type() == rdf.TermIRI:
			subj.types = append(subj.types, g.QName(t.Obj.String()))
		case t.Obj.Type() == rdf.TermLiteral:
			lit := formatLiteral(t.Obj)
			subj.fields = append(subj.fields, [2]string{g.QName(pred), lit})
			if subj.label == "" && isLabelPredicate(pred) {
				subj.label = t.Obj.String()
			}
		default:
			obj := node(t.Obj)
			fmt.Fprintf(&edges, "\t%s -> %s [ color=BLACK, label=< <font point-size='10' color='#336633'>%s</font> > ] ;\n",
				subj.id, obj.id, html.EscapeString(g.QName(pred)))
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph { \n node [ fontname=\"DejaVu Sans\" ] ; \n")
	fmt.Fprintf(&buf, "rankdir=%s; \n", rankdir)
	buf.Write(edges.Bytes())
	for _, r := range order {
		fmt.Fprintf(&buf, "%s [ shape=none, color=black label=< %s > ] \n", r.id, g.resourceLabel(r))
	}
	buf.WriteString("}\n")
	return buf.String()
}

func (g *Graph) resourceLabel(r *resource) string {
	name := r.label
	ref := r.term.String()
	if r.term.Type() == rdf.TermBlank {
		ref = r.term.Serialize(rdf.NTriples)
	}
	if name == "" {
		name = g.QName(ref)
	}

	var b strings.Builder
	b.WriteString("<table color='#666666' cellborder='0' cellspacing='0' border='1'>")
	fmt.Fprintf(&b, "<tr><td colspan='2' bgcolor='grey'><B>%s</B></td></tr>", html.EscapeString(name))
	fmt.Fprintf(&b, "<tr><td bgcolor='#eeeeee' colspan='2'><font point-size='10' color='#6666ff'>%s</font></td></tr>", html.EscapeString(ref))
	if len(r.types) > 0 {
		fmt.Fprintf(&b, "<tr><td align='left'>a</td><td align='left'>%s</td></tr>", html.EscapeString(strings.Join(r.types, ", ")))
	}
	for _, f := range r.fields {
		fmt.Fprintf(&b, "<tr><td align='left'>%s</td><td align='left'>%s</td></tr>", html.EscapeString(f[0]), html.EscapeString(f[1]))
	}
	b.WriteString("</table>")
	return b.String()
}

func isLabelPredicate(pred string) bool {
	for _, p := range labelPredicates {
		if p == pred {
			return true
		}
	}
	return false
}

// formatLiteral renders a literal value with its language tag, shortening
// long values so tables stay readable.
func formatLiteral(t rdf.Term) string {
	s := strings.Join(strings.Fields(t.String()), " ")
	if r := []rune(s); len(r) > 80 {
		s = string(r[:77]) + "..."
	}
	s = `"` + s + `"`
	if lit, ok := t.(rdf.Literal); ok && lit.Lang() != "" {
		s += "@" + lit.Lang()
	}
	return s
}
