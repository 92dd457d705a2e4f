// Package rdfgraph holds RDF graphs parsed from RDF/XML metadata payloads.
//
// A [Graph] is an unordered set of triples plus the namespace prefixes that
// were declared in the source document. Graphs are built with [Parse] or
// [FromElement], serialized with [Graph.Turtle], and drawn with
// [Graph.ToDOT].
//
// Parsing and Turtle serialization are delegated to [github.com/knakk/rdf].
package rdfgraph

import (
	"bytes"
	"slices"
	"strings"

	"github.com/beevik/etree"
	"github.com/knakk/rdf"

	"github.com/matzehuels/oaiview/pkg/errors"
	"github.com/matzehuels/oaiview/pkg/xmltree"
)

// Well-known namespaces used when the document does not declare them.
const (
	NamespaceRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NamespaceSKOS = "http://www.w3.org/2004/02/skos/core#"
	NamespaceEDM  = "http://www.europeana.eu/schemas/edm/"
	NamespaceORE  = "http://www.openarchives.org/ore/terms/"
	NamespaceDC   = "http://purl.org/dc/elements/1.1/"
)

var defaultNamespaces = map[string]string{
	"rdf":  NamespaceRDF,
	"rdfs": NamespaceRDFS,
	"skos": NamespaceSKOS,
	"edm":  NamespaceEDM,
	"ore":  NamespaceORE,
	"dc":   NamespaceDC,
}

// Graph is a set of RDF triples.
type Graph struct {
	triples    []rdf.Triple
	seen       map[string]struct{} // tripleKey of every stored triple
	namespaces map[string]string   // prefix -> namespace IRI
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		seen:       make(map[string]struct{}),
		namespaces: make(map[string]string),
	}
}

// Parse parses an RDF/XML document into a fresh graph. Repeated statements
// are stored once. Namespace declarations found anywhere in the document
// become the graph's prefixes.
func Parse(rdfxml string) (*Graph, error) {
	root, err := xmltree.Parse(rdfxml)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRDF, err, "parse RDF/XML")
	}

	dec := rdf.NewTripleDecoder(strings.NewReader(rdfxml), rdf.RDFXML)
	triples, err := dec.DecodeAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRDF, err, "parse RDF/XML")
	}

	g := New()
	g.Add(triples...)
	collectNamespaces(root, g.namespaces)
	return g, nil
}

// FromElement serializes el, with the namespace declarations in scope for
// it, and parses the result as RDF/XML.
func FromElement(el *etree.Element) (*Graph, error) {
	s, err := xmltree.String(el)
	if err != nil {
		return nil, err
	}
	return Parse(s)
}

func collectNamespaces(root *etree.Element, into map[string]string) {
	xmltree.Walk(root, func(el, _ *etree.Element) bool {
		for _, a := range el.Attr {
			if a.Space == "xmlns" && a.Value != "" {
				if _, ok := into[a.Key]; !ok {
					into[a.Key] = a.Value
				}
			}
		}
		return true
	})
}

// Len returns the number of triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Add inserts triples into the graph. Duplicates are dropped.
func (g *Graph) Add(triples ...rdf.Triple) {
	for _, t := range triples {
		k := tripleKey(t)
		if _, ok := g.seen[k]; ok {
			continue
		}
		g.seen[k] = struct{}{}
		g.triples = append(g.triples, t)
	}
}

// Bind registers a namespace prefix used for Turtle output and qualified names.
func (g *Graph) Bind(prefix, namespace string) {
	g.namespaces[prefix] = namespace
}

// Namespaces returns a copy of the prefix -> namespace IRI table.
func (g *Graph) Namespaces() map[string]string {
	out := make(map[string]string, len(g.namespaces))
	for k, v := range g.namespaces {
		out[k] = v
	}
	return out
}

// Triples returns the triples in a deterministic order (by subject,
// predicate, then object in N-Triples form).
func (g *Graph) Triples() []rdf.Triple {
	out := slices.Clone(g.triples)
	slices.SortStableFunc(out, func(a, b rdf.Triple) int {
		return strings.Compare(tripleKey(a), tripleKey(b))
	})
	return out
}

func tripleKey(t rdf.Triple) string {
	return t.Subj.Serialize(rdf.NTriples) + " " + t.Pred.Serialize(rdf.NTriples) + " " + t.Obj.Serialize(rdf.NTriples)
}

// QName abbreviates iri with the longest matching namespace prefix, falling
// back to the well-known namespaces and finally to the full IRI.
func (g *Graph) QName(iri string) string {
	if q, ok := qname(iri, g.namespaces); ok {
		return q
	}
	if q, ok := qname(iri, defaultNamespaces); ok {
		return q
	}
	return iri
}

func qname(iri string, namespaces map[string]string) (string, bool) {
	best, bestNS := "", ""
	for prefix, ns := range namespaces {
		if ns == "" || !strings.HasPrefix(iri, ns) || len(ns) <= len(bestNS) {
			continue
		}
		local := iri[len(ns):]
		if local == "" || strings.ContainsAny(local, "/#?") {
			continue
		}
		best, bestNS = prefix, ns
	}
	if bestNS == "" {
		return "", false
	}
	return best + ":" + iri[len(bestNS):], true
}

// Turtle serializes the graph in Turtle syntax using the graph's prefixes.
func (g *Graph) Turtle() (string, error) {
	var buf bytes.Buffer
	enc := rdf.NewTripleEncoder(&buf, rdf.Turtle)
	if enc.Namespaces == nil {
		enc.Namespaces = make(map[string]string)
	}
	for prefix, ns := range g.namespaces {
		enc.Namespaces[ns] = prefix
	}
	if err := enc.EncodeAll(g.Triples()); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize turtle")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize turtle")
	}
	return buf.String(), nil
}
