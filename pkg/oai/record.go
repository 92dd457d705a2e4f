package oai

import (
	"iter"
	"slices"

	"github.com/beevik/etree"

	"github.com/matzehuels/oaiview/pkg/errors"
	"github.com/matzehuels/oaiview/pkg/rdfgraph"
	"github.com/matzehuels/oaiview/pkg/xmltree"
)

// Header is the <header> part of a record.
type Header struct {
	Identifier string
	Datestamp  string
	SetSpecs   []string
	Deleted    bool
}

func parseHeader(el *etree.Element, ns string) Header {
	if el == nil {
		return Header{}
	}
	h := Header{
		Identifier: xmltree.Text(xmltree.Child(el, ns, "identifier")),
		Datestamp:  xmltree.Text(xmltree.Child(el, ns, "datestamp")),
		Deleted:    el.SelectAttrValue("status", "") == "deleted",
	}
	for _, s := range xmltree.Children(el, ns, "setSpec") {
		h.SetSpecs = append(h.SetSpecs, xmltree.Text(s))
	}
	return h
}

// Record is one harvested <record>. It is immutable once created.
type Record struct {
	Header Header

	element   *etree.Element
	namespace string
	format    Format
}

func newRecord(el *etree.Element, ns string, f Format) *Record {
	return &Record{
		Header:    parseHeader(xmltree.Child(el, ns, "header"), ns),
		element:   el,
		namespace: ns,
		format:    f,
	}
}

// XMLTree returns the raw <record> element.
func (r *Record) XMLTree() *etree.Element {
	if r == nil {
		return nil
	}
	return r.element
}

// Namespace returns the OAI namespace used to locate the metadata container.
func (r *Record) Namespace() string { return r.namespace }

// Format returns the representation bound when the record was harvested.
func (r *Record) Format() Format { return r.format }

// Metadata is the extracted payload of a record. Exactly one of Graph,
// Element and Fields is set, according to Format.
type Metadata struct {
	Format  Format
	Graph   *rdfgraph.Graph
	Element *etree.Element
	Fields  Fields
}

// Metadata extracts the payload in the record's bound format.
func (r *Record) Metadata() (Metadata, error) {
	md := Metadata{Format: r.format}
	var err error
	switch r.format {
	case FormatEDM:
		md.Graph, err = r.Graph()
	case FormatLIDO:
		md.Element, err = r.Subtree()
	default:
		md.Fields, err = r.Fields()
	}
	return md, err
}

// payload returns the first child element of the <metadata> container.
// A missing container or an empty one is an error.
func (r *Record) payload() (*etree.Element, error) {
	container := xmltree.Find(r.element, r.namespace, "metadata")
	if container == nil {
		return nil, errors.New(errors.ErrCodeMetadataNotFound,
			"record %q: no {%s}metadata element", r.Header.Identifier, r.namespace)
	}
	children := container.ChildElements()
	if len(children) == 0 {
		return nil, errors.New(errors.ErrCodeMetadataNotFound,
			"record %q: metadata element has no children", r.Header.Identifier)
	}
	return children[0], nil
}

// Graph parses the metadata payload as RDF/XML into a fresh graph.
func (r *Record) Graph() (*rdfgraph.Graph, error) {
	el, err := r.payload()
	if err != nil {
		return nil, err
	}
	g, err := rdfgraph.FromElement(el)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "record %q", r.Header.Identifier)
	}
	return g, nil
}

// Subtree returns the metadata payload element unparsed.
func (r *Record) Subtree() (*etree.Element, error) {
	return r.payload()
}

// Fields maps the local name of every element below the metadata payload
// to its text values in document order. Deleted records have no fields.
func (r *Record) Fields() (Fields, error) {
	if r.Header.Deleted {
		return Fields{}, nil
	}
	el, err := r.payload()
	if err != nil {
		return nil, err
	}
	f := Fields{}
	xmltree.Walk(el, func(e, parent *etree.Element) bool {
		if parent == nil {
			return true
		}
		name := xmltree.LocalName(e)
		f[name] = append(f[name], xmltree.Text(e))
		return true
	})
	return f, nil
}

// Fields is the default metadata representation.
type Fields map[string][]string

// Keys returns the field names in sorted order.
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// All yields every field with its values, in key order.
func (f Fields) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, k := range f.Keys() {
			if !yield(k, f[k]) {
				return
			}
		}
	}
}

// Set is an entry of a ListSets response.
type Set struct {
	Spec        string
	Name        string
	Description string
}

// MetadataFormat is an entry of a ListMetadataFormats response.
type MetadataFormat struct {
	Prefix    string
	Schema    string
	Namespace string
}

// Identify describes a repository.
type Identify struct {
	RepositoryName    string
	BaseURL           string
	ProtocolVersion   string
	AdminEmails       []string
	EarliestDatestamp string
	DeletedRecord     string
	Granularity       string
}
