package xmltree

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/matzehuels/oaiview/pkg/errors"
)

// Parse parses an XML document and returns its root element.
// Malformed input yields an INVALID_XML error and no tree.
func Parse(s string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidXML, err, "parse XML")
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidXML, "parse XML: document has no root element")
	}
	return root, nil
}

// ParseBytes is like [Parse] for a byte slice.
func ParseBytes(b []byte) (*etree.Element, error) {
	return Parse(string(b))
}

// LocalName returns the element's tag without its namespace prefix.
func LocalName(el *etree.Element) string {
	return el.Tag
}

// Clark returns the element name in Clark notation ("{uri}local"), or just
// the local name when the element is not in a namespace.
func Clark(el *etree.Element) string {
	if ns := el.NamespaceURI(); ns != "" {
		return "{" + ns + "}" + el.Tag
	}
	return el.Tag
}

// Walk visits el and all of its descendant elements in document order.
// The callback receives each element together with the element it was
// reached from; parent is nil for el itself. Returning false stops the walk.
func Walk(el *etree.Element, fn func(el, parent *etree.Element) bool) {
	walk(el, nil, fn)
}

func walk(el, parent *etree.Element, fn func(el, parent *etree.Element) bool) bool {
	if !fn(el, parent) {
		return false
	}
	for _, c := range el.ChildElements() {
		if !walk(c, el, fn) {
			return false
		}
	}
	return true
}

// Count returns the number of elements in the tree rooted at el.
func Count(el *etree.Element) int {
	n := 0
	Walk(el, func(*etree.Element, *etree.Element) bool {
		n++
		return true
	})
	return n
}

// Detach returns a deep copy of el that can stand alone as a document root.
// Namespace declarations that are in scope for el but declared on one of
// its ancestors are copied onto the new root, so prefixes keep resolving.
func Detach(el *etree.Element) *etree.Element {
	cp := el.Copy()
	declared := make(map[string]bool)
	for _, a := range cp.Attr {
		if isNamespaceDecl(a) {
			declared[a.FullKey()] = true
		}
	}
	for p := el.Parent(); p != nil; p = p.Parent() {
		for _, a := range p.Attr {
			if !isNamespaceDecl(a) || declared[a.FullKey()] {
				continue
			}
			declared[a.FullKey()] = true
			cp.CreateAttr(a.FullKey(), a.Value)
		}
	}
	return cp
}

// Pretty serializes el as an indented standalone XML document fragment.
// The source tree is not modified.
func Pretty(el *etree.Element) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(Detach(el))
	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize XML")
	}
	return s, nil
}

// String serializes el without adding whitespace.
func String(el *etree.Element) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(Detach(el))
	s, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize XML")
	}
	return s, nil
}

// attributes returns el's attributes without namespace declarations.
func attributes(el *etree.Element) []etree.Attr {
	attrs := make([]etree.Attr, 0, len(el.Attr))
	for _, a := range el.Attr {
		if !isNamespaceDecl(a) {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

func isNamespaceDecl(a etree.Attr) bool {
	return a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns")
}

// directText returns the character data that immediately follows el's
// start tag, or "" when it is absent or whitespace only. Indentation between
// child elements is layout, not content, so it never becomes a text row.
func directText(el *etree.Element) string {
	t := el.Text()
	if strings.TrimSpace(t) == "" {
		return ""
	}
	return t
}
