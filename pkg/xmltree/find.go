package xmltree

import (
	"strings"

	"github.com/beevik/etree"
)

// Find returns the first descendant of el (el excluded) whose namespace
// URI is space and whose local name is local, in document order.
// An empty space matches elements in no namespace only.
func Find(el *etree.Element, space, local string) *etree.Element {
	var found *etree.Element
	Walk(el, func(e, parent *etree.Element) bool {
		if parent != nil && Matches(e, space, local) {
			found = e
			return false
		}
		return true
	})
	return found
}

// Child returns the first direct child of el matching space and local.
func Child(el *etree.Element, space, local string) *etree.Element {
	for _, c := range el.ChildElements() {
		if Matches(c, space, local) {
			return c
		}
	}
	return nil
}

// Children returns the direct children of el matching space and local.
func Children(el *etree.Element, space, local string) []*etree.Element {
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if Matches(c, space, local) {
			out = append(out, c)
		}
	}
	return out
}

// Matches reports whether el has the given namespace URI and local name.
func Matches(el *etree.Element, space, local string) bool {
	return el.Tag == local && el.NamespaceURI() == space
}

// Text returns the trimmed character data directly inside el, or "" for a
// nil element.
func Text(el *etree.Element) string {
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}
