package oai

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/matzehuels/oaiview/pkg/xmltree"
)

// Namespace is the OAI-PMH 2.0 XML namespace.
const Namespace = "http://www.openarchives.org/OAI/2.0/"

// Response is one parsed OAI-PMH response page.
type Response struct {
	root      *etree.Element
	namespace string
	verb      string
	payload   *etree.Element
	err       *Error

	token            string
	cursor           int
	completeListSize int
}

// newResponse inspects a parsed OAI-PMH document. The namespace is taken
// from the root element so repositories that omit it still work.
func newResponse(verb string, root *etree.Element) *Response {
	r := &Response{root: root, namespace: root.NamespaceURI(), verb: verb}

	if el := xmltree.Child(root, r.namespace, "error"); el != nil {
		r.err = &Error{Code: el.SelectAttrValue("code", ""), Message: xmltree.Text(el)}
		return r
	}

	r.payload = xmltree.Child(root, r.namespace, verb)
	if r.payload == nil {
		return r
	}
	if tok := xmltree.Child(r.payload, r.namespace, "resumptionToken"); tok != nil {
		r.token = xmltree.Text(tok)
		r.cursor, _ = strconv.Atoi(tok.SelectAttrValue("cursor", ""))
		r.completeListSize, _ = strconv.Atoi(tok.SelectAttrValue("completeListSize", ""))
	}
	return r
}

// XMLTree returns the root <OAI-PMH> element.
func (r *Response) XMLTree() *etree.Element {
	if r == nil {
		return nil
	}
	return r.root
}

// Namespace returns the namespace URI of the OAI-PMH envelope.
func (r *Response) Namespace() string { return r.namespace }

// Verb returns the verb this response answers.
func (r *Response) Verb() string { return r.verb }

// ResumptionToken returns the token for the next page, or "" on the last page.
func (r *Response) ResumptionToken() string { return r.token }

// Cursor returns the resumption cursor, or 0 if the repository sent none.
func (r *Response) Cursor() int { return r.cursor }

// CompleteListSize returns the announced list size, or 0 if unknown.
func (r *Response) CompleteListSize() int { return r.completeListSize }

// OAIError returns the protocol error carried by the response, if any.
func (r *Response) OAIError() *Error { return r.err }

// items returns the payload children with the given local name.
func (r *Response) items(local string) []*etree.Element {
	if r.payload == nil {
		return nil
	}
	return xmltree.Children(r.payload, r.namespace, local)
}
