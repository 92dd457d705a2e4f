// Package oai is a small OAI-PMH harvesting client.
//
// # Overview
//
// A [Client] talks to one repository endpoint. Single-response verbs return
// values directly; list verbs return an [Iterator] that follows resumption
// tokens lazily, one HTTP request per page:
//
//	h := oai.NewHarvester("https://api.europeana.eu/oai/record", "edm")
//	records := h.ListRecords(oai.ListOptions{Set: "2048128"})
//	for rec, err := range records.All(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    g, err := rec.Graph()
//	    ...
//	}
//
// # Record Formats
//
// The metadata format name given to [NewHarvester] selects how records
// expose their payload, once, at construction:
//
//   - "edm": [Record.Graph] parses the metadata payload as RDF/XML.
//   - "lido": [Record.Subtree] returns the payload element untouched.
//   - anything else: [Record.Fields] maps local tag names to text values.
//
// Unknown names are not an error. They fall back to the default
// representation.
//
// # Errors
//
// Protocol errors reported by the repository are returned as [*Error]
// wrapped in an OAI_ERROR coded error; use errors.As to inspect them.
// Transport failures are retried with exponential backoff by the
// underlying [github.com/sethgrid/pester] client before surfacing as
// NETWORK_ERROR.
package oai
