package view

import (
	"context"
	"slices"
	"strings"

	"github.com/matzehuels/oaiview/pkg/errors"
	"github.com/matzehuels/oaiview/pkg/oai"
	"github.com/matzehuels/oaiview/pkg/xmltree"
)

// Mode names one way of displaying a harvested record.
type Mode string

const (
	ModeXML      Mode = "xml"      // record XML, highlighted
	ModeTree     Mode = "tree"     // record XML as an element tree image
	ModeMetadata Mode = "metadata" // payload in the record's bound format
	ModeTurtle   Mode = "turtle"   // payload parsed as RDF, as Turtle
	ModeGraph    Mode = "graph"    // payload parsed as RDF, as a graph image
	ModeDOT      Mode = "dot"      // element tree description as text
)

// Modes lists every record display mode.
var Modes = []Mode{ModeXML, ModeTree, ModeMetadata, ModeTurtle, ModeGraph, ModeDOT}

// ParseMode validates a mode name. Empty selects ModeXML.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeXML, nil
	}
	m := Mode(strings.ToLower(s))
	if !slices.Contains(Modes, m) {
		names := make([]string, len(Modes))
		for i, m := range Modes {
			names[i] = string(m)
		}
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid view: %s (must be one of %s)", s, strings.Join(names, ", "))
	}
	return m, nil
}

// Record displays rec in the given mode. Tree layouts use dir.
//
// ModeMetadata follows the record's bound format: an EDM graph is shown as
// Turtle, a LIDO subtree and the default representation as XML.
func (v *Viewer) Record(ctx context.Context, rec *oai.Record, mode Mode, dir xmltree.RankDir) error {
	if rec == nil {
		return errors.New(errors.ErrCodeInvalidInput, "no record to display")
	}
	switch mode {
	case ModeXML:
		return v.OAI(rec)
	case ModeTree:
		return v.OAITree(ctx, rec, dir)
	case ModeDOT:
		return v.DOT(xmltree.ToDOT(rec.XMLTree(), xmltree.Options{RankDir: dir}))
	case ModeMetadata:
		md, err := rec.Metadata()
		if err != nil {
			return err
		}
		switch md.Format {
		case oai.FormatEDM:
			return v.Turtle(md.Graph)
		case oai.FormatLIDO:
			return v.XML(md.Element)
		}
		el, err := rec.Subtree()
		if err != nil {
			return err
		}
		return v.XML(el)
	case ModeTurtle, ModeGraph:
		g, err := rec.Graph()
		if err != nil {
			return err
		}
		if mode == ModeTurtle {
			return v.Turtle(g)
		}
		return v.Graph(ctx, g)
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown view %q", mode)
}
