package view

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/oaiview/pkg/display"
	"github.com/matzehuels/oaiview/pkg/errors"
	"github.com/matzehuels/oaiview/pkg/oai"
)

const edmRecord = `<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <GetRecord>
    <record>
      <header><identifier>oai:x:1</identifier><datestamp>2024-01-01</datestamp></header>
      <metadata>` + rdfSample + `</metadata>
    </record>
  </GetRecord>
</OAI-PMH>`

const emptyRecord = `<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <GetRecord>
    <record>
      <header><identifier>oai:x:2</identifier></header>
      <metadata/>
    </record>
  </GetRecord>
</OAI-PMH>`

// fetch harvests a single record from a canned response.
func fetch(t *testing.T, body, format string) *oai.Record {
	t.Helper()
	c := oai.NewHarvester("http://repo.test/oai", format, oai.WithHTTPClient(staticDoer(body)))
	rec, err := c.GetRecord(context.Background(), "oai:x:1", "")
	if err != nil {
		t.Fatalf("GetRecord() error: %v", err)
	}
	return rec
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(""); err != nil || m != ModeXML {
		t.Errorf("ParseMode(\"\") = %q, %v", m, err)
	}
	if m, err := ParseMode("Graph"); err != nil || m != ModeGraph {
		t.Errorf("ParseMode(Graph) = %q, %v", m, err)
	}
	if _, err := ParseMode("pdf"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParseMode(pdf) error = %v", err)
	}
}

func TestRecordModes(t *testing.T) {
	tests := []struct {
		format string
		mode   Mode
		kind   display.Kind
		lang   display.Language
		want   string
	}{
		{"edm", ModeXML, display.KindCode, display.LangXML, "<record"},
		{"edm", ModeMetadata, display.KindCode, display.LangTurtle, "Mona Lisa"},
		{"lido", ModeMetadata, display.KindCode, display.LangXML, "<rdf:RDF"},
		{"oai_dc", ModeMetadata, display.KindCode, display.LangXML, "<rdf:RDF"},
		{"oai_dc", ModeTurtle, display.KindCode, display.LangTurtle, "Mona Lisa"},
		{"edm", ModeDOT, display.KindCode, display.LangDOT, "rankdir=TB"},
		{"edm", ModeTree, display.KindImage, "", ""},
		{"edm", ModeGraph, display.KindImage, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.format+"/"+string(tt.mode), func(t *testing.T) {
			v, buf, _ := newTestViewer()
			if err := v.Record(context.Background(), fetch(t, edmRecord, tt.format), tt.mode, ""); err != nil {
				t.Fatalf("Record() error: %v", err)
			}
			out, ok := buf.Last()
			if !ok || out.Kind != tt.kind || out.Lang != tt.lang {
				t.Fatalf("output = %+v", out)
			}
			if !strings.Contains(out.Text, tt.want) {
				t.Errorf("output text missing %q: %s", tt.want, out.Text)
			}
		})
	}
}

func TestRecord_MetadataNotFound(t *testing.T) {
	for _, format := range []string{"edm", "lido", "oai_dc"} {
		t.Run(format, func(t *testing.T) {
			v, buf, _ := newTestViewer()
			err := v.Record(context.Background(), fetch(t, emptyRecord, format), ModeMetadata, "")
			if !errors.Is(err, errors.ErrCodeMetadataNotFound) {
				t.Errorf("Record() error = %v, want %s", err, errors.ErrCodeMetadataNotFound)
			}
			if len(buf.Outputs) != 0 {
				t.Error("nothing should be displayed")
			}
		})
	}
}

func TestRecord_Nil(t *testing.T) {
	for _, mode := range Modes {
		t.Run(string(mode), func(t *testing.T) {
			v, _, _ := newTestViewer()
			if err := v.Record(context.Background(), nil, mode, ""); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Record(nil) error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
		})
	}
}
