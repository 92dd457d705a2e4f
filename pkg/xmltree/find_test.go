package xmltree

import "testing"

const findSample = `<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <GetRecord>
    <record>
      <header><identifier> oai:x:1 </identifier><setSpec>a</setSpec><setSpec>b</setSpec></header>
      <metadata><dc xmlns="http://purl.org/dc/elements/1.1/"><metadata>inner</metadata></dc></metadata>
    </record>
  </GetRecord>
</OAI-PMH>`

const oaiNS = "http://www.openarchives.org/OAI/2.0/"

func TestFind(t *testing.T) {
	root, err := Parse(findSample)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	md := Find(root, oaiNS, "metadata")
	if md == nil {
		t.Fatal("Find(metadata) = nil")
	}
	if len(md.ChildElements()) != 1 || LocalName(md.ChildElements()[0]) != "dc" {
		t.Errorf("Find(metadata) returned the wrong element: %s", Clark(md))
	}

	inner := Find(root, "http://purl.org/dc/elements/1.1/", "metadata")
	if inner == nil || Text(inner) != "inner" {
		t.Errorf("Find(dc metadata) = %v, want the inner element", inner)
	}

	if Find(root, "", "metadata") != nil {
		t.Error("Find() with empty namespace matched a namespaced element")
	}
	if Find(root, oaiNS, "OAI-PMH") != nil {
		t.Error("Find() matched the starting element")
	}
}

func TestChildren(t *testing.T) {
	root, _ := Parse(findSample)
	header := Find(root, oaiNS, "header")
	if got := Text(Child(header, oaiNS, "identifier")); got != "oai:x:1" {
		t.Errorf("Child(identifier) text = %q, want %q", got, "oai:x:1")
	}
	if got := len(Children(header, oaiNS, "setSpec")); got != 2 {
		t.Errorf("Children(setSpec) = %d, want 2", got)
	}
	if Child(header, oaiNS, "datestamp") != nil {
		t.Error("Child(datestamp) should be nil")
	}
	if Text(nil) != "" {
		t.Error("Text(nil) should be empty")
	}
}
