package xmltree

import (
	"regexp"
	"strings"
	"testing"
)

var (
	nodeStmtRe = regexp.MustCompile(`(?m)^node\d+ \[ shape=none`)
	edgeStmtRe = regexp.MustCompile(`(?m)^\tnode\d+ -> node\d+ ;$`)
)

func mustParse(t *testing.T, s string) *Graph {
	t.Helper()
	root, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	return Build(root, Options{})
}

func TestBuild_RootWithChild(t *testing.T) {
	g := mustParse(t, `<root><child attr="x"/></root>`)

	if len(g.Nodes) != 2 {
		t.Fatalf("Build() nodes = %d, want 2", len(g.Nodes))
	}
	if len(g.Edges) != 1 {
		t.Fatalf("Build() edges = %d, want 1", len(g.Edges))
	}
	if g.Edges[0] != (Edge{From: "node0", To: "node1"}) {
		t.Errorf("Build() edge = %+v, want node0 -> node1", g.Edges[0])
	}
	if g.Nodes[0].Name != "root" || len(g.Nodes[0].Attrs) != 0 {
		t.Errorf("root node = %+v, want name root without attributes", g.Nodes[0])
	}
	if g.Nodes[1].Name != "child" {
		t.Errorf("child node name = %q, want child", g.Nodes[1].Name)
	}
	if len(g.Nodes[1].Attrs) != 1 || g.Nodes[1].Attrs[0] != (Attr{Key: "attr", Value: "x"}) {
		t.Errorf("child attrs = %+v, want [attr=x]", g.Nodes[1].Attrs)
	}

	dot := g.DOT()
	if got := len(nodeStmtRe.FindAllString(dot, -1)); got != 2 {
		t.Errorf("DOT() node statements = %d, want 2", got)
	}
	if got := len(edgeStmtRe.FindAllString(dot, -1)); got != 1 {
		t.Errorf("DOT() edge statements = %d, want 1", got)
	}
	if !strings.Contains(dot, "\tnode0 -> node1 ;\n") {
		t.Error("DOT() missing root -> child edge")
	}
	if !strings.Contains(dot, `<td align='left'>attr:</td><td align='left'>"x"</td>`) {
		t.Error("DOT() missing attr row for child")
	}
}

func TestBuild_CountsMatchTree(t *testing.T) {
	tests := []struct {
		name  string
		input string
		nodes int
	}{
		{"single element", `<root/>`, 1},
		{"flat", `<r><a/><b/><c/></r>`, 4},
		{"nested", `<r><a><b><c/></b></a><d/></r>`, 5},
		{"mixed content", `<r>text<a>x</a>tail<b/></r>`, 3},
		{"comments ignored", `<r><!-- note --><a/><?pi x?></r>`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			if len(g.Nodes) != tt.nodes {
				t.Errorf("nodes = %d, want %d", len(g.Nodes), tt.nodes)
			}
			if len(g.Edges) != tt.nodes-1 {
				t.Errorf("edges = %d, want %d", len(g.Edges), tt.nodes-1)
			}
			dot := g.DOT()
			if got := len(nodeStmtRe.FindAllString(dot, -1)); got != tt.nodes {
				t.Errorf("DOT() node statements = %d, want %d", got, tt.nodes)
			}
			if got := len(edgeStmtRe.FindAllString(dot, -1)); got != tt.nodes-1 {
				t.Errorf("DOT() edge statements = %d, want %d", got, tt.nodes-1)
			}
		})
	}
}

func TestBuild_IdentityNotValue(t *testing.T) {
	g := mustParse(t, `<r><c k="v"/><c k="v"/></r>`)

	seen := make(map[string]bool)
	for _, n := range g.Nodes {
		if seen[n.ID] {
			t.Fatalf("duplicate node id %s", n.ID)
		}
		seen[n.ID] = true
	}
	if len(g.Nodes) != 3 {
		t.Errorf("nodes = %d, want 3 (identical siblings stay distinct)", len(g.Nodes))
	}
	if g.Nodes[1].Element == g.Nodes[2].Element {
		t.Error("sibling nodes share an element")
	}
}

func TestBuild_DocumentOrderIDs(t *testing.T) {
	g := mustParse(t, `<r><a><b/></a><c/></r>`)

	want := []string{"r", "a", "b", "c"}
	for i, n := range g.Nodes {
		if n.ID != "node"+string(rune('0'+i)) {
			t.Errorf("node %d id = %s", i, n.ID)
		}
		if n.Name != want[i] {
			t.Errorf("node %d name = %s, want %s", i, n.Name, want[i])
		}
	}
	wantEdges := []Edge{{"node0", "node1"}, {"node1", "node2"}, {"node0", "node3"}}
	for i, e := range g.Edges {
		if e != wantEdges[i] {
			t.Errorf("edge %d = %+v, want %+v", i, e, wantEdges[i])
		}
	}
}

func TestBuild_Repeatable(t *testing.T) {
	root, err := Parse(`<r z="1" a="2"><a/><b x="y">t</b></r>`)
	if err != nil {
		t.Fatal(err)
	}
	first := Build(root, Options{})
	second := Build(root, Options{})

	if len(first.Nodes) != len(second.Nodes) || len(first.Edges) != len(second.Edges) {
		t.Fatalf("repeated Build() differs in size")
	}
	for i := range first.Nodes {
		a, b := first.Nodes[i], second.Nodes[i]
		if a.ID != b.ID || a.Name != b.Name || a.Text != b.Text || len(a.Attrs) != len(b.Attrs) {
			t.Errorf("node %d differs: %+v vs %+v", i, a, b)
		}
	}
	if first.DOT() != second.DOT() {
		t.Error("repeated DOT() output differs for the same tree")
	}
}

func TestBuild_AttributesSorted(t *testing.T) {
	g := mustParse(t, `<e b="2" a="1"/>`)

	attrs := g.Nodes[0].Attrs
	if len(attrs) != 2 || attrs[0].Key != "a" || attrs[1].Key != "b" {
		t.Fatalf("attrs = %+v, want a before b", attrs)
	}
	dot := g.DOT()
	if strings.Index(dot, ">a:<") > strings.Index(dot, ">b:<") {
		t.Error("DOT() lists b before a")
	}
}

func TestBuild_EscapesText(t *testing.T) {
	g := mustParse(t, `<e k="a&lt;b">&lt;tag&gt;</e>`)

	if g.Nodes[0].Text != "<tag>" {
		t.Fatalf("Text = %q, want <tag>", g.Nodes[0].Text)
	}
	dot := g.DOT()
	if !strings.Contains(dot, "<I>&lt;tag&gt;</I>") {
		t.Error("DOT() text row not escaped")
	}
	if strings.Contains(dot, "<I><tag></I>") {
		t.Error("DOT() contains raw angle brackets from text")
	}
	if !strings.Contains(dot, `"a&lt;b"`) {
		t.Error("DOT() attribute value not escaped")
	}
}

func TestBuild_WhitespaceTextOmitted(t *testing.T) {
	g := mustParse(t, "<r>\n  <c/>\n</r>")

	if g.Nodes[0].Text != "" {
		t.Errorf("Text = %q, want empty for whitespace-only content", g.Nodes[0].Text)
	}
	if strings.Contains(g.DOT(), "<I>") {
		t.Error("DOT() has a text row for whitespace-only content")
	}
}

func TestBuild_Namespaces(t *testing.T) {
	g := mustParse(t, `<x:r xmlns:x="urn:x" xmlns="urn:d" x:k="v"><child/></x:r>`)

	n := g.Nodes[0]
	if n.Name != "r" {
		t.Errorf("Name = %q, want local name r", n.Name)
	}
	if len(n.Attrs) != 1 || n.Attrs[0].Key != "x:k" {
		t.Errorf("Attrs = %+v, want only x:k (no xmlns declarations)", n.Attrs)
	}
	if !strings.Contains(g.DOT(), "# <Element {urn:x}r at ") {
		t.Error("DOT() trace comment missing Clark name")
	}
}

func TestBuild_SubtreeHasNoParentEdge(t *testing.T) {
	root, err := Parse(`<a><b><c/></b></a>`)
	if err != nil {
		t.Fatal(err)
	}
	b := root.ChildElements()[0]
	g := Build(b, Options{})

	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Fatalf("subtree graph = %d nodes/%d edges, want 2/1", len(g.Nodes), len(g.Edges))
	}
	if g.Nodes[0].Name != "b" {
		t.Errorf("first node = %s, want b", g.Nodes[0].Name)
	}
}

func TestBuild_Nil(t *testing.T) {
	g := Build(nil, Options{})
	if len(g.Nodes) != 0 || len(g.Edges) != 0 {
		t.Errorf("Build(nil) = %+v, want empty graph", g)
	}
	if !strings.HasSuffix(g.DOT(), "}\n") {
		t.Error("DOT() of empty graph not terminated")
	}
}

func TestDOT_Header(t *testing.T) {
	root, _ := Parse(`<r/>`)

	tests := []struct {
		name string
		dir  RankDir
		want string
	}{
		{"default", "", "rankdir=TB; \n"},
		{"top to bottom", TopToBottom, "rankdir=TB; \n"},
		{"left to right", LeftToRight, "rankdir=LR; \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dot := ToDOT(root, Options{RankDir: tt.dir})
			if !strings.HasPrefix(dot, "digraph { \n node [ fontname=\"DejaVu Sans\" ] ; \n") {
				t.Errorf("DOT() header = %q", dot[:40])
			}
			if !strings.Contains(dot, tt.want) {
				t.Errorf("DOT() missing %q", tt.want)
			}
			if !strings.HasSuffix(dot, "}\n") {
				t.Error("DOT() missing closing brace")
			}
		})
	}
}

func TestParseRankDir(t *testing.T) {
	tests := []struct {
		input   string
		want    RankDir
		wantErr bool
	}{
		{"", TopToBottom, false},
		{"TB", TopToBottom, false},
		{"tb", TopToBottom, false},
		{"LR", LeftToRight, false},
		{" lr ", LeftToRight, false},
		{"BT", "", true},
		{"sideways", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRankDir(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRankDir(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRankDir(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
