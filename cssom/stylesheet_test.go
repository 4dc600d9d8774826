package cssom

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildSheet() (*Sheet, NodeID, NodeID) {
	s := NewSheet()
	box := s.NewRule([]string{".box"},
		s.NewDecl("margin-left", "10px", false),
		s.NewDecl("color", "red", true),
	)
	media := s.NewAtRule("@media", "screen")
	inner := s.NewRule([]string{"a", "b:hover"}, s.NewDecl("float", "left", false))
	s.Append(media, inner)
	s.Append(s.Root(), box, media)
	return s, box, media
}

func TestPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtl.cssom")
	defer teardown()
	//
	s, _, _ := buildSheet()
	imp := s.NewAtRule("import", `url("x.css")`)
	s.Item(imp).NoBlock = true
	s.InsertBefore(s.Children(s.Root())[0], imp)
	expected := `@import url("x.css");
.box {
  margin-left: 10px;
  color: red !important;
}
@media screen {
  a, b:hover {
    float: left;
  }
}
`
	if out := s.String(); out != expected {
		t.Errorf("unexpected output:\n%s\nexpected:\n%s", out, expected)
	}
}

func TestInsertAndRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtl.cssom")
	defer teardown()
	//
	s, box, media := buildSheet()
	r1 := s.NewRule([]string{".one"})
	r2 := s.NewRule([]string{".two"})
	if err := s.InsertAfter(box, r1); err != nil {
		t.Fatal(err)
	}
	if err := s.InsertAfter(box, r2); err != nil { // lands between box and r1
		t.Fatal(err)
	}
	chs := s.Children(s.Root())
	if len(chs) != 4 || chs[0] != box || chs[1] != r2 || chs[2] != r1 || chs[3] != media {
		t.Errorf("unexpected order of rules: %v", chs)
	}
	if !s.RemoveIfEmpty(r1) {
		t.Errorf("expected empty rule to be removed")
	}
	if s.RemoveIfEmpty(box) {
		t.Errorf("expected non-empty rule to be kept")
	}
	if s.Attached(r1) {
		t.Errorf("expected removed rule to be detached")
	}
	orphan := s.NewRule([]string{".orphan"})
	if err := s.InsertBefore(orphan, r1); !errors.Is(err, ErrDetached) {
		t.Errorf("expected ErrDetached, have %v", err)
	}
}

func TestReplaceAndClone(t *testing.T) {
	s, box, _ := buildSheet()
	c := s.Clone(box)
	if s.Attached(c) {
		t.Fatalf("expected clone to be detached")
	}
	s.Item(s.Decls(c)[0]).Value = "0"
	if s.Item(s.Decls(box)[0]).Value != "10px" {
		t.Errorf("expected clone to be independent of original")
	}
	s.Item(c).Selectors[0] = ".copy"
	if s.Selectors(box)[0] != ".box" {
		t.Errorf("expected selectors of original to be unchanged")
	}
	if err := s.Replace(box, c); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(s.String(), ".box {\n  margin-left: 0;") {
		t.Errorf("expected clone in place of original, have\n%s", s)
	}
	if s.Attached(box) {
		t.Errorf("expected replaced rule to be detached")
	}
}

func TestNodeString(t *testing.T) {
	s, box, media := buildSheet()
	if out := s.NodeString(box); out != ".box {\n  margin-left: 10px;\n  color: red !important;\n}\n" {
		t.Errorf("unexpected rule text:\n%s", out)
	}
	if out := s.NodeString(s.Decls(box)[0]); out != "margin-left: 10px;\n" {
		t.Errorf("unexpected declaration text: %q", out)
	}
	if out := s.NodeString(media); !strings.HasPrefix(out, "@media screen {\n  a, b:hover {\n    float: left;") {
		t.Errorf("unexpected at-rule text:\n%s", out)
	}
}

func TestEnclosingAtRule(t *testing.T) {
	s, box, media := buildSheet()
	inner := s.Children(media)[0]
	if at, ok := s.EnclosingAtRule(s.Decls(inner)[0]); !ok || at != media {
		t.Errorf("expected @media to enclose declaration of inner rule")
	}
	if _, ok := s.EnclosingAtRule(box); ok {
		t.Errorf("expected top-level rule not to be enclosed by an at-rule")
	}
}

func TestWalkers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtl.cssom")
	defer teardown()
	//
	s, _, _ := buildSheet()
	kf := s.NewAtRule("-webkit-keyframes", "slide")
	s.Append(kf, s.NewRule([]string{"from"}, s.NewDecl("left", "0", false)))
	s.Append(s.Root(), kf)
	var names []string
	s.WalkAtRules(regexp.MustCompile(`(?i)keyframes`), func(id NodeID) error {
		names = append(names, s.Item(id).Params)
		return nil
	})
	if len(names) != 1 || names[0] != "slide" {
		t.Errorf("expected keyframes [slide], have %v", names)
	}
	var rules []string
	s.WalkRules(func(id NodeID) error {
		rules = append(rules, s.Item(id).Selector)
		if s.Item(id).Selector == ".box" {
			s.Remove(s.Children(s.Root())[1]) // @media, not yet visited
		}
		return nil
	})
	if len(rules) != 2 || rules[1] != "from" {
		t.Errorf("expected rules [.box from], have %v", rules)
	}
	var props []string
	s.WalkDecls(regexp.MustCompile(`(?i)^(left|margin-left)$`), func(id NodeID) error {
		props = append(props, s.Item(id).Prop)
		return nil
	})
	if len(props) != 2 {
		t.Errorf("expected 2 matching declarations, have %v", props)
	}
}

func TestSplitSelectors(t *testing.T) {
	sel := SplitSelectors(` a , :is(b, c) , [data-x="1,2"],`)
	if len(sel) != 3 || sel[0] != "a" || sel[1] != ":is(b, c)" || sel[2] != `[data-x="1,2"]` {
		t.Errorf("unexpected split: %q", sel)
	}
}

func TestDump(t *testing.T) {
	s, _, _ := buildSheet()
	d := s.Dump()
	t.Logf("\n%s", d)
	if !strings.Contains(d, "decl float: left") || !strings.Contains(d, "atrule @media screen") {
		t.Errorf("expected dump to contain nodes, have\n%s", d)
	}
}
