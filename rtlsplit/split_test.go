package rtlsplit

import (
	"errors"
	"testing"

	"github.com/cipix2000/postcss-to-rtl/cssom"
	"github.com/cipix2000/postcss-to-rtl/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func process(t *testing.T, opts Options, text string) string {
	t.Helper()
	out, err := Process(text, opts)
	require.NoError(t, err)
	return out
}

// reprint parses and prints text without transforming it.
func reprint(t *testing.T, text string) string {
	t.Helper()
	sheet, err := douceuradapter.Parse(text)
	require.NoError(t, err)
	return sheet.String()
}

func TestSplitBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtl.split")
	defer teardown()
	//
	out := process(t, DefaultOptions(), `.box { margin-left: 10px; color: red }`)
	assert.Equal(t, `.box {
  color: red;
}
html[dir='ltr'] .box {
  margin-left: 10px;
}
html[dir='rtl'] .box {
  margin-right: 10px;
}
`, out)
}

func TestSplitAnimation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtl.split")
	defer teardown()
	//
	out := process(t, DefaultOptions(), `
@keyframes slide { from { left: 0 } to { left: 10px } }
.a { animation: slide 2s }`)
	assert.Equal(t, `@keyframes slide-rtl {
  from {
    right: 0;
  }
  to {
    right: 10px;
  }
}
@keyframes slide {
  from {
    left: 0;
  }
  to {
    left: 10px;
  }
}
html[dir='ltr'] .a {
  animation: slide 2s;
}
html[dir='rtl'] .a {
  animation: slide-rtl 2s;
}
`, out)
}

func TestUnchangedRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtl.split")
	defer teardown()
	//
	split := process(t, DefaultOptions(), `.box { margin-left: 10px; color: red }`)
	for _, text := range []string{
		`.a { color: red; font-size: 2em }`,                      // nothing convertible
		`.a { cursor: pointer; transform: scale(2) }`,            // convertible, mirrors to itself
		`html .a { float: left } html[dir='rtl'] .b { left: 0 }`, // already scoped
		`html.rtl-override .x { float: left }`,
		`@supports (display: grid) { .a { float: left } }`, // not inside @media
		`.a { font-family: left }`,
		split, // output of a previous run
	} {
		assert.Equal(t, reprint(t, text), process(t, DefaultOptions(), text), text)
	}
}

func TestSplitKeepsOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtl.split")
	defer teardown()
	//
	out := process(t, DefaultOptions(), `.x, .y {
  margin-left: 1px; color: red; padding-right: 2px; float: left !important }
.z { top: 0 }`)
	assert.Equal(t, `.x, .y {
  color: red;
}
html[dir='ltr'] .x, html[dir='ltr'] .y {
  margin-left: 1px;
  padding-right: 2px;
  float: left !important;
}
html[dir='rtl'] .x, html[dir='rtl'] .y {
  margin-right: 1px;
  padding-left: 2px;
  float: right !important;
}
.z {
  top: 0;
}
`, out)
}

func TestAlwaysConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtl.split")
	defer teardown()
	//
	out := process(t, DefaultOptions(), `.a { margin: 0 auto }`)
	assert.Equal(t, `html[dir='ltr'] .a {
  margin: 0 auto;
}
html[dir='rtl'] .a {
  margin: 0 auto;
}
`, out)
	opts := DefaultOptions()
	opts.AlwaysConvert = "float"
	out = process(t, opts, `.a { margin: 0 auto }`)
	assert.Equal(t, reprint(t, `.a { margin: 0 auto }`), out)
}

func TestSplitInsideMedia(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtl.split")
	defer teardown()
	//
	out := process(t, DefaultOptions(), `@media screen { .a { float: left } }`)
	assert.Equal(t, `@media screen {
  html[dir='ltr'] .a {
    float: left;
  }
  html[dir='rtl'] .a {
    float: right;
  }
}
`, out)
}

func TestSplitInsideUppercaseMedia(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtl.split")
	defer teardown()
	//
	out := process(t, DefaultOptions(), `@MEDIA screen { .a { float: left } }`)
	assert.Equal(t, `@MEDIA screen {
  html[dir='ltr'] .a {
    float: left;
  }
  html[dir='rtl'] .a {
    float: right;
  }
}
`, out)
}

func TestIgnore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtl.split")
	defer teardown()
	//
	opts := DefaultOptions()
	opts.Ignore = `^\.keep`
	out := process(t, opts, `.keep-me { float: left } .other { float: left }`)
	assert.Equal(t, `.keep-me {
  float: left;
}
html[dir='ltr'] .other {
  float: left;
}
html[dir='rtl'] .other {
  float: right;
}
`, out)
}

func TestEmptyRuleRemoved(t *testing.T) {
	sheet := cssom.NewSheet()
	sheet.Append(sheet.Root(), sheet.NewRule([]string{".empty"}))
	tr, err := New(DefaultOptions(), nil)
	require.NoError(t, err)
	require.NoError(t, tr.Transform(sheet))
	assert.True(t, sheet.Empty())
}

func TestScopedSelectors(t *testing.T) {
	sel := scoped([]string{"html .a", ".b"}, LTRScope)
	assert.Equal(t, []string{"html .a", "html[dir='ltr'] .b"}, sel)
}

func TestInvalidPattern(t *testing.T) {
	for _, opts := range []Options{
		{Ignore: "("},
		{Convert: "margin-[left"},
		{AlwaysConvert: "*"},
	} {
		_, err := New(opts, nil)
		assert.True(t, errors.Is(err, ErrInvalidPattern), "%+v: %v", opts, err)
		_, err = Process(".a { left: 0 }", opts)
		assert.True(t, errors.Is(err, ErrInvalidPattern))
	}
}

// droppingMirror loses the last child of every mirrored node.
type droppingMirror struct{}

func (droppingMirror) Mirror(sheet *cssom.Sheet, node cssom.NodeID) (cssom.NodeID, error) {
	c := sheet.Clone(node)
	if ch := sheet.Children(c); len(ch) > 0 {
		sheet.Remove(ch[len(ch)-1])
	}
	return c, nil
}

var errMirror = errors.New("mirror broken")

type failingMirror struct{}

func (failingMirror) Mirror(*cssom.Sheet, cssom.NodeID) (cssom.NodeID, error) {
	return cssom.None, errMirror
}

func TestMirrorFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtl.split")
	defer teardown()
	//
	build := func() *cssom.Sheet {
		sheet := cssom.NewSheet()
		sheet.Append(sheet.Root(), sheet.NewRule([]string{".a"},
			sheet.NewDecl("float", "left", false),
			sheet.NewDecl("color", "red", false),
		))
		return sheet
	}
	tr, err := New(DefaultOptions(), droppingMirror{})
	require.NoError(t, err)
	err = tr.Transform(build())
	assert.True(t, errors.Is(err, ErrMisaligned), "%v", err)
	assert.Contains(t, err.Error(), ".a")

	tr, err = New(DefaultOptions(), failingMirror{})
	require.NoError(t, err)
	err = tr.Transform(build())
	assert.True(t, errors.Is(err, errMirror), "%v", err)
}

func TestSplitterWithoutMarkers(t *testing.T) {
	sheet := cssom.NewSheet()
	rule := sheet.NewRule([]string{".a"}, sheet.NewDecl("animation", "slide 2s", false))
	sheet.Append(sheet.Root(), rule)
	tr, err := New(DefaultOptions(), nil)
	require.NoError(t, err)
	require.NoError(t, tr.Splitter(nil).Split(sheet))
	assert.Equal(t, ".a {\n  animation: slide 2s;\n}\n", sheet.String())
}

func TestSplitNestedAtRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtl.split")
	defer teardown()
	//
	sheet := cssom.NewSheet()
	media := sheet.NewAtRule("media", "print")
	supports := sheet.NewAtRule("supports", "(display: grid)")
	inSupports := sheet.NewRule([]string{".a"}, sheet.NewDecl("float", "left", false))
	inMedia := sheet.NewRule([]string{".b"}, sheet.NewDecl("float", "left", false))
	sheet.Append(supports, inSupports)
	sheet.Append(media, supports, inMedia)
	sheet.Append(sheet.Root(), media)
	tr, err := New(DefaultOptions(), nil)
	require.NoError(t, err)
	require.NoError(t, tr.Transform(sheet))
	assert.True(t, sheet.Attached(inSupports), "rule inside @supports stays")
	assert.Equal(t, 1, sheet.ChildCount(supports))
	assert.False(t, sheet.Attached(inMedia), "rule inside @media is split")
	assert.Equal(t, 3, sheet.ChildCount(media))
}
