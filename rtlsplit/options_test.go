package rtlsplit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	opts, err := LoadOptions(strings.NewReader("ignore: '^\\.no-rtl'\nalwaysConvert: float|clear\n"))
	require.NoError(t, err)
	assert.Equal(t, `^\.no-rtl`, opts.Ignore)
	assert.Equal(t, "float|clear", opts.AlwaysConvert)
	assert.Equal(t, DefaultConvert, opts.Convert)

	opts, err = LoadOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)

	_, err = LoadOptions(strings.NewReader("ignore: [unclosed"))
	assert.Error(t, err)
}

func TestPropertyFilters(t *testing.T) {
	f, err := DefaultOptions().compile()
	require.NoError(t, err)
	assert.Nil(t, f.ignore)
	for _, prop := range []string{"margin-left", "MARGIN-RIGHT", "border-top-left-radius", "float", "animation"} {
		assert.True(t, f.convert.MatchString(prop), prop)
	}
	for _, prop := range []string{"color", "margin-top", "font-family", "x-margin-left"} {
		assert.False(t, f.convert.MatchString(prop), prop)
	}
	assert.True(t, f.always.MatchString("margin"))
	assert.False(t, f.always.MatchString("margin-left"))

	f, err = Options{Convert: "float"}.compile()
	require.NoError(t, err)
	assert.True(t, f.convert.MatchString("Float"))
	assert.False(t, f.convert.MatchString("floats"))
	assert.True(t, f.always.MatchString("padding"), "empty alwaysConvert falls back to default")
}
