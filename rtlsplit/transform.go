package rtlsplit

import (
	"fmt"

	"github.com/cipix2000/postcss-to-rtl/cssom"
	"github.com/cipix2000/postcss-to-rtl/cssom/douceuradapter"
	"github.com/cipix2000/postcss-to-rtl/rtl"
)

// Transformer runs all phases of the RTL split on stylesheets.
type Transformer struct {
	filters
	mirror Mirror
}

// New creates a Transformer. If mirror is nil, an rtl.Flipper is used.
// An invalid pattern in opts results in an error wrapping ErrInvalidPattern.
func New(opts Options, mirror Mirror) (*Transformer, error) {
	f, err := opts.compile()
	if err != nil {
		return nil, err
	}
	if mirror == nil {
		mirror = rtl.NewFlipper()
	}
	return &Transformer{filters: f, mirror: mirror}, nil
}

// Splitter returns a rule splitter configured like t, applying markers to
// mirrored animation declarations. markers may be nil.
func (t *Transformer) Splitter(markers *Markers) *Splitter {
	return &Splitter{filters: t.filters, mirror: t.mirror, markers: markers}
}

// Transform rewrites sheet in place.
func (t *Transformer) Transform(sheet *cssom.Sheet) error {
	names := HarvestAnimationNames(sheet)
	if _, err := MirrorKeyframes(sheet, t.mirror); err != nil {
		return err
	}
	markers := MarkAnimations(sheet, names)
	if err := t.Splitter(markers).Split(sheet); err != nil {
		return err
	}
	markers.Cleanup(sheet)
	return nil
}

// Process parses CSS text, transforms it and returns the result as text.
func Process(text string, opts Options) (string, error) {
	t, err := New(opts, nil)
	if err != nil {
		return "", err
	}
	sheet, err := douceuradapter.Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing stylesheet: %w", err)
	}
	if err := t.Transform(sheet); err != nil {
		return "", err
	}
	return sheet.String(), nil
}
