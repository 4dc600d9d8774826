package rtlsplit

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPattern is returned if a configured pattern does not compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// Options configures a Transformer.
//
// Convert and AlwaysConvert are regular expressions matched
// case-insensitively against the complete property name. Ignore is a regular
// expression searched in the full selector text of a rule; matching rules
// are not split. Empty Convert or AlwaysConvert select the defaults, an
// empty Ignore disables ignoring.
//
// A pattern which does not compile is an error (ErrInvalidPattern) for all
// three options. For Ignore this differs from silently treating an invalid
// pattern as "ignore nothing": a typo in a configuration fails early instead
// of splitting rules the user meant to keep.
type Options struct {
	Ignore        string `yaml:"ignore"`
	Convert       string `yaml:"convert"`
	AlwaysConvert string `yaml:"alwaysConvert"`
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Convert:       DefaultConvert,
		AlwaysConvert: DefaultAlwaysConvert,
	}
}

// LoadOptions reads options from a YAML document, e.g.
//
//     ignore: "^\\.no-rtl"
//     alwaysConvert: "float|clear"
//
// Keys not present keep their default values.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.NewDecoder(r).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return opts, fmt.Errorf("reading options: %w", err)
	}
	return opts, nil
}

// filters are the compiled patterns of Options.
type filters struct {
	ignore  *regexp.Regexp // nil if not configured
	convert *regexp.Regexp
	always  *regexp.Regexp
}

func (opts Options) compile() (filters, error) {
	var f filters
	var err error
	if opts.Ignore != "" {
		if f.ignore, err = regexp.Compile(opts.Ignore); err != nil {
			return f, fmt.Errorf("ignore %q: %w: %v", opts.Ignore, ErrInvalidPattern, err)
		}
	}
	if f.convert, err = propertyPattern(opts.Convert, DefaultConvert); err != nil {
		return f, fmt.Errorf("convert: %w", err)
	}
	if f.always, err = propertyPattern(opts.AlwaysConvert, DefaultAlwaysConvert); err != nil {
		return f, fmt.Errorf("alwaysConvert: %w", err)
	}
	return f, nil
}

func propertyPattern(pattern, fallback string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = fallback
	}
	re, err := regexp.Compile(`(?i)^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%q: %w: %v", pattern, ErrInvalidPattern, err)
	}
	return re, nil
}
