package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cipix2000/postcss-to-rtl/cssom/douceuradapter"
	"github.com/cipix2000/postcss-to-rtl/rtlsplit"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

type rootFlags struct {
	config  string
	ignore  string
	output  string
	html    bool
	tree    bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:   "cssrtl [file]",
		Short: "Split direction-sensitive CSS into LTR and RTL rules",
		Long: `cssrtl reads an LTR stylesheet and writes a stylesheet serving both
text directions.

Declarations which change when mirrored (margin-left, float: left, ...) are
moved into rules scoped by html[dir='ltr'] and html[dir='rtl']. Keyframes
get a mirrored "-rtl" twin which is referenced from the RTL rules.

If no file is given, input is read from stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &flags)
		},
	}
	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "YAML file with ignore, convert and alwaysConvert patterns")
	cmd.Flags().StringVar(&flags.ignore, "ignore", "", "pattern for selectors to leave alone (overrides config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&flags.html, "html", false, "input is an HTML document; transform its <style> elements")
	cmd.Flags().BoolVar(&flags.tree, "tree", false, "print the structure of the result instead of CSS")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "trace transformation steps to stderr")
	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string, flags *rootFlags) error {
	setupTracing(cmd.ErrOrStderr(), flags.verbose)
	opts := rtlsplit.DefaultOptions()
	if flags.config != "" {
		f, err := os.Open(flags.config)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		opts, err = rtlsplit.LoadOptions(f)
		f.Close()
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("ignore") {
		opts.Ignore = flags.ignore
	}
	t, err := rtlsplit.New(opts, nil)
	if err != nil {
		return err
	}
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	var out string
	if flags.html {
		out, err = transformHTML(t, input, flags.tree)
	} else {
		out, err = transformCSS(t, input, flags.tree)
	}
	if err != nil {
		return err
	}
	if flags.output != "" {
		return os.WriteFile(flags.output, []byte(out), 0o644)
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

func setupTracing(w io.Writer, verbose bool) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tr := tracing.Select("rtl.split") // all keys share one tracer
	tr.SetOutput(w)
	if verbose {
		tr.SetTraceLevel(tracing.LevelDebug)
	} else {
		tr.SetTraceLevel(tracing.LevelError)
	}
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(b), nil
}

func transformCSS(t *rtlsplit.Transformer, text string, tree bool) (string, error) {
	sheet, err := douceuradapter.Parse(text)
	if err != nil {
		return "", err
	}
	if err := t.Transform(sheet); err != nil {
		return "", err
	}
	if tree {
		return sheet.Dump(), nil
	}
	return sheet.String(), nil
}

func transformHTML(t *rtlsplit.Transformer, text string, tree bool) (string, error) {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	if tree {
		return dumpStyleElements(t, doc)
	}
	for i, st := range douceuradapter.StyleElements(doc) {
		css, err := transformCSS(t, st.FirstChild.Data, false)
		if err != nil {
			return "", fmt.Errorf("style element #%d: %w", i+1, err)
		}
		st.FirstChild.Data = "\n" + css
	}
	var sb strings.Builder
	if err := html.Render(&sb, doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// dumpStyleElements transforms the style sheets of doc and returns their
// structure, one dump per <style> element.
func dumpStyleElements(t *rtlsplit.Transformer, doc *html.Node) (string, error) {
	sheets, err := douceuradapter.ExtractStyleElements(doc)
	if err != nil {
		return "", err
	}
	var dumps strings.Builder
	for i, sheet := range sheets {
		if err := t.Transform(sheet); err != nil {
			return "", fmt.Errorf("style element #%d: %w", i+1, err)
		}
		dumps.WriteString(sheet.Dump())
	}
	return dumps.String(), nil
}
