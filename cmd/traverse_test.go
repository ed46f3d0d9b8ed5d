package cmd

import (
	"testing"

	"github.com/audiohw/audiotree/internal/walker"
	"github.com/spf13/pflag"
)

func parseTraverse(t *testing.T, args ...string) walker.Options {
	t.Helper()
	if err := traverseCmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	defer resetTraverseFlags()
	opts, err := optionsFromFlags(traverseCmd)
	if err != nil {
		t.Fatalf("options from flags: %v", err)
	}
	return opts
}

// resetTraverseFlags restores defaults on the shared command between tests.
func resetTraverseFlags() {
	traverseCmd.Flags().Visit(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestOptionsFromFlags_Defaults(t *testing.T) {
	opts := parseTraverse(t)
	if opts != 0 {
		t.Errorf("expected no options by default, got %s", opts)
	}
}

func TestOptionsFromFlags_IndividualIncludes(t *testing.T) {
	opts := parseTraverse(t, "--include-streams", "--include-formats")
	if !opts.Has(walker.IncludeStreams) || !opts.Has(walker.IncludeFormats) {
		t.Errorf("missing bits: %s", opts)
	}
	if opts.Has(walker.IncludeBoxes) || opts.Has(walker.Debug) {
		t.Errorf("extra bits: %s", opts)
	}
}

func TestOptionsFromFlags_IncludeAll(t *testing.T) {
	opts := parseTraverse(t, "--include-all")
	if opts != walker.All() {
		t.Errorf("expected All(), got %s", opts)
	}
}

func TestOptionsFromFlags_IncludeAllWithDebug(t *testing.T) {
	opts := parseTraverse(t, "--include-all", "--debug")
	if !opts.Has(walker.Debug) {
		t.Errorf("debug flag should survive include-all: %s", opts)
	}
	if !opts.Has(walker.IncludeStreams) {
		t.Errorf("include-all bits missing: %s", opts)
	}
}

func TestOptionsFromFlags_ShortFlags(t *testing.T) {
	opts := parseTraverse(t, "-s", "-c", "-d")
	want := walker.IncludeStreams | walker.IncludeControls | walker.Debug
	if opts != want {
		t.Errorf("expected %s, got %s", want, opts)
	}
}
