package config

import (
	"testing"

	"github.com/audiohw/audiotree/internal/walker"
)

func TestParse_ValidPresets(t *testing.T) {
	doc := []byte(`
presets:
  io: [streams, formats]
  everything: [all, debug]
`)
	p, err := Parse(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Presets) != 2 {
		t.Errorf("expected 2 presets, got %d", len(p.Presets))
	}
}

func TestParse_UnknownToggle(t *testing.T) {
	doc := []byte(`
presets:
  broken: [streams, bogus]
`)
	if _, err := Parse(doc); err == nil {
		t.Error("expected error for unknown toggle")
	}
}

func TestOptions_TogglesApplyLeftToRight(t *testing.T) {
	p := &Presets{Presets: map[string][]string{
		"io":         {"streams", "formats"},
		"everything": {"all", "debug"},
		"quietall":   {"debug", "all"},
	}}

	io, err := p.Options("io")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !io.Has(walker.IncludeStreams) || !io.Has(walker.IncludeFormats) {
		t.Errorf("io preset missing bits: %s", io)
	}
	if io.Has(walker.IncludeBoxes) {
		t.Errorf("io preset has extra bits: %s", io)
	}

	// "all" clears debug, so order matters.
	everything, _ := p.Options("everything")
	if !everything.Has(walker.Debug) {
		t.Errorf("debug after all should stick: %s", everything)
	}
	quiet, _ := p.Options("quietall")
	if quiet.Has(walker.Debug) {
		t.Errorf("all after debug should clear it: %s", quiet)
	}
}

func TestOptions_UnknownPreset(t *testing.T) {
	p := &Presets{Presets: map[string][]string{}}
	if _, err := p.Options("nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestParseToggle(t *testing.T) {
	flag, err := ParseToggle("channels")
	if err != nil || flag != walker.IncludeChannels {
		t.Errorf("ParseToggle(channels) = %v, %v", flag, err)
	}
	if _, err := ParseToggle("verbose"); err == nil {
		t.Error("expected error for unknown toggle name")
	}
}
