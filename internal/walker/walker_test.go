package walker_test

import (
	"strings"
	"testing"

	"github.com/audiohw/audiotree/internal/hal"
	"github.com/audiohw/audiotree/internal/hal/halmock"
	"github.com/audiohw/audiotree/internal/report"
	"github.com/audiohw/audiotree/internal/walker"
)

// fullGraph scripts a system object owning one of each filterable kind:
// a device (with a stream and a volume control), a box, a clock, a plugin
// and a process.
func fullGraph() *halmock.Service {
	svc := halmock.New()
	svc.Object(1).
		SetClass(walker.ClassSystem, walker.ClassObject).
		SetChildren(2, 3, 4, 7, 8)
	svc.Object(2).
		SetClass(walker.ClassDevice, walker.ClassObject).
		SetChildren(5, 6).
		SetString(hal.SelName, "Fake Device")
	svc.Object(3).SetClass(walker.ClassBox, walker.ClassObject)
	svc.Object(4).SetClass(walker.ClassClockDevice, walker.ClassObject)
	svc.Object(5).SetClass(walker.ClassStream, walker.ClassObject)
	svc.Object(6).SetClass(walker.ClassVolumeControl, walker.ClassLevelControl)
	svc.Object(7).SetClass(walker.ClassPlugIn, walker.ClassObject)
	svc.Object(8).SetClass(walker.ClassProcess, walker.ClassObject)
	return svc
}

func render(t *testing.T, svc hal.Service, opts walker.Options) string {
	t.Helper()
	tree := report.New()
	walker.New(svc).Walk(hal.SystemObject, opts, tree)
	var b strings.Builder
	if err := tree.Flush(&b); err != nil {
		t.Fatalf("flush: %v", err)
	}
	return b.String()
}

func TestWalk_DefaultFiltersVerboseKinds(t *testing.T) {
	out := render(t, fullGraph(), 0)

	if !strings.Contains(out, "AudioObjectID: 1") {
		t.Error("system object missing from report")
	}
	if !strings.Contains(out, "AudioObjectID: 2") {
		t.Error("device missing from report")
	}
	for _, id := range []string{"AudioObjectID: 3", "AudioObjectID: 4", "AudioObjectID: 5", "AudioObjectID: 6", "AudioObjectID: 7", "AudioObjectID: 8"} {
		if strings.Contains(out, id) {
			t.Errorf("filtered object present in default report: %s", id)
		}
	}
}

func TestWalk_IncludeTogglesAdmitOneKind(t *testing.T) {
	tests := []struct {
		opt  walker.Options
		id   string
	}{
		{walker.IncludeBoxes, "AudioObjectID: 3"},
		{walker.IncludeClocks, "AudioObjectID: 4"},
		{walker.IncludeStreams, "AudioObjectID: 5"},
		{walker.IncludeControls, "AudioObjectID: 6"},
		{walker.IncludePlugins, "AudioObjectID: 7"},
		{walker.IncludeProcesses, "AudioObjectID: 8"},
	}
	for _, tt := range tests {
		out := render(t, fullGraph(), tt.opt)
		if !strings.Contains(out, tt.id) {
			t.Errorf("option %s: expected %s in report", tt.opt, tt.id)
		}
		// Everything else stays filtered.
		for _, other := range tests {
			if other.id != tt.id && strings.Contains(out, other.id) {
				t.Errorf("option %s: unexpected %s in report", tt.opt, other.id)
			}
		}
	}
}

func TestWalk_ControlFilterUsesBaseClass(t *testing.T) {
	// A control's own class is specific (volume); the filter must key on
	// its base class.
	out := render(t, fullGraph(), walker.IncludeControls)
	if !strings.Contains(out, `"AudioVolumeControl"`) {
		t.Errorf("control class name missing:\n%s", out)
	}
}

func TestWalk_AllIncludesEverything(t *testing.T) {
	out := render(t, fullGraph(), walker.All())
	for _, id := range []string{"AudioObjectID: 1", "AudioObjectID: 2", "AudioObjectID: 3", "AudioObjectID: 4", "AudioObjectID: 5", "AudioObjectID: 6", "AudioObjectID: 7", "AudioObjectID: 8"} {
		if !strings.Contains(out, id) {
			t.Errorf("object missing with all options: %s", id)
		}
	}
	if strings.Contains(out, "error") {
		t.Error("All() must not enable debug annotations")
	}
}

func TestWalk_DebugAnnotatesFailures(t *testing.T) {
	svc := fullGraph()

	quiet := render(t, svc, 0)
	if strings.Contains(quiet, "error") {
		t.Errorf("failed reads reported without debug:\n%s", quiet)
	}

	loud := render(t, svc, walker.Debug)
	if !strings.Contains(loud, `Manufacturer: error "who?" (2003332927)`) {
		t.Errorf("debug report missing failure annotation:\n%s", loud)
	}
}

func TestWalk_DebugReportsScriptedStatus(t *testing.T) {
	svc := fullGraph()
	svc.Object(2).Fail(hal.SelDevTransportType, hal.ScopeGlobal, hal.StatusBadDevice)

	out := render(t, svc, walker.Debug)
	if !strings.Contains(out, `TransportType: error "!dev"`) {
		t.Errorf("expected scripted failure status in debug report:\n%s", out)
	}
}

func TestWalk_KnownAndUnknownClassRendering(t *testing.T) {
	svc := halmock.New()
	svc.Object(1).
		SetClass(walker.ClassSystem, walker.ClassObject).
		SetChildren(2)
	svc.Object(2).SetValue(hal.SelClass, hal.ScopeGlobal, uint32(0x7A7A7A7A)) // 'zzzz'

	out := render(t, svc, 0)
	if !strings.Contains(out, `Class (Known): "AudioSystemObject"`) {
		t.Errorf("known class not rendered by name:\n%s", out)
	}
	if !strings.Contains(out, `Class (FourCC): "zzzz"`) {
		t.Errorf("unknown class not rendered as tag:\n%s", out)
	}
}

func TestWalk_ChildrenNestedUnderParent(t *testing.T) {
	out := render(t, fullGraph(), walker.IncludeStreams)

	lines := strings.Split(out, "\n")
	var deviceIndent, streamIndent = -1, -1
	for _, line := range lines {
		if strings.Contains(line, "AudioObjectID: 2") {
			deviceIndent = strings.Index(line, "AudioObjectID")
		}
		if strings.Contains(line, "AudioObjectID: 5") {
			streamIndent = strings.Index(line, "AudioObjectID")
		}
	}
	if deviceIndent < 0 || streamIndent < 0 {
		t.Fatalf("device or stream missing:\n%s", out)
	}
	if streamIndent <= deviceIndent {
		t.Errorf("stream not nested under device (indent %d vs %d)", streamIndent, deviceIndent)
	}
}

func TestWalk_RepeatedPassesIdentical(t *testing.T) {
	svc := fullGraph()
	w := walker.New(svc)

	pass := func() string {
		tree := report.New()
		w.Walk(hal.SystemObject, walker.All(), tree)
		var b strings.Builder
		tree.Flush(&b)
		return b.String()
	}

	first, second := pass(), pass()
	if first != second {
		t.Errorf("passes over unchanged graph differ:\n%s\n---\n%s", first, second)
	}
}

func TestWalk_CyclicGraphTerminates(t *testing.T) {
	svc := halmock.New()
	svc.Object(1).
		SetClass(walker.ClassSystem, walker.ClassObject).
		SetChildren(2)
	svc.Object(2).
		SetClass(walker.ClassDevice, walker.ClassObject).
		SetChildren(1) // malformed: child points back at the root

	out := render(t, svc, 0)
	if strings.Count(out, "AudioObjectID: 1") != 1 {
		t.Errorf("root visited more than once:\n%s", out)
	}
	if strings.Count(out, "AudioObjectID: 2") != 1 {
		t.Errorf("device visited more than once:\n%s", out)
	}
}

func TestWalk_GatedRowsNotFetched(t *testing.T) {
	svc := fullGraph()
	svc.Object(2).SetValue(hal.SelDevAvailableNominalRates, hal.ScopeGlobal,
		[]hal.ValueRange{{Minimum: 44100, Maximum: 48000}})

	without := render(t, svc, 0)
	if strings.Contains(without, "AvailableNominalSampleRates") {
		t.Error("format row reported without its option")
	}

	with := render(t, svc, walker.IncludeFormats)
	if !strings.Contains(with, "AvailableNominalSampleRates: [[44100, 48000]]") {
		t.Errorf("format row missing with its option:\n%s", with)
	}
}

func TestWalk_DevicePropertiesReported(t *testing.T) {
	svc := fullGraph()
	svc.Object(2).
		SetValue(hal.SelDevLatency, hal.ScopeInput, uint32(128)).
		SetValue(hal.SelDevLatency, hal.ScopeOutput, uint32(512)).
		SetValue(hal.SelDevTransportType, hal.ScopeGlobal, uint32(0x626C746E)). // 'bltn'
		SetValue(hal.SelDevNominalSampleRate, hal.ScopeGlobal, float64(48000))

	out := render(t, svc, 0)
	for _, want := range []string{
		`Name: "Fake Device"`,
		"Input Latency: 128",
		"Output Latency: 512",
		"TransportType: BuiltIn",
		"NominalSampleRate: 48000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWalk_StreamPropertiesReported(t *testing.T) {
	svc := fullGraph()
	svc.Object(5).
		SetValue(hal.SelStrIsActive, hal.ScopeGlobal, uint32(1)).
		SetValue(hal.SelStrDirection, hal.ScopeGlobal, uint32(1)).
		SetValue(hal.SelStrTerminalType, hal.ScopeGlobal, uint32(0x6D696372)) // 'micr'

	out := render(t, svc, walker.IncludeStreams)
	for _, want := range []string{
		"IsActive: true",
		"Direction: Input",
		"TerminalType: Microphone",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
