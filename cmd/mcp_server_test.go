package cmd

import (
	"context"
	"strings"
	"testing"

	"github.com/audiohw/audiotree/internal/hal"
	"github.com/audiohw/audiotree/internal/hal/halmock"
	"github.com/audiohw/audiotree/internal/walker"
	"github.com/mark3labs/mcp-go/mcp"
)

// halmockSystemWithDevice scripts a minimal graph: the system object owning
// one device with one input stream.
func halmockSystemWithDevice() *halmock.Service {
	svc := halmock.New()
	svc.Object(1).
		SetClass(walker.ClassSystem, walker.ClassObject).
		SetChildren(40).
		SetValue(hal.SelHWDevices, hal.ScopeGlobal, []uint32{40}).
		SetValue(hal.SelHWDefaultInputDevice, hal.ScopeGlobal, uint32(40)).
		SetValue(hal.SelHWDefaultOutputDevice, hal.ScopeGlobal, uint32(40))
	svc.Object(40).
		SetClass(walker.ClassDevice, walker.ClassObject).
		SetChildren(50).
		SetString(hal.SelName, "Fake Device").
		SetString(hal.SelDevDeviceUID, "FakeDevice:1").
		SetValue(hal.SelDevStreams, hal.ScopeInput, []uint32{50})
	svc.Object(50).SetClass(walker.ClassStream, walker.ClassObject)
	return svc
}

func TestHandleTraverse_ScriptedGraph(t *testing.T) {
	svc := halmockSystemWithDevice()
	s := &mcpServer{svc: svc, cache: newMCPReportCache(0)}

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"streams": true}

	result, err := s.handleTraverse(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "AudioObjectID: 1") {
		t.Errorf("report missing system object:\n%s", text)
	}
	if !strings.Contains(text, `Name: "Fake Device"`) {
		t.Errorf("report missing device name:\n%s", text)
	}
}

func TestHandleDevices_ScriptedGraph(t *testing.T) {
	svc := halmockSystemWithDevice()
	s := &mcpServer{svc: svc, cache: newMCPReportCache(0)}

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{}

	result, err := s.handleDevices(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "Enumerated 1 devices:") {
		t.Errorf("unexpected device listing:\n%s", text)
	}
	if !strings.Contains(text, `"Fake Device"`) {
		t.Errorf("device name missing:\n%s", text)
	}
}

func TestBoolParam(t *testing.T) {
	params := map[string]interface{}{"on": true, "text": "x"}
	if !boolParam(params, "on", false) {
		t.Error("expected true for scripted bool")
	}
	if boolParam(params, "text", false) {
		t.Error("expected default for non-bool value")
	}
	if !boolParam(params, "missing", true) {
		t.Error("expected default for missing key")
	}
}

func TestIntParam(t *testing.T) {
	// JSON numbers arrive as float64.
	params := map[string]interface{}{"n": float64(7)}
	if got := intParam(params, "n", 0); got != 7 {
		t.Errorf("intParam = %d", got)
	}
	if got := intParam(params, "missing", 3); got != 3 {
		t.Errorf("intParam default = %d", got)
	}
}

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{"s": "hello"}
	if got := stringParam(params, "s", ""); got != "hello" {
		t.Errorf("stringParam = %q", got)
	}
	if got := stringParam(params, "missing", "d"); got != "d" {
		t.Errorf("stringParam default = %q", got)
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result.IsError {
		t.Fatalf("tool returned error result: %+v", result.Content)
	}
	if len(result.Content) == 0 {
		t.Fatal("tool returned no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}
