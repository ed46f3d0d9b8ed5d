package cmd

import (
	"strings"
	"testing"

	"github.com/audiohw/audiotree/internal/hal"
	"github.com/audiohw/audiotree/internal/hal/halmock"
)

func TestDescribeDevice(t *testing.T) {
	svc := halmock.New()
	svc.Object(40).
		SetString(hal.SelName, "Fake Microphone").
		SetString(hal.SelDevDeviceUID, "FakeMic:1").
		SetValue(hal.SelDevTransportType, hal.ScopeGlobal, uint32(0x75736220)). // 'usb '
		SetValue(hal.SelDevStreams, hal.ScopeInput, []uint32{50, 51}).
		SetRaw(hal.SelDevStreams, hal.ScopeOutput, nil)

	row := describeDevice(svc, 40, 40, 41)
	if row.name != "Fake Microphone" || row.uid != "FakeMic:1" {
		t.Errorf("unexpected identity: %+v", row)
	}
	if row.transport != "USB" {
		t.Errorf("unexpected transport %q", row.transport)
	}
	if row.inStreams != 2 || row.outStreams != 0 {
		t.Errorf("unexpected stream counts: %+v", row)
	}
	if !row.defaultIn || row.defaultOut {
		t.Errorf("unexpected default markers: %+v", row)
	}
}

func TestDeviceRow_String(t *testing.T) {
	row := deviceRow{
		id:         40,
		name:       "Fake Microphone",
		uid:        "FakeMic:1",
		transport:  "USB",
		inStreams:  2,
		defaultIn:  true,
	}
	line := row.String()
	for _, want := range []string{`"Fake Microphone"`, "in: 2", "out: 0", "USB", `"FakeMic:1"`, "default input"} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}
	if strings.Contains(line, "default output") {
		t.Errorf("line %q has unexpected default output marker", line)
	}
}

func TestDeviceRow_UnknownTransport(t *testing.T) {
	svc := halmock.New()
	svc.Object(40).SetString(hal.SelName, "Bare Device")

	row := describeDevice(svc, 40, 0, 0)
	if row.transport != "" {
		t.Errorf("expected empty transport on failed read, got %q", row.transport)
	}
	if !strings.Contains(row.String(), "transport: ?") {
		t.Errorf("unreadable transport should render as ?: %q", row.String())
	}
}
