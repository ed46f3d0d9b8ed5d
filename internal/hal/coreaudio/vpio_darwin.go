//go:build darwin && cgo

package coreaudio

/*
#cgo LDFLAGS: -framework AudioToolbox
#include <AudioToolbox/AudioToolbox.h>
#include <string.h>

static OSStatus vpio_silence(void *inRefCon, AudioUnitRenderActionFlags *ioActionFlags,
		const AudioTimeStamp *inTimeStamp, UInt32 inBusNumber, UInt32 inNumberFrames,
		AudioBufferList *ioData) {
	if (ioData != NULL) {
		for (UInt32 i = 0; i < ioData->mNumberBuffers; i++) {
			memset(ioData->mBuffers[i].mData, 0, ioData->mBuffers[i].mDataByteSize);
		}
	}
	return noErr;
}

static OSStatus vpio_open(AudioUnit *unit) {
	AudioComponentDescription desc;
	memset(&desc, 0, sizeof(desc));
	desc.componentType = kAudioUnitType_Output;
	desc.componentSubType = kAudioUnitSubType_VoiceProcessingIO;
	desc.componentManufacturer = kAudioUnitManufacturer_Apple;

	AudioComponent comp = AudioComponentFindNext(NULL, &desc);
	if (comp == NULL) {
		return kAudioUnitErr_NoConnection;
	}
	OSStatus status = AudioComponentInstanceNew(comp, unit);
	if (status != noErr) {
		return status;
	}
	UInt32 one = 1;
	status = AudioUnitSetProperty(*unit, kAudioOutputUnitProperty_EnableIO,
			kAudioUnitScope_Input, 1, &one, sizeof(one));
	if (status != noErr) {
		return status;
	}
	AURenderCallbackStruct cb;
	memset(&cb, 0, sizeof(cb));
	cb.inputProc = vpio_silence;
	status = AudioUnitSetProperty(*unit, kAudioUnitProperty_SetRenderCallback,
			kAudioUnitScope_Input, 0, &cb, sizeof(cb));
	if (status != noErr) {
		return status;
	}
	status = AudioUnitInitialize(*unit);
	if (status != noErr) {
		return status;
	}
	return AudioOutputUnitStart(*unit);
}

static void vpio_close(AudioUnit unit) {
	AudioOutputUnitStop(unit);
	AudioUnitUninitialize(unit);
	AudioComponentInstanceDispose(unit);
}
*/
import "C"

import (
	"fmt"
	"log/slog"
)

// Provisioner runs a voice-processing I/O unit for the duration of a
// traversal so the streams, channels, and aggregate devices the VPIO stack
// creates show up in the report. It renders silence and never reads input
// data.
type Provisioner struct {
	unit    C.AudioUnit
	started bool
}

// NewProvisioner returns an unstarted voice-processing provisioner.
func NewProvisioner() *Provisioner { return &Provisioner{} }

// Start opens, initializes, and starts the voice-processing unit. Failure
// here is a setup failure: the caller is expected to abort the run.
func (p *Provisioner) Start() error {
	if p.started {
		return nil
	}
	if status := C.vpio_open(&p.unit); status != C.noErr {
		return fmt.Errorf("start voice-processing unit: status %d", int32(status))
	}
	p.started = true
	slog.Debug("voice-processing unit started")
	return nil
}

// Stop tears the unit down. Safe to call when Start failed or never ran.
func (p *Provisioner) Stop() {
	if !p.started {
		return
	}
	C.vpio_close(p.unit)
	p.started = false
	slog.Debug("voice-processing unit stopped")
}
