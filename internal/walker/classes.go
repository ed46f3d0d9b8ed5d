package walker

import (
	"fmt"

	"github.com/audiohw/audiotree/internal/hal"
)

// Object classes known to this tool. Codes not in this table are surfaced as
// raw four-character tags.
const (
	ClassWildcard hal.ClassID = 0x2A2A2A2A // '****'
	ClassObject   hal.ClassID = 0x616F626A // 'aobj'
	ClassSystem   hal.ClassID = 0x61737973 // 'asys'

	ClassPlugIn           hal.ClassID = 0x61706C67 // 'aplg'
	ClassTransportManager hal.ClassID = 0x7472706D // 'trpm'
	ClassBox              hal.ClassID = 0x61626F78 // 'abox'
	ClassDevice           hal.ClassID = 0x61646576 // 'adev'
	ClassClockDevice      hal.ClassID = 0x61636C6B // 'aclk'
	ClassEndPointDevice   hal.ClassID = 0x65646576 // 'edev'
	ClassEndPoint         hal.ClassID = 0x656E6470 // 'endp'
	ClassStream           hal.ClassID = 0x61737472 // 'astr'

	ClassAggregateDevice hal.ClassID = 0x61616767 // 'aagg'
	ClassSubDevice       hal.ClassID = 0x61737562 // 'asub'
	ClassSubTap          hal.ClassID = 0x73746170 // 'stap'
	ClassProcess         hal.ClassID = 0x636C6E74 // 'clnt'
	ClassTap             hal.ClassID = 0x74636C73 // 'tcls'

	ClassControl                hal.ClassID = 0x6163746C // 'actl'
	ClassSliderControl          hal.ClassID = 0x736C6472 // 'sldr'
	ClassLevelControl           hal.ClassID = 0x6C657663 // 'levc'
	ClassVolumeControl          hal.ClassID = 0x766C6D65 // 'vlme'
	ClassLFEVolumeControl       hal.ClassID = 0x73756276 // 'subv'
	ClassBooleanControl         hal.ClassID = 0x746F676C // 'togl'
	ClassMuteControl            hal.ClassID = 0x6D757465 // 'mute'
	ClassSoloControl            hal.ClassID = 0x736F6C6F // 'solo'
	ClassJackControl            hal.ClassID = 0x6A61636B // 'jack'
	ClassLFEMuteControl         hal.ClassID = 0x7375626D // 'subm'
	ClassPhantomPowerControl    hal.ClassID = 0x7068616E // 'phan'
	ClassPhaseInvertControl     hal.ClassID = 0x70687369 // 'phsi'
	ClassClipLightControl       hal.ClassID = 0x636C6970 // 'clip'
	ClassTalkbackControl        hal.ClassID = 0x74616C62 // 'talb'
	ClassListenbackControl      hal.ClassID = 0x6C736E62 // 'lsnb'
	ClassSelectorControl        hal.ClassID = 0x736C6374 // 'slct'
	ClassDataSourceControl      hal.ClassID = 0x64737263 // 'dsrc'
	ClassDataDestinationControl hal.ClassID = 0x64657374 // 'dest'
	ClassClockSourceControl     hal.ClassID = 0x636C636B // 'clck'
	ClassLineLevelControl       hal.ClassID = 0x6E6C766C // 'nlvl'
	ClassHighPassFilterControl  hal.ClassID = 0x68697066 // 'hipf'
	ClassStereoPanControl       hal.ClassID = 0x7370616E // 'span'

	// Deprecated control classes that older devices still report.
	ClassISubOwnerControl       hal.ClassID = 0x61746368 // 'atch'
	ClassBootChimeVolumeControl hal.ClassID = 0x7072616D // 'pram'
)

var classNames = map[hal.ClassID]string{
	ClassWildcard:               "AudioObjectClassIDWildcard",
	ClassObject:                 "AudioObject",
	ClassSystem:                 "AudioSystemObject",
	ClassPlugIn:                 "AudioPlugIn",
	ClassTransportManager:       "AudioTransportManager",
	ClassBox:                    "AudioBox",
	ClassDevice:                 "AudioDevice",
	ClassClockDevice:            "AudioClockDevice",
	ClassEndPointDevice:         "AudioEndPointDevice",
	ClassEndPoint:               "AudioEndPoint",
	ClassStream:                 "AudioStream",
	ClassAggregateDevice:        "AudioAggregateDevice",
	ClassSubDevice:              "AudioSubDevice",
	ClassSubTap:                 "AudioSubTap",
	ClassProcess:                "AudioProcess",
	ClassTap:                    "AudioTap",
	ClassControl:                "AudioControl",
	ClassSliderControl:          "AudioSliderControl",
	ClassLevelControl:           "AudioLevelControl",
	ClassVolumeControl:          "AudioVolumeControl",
	ClassLFEVolumeControl:       "AudioLFEVolumeControl",
	ClassBooleanControl:         "AudioBooleanControl",
	ClassMuteControl:            "AudioMuteControl",
	ClassSoloControl:            "AudioSoloControl",
	ClassJackControl:            "AudioJackControl",
	ClassLFEMuteControl:         "AudioLFEMuteControl",
	ClassPhantomPowerControl:    "AudioPhantomPowerControl",
	ClassPhaseInvertControl:     "AudioPhaseInvertControl",
	ClassClipLightControl:       "AudioClipLightControl",
	ClassTalkbackControl:        "AudioTalkbackControl",
	ClassListenbackControl:      "AudioListenbackControl",
	ClassSelectorControl:        "AudioSelectorControl",
	ClassDataSourceControl:      "AudioDataSourceControl",
	ClassDataDestinationControl: "AudioDataDestinationControl",
	ClassClockSourceControl:     "AudioClockSourceControl",
	ClassLineLevelControl:       "AudioLineLevelControl",
	ClassHighPassFilterControl:  "AudioHighPassFilterControl",
	ClassStereoPanControl:       "AudioStereoPanControl",
	ClassISubOwnerControl:       "AudioISubOwnerControl",
	ClassBootChimeVolumeControl: "AudioBootChimeVolumeControl",
}

// ClassName returns the known name for a class code.
func ClassName(id hal.ClassID) (string, bool) {
	name, ok := classNames[id]
	return name, ok
}

// controlBaseClasses are the base classes that mark an object as a control.
var controlBaseClasses = map[hal.ClassID]bool{
	ClassControl:          true,
	ClassSliderControl:    true,
	ClassLevelControl:     true,
	ClassBooleanControl:   true,
	ClassSelectorControl:  true,
	ClassStereoPanControl: true,
}

func isControlBase(id hal.ClassID) bool { return controlBaseClasses[id] }

var transportNames = map[uint32]string{
	0:          "Unknown",
	0x626C746E: "BuiltIn",                   // 'bltn'
	0x67727570: "Aggregate",                 // 'grup'
	0x76697274: "Virtual",                   // 'virt'
	0x70636920: "PCI",                       // 'pci '
	0x75736220: "USB",                       // 'usb '
	0x31333934: "FireWire",                  // '1394'
	0x626C7565: "Bluetooth",                 // 'blue'
	0x626C6561: "BluetoothLE",               // 'blea'
	0x68646D69: "HDMI",                      // 'hdmi'
	0x64707274: "DisplayPort",               // 'dprt'
	0x61697270: "AirPlay",                   // 'airp'
	0x65617662: "AVB",                       // 'eavb'
	0x7468756E: "Thunderbolt",               // 'thun'
	0x63647764: "ContinuityCaptureWired",    // 'cdwd'
	0x6364776C: "ContinuityCaptureWireless", // 'cdwl'
	0x636F6E74: "ContinuityCapture",         // 'cont'
}

// TransportTypeName decodes a device transport type. Unexpected values are
// called out rather than rendered raw.
func TransportTypeName(t uint32) string {
	if name, ok := transportNames[t]; ok {
		return name
	}
	return "Unexpected TransportType"
}

var terminalNames = map[uint32]string{
	0:          "Unknown",
	0x6C696E65: "Line",                  // 'line'
	0x73706466: "DigitalAudioInterface", // 'spdf'
	0x73706B72: "Speaker",               // 'spkr'
	0x68647068: "Headphones",            // 'hdph'
	0x6C666573: "LFESpeaker",            // 'lfes'
	0x7273706B: "ReceiverSpeaker",       // 'rspk'
	0x6D696372: "Microphone",            // 'micr'
	0x686D6963: "HeadsetMicrophone",     // 'hmic'
	0x726D6963: "ReceiverMicrophone",    // 'rmic'
	0x7474795F: "TTY",                   // 'tty_'
	0x68646D69: "HDMI",                  // 'hdmi'
	0x64707274: "DisplayPort",           // 'dprt'
}

// terminalTypeName decodes a stream terminal type; unknown codes render as
// hex so USB audio terminal types stay recognizable.
func terminalTypeName(t uint32) string {
	if name, ok := terminalNames[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", t)
}

// streamDirectionName decodes a stream's direction flag.
func streamDirectionName(d uint32) string {
	if d == 1 {
		return "Input"
	}
	return "Output"
}
