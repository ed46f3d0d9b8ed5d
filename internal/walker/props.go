package walker

import (
	"github.com/audiohw/audiotree/internal/hal"
)

// propKind selects the accessor call and rendering for one table row.
type propKind int

const (
	kindBool propKind = iota
	kindUint32
	kindPID
	kindFloat32
	kindFloat64
	kindObjectIDList
	kindUint32List
	kindString
	kindValueRange
	kindValueRangeList
	kindStreamFormat
	kindStreamFormatList
	kindChannelLayout
	kindArrayCount
)

// propSpec is one row of a per-class property table: what to fetch, where,
// and how to render it. Tables replace per-property call sites; the walker
// iterates them generically.
type propSpec struct {
	label  string
	sel    hal.Selector
	scope  hal.Scope
	kind   propKind
	decode func(uint32) string // optional pretty-printer for kindUint32
	need   Options             // option bit required to fetch at all
}

// when gates the row behind an option bit.
func (p propSpec) when(need Options) propSpec {
	p.need = need
	return p
}

func row(label string, sel hal.Selector, scope hal.Scope, kind propKind) propSpec {
	return propSpec{label: label, sel: sel, scope: scope, kind: kind}
}

func boolean(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeGlobal, kindBool)
}
func booleanIn(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeInput, kindBool)
}
func booleanOut(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeOutput, kindBool)
}
func u32(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeGlobal, kindUint32)
}
func u32In(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeInput, kindUint32)
}
func u32Out(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeOutput, kindUint32)
}
func u32Mapped(label string, sel hal.Selector, decode func(uint32) string) propSpec {
	p := row(label, sel, hal.ScopeGlobal, kindUint32)
	p.decode = decode
	return p
}
func pid(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeGlobal, kindPID)
}
func f32(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeGlobal, kindFloat32)
}
func f64(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeGlobal, kindFloat64)
}
func objList(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeGlobal, kindObjectIDList)
}
func objListIn(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeInput, kindObjectIDList)
}
func objListOut(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeOutput, kindObjectIDList)
}
func u32ListIn(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeInput, kindUint32List)
}
func u32ListOut(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeOutput, kindUint32List)
}
func str(label string, sel hal.Selector) propSpec {
	return row(label, sel, hal.ScopeGlobal, kindString)
}

// commonProps are reported for every visited object.
var commonProps = []propSpec{
	u32("Owner", hal.SelOwner),
	str("Name", hal.SelName),
	str("ModelName", hal.SelModelName),
	str("Manufacturer", hal.SelManufacturer),
	str("ElementName", hal.SelElementName),
	str("ElementNumberName", hal.SelElementNumberName),
	str("DeviceUID", hal.SelDevDeviceUID),
}

// hardwareProps are the system object's hardware-wide properties.
var hardwareProps = []propSpec{
	objList("Devices", hal.SelHWDevices),
	u32("DefaultInputDevice", hal.SelHWDefaultInputDevice),
	u32("DefaultOutputDevice", hal.SelHWDefaultOutputDevice),
	u32("DefaultSystemOutputDevice", hal.SelHWDefaultSystemOutputDevice),
	boolean("MixStereoToMono", hal.SelHWMixStereoToMono),
	objList("PlugInList", hal.SelHWPlugInList),
	objList("TransportManagerList", hal.SelHWTransportManagerList),
	objList("BoxList", hal.SelHWBoxList),
	objList("ClockDeviceList", hal.SelHWClockDeviceList),
	boolean("ProcessIsMain", hal.SelHWProcessIsMain),
	boolean("IsInitingOrExiting", hal.SelHWIsInitingOrExiting),
	boolean("ProcessInputMute", hal.SelHWProcessInputMute),
	boolean("ProcessIsAudible", hal.SelHWProcessIsAudible),
	boolean("SleepingIsAllowed", hal.SelHWSleepingIsAllowed),
	boolean("UnloadingIsAllowed", hal.SelHWUnloadingIsAllowed),
	boolean("HogModeIsAllowed", hal.SelHWHogModeIsAllowed),
	boolean("UserSessionIsActiveOrHeadless", hal.SelHWUserSessionIsActive),
	u32("PowerHint", hal.SelHWPowerHint),
	objList("ProcessObjectList", hal.SelHWProcessObjectList),
	objList("TapList", hal.SelHWTapList),
}

// deviceProps are reported for devices, sub-devices, and (after
// aggregateProps) aggregate devices.
var deviceProps = []propSpec{
	str("ConfigurationApplication", hal.SelDevConfigurationApplication),
	str("DeviceUID", hal.SelDevDeviceUID),
	str("ModelUID", hal.SelDevModelUID),
	u32Mapped("TransportType", hal.SelDevTransportType, TransportTypeName),
	pid("HogMode", hal.SelDevHogMode),
	objList("RelatedDevices", hal.SelDevRelatedDevices),
	objList("ActiveSubDeviceList", hal.SelAggActiveSubDeviceList),
	u32("ClockDomain", hal.SelDevClockDomain),
	str("ClockDevice", hal.SelDevClockDevice),
	boolean("DeviceIsAlive", hal.SelDevDeviceIsAlive),
	boolean("DeviceIsRunningSomewhere", hal.SelDevDeviceIsRunningSomewhere),
	boolean("DeviceIsRunning", hal.SelDevDeviceIsRunning),
	booleanIn("Input DeviceCanBeDefaultDevice", hal.SelDevCanBeDefaultDevice),
	booleanOut("Output DeviceCanBeDefaultDevice", hal.SelDevCanBeDefaultDevice),
	booleanOut("Output DeviceCanBeDefaultSystemDevice", hal.SelDevCanBeDefaultSystemDevice),
	u32In("Input Latency", hal.SelDevLatency),
	u32Out("Output Latency", hal.SelDevLatency),
	objListIn("Input Streams", hal.SelDevStreams),
	objListOut("Output Streams", hal.SelDevStreams),
	objList("ControlList", hal.SelControlList),
	u32In("Input SafetyOffset", hal.SelDevSafetyOffset),
	u32Out("Output SafetyOffset", hal.SelDevSafetyOffset),
	f64("ActualSampleRate", hal.SelDevActualSampleRate),
	f64("NominalSampleRate", hal.SelDevNominalSampleRate),
	row("AvailableNominalSampleRates", hal.SelDevAvailableNominalRates, hal.ScopeGlobal, kindValueRangeList).when(IncludeFormats),
	u32("BufferFrameSize", hal.SelDevBufferFrameSize),
	row("BufferFrameSizeRange", hal.SelDevBufferFrameSizeRange, hal.ScopeGlobal, kindValueRange),
	u32("UsesVariableBufferFrameSizes", hal.SelDevUsesVariableBufferSizes),
	u32ListIn("Input PreferredChannelsForStereo", hal.SelDevPreferredChannelsStereo),
	u32ListOut("Output PreferredChannelsForStereo", hal.SelDevPreferredChannelsStereo),
	row("Output PreferredChannelLayout", hal.SelDevPreferredChannelLayout, hal.ScopeOutput, kindChannelLayout).when(IncludeChannels),
	f32("IOCycleUsage", hal.SelDevIOCycleUsage),
	booleanIn("Input ProcessMute", hal.SelDevProcessMute),
}

// aggregateProps are reported for aggregate devices in addition to
// deviceProps. The tap lists are opaque array references; only their counts
// are reported.
var aggregateProps = []propSpec{
	row("TapList", hal.SelAggTapList, hal.ScopeGlobal, kindArrayCount),
	row("SubTapList", hal.SelAggSubTapList, hal.ScopeGlobal, kindArrayCount),
}

// streamProps are reported for streams.
var streamProps = []propSpec{
	boolean("IsActive", hal.SelStrIsActive),
	u32Mapped("Direction", hal.SelStrDirection, streamDirectionName),
	u32Mapped("TerminalType", hal.SelStrTerminalType, terminalTypeName),
	u32("StartingChannel", hal.SelStrStartingChannel),
	u32In("Input Latency", hal.SelStrLatency),
	u32Out("Output Latency", hal.SelStrLatency),
	row("VirtualFormat", hal.SelStrVirtualFormat, hal.ScopeGlobal, kindStreamFormat),
	row("AvailableVirtualFormats", hal.SelStrAvailableVirtualFormats, hal.ScopeGlobal, kindStreamFormatList).when(IncludeFormats),
	row("PhysicalFormat", hal.SelStrPhysicalFormat, hal.ScopeGlobal, kindStreamFormat),
	row("AvailablePhysicalFormats", hal.SelStrAvailablePhysicalFormats, hal.ScopeGlobal, kindStreamFormatList).when(IncludeFormats),
}

// processProps are reported for process objects.
var processProps = []propSpec{
	pid("PID", hal.SelProcPID),
	str("BundleID", hal.SelProcBundleID),
	objListIn("Input Devices", hal.SelProcDevices),
	objListOut("Output Devices", hal.SelProcDevices),
	boolean("IsRunning", hal.SelProcIsRunning),
	boolean("IsRunningInput", hal.SelProcIsRunningInput),
	boolean("IsRunningOutput", hal.SelProcIsRunningOutput),
}
