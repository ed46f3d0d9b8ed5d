package hal

// Property selectors, grouped the way the HAL headers group them. Four-char
// codes are spelled as literals so they can be checked against the headers.
var (
	// Common object properties.
	SelBaseClass         = Selector(fourcc("bcls"))
	SelClass             = Selector(fourcc("clas"))
	SelOwner             = Selector(fourcc("stdv"))
	SelName              = Selector(fourcc("lnam"))
	SelModelName         = Selector(fourcc("lmod"))
	SelManufacturer      = Selector(fourcc("lmak"))
	SelElementName       = Selector(fourcc("lchn"))
	SelElementNumberName = Selector(fourcc("lcnn"))
	SelOwnedObjects      = Selector(fourcc("ownd"))
	SelControlList       = Selector(fourcc("ctrl"))

	// System object (hardware-wide) properties.
	SelHWDevices                   = Selector(fourcc("dev#"))
	SelHWDefaultInputDevice        = Selector(fourcc("dIn "))
	SelHWDefaultOutputDevice       = Selector(fourcc("dOut"))
	SelHWDefaultSystemOutputDevice = Selector(fourcc("sOut"))
	SelHWMixStereoToMono           = Selector(fourcc("stmo"))
	SelHWPlugInList                = Selector(fourcc("plg#"))
	SelHWTransportManagerList      = Selector(fourcc("tmg#"))
	SelHWBoxList                   = Selector(fourcc("box#"))
	SelHWClockDeviceList           = Selector(fourcc("clk#"))
	SelHWProcessIsMain             = Selector(fourcc("main"))
	SelHWIsInitingOrExiting        = Selector(fourcc("inot"))
	SelHWProcessInputMute          = Selector(fourcc("pmin"))
	SelHWProcessIsAudible          = Selector(fourcc("pmut"))
	SelHWSleepingIsAllowed         = Selector(fourcc("slep"))
	SelHWUnloadingIsAllowed        = Selector(fourcc("unld"))
	SelHWHogModeIsAllowed          = Selector(fourcc("hogr"))
	SelHWUserSessionIsActive       = Selector(fourcc("user"))
	SelHWPowerHint                 = Selector(fourcc("powh"))
	SelHWProcessObjectList         = Selector(fourcc("prs#"))
	SelHWTapList                   = Selector(fourcc("tps#"))

	// Device properties.
	SelDevConfigurationApplication  = Selector(fourcc("capp"))
	SelDevDeviceUID                 = Selector(fourcc("uid "))
	SelDevModelUID                  = Selector(fourcc("muid"))
	SelDevTransportType             = Selector(fourcc("tran"))
	SelDevHogMode                   = Selector(fourcc("oink"))
	SelDevRelatedDevices            = Selector(fourcc("akin"))
	SelDevClockDomain               = Selector(fourcc("clkd"))
	SelDevClockDevice               = Selector(fourcc("apcd"))
	SelDevDeviceIsAlive             = Selector(fourcc("livn"))
	SelDevDeviceIsRunning           = Selector(fourcc("goin"))
	SelDevDeviceIsRunningSomewhere  = Selector(fourcc("gone"))
	SelDevCanBeDefaultDevice        = Selector(fourcc("dflt"))
	SelDevCanBeDefaultSystemDevice  = Selector(fourcc("sflt"))
	SelDevLatency                   = Selector(fourcc("ltnc"))
	SelDevStreams                   = Selector(fourcc("stm#"))
	SelDevSafetyOffset              = Selector(fourcc("saft"))
	SelDevActualSampleRate          = Selector(fourcc("asrt"))
	SelDevNominalSampleRate         = Selector(fourcc("nsrt"))
	SelDevAvailableNominalRates     = Selector(fourcc("nsr#"))
	SelDevBufferFrameSize           = Selector(fourcc("fsiz"))
	SelDevBufferFrameSizeRange      = Selector(fourcc("fsz#"))
	SelDevUsesVariableBufferSizes   = Selector(fourcc("vfsz"))
	SelDevPreferredChannelsStereo   = Selector(fourcc("dch2"))
	SelDevPreferredChannelLayout    = Selector(fourcc("srnd"))
	SelDevIOCycleUsage              = Selector(fourcc("ncyc"))
	SelDevProcessMute               = Selector(fourcc("appm"))

	// Aggregate device properties.
	SelAggActiveSubDeviceList = Selector(fourcc("agrp"))
	SelAggTapList             = Selector(fourcc("tap#"))
	SelAggSubTapList          = Selector(fourcc("atap"))

	// Stream properties.
	SelStrIsActive                 = Selector(fourcc("sact"))
	SelStrDirection                = Selector(fourcc("sdir"))
	SelStrTerminalType             = Selector(fourcc("term"))
	SelStrStartingChannel          = Selector(fourcc("schn"))
	SelStrLatency                  = Selector(fourcc("ltnc"))
	SelStrVirtualFormat            = Selector(fourcc("sfmt"))
	SelStrAvailableVirtualFormats  = Selector(fourcc("sfma"))
	SelStrPhysicalFormat           = Selector(fourcc("pft "))
	SelStrAvailablePhysicalFormats = Selector(fourcc("pfta"))

	// Process properties.
	SelProcPID             = Selector(fourcc("ppid"))
	SelProcBundleID        = Selector(fourcc("pbid"))
	SelProcDevices         = Selector(fourcc("pdv#"))
	SelProcIsRunning       = Selector(fourcc("pir?"))
	SelProcIsRunningInput  = Selector(fourcc("piri"))
	SelProcIsRunningOutput = Selector(fourcc("piro"))
)
