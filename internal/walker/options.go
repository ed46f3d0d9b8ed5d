package walker

import "strings"

// Options is the bit set of inclusion/verbosity toggles threaded unchanged
// through every recursive call of one traversal pass. Toggles are
// independent; any combination is legal.
type Options uint16

const (
	IncludeBoxes Options = 1 << iota
	IncludeClocks
	IncludeStreams
	IncludeFormats
	IncludeChannels
	IncludeControls
	IncludePlugins
	IncludeProcesses
	Debug
)

// All returns every inclusion toggle set with Debug cleared.
func All() Options {
	return (Debug<<1 - 1) &^ Debug
}

// Has reports whether every bit of f is set.
func (o Options) Has(f Options) bool { return o&f == f }

// With returns o with the bits of f set.
func (o Options) With(f Options) Options { return o | f }

// Without returns o with the bits of f cleared.
func (o Options) Without(f Options) Options { return o &^ f }

var optionNames = []struct {
	flag Options
	name string
}{
	{IncludeBoxes, "boxes"},
	{IncludeClocks, "clocks"},
	{IncludeStreams, "streams"},
	{IncludeFormats, "formats"},
	{IncludeChannels, "channels"},
	{IncludeControls, "controls"},
	{IncludePlugins, "plugins"},
	{IncludeProcesses, "processes"},
	{Debug, "debug"},
}

func (o Options) String() string {
	var names []string
	for _, e := range optionNames {
		if o.Has(e.flag) {
			names = append(names, e.name)
		}
	}
	if names == nil {
		return "none"
	}
	return strings.Join(names, ",")
}
