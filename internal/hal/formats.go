package hal

import (
	"fmt"
	"strings"
)

// StreamDescription is the fixed-size format descriptor a stream reports for
// its virtual and physical formats.
type StreamDescription struct {
	SampleRate       float64
	FormatID         uint32
	FormatFlags      uint32
	BytesPerPacket   uint32
	FramesPerPacket  uint32
	BytesPerFrame    uint32
	ChannelsPerFrame uint32
	BitsPerChannel   uint32
	Reserved         uint32
}

func (d StreamDescription) String() string {
	return fmt.Sprintf("{SampleRate: %g, FormatID: %s, FormatFlags: 0x%X, BytesPerPacket: %d, FramesPerPacket: %d, BytesPerFrame: %d, ChannelsPerFrame: %d, BitsPerChannel: %d}",
		d.SampleRate, FourCC(d.FormatID), d.FormatFlags, d.BytesPerPacket,
		d.FramesPerPacket, d.BytesPerFrame, d.ChannelsPerFrame, d.BitsPerChannel)
}

// ValueRange is a closed numeric range, used for sample rates and buffer
// frame sizes.
type ValueRange struct {
	Minimum float64
	Maximum float64
}

func (r ValueRange) String() string {
	return fmt.Sprintf("[%g, %g]", r.Minimum, r.Maximum)
}

// RangedStreamDescription pairs a format with the sample-rate range it is
// available at.
type RangedStreamDescription struct {
	Format          StreamDescription
	SampleRateRange ValueRange
}

func (d RangedStreamDescription) String() string {
	return fmt.Sprintf("{Format: %s, SampleRateRange: %s}", d.Format, d.SampleRateRange)
}

// ChannelDescription describes one channel in a channel layout.
type ChannelDescription struct {
	Label       uint32
	Flags       uint32
	Coordinates [3]float32
}

func (d ChannelDescription) String() string {
	return fmt.Sprintf("{Label: %d, Flags: 0x%X, Coordinates: %v}", d.Label, d.Flags, d.Coordinates)
}

// channelLayoutHeaderSize is the byte size of a channel layout's fixed
// header (tag, bitmap, declared description count).
const channelLayoutHeaderSize = 12

// channelDescriptionSize is the byte size of one trailing channel
// description record.
const channelDescriptionSize = 20

// channelLayoutHeader mirrors the fixed header of a channel layout buffer.
type channelLayoutHeader struct {
	Tag                uint32
	Bitmap             uint32
	NumberDescriptions uint32
}

// ChannelLayout is a channel-layout property with its trailing
// variable-length channel descriptions expanded.
type ChannelLayout struct {
	Tag                uint32
	Bitmap             uint32
	NumberDescriptions uint32
	Descriptions       []ChannelDescription
}

func (l ChannelLayout) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "{Tag: %d, Bitmap: 0x%X, NumberDescriptions: %d, Descriptions: [", l.Tag, l.Bitmap, l.NumberDescriptions)
	for i, d := range l.Descriptions {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.String())
	}
	b.WriteString("]}")
	return b.String()
}

// ExpandChannelLayout decodes a raw channel-layout buffer: a fixed header
// followed by N trailing channel descriptions, where N is derived from the
// buffer length rather than read from a field. The header's declared count
// must agree with the derived count.
func ExpandChannelLayout(data []byte) (ChannelLayout, error) {
	if len(data) < channelLayoutHeaderSize {
		return ChannelLayout{}, fmt.Errorf("channel layout buffer too short: %d bytes", len(data))
	}
	if (len(data)-channelLayoutHeaderSize)%channelDescriptionSize != 0 {
		return ChannelLayout{}, fmt.Errorf("channel layout buffer not a whole number of descriptions: %d bytes", len(data))
	}
	hdr, err := DecodeValue[channelLayoutHeader](data[:channelLayoutHeaderSize])
	if err != nil {
		return ChannelLayout{}, err
	}
	layout := ChannelLayout{Tag: hdr.Tag, Bitmap: hdr.Bitmap, NumberDescriptions: hdr.NumberDescriptions}
	n := (len(data) - channelLayoutHeaderSize) / channelDescriptionSize
	if int(layout.NumberDescriptions) != n {
		return ChannelLayout{}, fmt.Errorf("channel layout declares %d descriptions, buffer holds %d", layout.NumberDescriptions, n)
	}
	layout.Descriptions = make([]ChannelDescription, n)
	for i := 0; i < n; i++ {
		off := channelLayoutHeaderSize + i*channelDescriptionSize
		d, err := DecodeValue[ChannelDescription](data[off : off+channelDescriptionSize])
		if err != nil {
			return ChannelLayout{}, err
		}
		layout.Descriptions[i] = d
	}
	return layout, nil
}
