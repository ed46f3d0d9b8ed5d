package hal

import "fmt"

// printableFourCC renders v as a quoted four-character tag if all four bytes
// are printable ASCII.
func printableFourCC(v uint32) (string, bool) {
	b := [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			return "", false
		}
	}
	return fmt.Sprintf("%q", string(b[:])), true
}

// FourCC renders a 32-bit code as a quoted four-character tag, falling back
// to hex when any byte is unprintable.
func FourCC(v uint32) string {
	if tag, ok := printableFourCC(v); ok {
		return tag
	}
	return fmt.Sprintf("0x%08X", v)
}

// fourcc packs a four-character literal into a 32-bit code.
func fourcc(s string) uint32 {
	if len(s) != 4 {
		panic("fourcc literal must be four bytes: " + s)
	}
	return uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8 | uint32(s[3])
}
