//go:build darwin && cgo

package coreaudio

/*
#cgo LDFLAGS: -framework CoreAudio -framework CoreFoundation
#include <CoreAudio/CoreAudio.h>
#include <CoreFoundation/CoreFoundation.h>
*/
import "C"

import (
	"unsafe"

	"github.com/audiohw/audiotree/internal/hal"
)

// Service is the CoreAudio-backed hal.Service. It is stateless; every call
// is one synchronous AudioObject query.
type Service struct{}

// NewService returns the CoreAudio service.
func NewService() *Service { return &Service{} }

func address(addr hal.PropertyAddress) C.AudioObjectPropertyAddress {
	return C.AudioObjectPropertyAddress{
		mSelector: C.AudioObjectPropertySelector(addr.Selector),
		mScope:    C.AudioObjectPropertyScope(addr.Scope),
		mElement:  C.AudioObjectPropertyElement(addr.Element),
	}
}

// HasProperty implements hal.Service.
func (s *Service) HasProperty(obj hal.ObjectID, addr hal.PropertyAddress) bool {
	caddr := address(addr)
	return C.AudioObjectHasProperty(C.AudioObjectID(obj), &caddr) != 0
}

// PropertyDataSize implements hal.Service.
func (s *Service) PropertyDataSize(obj hal.ObjectID, addr hal.PropertyAddress, qualifier []byte) (int, hal.Status) {
	caddr := address(addr)
	var qptr unsafe.Pointer
	if len(qualifier) > 0 {
		qptr = unsafe.Pointer(&qualifier[0])
	}
	var size C.UInt32
	status := C.AudioObjectGetPropertyDataSize(C.AudioObjectID(obj), &caddr,
		C.UInt32(len(qualifier)), qptr, &size)
	return int(size), hal.Status(status)
}

// PropertyData implements hal.Service.
func (s *Service) PropertyData(obj hal.ObjectID, addr hal.PropertyAddress, qualifier []byte, buf []byte) (int, hal.Status) {
	caddr := address(addr)
	var qptr unsafe.Pointer
	if len(qualifier) > 0 {
		qptr = unsafe.Pointer(&qualifier[0])
	}
	var dptr unsafe.Pointer
	if len(buf) > 0 {
		dptr = unsafe.Pointer(&buf[0])
	}
	size := C.UInt32(len(buf))
	status := C.AudioObjectGetPropertyData(C.AudioObjectID(obj), &caddr,
		C.UInt32(len(qualifier)), qptr, &size, dptr)
	return int(size), hal.Status(status)
}

// StringProperty implements hal.Service. The CFString handle is released on
// every exit path; a traversal reads hundreds of these.
func (s *Service) StringProperty(obj hal.ObjectID, addr hal.PropertyAddress) (string, hal.Status) {
	caddr := address(addr)
	var ref C.CFStringRef
	size := C.UInt32(unsafe.Sizeof(ref))
	status := C.AudioObjectGetPropertyData(C.AudioObjectID(obj), &caddr,
		0, nil, &size, unsafe.Pointer(&ref))
	if status != 0 {
		return "", hal.Status(status)
	}
	if ref == nil {
		return "", hal.StatusOK
	}
	defer C.CFRelease(C.CFTypeRef(ref))
	return decodeCFString(ref), hal.StatusOK
}

// decodeCFString re-encodes a CFString as UTF-8: probe the required byte
// length, then convert into an exactly-sized buffer. Zero length is an
// empty string.
func decodeCFString(ref C.CFStringRef) string {
	length := C.CFStringGetLength(ref)
	if length <= 0 {
		return ""
	}
	rng := C.CFRange{location: 0, length: length}
	var byteLen C.CFIndex
	converted := C.CFStringGetBytes(ref, rng, C.kCFStringEncodingUTF8, 0,
		C.Boolean(0), nil, 0, &byteLen)
	if converted <= 0 || byteLen <= 0 {
		return ""
	}
	buf := make([]byte, int(byteLen))
	C.CFStringGetBytes(ref, rng, C.kCFStringEncodingUTF8, 0,
		C.Boolean(0), (*C.UInt8)(unsafe.Pointer(&buf[0])), byteLen, nil)
	return string(buf)
}

// ArrayPropertyCount implements hal.Service. The CFArray contents are
// plugin-defined; only the count is meaningful here.
func (s *Service) ArrayPropertyCount(obj hal.ObjectID, addr hal.PropertyAddress) (int, hal.Status) {
	caddr := address(addr)
	var ref C.CFArrayRef
	size := C.UInt32(unsafe.Sizeof(ref))
	status := C.AudioObjectGetPropertyData(C.AudioObjectID(obj), &caddr,
		0, nil, &size, unsafe.Pointer(&ref))
	if status != 0 {
		return 0, hal.Status(status)
	}
	if ref == nil {
		return 0, hal.StatusOK
	}
	defer C.CFRelease(C.CFTypeRef(ref))
	return int(C.CFArrayGetCount(ref)), hal.StatusOK
}
