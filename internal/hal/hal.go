// Package hal wraps the audio hardware abstraction layer's object/property
// model: opaque object handles, (selector, scope, element) property
// addresses, and status-coded property reads. The platform-specific
// implementation lives in internal/hal/coreaudio; tests use
// internal/hal/halmock.
package hal

import (
	"fmt"
)

// ObjectID is an opaque handle identifying a node in the audio service's
// object graph. It is owned by the service, not by this tool.
type ObjectID uint32

// SystemObject is the well-known root of the object graph.
const SystemObject ObjectID = 1

// ClassID is a four-character code identifying an object's class.
type ClassID uint32

// Selector identifies a specific property of an object.
type Selector uint32

// Scope narrows a property query to a global, input, or output context.
type Scope uint32

// Element identifies a sub-element of an object; this tool always addresses
// the main element.
type Element uint32

const (
	ScopeGlobal Scope = 0x676C6F62 // 'glob'
	ScopeInput  Scope = 0x696E7074 // 'inpt'
	ScopeOutput Scope = 0x6F757470 // 'outp'

	ElementMain Element = 0
)

// PropertyAddress is the key for every property read.
type PropertyAddress struct {
	Selector Selector
	Scope    Scope
	Element  Element
}

// Addr builds a main-element address with the given scope.
func Addr(sel Selector, scope Scope) PropertyAddress {
	return PropertyAddress{Selector: sel, Scope: scope, Element: ElementMain}
}

// GlobalAddr builds a main-element, global-scope address.
func GlobalAddr(sel Selector) PropertyAddress {
	return Addr(sel, ScopeGlobal)
}

// Status is the service's result code for a property operation. Zero means
// success; anything else identifies the failure. Property-read failures are
// values, not errors: callers absorb them and continue.
type Status int32

// StatusOK is the service's success code.
const StatusOK Status = 0

// Service status codes, as four-character codes.
const (
	StatusNotRunning          Status = 0x73746F70 // 'stop'
	StatusUnspecified         Status = 0x77686174 // 'what'
	StatusUnknownProperty     Status = 0x77686F3F // 'who?'
	StatusBadPropertySize     Status = 0x2173697A // '!siz'
	StatusIllegalOperation    Status = 0x6E6F7065 // 'nope'
	StatusBadObject           Status = 0x216F626A // '!obj'
	StatusBadDevice           Status = 0x21646576 // '!dev'
	StatusBadStream           Status = 0x21737472 // '!str'
	StatusUnsupportedOp       Status = 0x756E6F70 // 'unop'
	StatusUnsupportedFormat   Status = 0x21646174 // '!dat'
	StatusPermissions         Status = 0x21686F67 // '!hog'
)

// OK reports whether the status is the success code.
func (s Status) OK() bool { return s == StatusOK }

// String renders the status as its four-character code when printable,
// always with the decimal value.
func (s Status) String() string {
	if s == StatusOK {
		return "0"
	}
	if tag, ok := printableFourCC(uint32(s)); ok {
		return fmt.Sprintf("%s (%d)", tag, int32(s))
	}
	return fmt.Sprintf("%d", int32(s))
}

// Service is the boundary to the native audio hardware service. Every call
// is a single synchronous read; there is no retry policy at this layer or
// above it.
type Service interface {
	// HasProperty reports whether the object answers to the address.
	HasProperty(obj ObjectID, addr PropertyAddress) bool

	// PropertyDataSize returns the current byte size of the property.
	PropertyDataSize(obj ObjectID, addr PropertyAddress, qualifier []byte) (int, Status)

	// PropertyData fills buf with the property's bytes and returns the
	// number of bytes written.
	PropertyData(obj ObjectID, addr PropertyAddress, qualifier []byte, buf []byte) (int, Status)

	// StringProperty reads a text-handle property and decodes it to owned
	// UTF-8 text. The handle is released before the call returns, on every
	// exit path. A zero-length handle decodes to "".
	StringProperty(obj ObjectID, addr PropertyAddress) (string, Status)

	// ArrayPropertyCount reads an opaque array-reference property and
	// returns its element count, zero for a null reference.
	ArrayPropertyCount(obj ObjectID, addr PropertyAddress) (int, Status)
}

// ErrUnsupported is returned when no platform service is available.
var ErrUnsupported = fmt.Errorf("audiotree requires the macOS audio hardware service; this platform is unsupported")

// NewServiceFunc is set by platform-specific packages via init().
// See internal/hal/coreaudio for the macOS registration.
var NewServiceFunc func() (Service, error)

// NewService returns the platform Service for the current OS.
func NewService() (Service, error) {
	if NewServiceFunc == nil {
		return nil, ErrUnsupported
	}
	return NewServiceFunc()
}

// StreamProvisioner opens a short-lived voice-processing I/O stream so its
// side effects (extra streams, channels, aggregate devices) are visible in
// the object graph during a traversal.
type StreamProvisioner interface {
	Start() error
	Stop()
}

// NewProvisionerFunc is set by platform-specific packages via init().
var NewProvisionerFunc func() (StreamProvisioner, error)

// NewProvisioner returns the platform StreamProvisioner for the current OS.
func NewProvisioner() (StreamProvisioner, error) {
	if NewProvisionerFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProvisionerFunc()
}
