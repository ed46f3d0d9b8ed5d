package hal

import (
	"bytes"
	"encoding/binary"
)

// Property values cross the service boundary as native-endian bytes; the
// accessor decodes them into fixed-size Go shapes. A shape is any type
// encoding/binary can size statically (scalars, fixed arrays, structs of
// those).

// SizeOf returns the encoded byte size of the shape T.
func SizeOf[T any]() int {
	var v T
	return binary.Size(v)
}

// DecodeValue decodes one value of shape T from data.
func DecodeValue[T any](data []byte) (T, error) {
	var v T
	err := binary.Read(bytes.NewReader(data), binary.NativeEndian, &v)
	return v, err
}

// EncodeValue encodes v to native-endian bytes. It is the inverse of
// DecodeValue and is primarily useful to test fixtures.
func EncodeValue(v any) []byte {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.NativeEndian, v); err != nil {
		panic("hal: unencodable value: " + err.Error())
	}
	return buf.Bytes()
}

// GetPropertyScoped reads a fixed-size property of shape T at the given
// scope. The property's current size is assumed to equal the shape's size;
// the service reports a failure status otherwise.
func GetPropertyScoped[T any](svc Service, obj ObjectID, sel Selector, scope Scope) (T, Status) {
	var zero T
	buf := make([]byte, SizeOf[T]())
	n, st := svc.PropertyData(obj, Addr(sel, scope), nil, buf)
	if !st.OK() {
		return zero, st
	}
	if n != len(buf) {
		return zero, StatusBadPropertySize
	}
	v, err := DecodeValue[T](buf)
	if err != nil {
		return zero, StatusBadPropertySize
	}
	return v, StatusOK
}

// GetProperty reads a fixed-size global-scope property of shape T.
func GetProperty[T any](svc Service, obj ObjectID, sel Selector) (T, Status) {
	return GetPropertyScoped[T](svc, obj, sel, ScopeGlobal)
}

// GetListPropertyScoped reads a variable-length property as a list of shape
// T: a size probe determines the element count, then one call fetches the
// elements. A zero-size property is an empty list, not an error.
func GetListPropertyScoped[T any](svc Service, obj ObjectID, sel Selector, scope Scope) ([]T, Status) {
	addr := Addr(sel, scope)
	size, st := svc.PropertyDataSize(obj, addr, nil)
	if !st.OK() {
		return nil, st
	}
	elem := SizeOf[T]()
	count := size / elem
	if count == 0 {
		return []T{}, StatusOK
	}
	buf := make([]byte, count*elem)
	n, st := svc.PropertyData(obj, addr, nil, buf)
	if !st.OK() {
		return nil, st
	}
	count = n / elem
	out := make([]T, count)
	for i := 0; i < count; i++ {
		v, err := DecodeValue[T](buf[i*elem : (i+1)*elem])
		if err != nil {
			return nil, StatusBadPropertySize
		}
		out[i] = v
	}
	return out, StatusOK
}

// GetListProperty reads a variable-length global-scope property as a list of
// shape T.
func GetListProperty[T any](svc Service, obj ObjectID, sel Selector) ([]T, Status) {
	return GetListPropertyScoped[T](svc, obj, sel, ScopeGlobal)
}

// GetRawPropertyScoped reads a variable-length property as raw bytes: size
// probe, then one fetch of exactly that many bytes.
func GetRawPropertyScoped(svc Service, obj ObjectID, sel Selector, scope Scope) ([]byte, Status) {
	addr := Addr(sel, scope)
	size, st := svc.PropertyDataSize(obj, addr, nil)
	if !st.OK() {
		return nil, st
	}
	if size == 0 {
		return []byte{}, StatusOK
	}
	buf := make([]byte, size)
	n, st := svc.PropertyData(obj, addr, nil, buf)
	if !st.OK() {
		return nil, st
	}
	return buf[:n], StatusOK
}

// GetStringProperty reads and decodes a text-handle property. Handle
// ownership and release are the service's responsibility; see
// Service.StringProperty.
func GetStringProperty(svc Service, obj ObjectID, sel Selector) (string, Status) {
	return svc.StringProperty(obj, GlobalAddr(sel))
}

// ArrayCount returns the element count of an opaque array-reference
// property, zero for a null reference.
func ArrayCount(svc Service, obj ObjectID, sel Selector) (int, Status) {
	return svc.ArrayPropertyCount(obj, GlobalAddr(sel))
}

// HasProperty reports whether the object answers to the selector at global
// scope.
func HasProperty(svc Service, obj ObjectID, sel Selector) bool {
	return svc.HasProperty(obj, GlobalAddr(sel))
}
