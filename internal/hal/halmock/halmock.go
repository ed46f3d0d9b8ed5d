// Package halmock provides an in-memory hal.Service backed by a scripted
// object graph, for tests that exercise the accessor and the walker without
// the native audio service.
package halmock

import (
	"github.com/audiohw/audiotree/internal/hal"
)

// Object holds the scripted properties of one object in the fake graph.
type Object struct {
	data     map[hal.PropertyAddress][]byte
	strings  map[hal.PropertyAddress]string
	arrays   map[hal.PropertyAddress]int
	failures map[hal.PropertyAddress]hal.Status
}

// Service is a scripted hal.Service. The zero value is not usable; call New.
type Service struct {
	objects map[hal.ObjectID]*Object
}

// New returns an empty scripted service.
func New() *Service {
	return &Service{objects: make(map[hal.ObjectID]*Object)}
}

// Object returns the scripted object with the given ID, creating it on
// first use.
func (s *Service) Object(id hal.ObjectID) *Object {
	o, ok := s.objects[id]
	if !ok {
		o = &Object{
			data:     make(map[hal.PropertyAddress][]byte),
			strings:  make(map[hal.PropertyAddress]string),
			arrays:   make(map[hal.PropertyAddress]int),
			failures: make(map[hal.PropertyAddress]hal.Status),
		}
		s.objects[id] = o
	}
	return o
}

// SetValue scripts a property to the native-endian encoding of v. Slices
// encode contiguously, so this also covers list properties.
func (o *Object) SetValue(sel hal.Selector, scope hal.Scope, v any) *Object {
	o.data[hal.Addr(sel, scope)] = hal.EncodeValue(v)
	return o
}

// SetRaw scripts a property to raw bytes.
func (o *Object) SetRaw(sel hal.Selector, scope hal.Scope, data []byte) *Object {
	o.data[hal.Addr(sel, scope)] = data
	return o
}

// SetString scripts a global-scope text property.
func (o *Object) SetString(sel hal.Selector, s string) *Object {
	o.strings[hal.GlobalAddr(sel)] = s
	return o
}

// SetArrayCount scripts a global-scope opaque array property's count.
func (o *Object) SetArrayCount(sel hal.Selector, n int) *Object {
	o.arrays[hal.GlobalAddr(sel)] = n
	return o
}

// Fail scripts a property to answer with the given failure status.
func (o *Object) Fail(sel hal.Selector, scope hal.Scope, st hal.Status) *Object {
	o.failures[hal.Addr(sel, scope)] = st
	return o
}

// SetClass scripts the object's class and base class.
func (o *Object) SetClass(class, base hal.ClassID) *Object {
	o.SetValue(hal.SelClass, hal.ScopeGlobal, uint32(class))
	o.SetValue(hal.SelBaseClass, hal.ScopeGlobal, uint32(base))
	return o
}

// SetChildren scripts the object's owned-objects list.
func (o *Object) SetChildren(ids ...hal.ObjectID) *Object {
	children := make([]uint32, len(ids))
	for i, id := range ids {
		children[i] = uint32(id)
	}
	o.SetValue(hal.SelOwnedObjects, hal.ScopeGlobal, children)
	return o
}

func (s *Service) lookup(obj hal.ObjectID) (*Object, hal.Status) {
	o, ok := s.objects[obj]
	if !ok {
		return nil, hal.StatusBadObject
	}
	return o, hal.StatusOK
}

// HasProperty implements hal.Service.
func (s *Service) HasProperty(obj hal.ObjectID, addr hal.PropertyAddress) bool {
	o, st := s.lookup(obj)
	if !st.OK() {
		return false
	}
	if _, ok := o.data[addr]; ok {
		return true
	}
	if _, ok := o.strings[addr]; ok {
		return true
	}
	_, ok := o.arrays[addr]
	return ok
}

// PropertyDataSize implements hal.Service.
func (s *Service) PropertyDataSize(obj hal.ObjectID, addr hal.PropertyAddress, qualifier []byte) (int, hal.Status) {
	o, st := s.lookup(obj)
	if !st.OK() {
		return 0, st
	}
	if st, ok := o.failures[addr]; ok {
		return 0, st
	}
	data, ok := o.data[addr]
	if !ok {
		return 0, hal.StatusUnknownProperty
	}
	return len(data), hal.StatusOK
}

// PropertyData implements hal.Service.
func (s *Service) PropertyData(obj hal.ObjectID, addr hal.PropertyAddress, qualifier []byte, buf []byte) (int, hal.Status) {
	o, st := s.lookup(obj)
	if !st.OK() {
		return 0, st
	}
	if st, ok := o.failures[addr]; ok {
		return 0, st
	}
	data, ok := o.data[addr]
	if !ok {
		return 0, hal.StatusUnknownProperty
	}
	n := copy(buf, data)
	return n, hal.StatusOK
}

// StringProperty implements hal.Service.
func (s *Service) StringProperty(obj hal.ObjectID, addr hal.PropertyAddress) (string, hal.Status) {
	o, st := s.lookup(obj)
	if !st.OK() {
		return "", st
	}
	if st, ok := o.failures[addr]; ok {
		return "", st
	}
	v, ok := o.strings[addr]
	if !ok {
		return "", hal.StatusUnknownProperty
	}
	return v, hal.StatusOK
}

// ArrayPropertyCount implements hal.Service.
func (s *Service) ArrayPropertyCount(obj hal.ObjectID, addr hal.PropertyAddress) (int, hal.Status) {
	o, st := s.lookup(obj)
	if !st.OK() {
		return 0, st
	}
	if st, ok := o.failures[addr]; ok {
		return 0, st
	}
	n, ok := o.arrays[addr]
	if !ok {
		return 0, hal.StatusUnknownProperty
	}
	return n, hal.StatusOK
}
