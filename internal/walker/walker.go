// Package walker traverses the audio service's object graph from a root
// object, applies the class inclusion filters, and reports each visited
// object's properties into a report.Tree.
package walker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/audiohw/audiotree/internal/hal"
	"github.com/audiohw/audiotree/internal/report"
)

// Walker traverses one service's object graph. It holds no per-pass state;
// a Walker may run any number of passes, each with its own Tree.
type Walker struct {
	svc hal.Service
}

// New returns a Walker over the given service.
func New(svc hal.Service) *Walker {
	return &Walker{svc: svc}
}

// Walk traverses the graph rooted at root and reports into tree. Every
// property fetch is independent and non-fatal: a failed read is omitted
// from the report, or annotated with its status when Debug is set.
func (w *Walker) Walk(root hal.ObjectID, opts Options, tree *report.Tree) {
	w.walk(root, opts, tree, make(map[hal.ObjectID]bool))
}

func (w *Walker) walk(obj hal.ObjectID, opts Options, tree *report.Tree, visited map[hal.ObjectID]bool) {
	// The live graph is expected to be a DAG; the visited set keeps a
	// malformed adjacency list from recursing forever.
	if visited[obj] {
		return
	}
	visited[obj] = true

	children, childSt := hal.GetListProperty[uint32](w.svc, obj, hal.SelOwnedObjects)
	baseClass, baseSt := hal.GetProperty[uint32](w.svc, obj, hal.SelBaseClass)
	class, classSt := hal.GetProperty[uint32](w.svc, obj, hal.SelClass)

	// Inclusion filters, in fixed order. A class-lookup failure never
	// matches a filtered class.
	if !opts.Has(IncludeControls) && baseSt.OK() && isControlBase(hal.ClassID(baseClass)) {
		return
	}
	if !opts.Has(IncludeBoxes) && classSt.OK() && hal.ClassID(class) == ClassBox {
		return
	}
	if !opts.Has(IncludeClocks) && classSt.OK() && hal.ClassID(class) == ClassClockDevice {
		return
	}
	if !opts.Has(IncludeStreams) && classSt.OK() && hal.ClassID(class) == ClassStream {
		return
	}
	if !opts.Has(IncludePlugins) && classSt.OK() && hal.ClassID(class) == ClassPlugIn {
		return
	}
	if !opts.Has(IncludeProcesses) && classSt.OK() && hal.ClassID(class) == ClassProcess {
		return
	}

	tree.OpenBranch(fmt.Sprintf("AudioObjectID: %d", obj))
	defer tree.CloseBranch()

	classLeaf(tree, opts, "BaseClass", baseClass, baseSt)
	classLeaf(tree, opts, "Class", class, classSt)
	w.printProps(obj, opts, tree, commonProps)

	if classSt.OK() {
		switch hal.ClassID(class) {
		case ClassSystem:
			w.printProps(obj, opts, tree, hardwareProps)
		case ClassAggregateDevice:
			w.printProps(obj, opts, tree, aggregateProps)
			w.printProps(obj, opts, tree, deviceProps)
		case ClassSubDevice, ClassDevice:
			w.printProps(obj, opts, tree, deviceProps)
		case ClassStream:
			w.printProps(obj, opts, tree, streamProps)
		case ClassProcess:
			w.printProps(obj, opts, tree, processProps)
		}
	}

	// An unreadable owned-objects list means no children, silently.
	if childSt.OK() {
		for _, child := range children {
			w.walk(hal.ObjectID(child), opts, tree, visited)
		}
	}
}

// classLeaf reports a class code: its known name, or the raw four-character
// tag, or (debug only) the lookup failure.
func classLeaf(tree *report.Tree, opts Options, label string, class uint32, st hal.Status) {
	if !st.OK() {
		if opts.Has(Debug) {
			tree.Leaf(label, "error "+st.String())
		}
		return
	}
	if name, ok := ClassName(hal.ClassID(class)); ok {
		tree.Leaf(label+" (Known)", strconv.Quote(name))
		return
	}
	tree.Leaf(label+" (FourCC)", hal.FourCC(class))
}

// printProps fetches and reports every row of a property table. Rows gated
// behind an unset option are not fetched at all.
func (w *Walker) printProps(obj hal.ObjectID, opts Options, tree *report.Tree, rows []propSpec) {
	for _, p := range rows {
		if p.need != 0 && !opts.Has(p.need) {
			continue
		}
		text, st := w.fetch(obj, p)
		if !st.OK() {
			if opts.Has(Debug) {
				tree.Leaf(p.label, "error "+st.String())
			}
			continue
		}
		tree.Leaf(p.label, text)
	}
}

// fetch performs the accessor call a row describes and renders the result.
func (w *Walker) fetch(obj hal.ObjectID, p propSpec) (string, hal.Status) {
	switch p.kind {
	case kindBool:
		v, st := hal.GetPropertyScoped[uint32](w.svc, obj, p.sel, p.scope)
		if !st.OK() {
			return "", st
		}
		return strconv.FormatBool(v != 0), hal.StatusOK
	case kindUint32:
		v, st := hal.GetPropertyScoped[uint32](w.svc, obj, p.sel, p.scope)
		if !st.OK() {
			return "", st
		}
		if p.decode != nil {
			return p.decode(v), hal.StatusOK
		}
		return strconv.FormatUint(uint64(v), 10), hal.StatusOK
	case kindPID:
		v, st := hal.GetPropertyScoped[int32](w.svc, obj, p.sel, p.scope)
		if !st.OK() {
			return "", st
		}
		return strconv.FormatInt(int64(v), 10), hal.StatusOK
	case kindFloat32:
		v, st := hal.GetPropertyScoped[float32](w.svc, obj, p.sel, p.scope)
		if !st.OK() {
			return "", st
		}
		return strconv.FormatFloat(float64(v), 'g', -1, 32), hal.StatusOK
	case kindFloat64:
		v, st := hal.GetPropertyScoped[float64](w.svc, obj, p.sel, p.scope)
		if !st.OK() {
			return "", st
		}
		return strconv.FormatFloat(v, 'g', -1, 64), hal.StatusOK
	case kindObjectIDList, kindUint32List:
		v, st := hal.GetListPropertyScoped[uint32](w.svc, obj, p.sel, p.scope)
		if !st.OK() {
			return "", st
		}
		return formatList(v, func(x uint32) string { return strconv.FormatUint(uint64(x), 10) }), hal.StatusOK
	case kindString:
		v, st := w.svc.StringProperty(obj, hal.Addr(p.sel, p.scope))
		if !st.OK() {
			return "", st
		}
		return strconv.Quote(v), hal.StatusOK
	case kindValueRange:
		v, st := hal.GetPropertyScoped[hal.ValueRange](w.svc, obj, p.sel, p.scope)
		if !st.OK() {
			return "", st
		}
		return v.String(), hal.StatusOK
	case kindValueRangeList:
		v, st := hal.GetListPropertyScoped[hal.ValueRange](w.svc, obj, p.sel, p.scope)
		if !st.OK() {
			return "", st
		}
		return formatList(v, hal.ValueRange.String), hal.StatusOK
	case kindStreamFormat:
		v, st := hal.GetPropertyScoped[hal.StreamDescription](w.svc, obj, p.sel, p.scope)
		if !st.OK() {
			return "", st
		}
		return v.String(), hal.StatusOK
	case kindStreamFormatList:
		v, st := hal.GetListPropertyScoped[hal.RangedStreamDescription](w.svc, obj, p.sel, p.scope)
		if !st.OK() {
			return "", st
		}
		return formatList(v, hal.RangedStreamDescription.String), hal.StatusOK
	case kindChannelLayout:
		raw, st := hal.GetRawPropertyScoped(w.svc, obj, p.sel, p.scope)
		if !st.OK() {
			return "", st
		}
		layout, err := hal.ExpandChannelLayout(raw)
		if err != nil {
			return "", hal.StatusBadPropertySize
		}
		return layout.String(), hal.StatusOK
	case kindArrayCount:
		n, st := w.svc.ArrayPropertyCount(obj, hal.Addr(p.sel, p.scope))
		if !st.OK() {
			return "", st
		}
		return strconv.Itoa(n), hal.StatusOK
	}
	return "", hal.StatusUnsupportedOp
}

func formatList[T any](xs []T, f func(T) string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f(x))
	}
	b.WriteByte(']')
	return b.String()
}
