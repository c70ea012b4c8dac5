package internal

import "strconv"

type keyKind uint8

const (
	keyName keyKind = iota
	keyIndex
	keyIterate
)

// Key addresses a field of a tracked container.
// It is comparable and can be used as a map key.
type Key struct {
	kind  keyKind
	name  string
	index int
}

// IterateKey stands for "the set of keys of this container".
// Every enumeration read collapses onto it.
var IterateKey = Key{kind: keyIterate}

var (
	LengthKey = Name("length")
	ValueKey  = Name("value")
)

func Name(name string) Key { return Key{kind: keyName, name: name} }

func Index(i int) Key { return Key{kind: keyIndex, index: i} }

func (k Key) IsName() bool    { return k.kind == keyName }
func (k Key) IsIndex() bool   { return k.kind == keyIndex }
func (k Key) IsIterate() bool { return k.kind == keyIterate }

// Name returns the field name, empty for non-named keys.
func (k Key) Name() string { return k.name }

// Index returns the position, -1 for non-index keys.
func (k Key) Index() int {
	if k.kind != keyIndex {
		return -1
	}
	return k.index
}

func (k Key) String() string {
	switch k.kind {
	case keyIndex:
		return strconv.Itoa(k.index)
	case keyIterate:
		return "<iterate>"
	default:
		return k.name
	}
}

// TrackOp is the kind of read being recorded.
type TrackOp uint8

const (
	TrackGet TrackOp = iota
	TrackHas
	TrackIterate
)

func (op TrackOp) String() string {
	switch op {
	case TrackHas:
		return "has"
	case TrackIterate:
		return "iterate"
	default:
		return "get"
	}
}

// TriggerOp is the kind of write being notified.
type TriggerOp uint8

const (
	TriggerSet TriggerOp = iota
	TriggerAdd
	TriggerDelete
)

func (op TriggerOp) String() string {
	switch op {
	case TriggerAdd:
		return "add"
	case TriggerDelete:
		return "delete"
	default:
		return "set"
	}
}

// invalidates maps a write kind to the read kinds it makes stale.
var invalidates = map[TriggerOp][]TrackOp{
	TriggerSet:    {TrackGet},
	TriggerAdd:    {TrackGet, TrackHas, TrackIterate},
	TriggerDelete: {TrackGet, TrackHas, TrackIterate},
}

// structural reports whether the write changes what enumeration observes.
func (op TriggerOp) structural() bool {
	return op == TriggerAdd || op == TriggerDelete
}
