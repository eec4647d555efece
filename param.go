package rtwdf

import "fmt"

// ParamKind distinguishes a boolean-valued parameter (encoded 0.0/1.0)
// from a real-valued one (spec.md §3 "Parameter table").
type ParamKind int

const (
	ParamReal ParamKind = iota
	ParamBool
)

// ParamDescriptor is one entry of the circuit author's ordered parameter
// table (spec.md §3, §6 wire form).
type ParamDescriptor struct {
	Name  string
	ID    int
	Kind  ParamKind
	Value float64
	Units string
	Low   float64
	High  float64
}

// SetFunc mutates whatever circuit state a parameter controls, reporting
// whether this change affects port resistances (and therefore requires
// the caller to re-Adapt the tree) — spec.md §4.5 "setParam".
type SetFunc func(value float64) (needsAdapt bool)

type registeredParam struct {
	desc ParamDescriptor
	set  SetFunc
}

// ParamTable is the ordered registry of a circuit's author-declared
// parameters, indexed by ID for host read/write access.
type ParamTable struct {
	entries []registeredParam
	byID    map[int]int // id -> index into entries
}

// NewParamTable returns an empty parameter table.
func NewParamTable() *ParamTable {
	return &ParamTable{byID: make(map[int]int)}
}

// Register appends a parameter descriptor and the setter that applies a
// new value to the circuit. Registration order is preserved by Params().
func (t *ParamTable) Register(desc ParamDescriptor, set SetFunc) {
	t.byID[desc.ID] = len(t.entries)
	t.entries = append(t.entries, registeredParam{desc: desc, set: set})
}

// Params returns the parameter descriptors in registration order
// (spec.md §4.5 "getParams").
func (t *ParamTable) Params() []ParamDescriptor {
	out := make([]ParamDescriptor, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.desc
	}
	return out
}

// Set applies a new value to the parameter with the given id, updating
// the stored descriptor value, and reports whether the change requires
// re-adaptation (spec.md §4.5, P6 "parameter idempotence": calling Set
// twice with the same value is equivalent to calling it once, since the
// setter is expected to be idempotent for a repeated value).
func (t *ParamTable) Set(id int, value float64) (needsAdapt bool, err error) {
	idx, ok := t.byID[id]
	if !ok {
		return false, fmt.Errorf("rtwdf: no parameter with id %d", id)
	}
	e := &t.entries[idx]
	needsAdapt = e.set(value)
	e.desc.Value = value
	return needsAdapt, nil
}
