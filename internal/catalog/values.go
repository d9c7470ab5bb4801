package catalog

// GenerateFunc turns the current option values into configuration.nix
// lines. Injected so this package stays independent of the generator.
type GenerateFunc func(map[FieldID]Value) []string

// Values holds the mutable option state: the current value of every field
// plus the immutable defaults it was cloned from, and a memoized copy of
// the generated configuration text.
//
// Values is owned by the UI event loop and is deliberately unsynchronized;
// only one goroutine ever touches it.
type Values struct {
	current  map[FieldID]Value
	defaults map[FieldID]Value

	generate GenerateFunc
	lines    []string
	dirty    bool
}

// NewValues builds the store with every field at its catalog default.
func NewValues(generate GenerateFunc) *Values {
	return &Values{
		current:  Defaults(),
		defaults: Defaults(),
		generate: generate,
		dirty:    true,
	}
}

// Get returns the current value for a field.
func (v *Values) Get(id FieldID) Value {
	return v.current[id]
}

// Set replaces a field's value and invalidates the generated text.
func (v *Values) Set(id FieldID, val Value) {
	if _, ok := v.current[id]; !ok {
		return // unknown field; keep current/defaults key sets identical
	}
	v.current[id] = val
	v.dirty = true
	v.lines = nil
}

// Modified reports whether a field differs from its default.
func (v *Values) Modified(id FieldID) bool {
	return v.current[id] != v.defaults[id]
}

// SectionModified counts the fields in sec that differ from their defaults.
func (v *Values) SectionModified(sec Section) int {
	n := 0
	for _, f := range sec.Fields {
		if v.Modified(f.ID) {
			n++
		}
	}
	return n
}

// ResetSection restores every field in sec to its default value.
func (v *Values) ResetSection(sec Section) {
	for _, f := range sec.Fields {
		if v.Modified(f.ID) {
			v.current[f.ID] = v.defaults[f.ID]
			v.dirty = true
			v.lines = nil
		}
	}
}

// Lines returns the generated configuration text, regenerating it only
// when a value changed since the last call.
func (v *Values) Lines() []string {
	if v.dirty {
		v.lines = v.generate(v.snapshot())
		v.dirty = false
	}
	return v.lines
}

func (v *Values) snapshot() map[FieldID]Value {
	dup := make(map[FieldID]Value, len(v.current))
	for id, val := range v.current {
		dup[id] = val
	}
	return dup
}
