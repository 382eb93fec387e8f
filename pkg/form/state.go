package form

import (
	"fmt"
	"strings"
)

// FieldValue is the read-only view of a field used by cross-field rules.
type FieldValue struct {
	Kind    Kind
	Text    string
	Checked bool
}

// Snapshot holds sibling values at the moment of evaluation, keyed by field name.
type Snapshot map[string]FieldValue

// First returns the value of the first field of the given kind.
// Password and confirmation kinds are unique per form, so "first" is "only".
func (s Snapshot) First(kind Kind) (FieldValue, bool) {
	for _, v := range s {
		if v.Kind == kind {
			return v, true
		}
	}
	return FieldValue{}, false
}

// FormState owns the ordered fields of one form instance.
type FormState struct {
	fields []*Field
	index  map[string]int
	byKind map[Kind]int
}

func newFormState(descs []Descriptor) (*FormState, error) {
	if len(descs) == 0 {
		return nil, ErrNoFields
	}

	s := &FormState{
		fields: make([]*Field, 0, len(descs)),
		index:  make(map[string]int, len(descs)),
		byKind: make(map[Kind]int),
	}

	for _, d := range descs {
		d.Name = strings.TrimSpace(d.Name)
		if d.Name == "" {
			return nil, ErrEmptyFieldName
		}
		if _, err := ParseKind(string(d.Kind)); err != nil {
			return nil, fmt.Errorf("field %q: %w", d.Name, err)
		}
		if _, exists := s.index[d.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, d.Name)
		}
		if _, exists := s.byKind[d.Kind]; exists && d.Kind.singleton() {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKind, d.Kind)
		}

		s.index[d.Name] = len(s.fields)
		if _, exists := s.byKind[d.Kind]; !exists {
			s.byKind[d.Kind] = len(s.fields)
		}
		s.fields = append(s.fields, &Field{desc: d})
	}

	return s, nil
}

func (s *FormState) lookup(name string) (*Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i], true
}

func (s *FormState) firstOfKind(kind Kind) (*Field, bool) {
	i, ok := s.byKind[kind]
	if !ok {
		return nil, false
	}
	return s.fields[i], true
}

// Field returns a copy of the named field.
func (s *FormState) Field(name string) (Field, bool) {
	f, ok := s.lookup(name)
	if !ok {
		return Field{}, false
	}
	return *f, true
}

// Fields returns copies of all fields in declaration order.
func (s *FormState) Fields() []Field {
	out := make([]Field, len(s.fields))
	for i, f := range s.fields {
		out[i] = *f
	}
	return out
}

// Snapshot captures the current value of every field.
func (s *FormState) Snapshot() Snapshot {
	snap := make(Snapshot, len(s.fields))
	for _, f := range s.fields {
		snap[f.desc.Name] = f.snapshotValue()
	}
	return snap
}
