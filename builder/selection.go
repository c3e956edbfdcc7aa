// Package builder is the runtime shared by every file produced by gqlbuilder-gen.
//
// A generated builder embeds Selection and records one entry per chained Add call.
// Each entry carries a tagged Value telling the stringifier and the response
// reshaper whether the field is a scalar, a scalar list, a nested selection or a
// list of nested selections.
package builder

import "reflect"

// Kind tags the shape of a selected field.
type Kind int

const (
	KindScalar Kind = iota
	KindScalarList
	KindNested
	KindNestedList
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindScalarList:
		return "ScalarList"
	case KindNested:
		return "Nested"
	case KindNestedList:
		return "NestedList"
	}
	return "Unknown"
}

// ScalarKind is the category of a scalar leaf.
type ScalarKind int

const (
	ScalarOther ScalarKind = iota
	ScalarNumeric
	ScalarText
	ScalarBoolean
	ScalarDate
)

// Selector is implemented by every generated builder through the embedded Selection.
type Selector interface {
	SelectionSet() *Selection
}

// Value is the placeholder recorded for a selected field.
type Value struct {
	Kind        Kind
	Scalar      ScalarKind
	Placeholder any
	Nested      Selector
	fragment    bool
}

// Scalar is a scalar leaf with its placeholder.
func Scalar(kind ScalarKind, placeholder any) Value {
	return Value{Kind: KindScalar, Scalar: kind, Placeholder: placeholder}
}

// ScalarList is a list of scalars, placeholder is usually an empty slice.
func ScalarList(kind ScalarKind, placeholder any) Value {
	return Value{Kind: KindScalarList, Scalar: kind, Placeholder: placeholder}
}

// Nested is a single nested selection.
func Nested(sel Selector) Value {
	if isNil(sel) {
		return Value{Kind: KindNested}
	}
	return Value{Kind: KindNested, Nested: sel, Placeholder: sel}
}

// NestedList is a list of objects. The placeholder always starts with exactly
// the one builder passed in.
func NestedList(sel Selector) Value {
	if isNil(sel) {
		return Value{Kind: KindNestedList, Placeholder: []Selector{}}
	}
	return Value{Kind: KindNestedList, Nested: sel, Placeholder: []Selector{sel}}
}

// Fragment marks a union-typed field, the nested selection renders as an inline fragment.
func (v Value) Fragment() Value {
	v.fragment = true
	return v
}

// IsFragment reports whether the value renders as an inline fragment.
func (v Value) IsFragment() bool {
	return v.fragment
}

func isNil(sel Selector) bool {
	if sel == nil {
		return true
	}
	rv := reflect.ValueOf(sel)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// Argument is a GraphQL argument captured at selection time.
type Argument struct {
	Name  string
	Value any
}

// Arg captures one argument.
func Arg(name string, value any) Argument {
	return Argument{Name: name, Value: value}
}

type entry struct {
	name  string
	args  []Argument
	value Value
}

// Selection is the ordered selection set of one builder instance.
// The zero value is usable; NewSelection also records the GraphQL type name.
type Selection struct {
	typeName string
	entries  []*entry
	index    map[string]int
	err      error
}

// NewSelection returns an empty selection set for typeName.
func NewSelection(typeName string) Selection {
	return Selection{typeName: typeName}
}

// SelectionSet implements Selector.
func (s *Selection) SelectionSet() *Selection {
	return s
}

// TypeName is the GraphQL object type the selection belongs to.
func (s *Selection) TypeName() string {
	return s.typeName
}

// Record adds a field. A field already present is rejected: the first entry is
// kept and a *DuplicateSelectionError is stored for Err.
func (s *Selection) Record(name string, value Value, args ...Argument) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[name]; ok {
		if s.err == nil {
			s.err = &DuplicateSelectionError{TypeName: s.typeName, Field: name}
		}
		return
	}
	if args == nil {
		args = []Argument{}
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, &entry{name: name, args: args, value: value})
}

// Err returns the first error of this selection or of any nested selection.
func (s *Selection) Err() error {
	if s.err != nil {
		return s.err
	}
	for _, e := range s.entries {
		if e.value.Nested == nil {
			continue
		}
		if err := e.value.Nested.SelectionSet().Err(); err != nil {
			return err
		}
	}
	return nil
}

// Fields returns the selected field names in selection order.
func (s *Selection) Fields() []string {
	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.name)
	}
	return out
}

// Arguments returns the arguments captured for name.
func (s *Selection) Arguments(name string) []Argument {
	if e := s.lookup(name); e != nil {
		return e.args
	}
	return nil
}

// Value returns the tagged value recorded for name.
func (s *Selection) Value(name string) (Value, bool) {
	if e := s.lookup(name); e != nil {
		return e.value, true
	}
	return Value{}, false
}

// Placeholder returns the placeholder recorded for name.
func (s *Selection) Placeholder(name string) (any, bool) {
	if e := s.lookup(name); e != nil {
		return e.value.Placeholder, true
	}
	return nil, false
}

func (s *Selection) lookup(name string) *entry {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return s.entries[i]
}
