package builder

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strings"
)

const (
	indentWidth   = 2
	typenameField = "__typename"
)

// Enum is implemented by generated enum types. Enum arguments render as bare
// names instead of strings.
type Enum interface {
	EnumValue() string
}

// Stringify renders the selection set in GraphQL syntax, nested selections
// indented two spaces per level.
func (s *Selection) Stringify() string {
	lines := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		var b strings.Builder
		b.WriteString(e.name)
		if len(e.args) > 0 {
			b.WriteString("(")
			for i, a := range e.args {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(a.Name)
				b.WriteString(": ")
				b.WriteString(serializeArgument(a.Value))
			}
			b.WriteString(")")
		}
		if e.value.Nested != nil {
			nested := e.value.Nested.SelectionSet()
			b.WriteString(" ")
			if e.value.fragment && nested.typeName != "" {
				b.WriteString("{\n")
				b.WriteString(applyIndent(typenameField, indentWidth))
				b.WriteString("\n")
				b.WriteString(applyIndent("... on "+nested.typeName+" "+nested.Stringify(), indentWidth))
				b.WriteString("\n}")
			} else {
				b.WriteString(nested.Stringify())
			}
		}
		lines = append(lines, applyIndent(b.String(), indentWidth))
	}
	return "{\n" + strings.Join(lines, "\n") + "\n}"
}

// String implements fmt.Stringer with the bare selection set.
func (s *Selection) String() string {
	return s.Stringify()
}

// QueryString renders sel as a query operation: "query { ... }".
func QueryString(sel Selector) string {
	return "query " + sel.SelectionSet().Stringify()
}

// Build returns the query operation text, or the first selection error.
func (s *Selection) Build() (string, error) {
	if err := s.Err(); err != nil {
		return "", err
	}
	return QueryString(s), nil
}

// serializeArgument renders an argument value as a GraphQL literal. Enums
// render bare, maps with string keys render as input objects, lists recurse
// into their elements and everything else is JSON-encoded. Values JSON cannot
// represent (NaN, channels, ...) render as null.
func serializeArgument(v any) string {
	if v == nil {
		return "null"
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return "null"
	}
	if e, ok := v.(Enum); ok {
		return e.EnumValue()
	}
	if _, ok := v.(json.Marshaler); ok {
		return encodeJSON(v)
	}
	switch rv.Kind() {
	case reflect.Ptr:
		return serializeArgument(rv.Elem().Interface())
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return encodeJSON(v)
		}
		if rv.IsNil() {
			return "null"
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		fields := make([]string, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, k.String()+": "+serializeArgument(rv.MapIndex(k).Interface()))
		}
		return "{" + strings.Join(fields, ", ") + "}"
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return encodeJSON(v)
		}
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "null"
		}
		items := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, serializeArgument(rv.Index(i).Interface()))
		}
		return "[" + strings.Join(items, ",") + "]"
	}
	return encodeJSON(v)
}

func encodeJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "null"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func applyIndent(s string, indent int) string {
	pad := strings.Repeat(" ", indent)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
