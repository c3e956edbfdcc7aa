package generator

import (
	"strings"

	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

const introspectionPrefix = "__"

// SchemaError wraps a parse or validation failure of the schema text.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return "schema: " + e.Err.Error()
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Schema is a validated schema plus its user-defined types in document order.
type Schema struct {
	*ast.Schema
	ordered []*ast.Definition
}

// LoadSchema parses and validates SDL text.
func LoadSchema(name, text string) (*Schema, error) {
	src := &ast.Source{Name: name, Input: text}
	schema, err := gqlparser.LoadSchema(src)
	if err != nil {
		return nil, &SchemaError{Err: err}
	}
	// the validated type map is unordered, the document gives emission order
	doc, perr := parser.ParseSchema(src)
	if perr != nil {
		return nil, &SchemaError{Err: perr}
	}
	names := make([]string, 0, len(doc.Definitions)+len(doc.Extensions))
	for _, d := range doc.Definitions {
		names = append(names, d.Name)
	}
	for _, d := range doc.Extensions {
		names = append(names, d.Name)
	}
	ordered := lo.FilterMap(lo.Uniq(names), func(name string, _ int) (*ast.Definition, bool) {
		def, ok := schema.Types[name]
		if !ok || def.BuiltIn || strings.HasPrefix(name, introspectionPrefix) {
			return nil, false
		}
		return def, true
	})
	return &Schema{Schema: schema, ordered: ordered}, nil
}

// Definitions returns the user-defined types of kind in document order.
func (s *Schema) Definitions(kind ast.DefinitionKind) []*ast.Definition {
	return lo.Filter(s.ordered, func(def *ast.Definition, _ int) bool {
		return def.Kind == kind
	})
}

// IsQueryRoot reports whether def is the schema's query root.
func (s *Schema) IsQueryRoot(def *ast.Definition) bool {
	if s.Query != nil {
		return s.Query.Name == def.Name
	}
	return def.Name == "Query"
}

// selectableFields drops the introspection fields the validator adds to the root.
func selectableFields(def *ast.Definition) ast.FieldList {
	return lo.Filter(def.Fields, func(f *ast.FieldDefinition, _ int) bool {
		return !strings.HasPrefix(f.Name, introspectionPrefix)
	})
}
