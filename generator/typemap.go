package generator

import (
	"github.com/dave/jennifer/jen"
	"github.com/vektah/gqlparser/v2/ast"
)

// Type-mapping rules. Non-null is erased everywhere: gqlparser keeps it as a
// flag on the node, so only Elem (list) and NamedType are looked at.

type typeMapper struct {
	conf   *GenerateConfig
	schema *Schema
}

// namedType walks down list wrappers to the named type.
func namedType(t *ast.Type) string {
	for t.Elem != nil {
		t = t.Elem
	}
	return t.NamedType
}

func isList(t *ast.Type) bool {
	return t.Elem != nil
}

func (m *typeMapper) kind(name string) ast.DefinitionKind {
	if def, ok := m.schema.Types[name]; ok {
		return def.Kind
	}
	return ""
}

// isScalarLike: the field's value is a scalar, enum or list of them, so the
// Add method takes no nested builder.
func (m *typeMapper) isScalarLike(t *ast.Type) bool {
	name := namedType(t)
	switch m.kind(name) {
	case ast.Scalar, ast.Enum:
		return true
	case "":
		_, ok := m.conf.ScalarMap[name]
		return ok
	}
	return false
}

// isAbstract: unions and interfaces select their members through inline fragments.
func (m *typeMapper) isAbstract(t *ast.Type) bool {
	switch m.kind(namedType(t)) {
	case ast.Union, ast.Interface:
		return true
	}
	return false
}

func (m *typeMapper) isObject(name string) bool {
	return m.kind(name) == ast.Object
}

// goType is the Go type of an argument or scalar value, e.g. [Int!]! -> []int.
func (m *typeMapper) goType(t *ast.Type) *jen.Statement {
	if isList(t) {
		return jen.Index().Add(m.goType(t.Elem))
	}
	return m.namedGoType(t.NamedType)
}

func (m *typeMapper) namedGoType(name string) *jen.Statement {
	if g, ok := m.conf.ScalarMap[name]; ok {
		if g.Pkg != "" {
			return jen.Qual(g.Pkg, g.Type)
		}
		return jen.Id(g.Type)
	}
	// anything else passes through by name
	return jen.Id(name)
}

func (m *typeMapper) category(t *ast.Type) string {
	return m.conf.ScalarMap[namedType(t)].Category
}

func (m *typeMapper) scalarKind(t *ast.Type) *jen.Statement {
	switch m.category(t) {
	case CategoryNumeric:
		return m.rt("ScalarNumeric")
	case CategoryText:
		return m.rt("ScalarText")
	case CategoryBoolean:
		return m.rt("ScalarBoolean")
	case CategoryDate:
		return m.rt("ScalarDate")
	}
	return m.rt("ScalarOther")
}

// placeholder is the source text of a scalar field's placeholder value.
func (m *typeMapper) placeholder(t *ast.Type) *jen.Statement {
	if isList(t) {
		return jen.Index().Add(m.goType(t.Elem)).Values()
	}
	switch m.category(t) {
	case CategoryNumeric:
		return jen.Qual("math", "NaN").Call()
	case CategoryText:
		return jen.Lit("")
	case CategoryBoolean:
		return jen.False()
	case CategoryDate:
		return jen.Qual("time", "Unix").Call(jen.Lit(0), jen.Lit(0)).Dot("UTC").Call()
	}
	return jen.Nil()
}

// value is the tagged builder.Value recorded by an Add method. param is the
// nested builder parameter, unused for scalar-like fields.
func (m *typeMapper) value(t *ast.Type, param string) *jen.Statement {
	if m.isScalarLike(t) {
		ctor := "Scalar"
		if isList(t) {
			ctor = "ScalarList"
		}
		return m.rt(ctor).Call(m.scalarKind(t), m.placeholder(t))
	}
	ctor := "Nested"
	if isList(t) {
		ctor = "NestedList"
	}
	v := m.rt(ctor).Call(jen.Id(param))
	if m.isAbstract(t) {
		v = v.Dot("Fragment").Call()
	}
	return v
}

// builderParamType is the type of the nested builder parameter: the marker
// interface for unions and interfaces, a builder pointer otherwise.
func (m *typeMapper) builderParamType(t *ast.Type) *jen.Statement {
	name := namedType(t)
	if m.isAbstract(t) {
		return jen.Id(builderName(name))
	}
	return jen.Op("*").Id(builderName(name))
}

// dataType is the field type inside a generated <Type>Data struct.
func (m *typeMapper) dataType(t *ast.Type) *jen.Statement {
	if isList(t) || m.isObject(t.NamedType) || m.isAbstract(t) {
		return m.dataElemType(t)
	}
	return jen.Op("*").Add(m.namedGoType(t.NamedType))
}

func (m *typeMapper) dataElemType(t *ast.Type) *jen.Statement {
	if isList(t) {
		return jen.Index().Add(m.dataElemType(t.Elem))
	}
	switch {
	case m.isObject(t.NamedType):
		return jen.Op("*").Id(dataName(t.NamedType))
	case m.isAbstract(t):
		return jen.Map(jen.String()).Id("any")
	}
	return m.namedGoType(t.NamedType)
}

func (m *typeMapper) rt(name string) *jen.Statement {
	return jen.Qual(m.conf.RuntimePkg, name)
}
