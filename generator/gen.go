// gen.go
package generator

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

/*
GraphQL SDL -> fluent query builder generator
- Reads a schema document (gqlparser), types are emitted in document order
- Per object type T:
  * namespace value T with one entry function per field: T.AddX(...) *TType
  * builder TType embedding builder.Selection, chainable AddX methods
  * TData, the response shape of a fully selected T
- Query root gets String() ("query {...}") and Fetch(ctx, client)
- Enums -> string types, unions/interfaces -> marker interfaces
- Scalars mapped via scalar.json, overridable with scalars.json
*/

const headerComment = "Code generated by gqlbuilder-gen. DO NOT EDIT."

type gen struct {
	typeMapper
	f *jen.File
}

// ---------- Generate ----------

// Generate renders the builder package and writes it to conf.OutPath.
func Generate(conf *GenerateConfig) error {
	code, err := GenerateCode(conf)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(conf.OutPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(conf.OutPath, code, 0644); err != nil {
		return fmt.Errorf("write %s: %w", conf.OutPath, err)
	}
	return nil
}

// GenerateCode renders the builder package for conf.Schema as gofmt-ed source.
func GenerateCode(conf *GenerateConfig) ([]byte, error) {
	loadScalars(conf)
	if conf.GoPkgName == "" {
		conf.GoPkgName = "client"
	}
	if conf.RuntimePkg == "" {
		conf.RuntimePkg = DefaultRuntimePkg
	}

	schema, err := LoadSchema(conf.SchemaName, conf.Schema)
	if err != nil {
		return nil, err
	}

	f := jen.NewFile(conf.GoPkgName)
	f.HeaderComment(headerComment)
	f.ImportName(conf.RuntimePkg, "builder")

	g := &gen{typeMapper: typeMapper{conf: conf, schema: schema}, f: f}
	g.genPrelude()
	for _, t := range schema.Definitions(ast.Scalar) {
		g.genScalar(t)
	}
	for _, t := range schema.Definitions(ast.InputObject) {
		g.genInput(t)
	}
	for _, t := range schema.Definitions(ast.Enum) {
		g.genEnum(t)
	}
	for _, t := range schema.Definitions(ast.Object) {
		g.genObject(t)
	}
	for _, t := range schema.Definitions(ast.Union) {
		g.genAbstract(t, unionMembers(schema, t))
	}
	for _, t := range schema.Definitions(ast.Interface) {
		g.genAbstract(t, implementers(schema, t))
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *gen) genPrelude() {
	g.f.Comment("ID is the GraphQL ID scalar.")
	g.f.Type().Id("ID").Op("=").String()
	g.f.Line()
}

// genScalar aliases a custom scalar with no Go mapping to any, so that
// references to it compile.
func (g *gen) genScalar(t *ast.Definition) {
	if _, ok := g.conf.ScalarMap[t.Name]; ok {
		return
	}
	Log.WithField("scalar", t.Name).Warn("no Go mapping for scalar, using any")
	g.f.Commentf("%s is an unmapped scalar", t.Name)
	g.f.Type().Id(t.Name).Op("=").Id("any")
	g.f.Line()
}

// genInput lets input objects be passed as arguments, rendered as GraphQL
// object literals.
func (g *gen) genInput(t *ast.Definition) {
	g.f.Commentf("%s is input", t.Name)
	g.f.Type().Id(t.Name).Op("=").Map(jen.String()).Id("any")
	g.f.Line()
}

func (g *gen) genEnum(t *ast.Definition) {
	if len(t.EnumValues) == 0 {
		return
	}
	Log.WithField("enum", t.Name).Debug("emit enum")
	g.f.Commentf("%s is enum", t.Name)
	g.f.Type().Id(t.Name).String()
	g.f.Line()
	g.f.Const().DefsFunc(func(grp *jen.Group) {
		for _, ev := range t.EnumValues {
			grp.Id(fmt.Sprintf("%s%s", t.Name, toExported(ev.Name))).Id(t.Name).Op("=").Lit(ev.Name)
		}
	})
	g.f.Line()
	// arguments of this type render as bare enum names
	g.f.Func().Params(jen.Id("e").Id(t.Name)).Id("EnumValue").Params().String().Block(
		jen.Return(jen.String().Call(jen.Id("e"))),
	)
	g.f.Line()
}

// ---------- objects ----------

type fieldParams struct {
	method string   // Add method, unique within the type
	args   []string // one per GraphQL argument
	nested string   // builder parameter, empty for scalar-like fields
}

func (g *gen) genObject(t *ast.Definition) {
	fields := selectableFields(t)
	if len(fields) == 0 {
		return
	}
	Log.WithField("type", t.Name).WithField("fields", len(fields)).Debug("emit object")

	local := g.localName(t.Name)
	methods := uniqueNames(fields, methodName)
	params := make([]fieldParams, len(fields))
	for i, fd := range fields {
		params[i] = g.paramNames(local, fd)
		params[i].method = methods[i]
	}

	g.genNamespace(t, local, fields, params)
	g.genBuilder(t, fields, params)
	if g.schema.IsQueryRoot(t) {
		g.genRoot(t)
	}
	g.genData(t, fields)
}

// genNamespace emits the value T whose methods start a fresh TType.
func (g *gen) genNamespace(t *ast.Definition, local string, fields ast.FieldList, params []fieldParams) {
	ns := namespaceName(t.Name)
	g.f.Type().Id(ns).Struct()
	g.f.Line()
	g.f.Commentf("%s starts a %s selection, e.g. %s.%s().", t.Name, builderName(t.Name), t.Name, params[0].method)
	g.f.Var().Id(t.Name).Id(ns)
	g.f.Line()

	for i, fd := range fields {
		g.f.Func().Params(jen.Id(ns)).Id(params[i].method).
			Params(g.paramList(fd, params[i])...).
			Op("*").Id(builderName(t.Name)).
			Block(
				jen.Id(local).Op(":=").Id(constructorName(t.Name)).Call(),
				jen.Return(jen.Id(local).Dot(params[i].method).Call(callArgs(params[i])...)),
			)
		g.f.Line()
	}
}

func (g *gen) genBuilder(t *ast.Definition, fields ast.FieldList, params []fieldParams) {
	name := builderName(t.Name)
	g.f.Commentf("%s accumulates a selection set on %s.", name, t.Name)
	g.f.Type().Id(name).Struct(g.rt("Selection"))
	g.f.Line()
	g.f.Func().Id(constructorName(t.Name)).Params().Op("*").Id(name).Block(
		jen.Return(jen.Op("&").Id(name).Values(
			jen.Id("Selection").Op(":").Add(g.rt("NewSelection").Call(jen.Lit(t.Name))),
		)),
	)
	g.f.Line()

	for i, fd := range fields {
		p := params[i]
		record := []jen.Code{jen.Lit(fd.Name), g.value(fd.Type, p.nested)}
		for j, a := range fd.Arguments {
			record = append(record, g.rt("Arg").Call(jen.Lit(a.Name), jen.Id(p.args[j])))
		}
		g.f.Func().Params(jen.Id("q").Op("*").Id(name)).Id(p.method).
			Params(g.paramList(fd, p)...).
			Op("*").Id(name).
			Block(
				jen.Id("q").Dot("Record").Call(record...),
				jen.Return(jen.Id("q")),
			)
		g.f.Line()
	}
}

// genRoot adds the operation form and the fetch entry point to the query root.
func (g *gen) genRoot(t *ast.Definition) {
	name := builderName(t.Name)
	data := dataName(t.Name)
	g.f.Comment("String renders the selection as a query operation.")
	g.f.Func().Params(jen.Id("q").Op("*").Id(name)).Id("String").Params().String().Block(
		jen.Return(g.rt("QueryString").Call(jen.Id("q"))),
	)
	g.f.Line()
	g.f.Commentf("Fetch sends the query through client and decodes data into %s.", data)
	g.f.Func().Params(jen.Id("q").Op("*").Id(name)).Id("Fetch").
		Params(
			jen.Id("ctx").Qual("context", "Context"),
			jen.Id("client").Op("*").Add(g.rt("Client")),
			jen.Id("opts").Op("...").Add(g.rt("CallOption")),
		).
		Params(
			jen.Op("*").Add(g.rt("Response")).Types(jen.Id(data)),
			jen.Error(),
		).
		Block(
			jen.Return(g.rt("Fetch").Types(jen.Id(data)).Call(
				jen.Id("ctx"), jen.Id("client"), jen.Id("q"), jen.Id("opts").Op("..."),
			)),
		)
	g.f.Line()
}

func (g *gen) genData(t *ast.Definition, fields ast.FieldList) {
	names := uniqueNames(fields, toExported)
	out := lo.Map(fields, func(fd *ast.FieldDefinition, i int) jen.Code {
		return jen.Id(names[i]).Add(g.dataType(fd.Type)).
			Tag(map[string]string{"json": fd.Name + ",omitempty"})
	})
	g.f.Commentf("%s is the response shape of %s.", dataName(t.Name), t.Name)
	g.f.Type().Id(dataName(t.Name)).Struct(out...)
	g.f.Line()
}

// ---------- unions & interfaces ----------

// genAbstract emits the marker interface accepted by fields of type t and
// implements it on each member builder.
func (g *gen) genAbstract(t *ast.Definition, members []*ast.Definition) {
	name := builderName(t.Name)
	marker := "is" + name
	Log.WithField("type", t.Name).WithField("members", len(members)).Debug("emit abstract type")
	g.f.Commentf("%s is implemented by the builders of %s.", name, strings.Join(lo.Map(members, func(d *ast.Definition, _ int) string {
		return d.Name
	}), ", "))
	g.f.Type().Id(name).Interface(
		g.rt("Selector"),
		jen.Id(marker).Params(),
	)
	g.f.Line()
	for _, m := range members {
		if len(selectableFields(m)) == 0 {
			continue
		}
		g.f.Func().Params(jen.Op("*").Id(builderName(m.Name))).Id(marker).Params().Block()
	}
	g.f.Line()
}

func unionMembers(schema *Schema, t *ast.Definition) []*ast.Definition {
	return lo.FilterMap(t.Types, func(name string, _ int) (*ast.Definition, bool) {
		def, ok := schema.Types[name]
		return def, ok && def.Kind == ast.Object
	})
}

// implementers is computed from the document so the order is stable.
func implementers(schema *Schema, t *ast.Definition) []*ast.Definition {
	return lo.Filter(schema.Definitions(ast.Object), func(def *ast.Definition, _ int) bool {
		return lo.Contains(def.Interfaces, t.Name)
	})
}

// ---------- parameters ----------

func (g *gen) paramList(fd *ast.FieldDefinition, p fieldParams) []jen.Code {
	out := make([]jen.Code, 0, len(p.args)+1)
	for i, a := range fd.Arguments {
		out = append(out, jen.Id(p.args[i]).Add(g.goType(a.Type)))
	}
	if p.nested != "" {
		out = append(out, jen.Id(p.nested).Add(g.builderParamType(fd.Type)))
	}
	return out
}

func callArgs(p fieldParams) []jen.Code {
	out := lo.Map(p.args, func(a string, _ int) jen.Code { return jen.Id(a) })
	if p.nested != "" {
		out = append(out, jen.Id(p.nested))
	}
	return out
}

// paramNames picks Go identifiers for the arguments and the nested builder
// of fd. The nested builder is named after the field.
func (g *gen) paramNames(local string, fd *ast.FieldDefinition) fieldParams {
	used := map[string]bool{local: true}
	pick := func(raw string) string {
		n := raw
		for used[n] || g.reserved(n) {
			n += "_"
		}
		used[n] = true
		return n
	}
	p := fieldParams{args: make([]string, 0, len(fd.Arguments))}
	for _, a := range fd.Arguments {
		p.args = append(p.args, pick(a.Name))
	}
	if !g.isScalarLike(fd.Type) {
		p.nested = pick(fd.Name)
	}
	return p
}

// localName is the variable holding the fresh builder in a namespace method.
func (g *gen) localName(typeName string) string {
	n := strings.ToLower(typeName[:1]) + typeName[1:]
	for g.reserved(n) {
		n += "_"
	}
	return n
}

// reserved: names a parameter must not shadow in the generated bodies.
func (g *gen) reserved(n string) bool {
	if n == "_" || goKeywords[n] || predeclared[n] || generatedIdents[n] {
		return true
	}
	if _, ok := g.schema.Types[n]; ok {
		return true
	}
	for _, st := range g.conf.ScalarMap {
		if st.Type == n || (st.Pkg != "" && path.Base(st.Pkg) == n) {
			return true
		}
	}
	return false
}

// ---------- naming ----------

func namespaceName(typeName string) string {
	return strings.ToLower(typeName[:1]) + typeName[1:] + "Namespace"
}

func builderName(typeName string) string {
	return typeName + "Type"
}

func constructorName(typeName string) string {
	return "New" + builderName(typeName)
}

func dataName(typeName string) string {
	return typeName + "Data"
}

// uniqueNames applies name to every field, appending _ to names already taken.
func uniqueNames(fields ast.FieldList, name func(string) string) []string {
	used := map[string]bool{}
	return lo.Map(fields, func(fd *ast.FieldDefinition, _ int) string {
		n := name(fd.Name)
		for used[n] {
			n += "_"
		}
		used[n] = true
		return n
	})
}

// methodName is "Add" plus the field name with its first letter upper-cased.
func methodName(field string) string {
	return "Add" + strings.ToUpper(field[:1]) + field[1:]
}

var goKeywords = map[string]bool{
	"break": true, "default": true, "func": true, "interface": true,
	"select": true, "case": true, "defer": true, "go": true, "map": true,
	"struct": true, "chan": true, "else": true, "goto": true, "package": true,
	"switch": true, "const": true, "fallthrough": true, "if": true, "range": true,
	"type": true, "continue": true, "for": true, "import": true, "return": true,
	"var": true,
}

var predeclared = map[string]bool{
	"any": true, "bool": true, "byte": true, "comparable": true, "complex64": true,
	"complex128": true, "error": true, "float32": true, "float64": true, "int": true,
	"int8": true, "int16": true, "int32": true, "int64": true, "rune": true,
	"string": true, "uint": true, "uint8": true, "uint16": true, "uint32": true,
	"uint64": true, "uintptr": true, "true": true, "false": true, "iota": true,
	"nil": true, "append": true, "cap": true, "len": true, "make": true, "new": true,
}

// identifiers referenced by the generated bodies
var generatedIdents = map[string]bool{
	"q": true, "ctx": true, "client": true, "opts": true,
	"builder": true, "math": true, "time": true, "context": true,
}

func toExported(name string) string {
	if name == "" {
		return ""
	}
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	})
	for i := range parts {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	res := strings.Join(parts, "")
	if res == "" {
		res = name
	}
	if res[0] >= '0' && res[0] <= '9' {
		res = "X" + res
	}
	if res[0] == '_' {
		res = "X" + res
	}
	return res
}
