package adapter

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"strings"

	"golang.org/x/mod/modfile"
	m "synver.dev/pkg/synver/internal/model"
)

// PackageScope describes where a parsed file lives inside an artifact.
type PackageScope struct {
	// Qualifier prefixes every declaring type, e.g. "example.com/lib/sub".
	Qualifier string
	// Importable is false for main packages and packages under internal/.
	Importable bool
}

// GoFileAdapter encapsulates Go-specific parsing and member extraction so the
// domain layer can focus on comparison rules while delegating syntax details
// to an infrastructure component.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and source bytes.
	Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// ExtractMembers lists the fields, properties and methods declared in file.
	ExtractMembers(fileSet *token.FileSet, file *ast.File, scope PackageScope) ([]m.Member, error)

	// ModulePath returns the module path declared by go.mod content, or "".
	ModulePath(goMod []byte) string
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	return parser.ParseFile(fileSet, filename, src, parser.SkipObjectResolution)
}

// ModulePath reads the module directive of a go.mod file.
func (a *LocalGoFileAdapter) ModulePath(goMod []byte) string {
	return modfile.ModulePath(goMod)
}

// ExtractMembers walks top-level declarations in source order.
func (a *LocalGoFileAdapter) ExtractMembers(fileSet *token.FileSet, file *ast.File, scope PackageScope) ([]m.Member, error) {
	x := &extractor{fileSet: fileSet, scope: scope, members: make([]m.Member, 0)}

	for _, decl := range file.Decls {
		var err error

		switch d := decl.(type) {
		case *ast.GenDecl:
			err = x.genDecl(d)
		case *ast.FuncDecl:
			err = x.funcDecl(d)
		}

		if err != nil {
			return nil, fmt.Errorf("extract members of %s: %w", fileSet.Position(file.Pos()).Filename, err)
		}
	}

	return x.members, nil
}

type extractor struct {
	fileSet *token.FileSet
	scope   PackageScope
	members []m.Member
}

func (x *extractor) genDecl(d *ast.GenDecl) error {
	for _, spec := range d.Specs {
		switch s := spec.(type) {
		case *ast.TypeSpec:
			if err := x.typeSpec(s); err != nil {
				return err
			}
		case *ast.ValueSpec:
			if err := x.valueSpec(s, d.Tok == token.CONST); err != nil {
				return err
			}
		}
	}

	return nil
}

func (x *extractor) typeSpec(s *ast.TypeSpec) error {
	if err := x.typeDecl(s); err != nil {
		return err
	}

	switch t := s.Type.(type) {
	case *ast.StructType:
		return x.structFields(s.Name.Name, t)
	case *ast.InterfaceType:
		return x.interfaceMethods(s.Name.Name, t)
	}

	return nil
}

// typeDecl records the type name itself, so removing a type or changing its
// underlying type shows up even when it has no fields or methods. Struct and
// interface bodies are left out; their members are listed separately.
func (x *extractor) typeDecl(s *ast.TypeSpec) error {
	var sb strings.Builder

	sb.WriteString("type ")
	sb.WriteString(s.Name.Name)

	if s.TypeParams != nil && len(s.TypeParams.List) > 0 {
		params, err := x.typeParams(s.TypeParams)
		if err != nil {
			return err
		}

		sb.WriteString("[" + params + "]")
	}

	if s.Assign.IsValid() {
		sb.WriteString(" =")
	}

	switch s.Type.(type) {
	case *ast.StructType:
		sb.WriteString(" struct")
	case *ast.InterfaceType:
		sb.WriteString(" interface")
	default:
		text, err := x.render(s.Type)
		if err != nil {
			return err
		}

		sb.WriteString(" " + text)
	}

	x.add(m.Member{
		Kind:          m.KindField,
		DeclaringType: x.declaringType(""),
		Name:          s.Name.Name,
		Flags:         exportedFlag(s.Name.Name) | m.FlagStatic,
		Signature:     sb.String(),
		Visibility:    x.visibility("", s.Name.Name),
		Position:      x.position(s.Name),
	})

	return nil
}

func (x *extractor) structFields(typeName string, t *ast.StructType) error {
	for _, field := range t.Fields.List {
		typeText, err := x.render(field.Type)
		if err != nil {
			return err
		}

		tag := ""
		if field.Tag != nil {
			tag = " " + field.Tag.Value
		}

		if len(field.Names) == 0 {
			name := baseTypeName(field.Type)
			x.add(m.Member{
				Kind:          m.KindField,
				DeclaringType: x.declaringType(typeName),
				Name:          name,
				Flags:         exportedFlag(name) | m.FlagInstance | m.FlagEmbedded,
				Signature:     typeText + tag,
				Visibility:    x.visibility(typeName, name),
				Position:      x.position(field),
			})

			continue
		}

		for _, ident := range field.Names {
			x.add(m.Member{
				Kind:          m.KindField,
				DeclaringType: x.declaringType(typeName),
				Name:          ident.Name,
				Flags:         exportedFlag(ident.Name) | m.FlagInstance,
				Signature:     ident.Name + " " + typeText + tag,
				Visibility:    x.visibility(typeName, ident.Name),
				Position:      x.position(ident),
			})
		}
	}

	return nil
}

func (x *extractor) interfaceMethods(typeName string, t *ast.InterfaceType) error {
	for _, field := range t.Methods.List {
		if len(field.Names) == 0 {
			// Embedded interface or type set term.
			text, err := x.render(field.Type)
			if err != nil {
				return err
			}

			name := baseTypeName(field.Type)
			x.add(m.Member{
				Kind:          m.KindMethod,
				DeclaringType: x.declaringType(typeName),
				Name:          name,
				Flags:         exportedFlag(name) | m.FlagInstance | m.FlagAbstract | m.FlagEmbedded,
				Signature:     text,
				Visibility:    x.visibility(typeName, name),
				Position:      x.position(field),
				Body:          m.NoBody(),
			})

			continue
		}

		funcType, ok := field.Type.(*ast.FuncType)
		if !ok {
			continue
		}

		signature, err := x.funcSignature(funcType)
		if err != nil {
			return err
		}

		for _, ident := range field.Names {
			x.add(m.Member{
				Kind:          m.KindMethod,
				DeclaringType: x.declaringType(typeName),
				Name:          ident.Name,
				Flags:         exportedFlag(ident.Name) | m.FlagInstance | m.FlagAbstract,
				Signature:     ident.Name + signature,
				Visibility:    x.visibility(typeName, ident.Name),
				Position:      x.position(ident),
				Body:          m.NoBody(),
			})
		}
	}

	return nil
}

func (x *extractor) valueSpec(s *ast.ValueSpec, isConst bool) error {
	typeText := ""

	if s.Type != nil {
		text, err := x.render(s.Type)
		if err != nil {
			return err
		}

		typeText = " " + text
	}

	flags := m.FlagStatic
	if isConst {
		flags |= m.FlagConst
	}

	for i, ident := range s.Names {
		if ident.Name == "_" {
			continue
		}

		getter, err := x.initializer(s, i)
		if err != nil {
			return err
		}

		x.add(m.Member{
			Kind:          m.KindProperty,
			DeclaringType: x.declaringType(""),
			Name:          ident.Name,
			Flags:         exportedFlag(ident.Name) | flags,
			Signature:     ident.Name + typeText,
			Visibility:    x.visibility("", ident.Name),
			Position:      x.position(ident),
			Getter:        getter,
			Setter:        m.NoBody(),
		})
	}

	return nil
}

// initializer returns the value expression bound to the i-th name. A single
// value shared by several names (a, b = f()) belongs to all of them.
func (x *extractor) initializer(s *ast.ValueSpec, i int) (m.Body, error) {
	var expr ast.Expr

	switch {
	case i < len(s.Values):
		expr = s.Values[i]
	case len(s.Values) == 1:
		expr = s.Values[0]
	default:
		return m.NoBody(), nil
	}

	text, err := x.render(expr)
	if err != nil {
		return m.Body{}, err
	}

	return m.BodyOf([]byte(text)), nil
}

func (x *extractor) funcDecl(d *ast.FuncDecl) error {
	signature, err := x.funcSignature(d.Type)
	if err != nil {
		return err
	}

	body := m.NoBody()

	if d.Body != nil {
		text, err := x.render(d.Body)
		if err != nil {
			return err
		}

		body = m.BodyOf([]byte(text))
	}

	member := m.Member{
		Kind:       m.KindMethod,
		Name:       d.Name.Name,
		Signature:  d.Name.Name + signature,
		Position:   x.position(d.Name),
		Body:       body,
		Flags:      exportedFlag(d.Name.Name),
		Visibility: x.visibility("", d.Name.Name),
	}

	if d.Recv == nil || len(d.Recv.List) == 0 {
		member.DeclaringType = x.declaringType("")
		member.Flags |= m.FlagStatic
		x.add(member)

		return nil
	}

	recv := d.Recv.List[0].Type
	typeName := baseTypeName(recv)

	member.DeclaringType = x.declaringType(typeName)
	member.Visibility = x.visibility(typeName, d.Name.Name)
	member.Flags |= m.FlagInstance

	if _, ok := recv.(*ast.StarExpr); ok {
		member.Flags |= m.FlagPointerReceiver
	}

	x.add(member)

	return nil
}

// funcSignature renders a function type from its type parameters and the
// types of its parameters and results, without the func keyword:
// "[T any]([]T, int) error". Parameter names are dropped, so renaming one
// keeps the signature and "a, b int" equals "a int, b int".
func (x *extractor) funcSignature(t *ast.FuncType) (string, error) {
	var sb strings.Builder

	if t.TypeParams != nil && len(t.TypeParams.List) > 0 {
		params, err := x.typeParams(t.TypeParams)
		if err != nil {
			return "", err
		}

		sb.WriteString("[" + params + "]")
	}

	params, err := x.fieldTypes(t.Params)
	if err != nil {
		return "", err
	}

	sb.WriteString("(" + strings.Join(params, ", ") + ")")

	results, err := x.fieldTypes(t.Results)
	if err != nil {
		return "", err
	}

	switch len(results) {
	case 0:
	case 1:
		sb.WriteString(" " + results[0])
	default:
		sb.WriteString(" (" + strings.Join(results, ", ") + ")")
	}

	return sb.String(), nil
}

// fieldTypes lists one rendered type per parameter of list.
func (x *extractor) fieldTypes(list *ast.FieldList) ([]string, error) {
	if list == nil {
		return nil, nil
	}

	types := make([]string, 0, list.NumFields())

	for _, field := range list.List {
		text, err := x.render(field.Type)
		if err != nil {
			return nil, err
		}

		count := max(len(field.Names), 1)
		for i := 0; i < count; i++ {
			types = append(types, text)
		}
	}

	return types, nil
}

// typeParams renders a type parameter list with its names, "K comparable, V any".
func (x *extractor) typeParams(list *ast.FieldList) (string, error) {
	groups := make([]string, 0, len(list.List))

	for _, field := range list.List {
		constraint, err := x.render(field.Type)
		if err != nil {
			return "", err
		}

		names := make([]string, 0, len(field.Names))
		for _, ident := range field.Names {
			names = append(names, ident.Name)
		}

		groups = append(groups, strings.Join(names, ", ")+" "+constraint)
	}

	return strings.Join(groups, ", "), nil
}

func (x *extractor) add(member m.Member) {
	x.members = append(x.members, member)
}

func (x *extractor) render(node ast.Node) (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, x.fileSet, node); err != nil {
		return "", fmt.Errorf("print %T: %w", node, err)
	}

	return buf.String(), nil
}

func (x *extractor) position(node ast.Node) string {
	pos := x.fileSet.Position(node.Pos())

	return fmt.Sprintf("%s:%d", pos.Filename, pos.Line)
}

func (x *extractor) declaringType(typeName string) string {
	if typeName == "" {
		return x.scope.Qualifier
	}

	return x.scope.Qualifier + "." + typeName
}

// visibility puts a member in the public pass only when an importer of the
// package can reach it.
func (x *extractor) visibility(typeName, name string) m.Visibility {
	if !x.scope.Importable || !ast.IsExported(name) {
		return m.NonPublic
	}

	if typeName != "" && !ast.IsExported(typeName) {
		return m.NonPublic
	}

	return m.Public
}

func exportedFlag(name string) m.Flags {
	if ast.IsExported(name) {
		return m.FlagExported
	}

	return 0
}

// baseTypeName strips pointers, package qualifiers and type arguments:
// *pkg.List[T] -> List.
func baseTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return baseTypeName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return baseTypeName(t.X)
	case *ast.IndexListExpr:
		return baseTypeName(t.X)
	case *ast.ParenExpr:
		return baseTypeName(t.X)
	}

	return ""
}
