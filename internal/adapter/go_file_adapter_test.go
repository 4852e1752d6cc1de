package adapter

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "synver.dev/pkg/synver/internal/model"
)

const extractFixture = `package lib

import "context"

const (
	Version       = "1.2.3"
	maxRetries    = 3
	_             = "ignored"
)

var DefaultTimeout, idle int = 30, 5

type Client struct {
	Name    string ` + "`json:\"name\"`" + `
	retries int
	*Logger
}

type hidden struct {
	Exported bool
}

type Doer interface {
	Do(ctx context.Context) error
	fmt.Stringer
}

func New(name string) *Client {
	return &Client{Name: name}
}

func (c *Client) Do(ctx context.Context) error { return nil }

func (c Client) String() string { return c.Name }

func (h hidden) Visible() {}

func Map[T, U any](in []T, fn func(T) U) []U { return nil }
`

func extractFrom(t *testing.T, src string, scope PackageScope) []m.Member {
	t.Helper()

	adapter := NewLocalGoFileAdapter()
	fset := token.NewFileSet()

	file, err := adapter.Parse(fset, "lib.go", []byte(src))
	require.NoError(t, err)

	members, err := adapter.ExtractMembers(fset, file, scope)
	require.NoError(t, err)

	return members
}

func lookup(t *testing.T, members []m.Member, declaringType, name string) m.Member {
	t.Helper()

	for _, member := range members {
		if member.DeclaringType == declaringType && member.Name == name {
			return member
		}
	}

	t.Fatalf("member %s.%s not found", declaringType, name)

	return m.Member{}
}

func TestLocalGoFileAdapter_Parse(t *testing.T) {
	adapter := NewLocalGoFileAdapter()
	fset := token.NewFileSet()

	file, err := adapter.Parse(fset, "main.go", []byte("package main\n\nfunc main() {}\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if file.Name.Name != "main" {
		t.Fatalf("Parse() package = %s, want main", file.Name.Name)
	}
}

func TestLocalGoFileAdapter_Parse_InvalidSource(t *testing.T) {
	adapter := NewLocalGoFileAdapter()
	fset := token.NewFileSet()

	if _, err := adapter.Parse(fset, "broken.go", []byte("package foo\n func")); err == nil {
		t.Fatalf("Parse() expected error for invalid source")
	}
}

func TestLocalGoFileAdapter_ExtractMembers(t *testing.T) {
	scope := PackageScope{Qualifier: "example.com/lib", Importable: true}
	members := extractFrom(t, extractFixture, scope)

	t.Run("properties", func(t *testing.T) {
		version := lookup(t, members, "example.com/lib", "Version")
		assert.Equal(t, m.KindProperty, version.Kind)
		assert.Equal(t, m.FlagExported|m.FlagStatic|m.FlagConst, version.Flags)
		assert.Equal(t, `"1.2.3"`, string(version.Getter.Code()))
		assert.False(t, version.Setter.Present())
		assert.Equal(t, m.Public, version.Visibility)

		retries := lookup(t, members, "example.com/lib", "maxRetries")
		assert.Equal(t, m.NonPublic, retries.Visibility)

		idle := lookup(t, members, "example.com/lib", "idle")
		assert.Equal(t, "idle int", idle.Signature)
		assert.Equal(t, "5", string(idle.Getter.Code()))
		assert.Equal(t, m.FlagStatic, idle.Flags)

		for _, member := range members {
			assert.NotEqual(t, "_", member.Name)
		}
	})

	t.Run("fields", func(t *testing.T) {
		name := lookup(t, members, "example.com/lib.Client", "Name")
		assert.Equal(t, m.KindField, name.Kind)
		assert.Equal(t, "Name string `json:\"name\"`", name.Signature)
		assert.Equal(t, m.FlagExported|m.FlagInstance, name.Flags)
		assert.Equal(t, m.Public, name.Visibility)

		embedded := lookup(t, members, "example.com/lib.Client", "Logger")
		assert.Equal(t, "*Logger", embedded.Signature)
		assert.True(t, embedded.Flags.Has(m.FlagEmbedded))

		exportedOfHidden := lookup(t, members, "example.com/lib.hidden", "Exported")
		assert.Equal(t, m.NonPublic, exportedOfHidden.Visibility)
		assert.True(t, exportedOfHidden.Flags.Has(m.FlagExported))
	})

	t.Run("methods", func(t *testing.T) {
		newFn := lookup(t, members, "example.com/lib", "New")
		assert.Equal(t, "New(string) *Client", newFn.Signature)
		assert.Equal(t, m.FlagExported|m.FlagStatic, newFn.Flags)
		assert.True(t, newFn.Body.Present())
		assert.Equal(t, "lib.go:28", newFn.Position)

		do := lookup(t, members, "example.com/lib.Client", "Do")
		assert.Equal(t, m.FlagExported|m.FlagInstance|m.FlagPointerReceiver, do.Flags)

		str := lookup(t, members, "example.com/lib.Client", "String")
		assert.False(t, str.Flags.Has(m.FlagPointerReceiver))

		visible := lookup(t, members, "example.com/lib.hidden", "Visible")
		assert.Equal(t, m.NonPublic, visible.Visibility)

		generic := lookup(t, members, "example.com/lib", "Map")
		assert.Equal(t, "Map[T, U any]([]T, func(T) U) []U", generic.Signature)
	})

	t.Run("types", func(t *testing.T) {
		client := lookup(t, members, "example.com/lib", "Client")
		assert.Equal(t, m.KindField, client.Kind)
		assert.Equal(t, "type Client struct", client.Signature)
		assert.Equal(t, m.FlagExported|m.FlagStatic, client.Flags)
		assert.Equal(t, m.Public, client.Visibility)

		assert.Equal(t, "type Doer interface", lookup(t, members, "example.com/lib", "Doer").Signature)
		assert.Equal(t, m.NonPublic, lookup(t, members, "example.com/lib", "hidden").Visibility)
	})

	t.Run("interface methods", func(t *testing.T) {
		do := lookup(t, members, "example.com/lib.Doer", "Do")
		assert.Equal(t, m.FlagExported|m.FlagInstance|m.FlagAbstract, do.Flags)
		assert.False(t, do.Body.Present())
		assert.Equal(t, "Do(context.Context) error", do.Signature)

		stringer := lookup(t, members, "example.com/lib.Doer", "Stringer")
		assert.True(t, stringer.Flags.Has(m.FlagEmbedded))
		assert.Equal(t, "fmt.Stringer", stringer.Signature)
	})
}

func TestLocalGoFileAdapter_ExtractMembers_NotImportable(t *testing.T) {
	members := extractFrom(t, extractFixture, PackageScope{Qualifier: "example.com/lib/internal/x"})

	require.NotEmpty(t, members)

	for _, member := range members {
		assert.Equal(t, m.NonPublic, member.Visibility, member.Name)
	}
}

func TestLocalGoFileAdapter_BodiesIgnoreComments(t *testing.T) {
	scope := PackageScope{Qualifier: "lib", Importable: true}

	plain := extractFrom(t, "package lib\n\nfunc F() int {\n\treturn 1\n}\n", scope)
	commented := extractFrom(t, "package lib\n\nfunc F() int {\n\treturn 1 // one\n}\n", scope)

	require.Len(t, plain, 1)
	require.Len(t, commented, 1)
	assert.Equal(t, plain[0].Body.Code(), commented[0].Body.Code())
}

func TestLocalGoFileAdapter_SignaturesIgnoreParameterNames(t *testing.T) {
	scope := PackageScope{Qualifier: "lib", Importable: true}

	tests := []struct {
		name  string
		left  string
		right string
	}{
		{name: "renamed parameter", left: "func Greet(name string) string", right: "func Greet(who string) string"},
		{name: "grouped parameters", left: "func Add(a, b int) int", right: "func Add(x int, y int) int"},
		{name: "named results", left: "func Split(s string) (head, tail string)", right: "func Split(string) (string, string)"},
		{name: "unnamed parameter", left: "func Skip(_ int, v ...string)", right: "func Skip(int, ...string)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := extractFrom(t, "package lib\n\n"+tt.left+" { panic(0) }\n", scope)
			right := extractFrom(t, "package lib\n\n"+tt.right+" { panic(0) }\n", scope)

			require.Len(t, left, 1)
			require.Len(t, right, 1)
			assert.Equal(t, left[0].Signature, right[0].Signature)
		})
	}

	split := extractFrom(t, "package lib\n\nfunc Split(s string) (head, tail string) { return }\n", scope)
	assert.Equal(t, "Split(string) (string, string)", split[0].Signature)

	method := extractFrom(t, "package lib\n\ntype I interface {\n\tGet(key string) (value []byte, err error)\n}\n", scope)
	assert.Equal(t, "Get(string) ([]byte, error)", lookup(t, method, "lib.I", "Get").Signature)
}

func TestLocalGoFileAdapter_TypeDeclarations(t *testing.T) {
	scope := PackageScope{Qualifier: "example.com/units", Importable: true}

	members := extractFrom(t, `package units

type Celsius float64

type ID = string

type Empty struct{}

type Set[K comparable, V any] map[K]V

type (
	kelvin int
)
`, scope)

	require.Len(t, members, 5)

	tests := []struct {
		name      string
		signature string
		public    bool
	}{
		{name: "Celsius", signature: "type Celsius float64", public: true},
		{name: "ID", signature: "type ID = string", public: true},
		{name: "Empty", signature: "type Empty struct", public: true},
		{name: "Set", signature: "type Set[K comparable, V any] map[K]V", public: true},
		{name: "kelvin", signature: "type kelvin int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member := lookup(t, members, "example.com/units", tt.name)
			assert.Equal(t, m.KindField, member.Kind)
			assert.Equal(t, tt.signature, member.Signature)
			assert.Equal(t, tt.public, member.Visibility == m.Public)
		})
	}
}

func TestLocalGoFileAdapter_ModulePath(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	assert.Equal(t, "example.com/lib", adapter.ModulePath([]byte("module example.com/lib\n\ngo 1.22\n")))
	assert.Empty(t, adapter.ModulePath([]byte("go 1.22\n")))
}
