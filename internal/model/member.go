package model

import (
	"bytes"
	"strings"
)

// MemberKind is the category of a declared member.
type MemberKind string

const (
	// KindField is a struct field.
	KindField MemberKind = "field"
	// KindProperty is a package-level const or var.
	KindProperty MemberKind = "property"
	// KindMethod is a function, a method or an interface method.
	KindMethod MemberKind = "method"
)

// MemberKinds lists every kind in report order.
var MemberKinds = []MemberKind{KindField, KindProperty, KindMethod}

// Visibility selects the comparison pass a member belongs to.
type Visibility string

const (
	// Public members are reachable by importers of the package.
	Public Visibility = "public"
	// NonPublic members are everything else.
	NonPublic Visibility = "non-public"
)

// Flags is the attribute set of a member.
type Flags uint16

const (
	FlagExported Flags = 1 << iota
	FlagStatic
	FlagInstance
	FlagPointerReceiver
	FlagConst
	FlagEmbedded
	FlagAbstract
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagExported, "Exported"},
	{FlagStatic, "Static"},
	{FlagInstance, "Instance"},
	{FlagPointerReceiver, "PointerReceiver"},
	{FlagConst, "Const"},
	{FlagEmbedded, "Embedded"},
	{FlagAbstract, "Abstract"},
}

// Has reports whether every flag of f is set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// String renders the set flags in a fixed order, e.g. "Exported, Static".
func (fl Flags) String() string {
	if fl == 0 {
		return "None"
	}

	names := make([]string, 0, len(flagNames))

	for _, entry := range flagNames {
		if fl.Has(entry.flag) {
			names = append(names, entry.name)
		}
	}

	return strings.Join(names, ", ")
}

// Body is an optional executable body. The zero value is an absent body.
type Body struct {
	present bool
	code    []byte
}

// NoBody returns an absent body.
func NoBody() Body {
	return Body{}
}

// BodyOf returns a present body holding a copy of code.
func BodyOf(code []byte) Body {
	return Body{present: true, code: bytes.Clone(code)}
}

// Present reports whether the body exists.
func (b Body) Present() bool {
	return b.present
}

// Code returns the encoded body, nil when absent.
func (b Body) Code() []byte {
	return b.code
}

// Member is a field, property or method declared in an artifact.
type Member struct {
	Kind          MemberKind
	DeclaringType string
	Name          string
	Flags         Flags
	Signature     string
	Visibility    Visibility
	Position      string

	Body   Body // methods
	Getter Body // properties
	Setter Body // properties
}
