package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags_String(t *testing.T) {
	assert.Equal(t, "None", Flags(0).String())
	assert.Equal(t, "Exported, Static", (FlagStatic | FlagExported).String())
	assert.Equal(t, "Exported, Instance, PointerReceiver", (FlagExported | FlagInstance | FlagPointerReceiver).String())
	assert.Equal(t, "Static, Const", (FlagConst | FlagStatic).String())
}

func TestBody_Optional(t *testing.T) {
	absent := NoBody()
	assert.False(t, absent.Present())
	assert.Nil(t, absent.Code())

	var zero Body
	assert.Equal(t, absent, zero)

	src := []byte("{ return 1 }")
	present := BodyOf(src)
	src[0] = 'X'

	assert.True(t, present.Present())
	assert.Equal(t, "{ return 1 }", string(present.Code()), "BodyOf must copy its input")

	empty := BodyOf(nil)
	assert.True(t, empty.Present(), "an empty body is still present")
}

func TestArtifact_MembersOf(t *testing.T) {
	artifact := Artifact{Members: []Member{
		{Kind: KindField, Name: "A", Visibility: Public},
		{Kind: KindMethod, Name: "B", Visibility: Public},
		{Kind: KindField, Name: "c", Visibility: NonPublic},
		{Kind: KindField, Name: "D", Visibility: Public},
	}}

	fields := artifact.MembersOf(KindField, Public)
	assert.Len(t, fields, 2)
	assert.Equal(t, "A", fields[0].Name)
	assert.Equal(t, "D", fields[1].Name)

	assert.Empty(t, artifact.MembersOf(KindProperty, Public))
	assert.NotNil(t, artifact.MembersOf(KindProperty, Public))
}

func TestPartition_Empty(t *testing.T) {
	var p Partition[int]
	assert.True(t, p.Empty())

	p.Changed = append(p.Changed, Pair[int]{Base: 1, Modified: 2})
	assert.False(t, p.Empty())
	assert.Equal(t, 1, p.Len())
}
