package domain

import (
	"bytes"

	m "synver.dev/pkg/synver/internal/model"
)

// BodiesEquivalent decides whether two optional bodies are the same.
//
//	a        b        result
//	absent   absent   true
//	absent   present  true
//	present  absent   true
//	present  present  bytes equal
//
// A body that is missing on one side is not a change by itself.
func BodiesEquivalent(a, b m.Body) bool {
	switch {
	case !a.Present() && !b.Present():
		return true
	case !a.Present() || !b.Present():
		return true
	default:
		return bytes.Equal(a.Code(), b.Code())
	}
}

// PropertyBodiesEquivalent requires the getter and setter slots to be
// equivalent independently.
func PropertyBodiesEquivalent(a, b m.Member) bool {
	return BodiesEquivalent(a.Getter, b.Getter) && BodiesEquivalent(a.Setter, b.Setter)
}

// MembersEquivalent is the full-equality check used by the set diff: same
// fingerprint and equivalent bodies for the kinds that have them.
func MembersEquivalent(a, b m.Member) bool {
	if FingerprintKey(a) != FingerprintKey(b) {
		return false
	}

	switch a.Kind {
	case m.KindMethod:
		return BodiesEquivalent(a.Body, b.Body)
	case m.KindProperty:
		return PropertyBodiesEquivalent(a, b)
	case m.KindField:
		return true
	default:
		return true
	}
}
