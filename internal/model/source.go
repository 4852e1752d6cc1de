// Package model defines the data structures for surface comparison.
package model

// Path represents a file system path.
type Path string

// Artifact is one version of a Go source tree, reduced to what the
// comparison engine needs.
type Artifact struct {
	Root            Path
	Members         []Member
	Digest          string // SHA-256 over every file of the tree, for the byte-equivalence check
	DeclaredVersion string // raw version text found in the tree, empty when none
}

// MembersOf returns the artifact members of the given kind and visibility,
// preserving extraction order.
func (a Artifact) MembersOf(kind MemberKind, visibility Visibility) []Member {
	members := make([]Member, 0)

	for _, member := range a.Members {
		if member.Kind == kind && member.Visibility == visibility {
			members = append(members, member)
		}
	}

	return members
}
