package model

// Pair holds the base and modified sides of a matched member.
type Pair[T any] struct {
	Base     T
	Modified T
}

// Partition is the three-way split of two collections. Every identity key
// appears in at most one of the groups.
type Partition[T any] struct {
	Missing []T       // in base only
	Extra   []T       // in modified only
	Changed []Pair[T] // in both, not equivalent
}

// Empty reports whether no group has entries.
func (p Partition[T]) Empty() bool {
	return p.Len() == 0
}

// Len returns the total number of entries across all groups.
func (p Partition[T]) Len() int {
	return len(p.Missing) + len(p.Extra) + len(p.Changed)
}
