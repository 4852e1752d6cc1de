package domain

import (
	"log/slog"

	m "synver.dev/pkg/synver/internal/model"
)

// Diff partitions base and modified by identity key.
//
// Members of base whose key is not in modified are Missing, members of
// modified never matched are Extra, and matched pairs that are not equal are
// Changed. Missing and Changed follow base order; Extra follows modified
// order.
//
// Duplicate keys inside one collection are resolved by keepFirst: only the
// first element with a given key takes part in the comparison, the others
// are dropped without being reported anywhere.
func Diff[T any](base, modified []T, key func(T) string, equal func(T, T) bool) m.Partition[T] {
	order := make([]string, 0, len(modified))
	candidates := make(map[string]T, len(modified))

	for _, element := range modified {
		k := key(element)
		if !keepFirst(candidates, k, element) {
			continue
		}

		order = append(order, k)
	}

	partition := m.Partition[T]{
		Missing: make([]T, 0),
		Extra:   make([]T, 0),
		Changed: make([]m.Pair[T], 0),
	}

	consumed := make(map[string]struct{}, len(modified))
	seen := make(map[string]T, len(base))

	for _, element := range base {
		k := key(element)
		if !keepFirst(seen, k, element) {
			continue
		}

		counterpart, ok := candidates[k]
		if !ok {
			partition.Missing = append(partition.Missing, element)
			continue
		}

		if !equal(element, counterpart) {
			partition.Changed = append(partition.Changed, m.Pair[T]{Base: element, Modified: counterpart})
		}

		consumed[k] = struct{}{}
	}

	for _, k := range order {
		if _, ok := consumed[k]; ok {
			continue
		}

		partition.Extra = append(partition.Extra, candidates[k])
	}

	return partition
}

// keepFirst records element under k unless k is already taken, and reports
// whether it did. Later duplicates are swallowed: they are neither matched
// nor reported.
func keepFirst[T any](slots map[string]T, k string, element T) bool {
	if _, taken := slots[k]; taken {
		slog.Debug("dropping duplicate identity key", "key", k)
		return false
	}

	slots[k] = element

	return true
}

// DiffMembers runs Diff with the member fingerprint as identity and full
// member equivalence as equality.
func DiffMembers(base, modified []m.Member) m.Partition[m.Member] {
	return Diff(base, modified, FingerprintKey, MembersEquivalent)
}
