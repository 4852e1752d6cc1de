package domain

import (
	"fmt"
	"log/slog"

	m "synver.dev/pkg/synver/internal/model"
)

// Comparator turns two loaded artifacts into a classified, versioned report.
type Comparator interface {
	Compare(base, modified m.Artifact, from m.Version) (m.Report, error)
}

type comparator struct{}

// NewComparator constructs a Comparator. It holds no state, so one instance
// can serve concurrent callers.
func NewComparator() Comparator {
	return &comparator{}
}

// surfaceDiff holds the partitions of one visibility pass, one per kind.
type surfaceDiff struct {
	byKind map[m.MemberKind]m.Partition[m.Member]
}

func diffSurface(base, modified m.Artifact, visibility m.Visibility) surfaceDiff {
	diff := surfaceDiff{byKind: make(map[m.MemberKind]m.Partition[m.Member], len(m.MemberKinds))}

	for _, kind := range m.MemberKinds {
		diff.byKind[kind] = DiffMembers(base.MembersOf(kind, visibility), modified.MembersOf(kind, visibility))
	}

	return diff
}

func (d surfaceDiff) partitions() []m.Partition[m.Member] {
	partitions := make([]m.Partition[m.Member], 0, len(m.MemberKinds))
	for _, kind := range m.MemberKinds {
		partitions = append(partitions, d.byKind[kind])
	}

	return partitions
}

func (c *comparator) Compare(base, modified m.Artifact, from m.Version) (m.Report, error) {
	public := diffSurface(base, modified, m.Public)
	internal := diffSurface(base, modified, m.NonPublic)

	severity := ClassifyPublic(
		public.byKind[m.KindField],
		public.byKind[m.KindProperty],
		public.byKind[m.KindMethod],
	).Union(ClassifyNonPublic(internal.partitions()...))

	fallback := false

	if severity == m.SeverityNone && base.Digest != modified.Digest {
		slog.Debug("no structural difference but artifact bytes differ",
			"base", base.Root, "baseDigest", base.Digest,
			"modified", modified.Root, "modifiedDigest", modified.Digest)

		severity = severity.Union(m.SeverityNonBreaking)
		fallback = true
	}

	to, err := from.Bump(severity)
	if err != nil {
		slog.Error("Failed to bump version", "from", from, "severity", uint8(severity), "error", err)
		return m.Report{}, fmt.Errorf("bump %s: %w", from, err)
	}

	report := buildReport(public)
	report.Base = base.Root
	report.Modified = modified.Root
	report.From = from
	report.To = to
	report.Severity = severity
	report.ByteFallback = fallback

	for _, partition := range internal.partitions() {
		report.NonPublicChanges += partition.Len()
	}

	slog.Info("comparison finished",
		"from", from, "to", to, "severity", severity.String(),
		"changed", len(report.Changed), "deleted", len(report.Deleted), "added", len(report.Added),
		"nonPublicChanges", report.NonPublicChanges, "byteFallback", fallback)

	return report, nil
}

// buildReport lists the public surface differences, kind by kind in
// MemberKinds order.
func buildReport(public surfaceDiff) m.Report {
	report := m.Report{
		Changed: make([]m.Entry, 0),
		Deleted: make([]m.Entry, 0),
		Added:   make([]m.Entry, 0),
	}

	for _, kind := range m.MemberKinds {
		for _, pair := range public.byKind[kind].Changed {
			entry := entryFor(pair.Modified)
			entry.Before, entry.After = bodyText(pair.Base), bodyText(pair.Modified)
			report.Changed = append(report.Changed, entry)
		}
	}

	for _, kind := range m.MemberKinds {
		for _, member := range public.byKind[kind].Missing {
			report.Deleted = append(report.Deleted, entryFor(member))
		}
	}

	for _, kind := range m.MemberKinds {
		for _, member := range public.byKind[kind].Extra {
			report.Added = append(report.Added, entryFor(member))
		}
	}

	return report
}

func entryFor(member m.Member) m.Entry {
	return m.Entry{
		Kind:     member.Kind,
		Member:   FingerprintKey(member),
		Position: member.Position,
	}
}

// bodyText renders the comparable bodies of a member for display.
func bodyText(member m.Member) string {
	switch member.Kind {
	case m.KindMethod:
		return string(member.Body.Code())
	case m.KindProperty:
		text := string(member.Getter.Code())
		if member.Setter.Present() {
			text += "\n" + string(member.Setter.Code())
		}

		return text
	case m.KindField:
	}

	return ""
}
