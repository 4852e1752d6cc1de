package domain

import (
	m "synver.dev/pkg/synver/internal/model"
)

// ClassifyPublic grades the public surface. A changed pair is non-breaking
// when both sides carry the same flags and breaking otherwise; any removal is
// breaking; any addition is non-breaking.
func ClassifyPublic(fields, properties, methods m.Partition[m.Member]) m.Severity {
	severity := m.SeverityNone
	partitions := []m.Partition[m.Member]{fields, properties, methods}

	for _, partition := range partitions {
		for _, pair := range partition.Changed {
			if pair.Base.Flags == pair.Modified.Flags {
				severity = severity.Union(m.SeverityNonBreaking)
			} else {
				severity = severity.Union(m.SeverityBreaking)
			}
		}
	}

	for _, partition := range partitions {
		if len(partition.Missing) > 0 {
			severity = severity.Union(m.SeverityBreaking)
			break
		}
	}

	for _, partition := range partitions {
		if len(partition.Extra) > 0 {
			severity = severity.Union(m.SeverityNonBreaking)
			break
		}
	}

	return severity
}

// ClassifyNonPublic grades internal members: any difference at all is
// non-breaking, nothing here can be breaking.
func ClassifyNonPublic(partitions ...m.Partition[m.Member]) m.Severity {
	severity := m.SeverityNone

	for _, partition := range partitions {
		if !partition.Empty() {
			severity = severity.Union(m.SeverityNonBreaking)
		}
	}

	return severity
}
