package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSeverity is returned when a severity carries none of the
// recognized flags.
var ErrUnknownSeverity = errors.New("unknown severity")

// Severity is an accumulating set of impact flags. Findings are combined with
// Union; Breaking dominates NonBreaking dominates None when bumping.
type Severity uint8

const (
	SeverityNone        Severity = 1
	SeverityNonBreaking Severity = 2
	SeverityBreaking    Severity = 4
)

const severityMask = SeverityNone | SeverityNonBreaking | SeverityBreaking

var severityNames = []struct {
	flag Severity
	name string
}{
	{SeverityBreaking, "breaking"},
	{SeverityNonBreaking, "non-breaking"},
	{SeverityNone, "none"},
}

// Union returns the combination of s and other.
func (s Severity) Union(other Severity) Severity {
	return s | other
}

// Has reports whether flag is set in s.
func (s Severity) Has(flag Severity) bool {
	return s&flag == flag
}

// Valid reports whether s carries at least one recognized flag and nothing
// else.
func (s Severity) Valid() bool {
	return s != 0 && s&^severityMask == 0
}

// String lists the set flags, most severe first. None is omitted once any
// other flag is present.
func (s Severity) String() string {
	if !s.Valid() {
		return fmt.Sprintf("severity(%d)", uint8(s))
	}

	names := make([]string, 0, len(severityNames))

	for _, entry := range severityNames {
		if entry.flag == SeverityNone && len(names) > 0 {
			continue
		}

		if s.Has(entry.flag) {
			names = append(names, entry.name)
		}
	}

	return strings.Join(names, ", ")
}

// ParseSeverity parses the output of Severity.String.
func ParseSeverity(text string) (Severity, error) {
	var s Severity

	for _, part := range strings.Split(text, ",") {
		name := strings.TrimSpace(part)

		found := false

		for _, entry := range severityNames {
			if entry.name == name {
				s |= entry.flag
				found = true

				break
			}
		}

		if !found {
			return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
		}
	}

	if s.Has(SeverityBreaking) || s.Has(SeverityNonBreaking) {
		s |= SeverityNone
	}

	return s, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeverity, uint8(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}
