package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformedVersion is returned when text holds no major.minor.patch triple.
var ErrMalformedVersion = errors.New("malformed version")

var versionPattern = regexp.MustCompile(`([0-9]+)\.([0-9]+)\.([0-9]+)`)

// Version is an immutable major.minor.patch triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion extracts the first major.minor.patch triple found anywhere in
// text, so "v1.2.3-rc1" and "release 1.2.3" both parse as 1.2.3.
func ParseVersion(text string) (Version, error) {
	match := versionPattern.FindStringSubmatch(text)
	if match == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, text)
	}

	parts := make([]int, 0, 3)

	for _, digits := range match[1:] {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %w", ErrMalformedVersion, text, err)
		}

		parts = append(parts, n)
	}

	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}

// Bump returns the version following v for the given severity.
//
// Breaking changes advance the minor component and reset patch; major is
// never touched. Non-breaking changes advance patch. None returns v.
func (v Version) Bump(severity Severity) (Version, error) {
	switch {
	case severity.Has(SeverityBreaking):
		return Version{Major: v.Major, Minor: v.Minor + 1, Patch: 0}, nil
	case severity.Has(SeverityNonBreaking):
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	case severity.Has(SeverityNone):
		return v, nil
	default:
		return Version{}, fmt.Errorf("%w: %d", ErrUnknownSeverity, uint8(severity))
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
