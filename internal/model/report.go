package model

// Entry is one affected member in a report section.
type Entry struct {
	Kind     MemberKind `yaml:"kind"`
	Member   string     `yaml:"member"`
	Position string     `yaml:"position,omitempty"`
	Before   string     `yaml:"before,omitempty"` // base body, changed entries only
	After    string     `yaml:"after,omitempty"`  // modified body, changed entries only
}

// Report is the outcome of comparing two artifacts.
type Report struct {
	Base         Path     `yaml:"base"`
	Modified     Path     `yaml:"modified"`
	From         Version  `yaml:"from"`
	To           Version  `yaml:"to"`
	Severity     Severity `yaml:"severity"`
	ByteFallback bool     `yaml:"byte_fallback"`

	// NonPublicChanges counts internal differences; they are graded but not
	// listed.
	NonPublicChanges int `yaml:"non_public_changes"`

	Changed []Entry `yaml:"changed"`
	Deleted []Entry `yaml:"deleted"`
	Added   []Entry `yaml:"added"`
}
