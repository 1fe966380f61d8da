package status

import "fmt"

// Severity is the health level of a single status, ordered best to worst.
// The zero value is Unknown.
type Severity int

const (
	// Unknown means the status has not been set since creation or since the
	// last Unset. Pools can be configured to exclude Unknown members from
	// coalescing entirely.
	Unknown Severity = iota

	// Active means the tracked concern is operating normally.
	Active

	// Maintenance means the tracked concern is busy preparing to operate.
	// This is a spinning state, not an error state.
	Maintenance

	// Waiting means the tracked concern is stalled on something external,
	// such as a peer that is not yet up.
	Waiting

	// Blocked means the tracked concern needs operator intervention.
	Blocked
)

// severityNames is indexed by Severity.
var severityNames = [...]string{
	Unknown:     "unknown",
	Active:      "active",
	Maintenance: "maintenance",
	Waiting:     "waiting",
	Blocked:     "blocked",
}

// String returns the lowercase name of the severity, or "invalid" for values
// outside the enumeration.
func (s Severity) String() string {
	if !s.Valid() {
		return "invalid"
	}
	return severityNames[s]
}

// Valid reports whether s is one of the five defined severities.
func (s Severity) Valid() bool {
	return s >= Unknown && s <= Blocked
}

// WorseThan reports whether s ranks strictly worse than other.
func (s Severity) WorseThan(other Severity) bool {
	return s > other
}

// ParseSeverity converts a severity name to its Severity value.
// Unrecognized names fail with ErrInvalidSeverity.
func ParseSeverity(name string) (Severity, error) {
	for sev, n := range severityNames {
		if n == name {
			return Severity(sev), nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrInvalidSeverity, name)
}
