package diag

// Severity ranks how serious a diagnostic is. The numeric order matters:
// Bag.HasErrors and HasWarnings compare with >= against these values, so
// any new level has to slot in below SevError.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
