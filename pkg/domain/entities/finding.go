package entities

// Severity classifies a validation finding
type Severity int

const (
	Warning Severity = iota
	Error
)

// String method for Severity enum
func (s Severity) String() string {
	switch s {
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// MaxFindingSamples caps the number of offending keys carried per finding
const MaxFindingSamples = 5

// Finding represents one result of an integrity check. Samples hold up to
// MaxFindingSamples offending keys in deterministic order.
type Finding struct {
	Scope    string
	Severity Severity
	Category string
	Count    int
	Samples  []string
}
