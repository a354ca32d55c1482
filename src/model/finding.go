package model

// Severity represents the severity level of a review finding
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// ChangeSetWide is the sentinel file value for findings that apply to the
// whole change-set rather than one file.
const ChangeSetWide = "*"

// severityWeights orders severities for the stable report sort
var severityWeights = map[Severity]int{
	SeverityHigh:   3,
	SeverityMedium: 2,
	SeverityLow:    1,
}

// Weight returns the numeric rank of a severity (high=3, medium=2, low=1)
func (s Severity) Weight() int {
	return severityWeights[s]
}

// Finding represents a single suggestion produced by a detector or policy
// check. Line is 0 when the finding has no meaningful line anchor.
type Finding struct {
	File     string   `json:"file"`
	Line     int      `json:"line,omitempty"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// IsChangeSetWide reports whether the finding applies to the whole change-set
func (f Finding) IsChangeSetWide() bool {
	return f.File == ChangeSetWide
}
