package types

// Benchmark is the top-level descriptor of a published benchmark
// revision, e.g. the CIS Microsoft 365 Foundations Benchmark v4.0.0.
type Benchmark struct {
	ID          string              `json:"ID" yaml:"ID" validate:"required"`
	Title       string              `json:"Title" yaml:"Title" validate:"required"`
	Version     string              `json:"Version" yaml:"Version" validate:"required"`
	Description string              `json:"Description" yaml:"Description"`
	Tags        map[string][]string `json:"Tags" yaml:"Tags"`
	Controls    []Control           `json:"Controls" yaml:"Controls" validate:"required,min=1,dive"`
}

// Control carries the descriptive metadata of a single benchmark
// recommendation. The executable predicate lives in the compliance
// package and is joined to its Control by ID.
type Control struct {
	ID                 string              `json:"ID" yaml:"ID" validate:"required"`
	SectionCode        string              `json:"SectionCode" yaml:"SectionCode" validate:"required"`
	Title              string              `json:"Title" yaml:"Title" validate:"required"`
	Description        string              `json:"Description" yaml:"Description"`
	Severity           FindingSeverity     `json:"Severity" yaml:"Severity" validate:"required,oneof=none low medium high critical"`
	ManualVerification bool                `json:"ManualVerification" yaml:"ManualVerification"`
	DefaultValue       string              `json:"DefaultValue" yaml:"DefaultValue"`
	Rationale          string              `json:"Rationale" yaml:"Rationale"`
	Tags               map[string][]string `json:"Tags" yaml:"Tags"`
}

func (b Benchmark) ControlByID(id string) (Control, bool) {
	for _, c := range b.Controls {
		if c.ID == id {
			return c, true
		}
	}
	return Control{}, false
}

// SeveritySummary tallies controls per severity for reporting.
func (b Benchmark) SeveritySummary() SeverityResult {
	var result SeverityResult
	for _, c := range b.Controls {
		result.IncreaseBySeverity(c.Severity)
	}
	return result
}
