package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type ComplianceStatus string

const (
	ComplianceStatusPassed ComplianceStatus = "Pass"
	ComplianceStatusFailed ComplianceStatus = "Fail"
	ComplianceStatusError  ComplianceStatus = "Error"
	ComplianceStatusManual ComplianceStatus = "Manual"
)

func (s ComplianceStatus) IsPassed() bool {
	return s == ComplianceStatusPassed
}

// StatusID returns the legacy numeric code for a status: 1 for Pass, 2 for
// Manual, 3 for Fail and Error. The numeric form is derived here only and
// appears nowhere outside serialized results.
func (s ComplianceStatus) StatusID() int {
	switch s {
	case ComplianceStatusPassed:
		return 1
	case ComplianceStatusManual:
		return 2
	case ComplianceStatusFailed, ComplianceStatusError:
		return 3
	default:
		return 0
	}
}

// FindingField is one descriptive key/value pair attached to a Finding.
// Fields keep their declared order so serialized findings are identical
// across runs against an unchanged tenant.
type FindingField struct {
	Key   string
	Value any
}

// Finding records the evaluation of one resource instance (a mailbox, a
// policy, a domain) against one control. IsCompliant is nil when the
// instance could not be evaluated automatically; such findings surface as a
// Manual verdict unless another instance already failed the control.
type Finding struct {
	Resource    string
	IsCompliant *bool
	Fields      []FindingField
}

func NewFinding(resource string, isCompliant bool) Finding {
	v := isCompliant
	return Finding{Resource: resource, IsCompliant: &v}
}

// NewManualFinding returns a finding whose compliance could not be
// determined automatically.
func NewManualFinding(resource string) Finding {
	return Finding{Resource: resource}
}

// With returns a copy of the finding with one more descriptive field
// appended. The receiver is not modified.
func (f Finding) With(key string, value any) Finding {
	fields := make([]FindingField, len(f.Fields), len(f.Fields)+1)
	copy(fields, f.Fields)
	f.Fields = append(fields, FindingField{Key: key, Value: value})
	return f
}

// MarshalJSON flattens the finding into a single object:
// {"Resource": ..., "IsCompliant": ..., <descriptive fields in order>}.
func (f Finding) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeField := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal finding field %s: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if err := writeField("Resource", f.Resource); err != nil {
		return nil, err
	}
	if err := writeField("IsCompliant", f.IsCompliant); err != nil {
		return nil, err
	}
	for _, field := range f.Fields {
		if err := writeField(field.Key, field.Value); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ComplianceResult is the terminal outcome of evaluating one control. It is
// created fresh on every evaluation and never mutated afterwards.
type ComplianceResult struct {
	Status  ComplianceStatus
	Details []Finding
	Error   string
}

// StatusFromFindings derives the overall verdict for a set of findings. One
// non-compliant finding fails the control regardless of ordering; findings
// with nil IsCompliant are excluded from that aggregation and force a Manual
// verdict only when nothing failed. Zero findings are a pass: controls that
// treat missing evidence differently record an explicit finding instead.
func StatusFromFindings(findings []Finding) ComplianceStatus {
	manual := false
	for _, f := range findings {
		if f.IsCompliant == nil {
			manual = true
			continue
		}
		if !*f.IsCompliant {
			return ComplianceStatusFailed
		}
	}
	if manual {
		return ComplianceStatusManual
	}
	return ComplianceStatusPassed
}

func NewComplianceResult(findings []Finding) ComplianceResult {
	if findings == nil {
		findings = []Finding{}
	}
	return ComplianceResult{
		Status:  StatusFromFindings(findings),
		Details: findings,
	}
}

func NewErrorResult(err error) ComplianceResult {
	return ComplianceResult{
		Status:  ComplianceStatusError,
		Details: []Finding{},
		Error:   err.Error(),
	}
}

// MarshalJSON emits the wire form consumed by the reporting layer. The
// record carries exactly status, status_id, Details and, for errors only,
// Error; status_id is derived from Status at this boundary.
func (r ComplianceResult) MarshalJSON() ([]byte, error) {
	details := r.Details
	if details == nil {
		details = []Finding{}
	}
	out := struct {
		Status   ComplianceStatus `json:"status"`
		StatusID int              `json:"status_id"`
		Details  []Finding        `json:"Details"`
		Error    string           `json:"Error,omitempty"`
	}{
		Status:   r.Status,
		StatusID: r.Status.StatusID(),
		Details:  details,
		Error:    r.Error,
	}
	return json.Marshal(out)
}

type ComplianceStatusSummary struct {
	PassedCount int `json:"passedCount" example:"1"`
	FailedCount int `json:"failedCount" example:"1"`
	ErrorCount  int `json:"errorCount" example:"1"`
	ManualCount int `json:"manualCount" example:"1"`
}

func (c *ComplianceStatusSummary) AddStatus(status ComplianceStatus) {
	switch status {
	case ComplianceStatusPassed:
		c.PassedCount++
	case ComplianceStatusFailed:
		c.FailedCount++
	case ComplianceStatusError:
		c.ErrorCount++
	case ComplianceStatusManual:
		c.ManualCount++
	}
}

func (c *ComplianceStatusSummary) AddComplianceStatusSummary(summary ComplianceStatusSummary) {
	c.PassedCount += summary.PassedCount
	c.FailedCount += summary.FailedCount
	c.ErrorCount += summary.ErrorCount
	c.ManualCount += summary.ManualCount
}
