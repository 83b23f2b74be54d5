package types

import (
	"strings"
)

type FindingSeverity string

const (
	FindingSeverityNone     FindingSeverity = "none"
	FindingSeverityLow      FindingSeverity = "low"
	FindingSeverityMedium   FindingSeverity = "medium"
	FindingSeverityHigh     FindingSeverity = "high"
	FindingSeverityCritical FindingSeverity = "critical"
)

func (s FindingSeverity) Level() int {
	switch s {
	case FindingSeverityNone:
		return 1
	case FindingSeverityLow:
		return 2
	case FindingSeverityMedium:
		return 3
	case FindingSeverityHigh:
		return 4
	case FindingSeverityCritical:
		return 5
	default:
		return 0
	}
}

func (s FindingSeverity) String() string {
	return string(s)
}

var findingSeverities = []FindingSeverity{
	FindingSeverityNone,
	FindingSeverityLow,
	FindingSeverityMedium,
	FindingSeverityHigh,
	FindingSeverityCritical,
}

func ParseFindingSeverity(s string) FindingSeverity {
	s = strings.ToLower(s)
	for _, sev := range findingSeverities {
		if s == strings.ToLower(sev.String()) {
			return sev
		}
	}
	return ""
}

func ParseFindingSeverities(list []string) []FindingSeverity {
	result := make([]FindingSeverity, 0, len(list))
	for _, s := range list {
		result = append(result, ParseFindingSeverity(s))
	}
	return result
}

type SeverityResult struct {
	NoneCount     int `json:"noneCount"`
	LowCount      int `json:"lowCount"`
	MediumCount   int `json:"mediumCount"`
	HighCount     int `json:"highCount"`
	CriticalCount int `json:"criticalCount"`
}

func (r *SeverityResult) AddSeverityResult(severity SeverityResult) {
	r.NoneCount += severity.NoneCount
	r.LowCount += severity.LowCount
	r.MediumCount += severity.MediumCount
	r.HighCount += severity.HighCount
	r.CriticalCount += severity.CriticalCount
}

func (r *SeverityResult) IncreaseBySeverity(severity FindingSeverity) {
	switch severity {
	case FindingSeverityCritical:
		r.CriticalCount++
	case FindingSeverityHigh:
		r.HighCount++
	case FindingSeverityMedium:
		r.MediumCount++
	case FindingSeverityLow:
		r.LowCount++
	case FindingSeverityNone:
		r.NoneCount++
	}
}
