package compliance

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// Registry holds the executable checks of one benchmark keyed by control
// ID. It is assembled once from a literal table and never mutated.
type Registry struct {
	checks map[string]Check
}

// NewRegistry joins the benchmark catalog with the check bodies. Every
// automated control must have exactly one body; controls marked for manual
// verification fall back to ManualCheck. A body without a cataloged control
// is rejected so the table and the catalog cannot drift apart.
func NewRegistry(benchmark types.Benchmark, bodies map[string]CheckFunc) (*Registry, error) {
	checks := make(map[string]Check, len(benchmark.Controls))
	for _, control := range benchmark.Controls {
		run, ok := bodies[control.ID]
		if !ok {
			if !control.ManualVerification {
				return nil, fmt.Errorf("control %s has no check body", control.ID)
			}
			run = ManualCheck
		}
		checks[control.ID] = Check{Control: control, Run: run}
	}
	for id := range bodies {
		if _, ok := checks[id]; !ok {
			return nil, fmt.Errorf("check body %s is not in the benchmark catalog", id)
		}
	}
	return &Registry{checks: checks}, nil
}

func (r *Registry) Lookup(controlID string) (Check, bool) {
	check, ok := r.checks[controlID]
	return check, ok
}

// List returns every check ordered by benchmark section code.
func (r *Registry) List() []Check {
	result := make([]Check, 0, len(r.checks))
	for _, check := range r.checks {
		result = append(result, check)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].Control, result[j].Control
		if c := compareSectionCodes(a.SectionCode, b.SectionCode); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})
	return result
}

// ListSection returns the checks whose section code equals the given code
// or sits beneath it, so "5.2" covers "5.2.2.1".
func (r *Registry) ListSection(sectionCode string) []Check {
	var result []Check
	for _, check := range r.List() {
		code := check.Control.SectionCode
		if code == sectionCode || strings.HasPrefix(code, sectionCode+".") {
			result = append(result, check)
		}
	}
	return result
}

// ListService returns the checks tagged with the given service, e.g.
// "exchange" or "entra".
func (r *Registry) ListService(service string) []Check {
	var result []Check
	for _, check := range r.List() {
		for _, tagged := range check.Control.Tags["service"] {
			if tagged == service {
				result = append(result, check)
				break
			}
		}
	}
	return result
}

// SeveritySummary tallies registered controls per severity.
func (r *Registry) SeveritySummary() types.SeverityResult {
	var summary types.SeverityResult
	for _, check := range r.checks {
		summary.IncreaseBySeverity(check.Control.Severity)
	}
	return summary
}

// compareSectionCodes orders dotted section codes numerically, so 1.10
// sorts after 1.9 rather than between 1.1 and 1.2.
func compareSectionCodes(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		if aerr != nil || berr != nil {
			if c := strings.Compare(as[i], bs[i]); c != 0 {
				return c
			}
			continue
		}
		if an != bn {
			return an - bn
		}
	}
	return len(as) - len(bs)
}
