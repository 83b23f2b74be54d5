// Package entra implements the Microsoft Entra admin center section of
// the benchmark: security defaults, authorization policy, conditional
// access, authentication methods and privileged role management.
package entra

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// SecurityDefaultsDisabled verifies security defaults are turned off.
// Tenants governed by conditional access policies must not run both
// mechanisms at once. The result is a single tenant-level finding.
func SecurityDefaultsDisabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policy, err := s.GetSecurityDefaultsPolicy(ctx)
	if err != nil {
		return nil, err
	}

	enabled := policy.GetIsEnabled() != nil && *policy.GetIsEnabled()
	return []types.Finding{
		types.NewFinding("security defaults", !enabled).
			With("IsEnabled", enabled),
	}, nil
}
