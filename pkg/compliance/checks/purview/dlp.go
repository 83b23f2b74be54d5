package purview

import (
	"context"
	"strings"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// DlpPoliciesEnabled verifies the tenant has at least one enabled DLP
// compliance policy in enforce mode. The result is a single tenant-level
// finding so a tenant with many disabled policies still fails once.
func DlpPoliciesEnabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policies, err := s.SecurityCompliance().ListDlpCompliancePolicies(ctx)
	if err != nil {
		return nil, err
	}

	var enforcing []string
	for _, policy := range policies {
		if policy.Enabled && policy.Mode == "Enable" {
			enforcing = append(enforcing, policy.Name)
		}
	}
	return []types.Finding{
		types.NewFinding("data loss prevention policies", len(enforcing) > 0).
			With("PolicyCount", len(policies)).
			With("EnforcingPolicies", strings.Join(enforcing, ", ")),
	}, nil
}
