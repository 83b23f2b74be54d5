package entra

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// PrivilegedRolesUseEligibility verifies the tenant assigns privileged
// roles as eligible through Privileged Identity Management. A tenant
// with no eligibility schedules at all is holding every role
// permanently and fails. Tenants without the required premium license
// surface the license error as a manual result upstream.
func PrivilegedRolesUseEligibility(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	instances, err := s.ListRoleEligibilityScheduleInstances(ctx)
	if err != nil {
		return nil, err
	}

	roles := make(map[string]struct{})
	for _, instance := range instances {
		if id := instance.GetRoleDefinitionId(); id != nil {
			roles[*id] = struct{}{}
		}
	}
	return []types.Finding{
		types.NewFinding("role eligibility schedules", len(instances) > 0).
			With("EligibleAssignmentCount", len(instances)).
			With("DistinctRoleCount", len(roles)),
	}, nil
}
