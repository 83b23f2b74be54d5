package entra

import (
	"context"
	"strings"

	"github.com/microsoftgraph/msgraph-sdk-go/models"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// AdminMfaConditionalAccess verifies at least one enabled conditional
// access policy requires MFA for directory roles. The result is a single
// tenant-level finding listing the qualifying policies.
func AdminMfaConditionalAccess(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policies, err := s.ListConditionalAccessPolicies(ctx)
	if err != nil {
		return nil, err
	}

	var qualifying []string
	for _, policy := range policies {
		if !policyEnabled(policy) || !grantRequires(policy, "mfa") {
			continue
		}
		if len(includedRoles(policy)) > 0 {
			qualifying = append(qualifying, policyName(policy))
		}
	}
	return []types.Finding{
		types.NewFinding("conditional access policies", len(qualifying) > 0).
			With("PolicyCount", len(policies)).
			With("QualifyingPolicies", strings.Join(qualifying, ", ")),
	}, nil
}

// AllUsersMfaConditionalAccess verifies at least one enabled conditional
// access policy requires MFA for all users. The result is a single
// tenant-level finding listing the qualifying policies.
func AllUsersMfaConditionalAccess(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policies, err := s.ListConditionalAccessPolicies(ctx)
	if err != nil {
		return nil, err
	}

	var qualifying []string
	for _, policy := range policies {
		if !policyEnabled(policy) || !grantRequires(policy, "mfa") {
			continue
		}
		if containsFold(includedUsers(policy), "All") {
			qualifying = append(qualifying, policyName(policy))
		}
	}
	return []types.Finding{
		types.NewFinding("conditional access policies", len(qualifying) > 0).
			With("PolicyCount", len(policies)).
			With("QualifyingPolicies", strings.Join(qualifying, ", ")),
	}, nil
}

// LegacyAuthenticationBlocked verifies at least one enabled conditional
// access policy blocks the legacy authentication client protocols, the
// ones registered under the "other" client app type. The result is a
// single tenant-level finding listing the qualifying policies.
func LegacyAuthenticationBlocked(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policies, err := s.ListConditionalAccessPolicies(ctx)
	if err != nil {
		return nil, err
	}

	var qualifying []string
	for _, policy := range policies {
		if !policyEnabled(policy) || !grantRequires(policy, "block") {
			continue
		}
		if targetsLegacyClients(policy) {
			qualifying = append(qualifying, policyName(policy))
		}
	}
	return []types.Finding{
		types.NewFinding("conditional access policies", len(qualifying) > 0).
			With("PolicyCount", len(policies)).
			With("QualifyingPolicies", strings.Join(qualifying, ", ")),
	}, nil
}

func policyEnabled(policy models.ConditionalAccessPolicyable) bool {
	state := policy.GetState()
	return state != nil && *state == models.ENABLED_CONDITIONALACCESSPOLICYSTATE
}

func policyName(policy models.ConditionalAccessPolicyable) string {
	if name := policy.GetDisplayName(); name != nil {
		return *name
	}
	if id := policy.GetId(); id != nil {
		return *id
	}
	return "unnamed policy"
}

func grantRequires(policy models.ConditionalAccessPolicyable, control string) bool {
	grant := policy.GetGrantControls()
	if grant == nil {
		return false
	}
	for _, c := range grant.GetBuiltInControls() {
		if c.String() == control {
			return true
		}
	}
	return false
}

func includedUsers(policy models.ConditionalAccessPolicyable) []string {
	conditions := policy.GetConditions()
	if conditions == nil || conditions.GetUsers() == nil {
		return nil
	}
	return conditions.GetUsers().GetIncludeUsers()
}

func includedRoles(policy models.ConditionalAccessPolicyable) []string {
	conditions := policy.GetConditions()
	if conditions == nil || conditions.GetUsers() == nil {
		return nil
	}
	return conditions.GetUsers().GetIncludeRoles()
}

func targetsLegacyClients(policy models.ConditionalAccessPolicyable) bool {
	conditions := policy.GetConditions()
	if conditions == nil {
		return false
	}
	for _, app := range conditions.GetClientAppTypes() {
		if name := app.String(); name == "other" || name == "all" {
			return true
		}
	}
	return false
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
