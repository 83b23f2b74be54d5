package admincenter

import (
	"context"
	"strings"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// CalendarExternalSharingDisabled verifies no enabled Exchange sharing
// policy offers anonymous calendar sharing. Zero sharing policies pass
// with no findings: the control only constrains policies that exist.
func CalendarExternalSharingDisabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policies, err := s.Exchange().ListSharingPolicies(ctx)
	if err != nil {
		return nil, err
	}

	findings := make([]types.Finding, 0, len(policies))
	for _, policy := range policies {
		anonymous := false
		if policy.Enabled {
			for _, domain := range policy.Domains {
				if strings.HasPrefix(domain, "Anonymous:Calendar") {
					anonymous = true
					break
				}
			}
		}
		findings = append(findings,
			types.NewFinding(policyName(policy.Name, policy.Identity), !anonymous).
				With("Enabled", policy.Enabled).
				With("Domains", strings.Join(policy.Domains, ", ")))
	}
	return findings, nil
}

// CustomerLockboxEnabled verifies the tenant requires approval before
// Microsoft support can access its content.
func CustomerLockboxEnabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	config, err := s.Exchange().GetOrganizationConfig(ctx)
	if err != nil {
		return nil, err
	}

	finding := types.NewFinding(policyName(config.Name, config.Identity), config.CustomerLockboxEnabled).
		With("CustomerLockboxEnabled", config.CustomerLockboxEnabled)
	return []types.Finding{finding}, nil
}

func policyName(name, identity string) string {
	if name != "" {
		return name
	}
	if identity != "" {
		return identity
	}
	return "unnamed policy"
}
