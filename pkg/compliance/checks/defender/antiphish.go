package defender

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// AntiPhishingPolicyConfigured verifies every active anti-phishing policy
// enables mailbox and spoof intelligence with an aggressive phishing
// threshold. Disabled non-default policies are skipped: they apply to
// nobody. If no policy is active the tenant relies on nothing and fails
// with a synthetic finding.
func AntiPhishingPolicyConfigured(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policies, err := s.Exchange().ListAntiPhishPolicies(ctx)
	if err != nil {
		return nil, err
	}

	findings := make([]types.Finding, 0, len(policies))
	for _, policy := range policies {
		if !policy.Enabled && !policy.IsDefault {
			continue
		}
		compliant := policy.Enabled &&
			policy.PhishThresholdLevel >= 2 &&
			policy.EnableMailboxIntelligence &&
			policy.EnableMailboxIntelligenceProtection &&
			policy.EnableSpoofIntelligence
		findings = append(findings,
			types.NewFinding(policy.Identity, compliant).
				With("Enabled", policy.Enabled).
				With("IsDefault", policy.IsDefault).
				With("PhishThresholdLevel", policy.PhishThresholdLevel).
				With("EnableMailboxIntelligence", policy.EnableMailboxIntelligence).
				With("EnableMailboxIntelligenceProtection", policy.EnableMailboxIntelligenceProtection).
				With("EnableSpoofIntelligence", policy.EnableSpoofIntelligence))
	}
	if len(findings) == 0 {
		return []types.Finding{
			types.NewFinding("no active anti-phishing policies configured", false),
		}, nil
	}
	return findings, nil
}
