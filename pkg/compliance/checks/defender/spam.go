package defender

import (
	"context"
	"strings"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// OutboundSpamNotification verifies every outbound spam policy notifies
// designated recipients and blind-copies suspicious outbound mail. Zero
// policies fail: the default policy should always exist.
func OutboundSpamNotification(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policies, err := s.Exchange().ListHostedOutboundSpamFilterPolicies(ctx)
	if err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		return []types.Finding{
			types.NewFinding("no outbound spam policies configured", false),
		}, nil
	}

	findings := make([]types.Finding, 0, len(policies))
	for _, policy := range policies {
		compliant := policy.NotifyOutboundSpam && len(policy.NotifyOutboundSpamRecipients) > 0 &&
			policy.BccSuspiciousOutboundMail && len(policy.BccSuspiciousOutboundAdditionalRecipients) > 0
		findings = append(findings,
			types.NewFinding(policy.Identity, compliant).
				With("NotifyOutboundSpam", policy.NotifyOutboundSpam).
				With("NotifyOutboundSpamRecipients", strings.Join(policy.NotifyOutboundSpamRecipients, ", ")).
				With("BccSuspiciousOutboundMail", policy.BccSuspiciousOutboundMail).
				With("BccSuspiciousOutboundAdditionalRecipients", strings.Join(policy.BccSuspiciousOutboundAdditionalRecipients, ", ")))
	}
	return findings, nil
}

// ConnectionFilterAllowListEmpty verifies no connection filter policy
// allow-lists IP addresses or enables the safe list. A tenant with no
// connection filter policies has nothing bypassing spam filtering and
// passes with a synthetic compliant finding.
func ConnectionFilterAllowListEmpty(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policies, err := s.Exchange().ListHostedConnectionFilterPolicies(ctx)
	if err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		return []types.Finding{
			types.NewFinding("no connection filter policies found", true),
		}, nil
	}

	findings := make([]types.Finding, 0, len(policies))
	for _, policy := range policies {
		compliant := len(policy.IPAllowList) == 0 && !policy.EnableSafeList
		findings = append(findings,
			types.NewFinding(policy.Identity, compliant).
				With("IPAllowList", strings.Join(policy.IPAllowList, ", ")).
				With("EnableSafeList", policy.EnableSafeList))
	}
	return findings, nil
}
