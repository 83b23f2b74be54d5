package exchange

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// mailTipsLargeAudienceFloor is the smallest large-audience threshold
// the benchmark accepts.
const mailTipsLargeAudienceFloor = 25

// ModernAuthenticationRequired verifies modern authentication is the
// only accepted client profile for Exchange Online. The result is a
// single tenant-level finding.
func ModernAuthenticationRequired(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	config, err := s.Exchange().GetOrganizationConfig(ctx)
	if err != nil {
		return nil, err
	}
	return []types.Finding{
		types.NewFinding(config.Name, config.OAuth2ClientProfileEnabled).
			With("OAuth2ClientProfileEnabled", config.OAuth2ClientProfileEnabled),
	}, nil
}

// MailTipsEnabled verifies all MailTips are active with a large-audience
// threshold of at least 25 recipients. The result is a single
// tenant-level finding.
func MailTipsEnabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	config, err := s.Exchange().GetOrganizationConfig(ctx)
	if err != nil {
		return nil, err
	}

	compliant := config.MailTipsAllTipsEnabled &&
		config.MailTipsExternalRecipientsTipsEnabled &&
		config.MailTipsGroupMetricsEnabled &&
		config.MailTipsLargeAudienceThreshold >= mailTipsLargeAudienceFloor
	return []types.Finding{
		types.NewFinding(config.Name, compliant).
			With("MailTipsAllTipsEnabled", config.MailTipsAllTipsEnabled).
			With("MailTipsExternalRecipientsTipsEnabled", config.MailTipsExternalRecipientsTipsEnabled).
			With("MailTipsGroupMetricsEnabled", config.MailTipsGroupMetricsEnabled).
			With("MailTipsLargeAudienceThreshold", config.MailTipsLargeAudienceThreshold),
	}, nil
}

// OwaStorageProvidersDisabled verifies no Outlook on the web mailbox
// policy offers third-party storage providers. The default policy always
// exists, so a tenant with no policies at all fails with a synthetic
// finding.
func OwaStorageProvidersDisabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policies, err := s.Exchange().ListOwaMailboxPolicies(ctx)
	if err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		return []types.Finding{
			types.NewFinding("no OWA mailbox policies found", false),
		}, nil
	}

	findings := make([]types.Finding, 0, len(policies))
	for _, policy := range policies {
		findings = append(findings,
			types.NewFinding(policy.Identity, !policy.AdditionalStorageProvidersAvailable).
				With("IsDefault", policy.IsDefault).
				With("AdditionalStorageProvidersAvailable", policy.AdditionalStorageProvidersAvailable))
	}
	return findings, nil
}
