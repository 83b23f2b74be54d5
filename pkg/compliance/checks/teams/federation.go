package teams

import (
	"context"
	"strings"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// FederationAllowListConfigured verifies external Teams federation is
// either off or limited to an explicit domain allow list. The result is
// a single tenant-level finding.
func FederationAllowListConfigured(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	config, err := s.Teams().GetTenantFederationConfiguration(ctx)
	if err != nil {
		return nil, err
	}

	compliant := !config.AllowFederatedUsers || len(config.AllowedDomains) > 0
	return []types.Finding{
		types.NewFinding(config.Identity, compliant).
			With("AllowFederatedUsers", config.AllowFederatedUsers).
			With("AllowedDomains", strings.Join(config.AllowedDomains, ", ")),
	}, nil
}

// ConsumerCommunicationBlocked verifies communication with consumer
// Teams and Skype accounts is blocked in both directions. The result is
// a single tenant-level finding.
func ConsumerCommunicationBlocked(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	config, err := s.Teams().GetTenantFederationConfiguration(ctx)
	if err != nil {
		return nil, err
	}

	compliant := !config.AllowTeamsConsumer && !config.AllowTeamsConsumerInbound && !config.AllowPublicUsers
	return []types.Finding{
		types.NewFinding(config.Identity, compliant).
			With("AllowTeamsConsumer", config.AllowTeamsConsumer).
			With("AllowTeamsConsumerInbound", config.AllowTeamsConsumerInbound).
			With("AllowPublicUsers", config.AllowPublicUsers),
	}, nil
}
