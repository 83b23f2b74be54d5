// Package exchange implements the Exchange Online section of the
// benchmark: mailbox auditing, mail flow hygiene and organization-wide
// client settings.
package exchange

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// OrganizationAuditingEnabled verifies mailbox auditing is enabled at
// the organization level, meaning AuditDisabled is off. The result is a
// single tenant-level finding.
func OrganizationAuditingEnabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	config, err := s.Exchange().GetOrganizationConfig(ctx)
	if err != nil {
		return nil, err
	}
	return []types.Finding{
		types.NewFinding(config.Name, !config.AuditDisabled).
			With("AuditDisabled", config.AuditDisabled),
	}, nil
}
