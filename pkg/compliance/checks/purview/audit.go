// Package purview implements the Microsoft Purview section of the
// benchmark: unified audit logging and data loss prevention.
package purview

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// UnifiedAuditLogEnabled verifies unified audit log ingestion is turned on
// for the tenant. The result is a single tenant-level finding.
func UnifiedAuditLogEnabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	config, err := s.Exchange().GetAdminAuditLogConfig(ctx)
	if err != nil {
		return nil, err
	}
	return []types.Finding{
		types.NewFinding("unified audit log", config.UnifiedAuditLogIngestionEnabled).
			With("UnifiedAuditLogIngestionEnabled", config.UnifiedAuditLogIngestionEnabled),
	}, nil
}
