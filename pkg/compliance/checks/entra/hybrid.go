package entra

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// PasswordHashSyncEnabled applies to hybrid tenants only. A cloud-only
// tenant has nothing to synchronize and passes with a synthetic
// compliant finding. A tenant synchronizing from on-premises Active
// Directory yields a manual finding: the synchronization feature set is
// not readable through the directory API and must be confirmed in the
// Entra Connect configuration.
func PasswordHashSyncEnabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	org, err := s.GetOrganization(ctx)
	if err != nil {
		return nil, err
	}

	syncEnabled := org.GetOnPremisesSyncEnabled() != nil && *org.GetOnPremisesSyncEnabled()
	if !syncEnabled {
		return []types.Finding{
			types.NewFinding("tenant is cloud-only", true).
				With("OnPremisesSyncEnabled", syncEnabled),
		}, nil
	}
	return []types.Finding{
		types.NewManualFinding("on-premises directory synchronization").
			With("OnPremisesSyncEnabled", syncEnabled).
			With("Reason", "confirm password hash synchronization in the Entra Connect configuration"),
	}, nil
}
