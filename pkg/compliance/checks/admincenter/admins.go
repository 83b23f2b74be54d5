// Package admincenter implements the Microsoft 365 admin center section of
// the benchmark: administrative account hygiene, group visibility, shared
// mailbox sign-in, and tenant-wide collaboration defaults.
package admincenter

import (
	"context"
	"strings"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// AdministratorsCloudOnly reports one finding per Global Administrator,
// failing those synchronized from on-premises Active Directory. A tenant
// with no activated Global Administrator role passes vacuously with a
// synthetic finding.
func AdministratorsCloudOnly(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	admins, err := s.ListRoleMemberUsers(ctx, m365.GlobalAdministratorTemplateID)
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return []types.Finding{types.NewFinding("no global administrators found", true)}, nil
	}

	findings := make([]types.Finding, 0, len(admins))
	for _, admin := range admins {
		synced := admin.GetOnPremisesSyncEnabled() != nil && *admin.GetOnPremisesSyncEnabled()
		findings = append(findings,
			types.NewFinding(principalName(admin.GetUserPrincipalName(), admin.GetId()), !synced).
				With("OnPremisesSyncEnabled", synced))
	}
	return findings, nil
}

// GlobalAdministratorCount verifies the tenant designates between two and
// four Global Administrators. The single finding always carries the member
// list; zero members fail the lower bound.
func GlobalAdministratorCount(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	admins, err := s.ListRoleMemberUsers(ctx, m365.GlobalAdministratorTemplateID)
	if err != nil {
		return nil, err
	}

	members := make([]string, 0, len(admins))
	for _, admin := range admins {
		members = append(members, principalName(admin.GetUserPrincipalName(), admin.GetId()))
	}
	count := len(members)
	finding := types.NewFinding("Global Administrator", count >= 2 && count <= 4).
		With("Count", count).
		With("Members", strings.Join(members, ", "))
	return []types.Finding{finding}, nil
}

func principalName(upn, id *string) string {
	if upn != nil && *upn != "" {
		return *upn
	}
	if id != nil {
		return *id
	}
	return "unknown principal"
}
