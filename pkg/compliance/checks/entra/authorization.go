package entra

import (
	"context"

	"github.com/google/uuid"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// restrictedGuestRoleID is the guest user role that limits guests to
// membership of their own directory objects.
var restrictedGuestRoleID = uuid.MustParse("2af84b1e-32c8-42b7-82bc-daa82404023b")

// AppRegistrationRestricted verifies ordinary users cannot register
// applications in the directory. The result is a single tenant-level
// finding; an unset value means the Entra default of allowing
// registration and fails.
func AppRegistrationRestricted(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policy, err := s.GetAuthorizationPolicy(ctx)
	if err != nil {
		return nil, err
	}

	allowed := true
	if perms := policy.GetDefaultUserRolePermissions(); perms != nil && perms.GetAllowedToCreateApps() != nil {
		allowed = *perms.GetAllowedToCreateApps()
	}
	return []types.Finding{
		types.NewFinding("authorization policy", !allowed).
			With("AllowedToCreateApps", allowed),
	}, nil
}

// TenantCreationRestricted verifies ordinary users cannot create new
// Entra tenants. The result is a single tenant-level finding; an unset
// value means the Entra default of allowing creation and fails.
func TenantCreationRestricted(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policy, err := s.GetAuthorizationPolicy(ctx)
	if err != nil {
		return nil, err
	}

	allowed := true
	if perms := policy.GetDefaultUserRolePermissions(); perms != nil && perms.GetAllowedToCreateTenants() != nil {
		allowed = *perms.GetAllowedToCreateTenants()
	}
	return []types.Finding{
		types.NewFinding("authorization policy", !allowed).
			With("AllowedToCreateTenants", allowed),
	}, nil
}

// GuestAccessRestricted verifies the guest user role is the most
// restrictive option. The result is a single tenant-level finding.
func GuestAccessRestricted(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policy, err := s.GetAuthorizationPolicy(ctx)
	if err != nil {
		return nil, err
	}

	roleID := policy.GetGuestUserRoleId()
	compliant := roleID != nil && *roleID == restrictedGuestRoleID
	finding := types.NewFinding("authorization policy", compliant)
	if roleID != nil {
		finding = finding.With("GuestUserRoleId", roleID.String())
	}
	return []types.Finding{finding}, nil
}
