// Package fabric implements the Microsoft Fabric section of the
// benchmark. Every control inspects one switch on the admin tenant
// settings page; a switch the tenant does not expose yields a manual
// finding instead of a hard failure.
package fabric

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// GuestContentAccessRestricted verifies guest users can only access
// shared Fabric content when scoped to specific security groups.
func GuestContentAccessRestricted(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	return restrictedSetting(ctx, s, "AllowGuestUserToAccessSharedContent")
}

// GuestInvitationsRestricted verifies inviting external users into
// Fabric is disabled or scoped to specific security groups.
func GuestInvitationsRestricted(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	return restrictedSetting(ctx, s, "InviteExternalUsers")
}

// PublishToWebRestricted verifies publishing reports to the public web
// is disabled or scoped to specific security groups.
func PublishToWebRestricted(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	return restrictedSetting(ctx, s, "PublishToWeb")
}

// ResourceKeyAuthenticationBlocked verifies resource-key authentication
// for streaming datasets is blocked outright. Unlike the sharing
// switches this one must be on.
func ResourceKeyAuthenticationBlocked(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	settings, err := s.Fabric().ListTenantSettings(ctx)
	if err != nil {
		return nil, err
	}

	setting, ok := m365.FindTenantSetting(settings, "BlockResourceKeyAuthentication")
	if !ok {
		return []types.Finding{missingSetting("BlockResourceKeyAuthentication")}, nil
	}
	return []types.Finding{
		types.NewFinding(setting.SettingName, setting.Enabled).
			With("Title", setting.Title).
			With("Enabled", setting.Enabled),
	}, nil
}

// restrictedSetting evaluates a sharing-type switch: compliant when off
// entirely or enabled for an explicit list of security groups only.
func restrictedSetting(ctx context.Context, s *m365.Session, name string) ([]types.Finding, error) {
	settings, err := s.Fabric().ListTenantSettings(ctx)
	if err != nil {
		return nil, err
	}

	setting, ok := m365.FindTenantSetting(settings, name)
	if !ok {
		return []types.Finding{missingSetting(name)}, nil
	}
	return []types.Finding{
		types.NewFinding(setting.SettingName, !setting.Enabled || setting.RestrictedToGroups()).
			With("Title", setting.Title).
			With("Enabled", setting.Enabled).
			With("SecurityGroupCount", len(setting.EnabledSecurityGroups)),
	}, nil
}

func missingSetting(name string) types.Finding {
	return types.NewManualFinding(name).
		With("Reason", "setting is not exposed by this tenant, review it in the Fabric admin portal")
}
