// Package sharepoint implements the SharePoint Online section of the
// benchmark. Every control reads the tenant-wide SharePoint admin
// settings exposed through the Graph API, so each check yields a single
// tenant-level finding.
package sharepoint

import (
	"context"
	"strings"

	"github.com/microsoftgraph/msgraph-sdk-go/models"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// LegacyAuthenticationDisabled verifies legacy authentication protocols
// are rejected by SharePoint Online.
func LegacyAuthenticationDisabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	settings, err := s.GetSharepointSettings(ctx)
	if err != nil {
		return nil, err
	}

	enabled := settings.GetIsLegacyAuthProtocolsEnabled() != nil && *settings.GetIsLegacyAuthProtocolsEnabled()
	return []types.Finding{
		types.NewFinding("sharepoint settings", !enabled).
			With("IsLegacyAuthProtocolsEnabled", enabled),
	}, nil
}

// SharingCapabilityRestricted verifies tenant-wide sharing does not
// permit anonymous links, the "anyone" capability.
func SharingCapabilityRestricted(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	settings, err := s.GetSharepointSettings(ctx)
	if err != nil {
		return nil, err
	}

	capability := settings.GetSharingCapability()
	compliant := capability != nil && *capability != models.EXTERNALUSERANDGUESTSHARING_SHARINGCAPABILITIES
	finding := types.NewFinding("sharepoint settings", compliant)
	if capability != nil {
		finding = finding.With("SharingCapability", capability.String())
	}
	return []types.Finding{finding}, nil
}

// GuestResharingPrevented verifies guests cannot re-share content they
// do not own.
func GuestResharingPrevented(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	settings, err := s.GetSharepointSettings(ctx)
	if err != nil {
		return nil, err
	}

	enabled := settings.GetIsResharingByExternalUsersEnabled() != nil && *settings.GetIsResharingByExternalUsersEnabled()
	return []types.Finding{
		types.NewFinding("sharepoint settings", !enabled).
			With("IsResharingByExternalUsersEnabled", enabled),
	}, nil
}

// SharingDomainAllowList verifies external sharing is limited to an
// explicit, non-empty domain allow list.
func SharingDomainAllowList(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	settings, err := s.GetSharepointSettings(ctx)
	if err != nil {
		return nil, err
	}

	mode := settings.GetSharingDomainRestrictionMode()
	domains := settings.GetSharingAllowedDomainList()
	compliant := mode != nil && *mode == models.ALLOWLIST_SHARINGDOMAINRESTRICTIONMODE && len(domains) > 0
	finding := types.NewFinding("sharepoint settings", compliant).
		With("SharingAllowedDomainList", strings.Join(domains, ", "))
	if mode != nil {
		finding = finding.With("SharingDomainRestrictionMode", mode.String())
	}
	return []types.Finding{finding}, nil
}

// UnmanagedDeviceSyncRestricted verifies OneDrive sync is blocked on
// devices outside the managed domain list.
func UnmanagedDeviceSyncRestricted(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	settings, err := s.GetSharepointSettings(ctx)
	if err != nil {
		return nil, err
	}

	restricted := settings.GetIsUnmanagedSyncAppForTenantRestricted() != nil && *settings.GetIsUnmanagedSyncAppForTenantRestricted()
	return []types.Finding{
		types.NewFinding("sharepoint settings", restricted).
			With("IsUnmanagedSyncAppForTenantRestricted", restricted),
	}, nil
}
