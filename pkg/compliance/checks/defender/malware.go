package defender

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// CommonAttachmentFilter verifies every malware filter policy blocks the
// common executable attachment types. A tenant with no malware filter
// policies fails: the default policy should always exist.
func CommonAttachmentFilter(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policies, err := s.Exchange().ListMalwareFilterPolicies(ctx)
	if err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		return []types.Finding{
			types.NewFinding("no malware filter policies configured", false),
		}, nil
	}

	findings := make([]types.Finding, 0, len(policies))
	for _, policy := range policies {
		findings = append(findings,
			types.NewFinding(policy.Identity, policy.EnableFileFilter).
				With("EnableFileFilter", policy.EnableFileFilter).
				With("FileTypeCount", len(policy.FileTypes)))
	}
	return findings, nil
}

// InternalMalwareNotification verifies every malware filter policy alerts
// an administrator when an internal sender is blocked for malware. Zero
// policies fail as in CommonAttachmentFilter.
func InternalMalwareNotification(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policies, err := s.Exchange().ListMalwareFilterPolicies(ctx)
	if err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		return []types.Finding{
			types.NewFinding("no malware filter policies configured", false),
		}, nil
	}

	findings := make([]types.Finding, 0, len(policies))
	for _, policy := range policies {
		compliant := policy.EnableInternalSenderAdminNotifications && policy.InternalSenderAdminAddress != ""
		findings = append(findings,
			types.NewFinding(policy.Identity, compliant).
				With("EnableInternalSenderAdminNotifications", policy.EnableInternalSenderAdminNotifications).
				With("InternalSenderAdminAddress", policy.InternalSenderAdminAddress))
	}
	return findings, nil
}
