package defender

import (
	"context"
	"strings"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// SafeAttachmentsEnabled verifies at least one enabled Safe Attachments
// policy detonates attachments with the Block action. The verdict is a
// single tenant-level finding listing the qualifying policies.
func SafeAttachmentsEnabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policies, err := s.Exchange().ListSafeAttachmentPolicies(ctx)
	if err != nil {
		return nil, err
	}

	var qualifying []string
	for _, policy := range policies {
		if policy.Enable && policy.Action == "Block" {
			qualifying = append(qualifying, policy.Identity)
		}
	}
	finding := types.NewFinding("Safe Attachments policies", len(qualifying) > 0).
		With("PolicyCount", len(policies)).
		With("QualifyingPolicies", strings.Join(qualifying, ", "))
	return []types.Finding{finding}, nil
}

// SafeAttachmentsForCollaboration verifies the tenant ATP policy extends
// Safe Attachments and Safe Documents to SharePoint, OneDrive, and Teams.
func SafeAttachmentsForCollaboration(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policy, err := s.Exchange().GetAtpPolicyForO365(ctx)
	if err != nil {
		return nil, err
	}

	compliant := policy.EnableATPForSPOTeamsODB && policy.EnableSafeDocs && !policy.AllowSafeDocsOpen
	finding := types.NewFinding(policy.Identity, compliant).
		With("EnableATPForSPOTeamsODB", policy.EnableATPForSPOTeamsODB).
		With("EnableSafeDocs", policy.EnableSafeDocs).
		With("AllowSafeDocsOpen", policy.AllowSafeDocsOpen)
	return []types.Finding{finding}, nil
}
