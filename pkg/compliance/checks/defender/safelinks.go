// Package defender implements the Microsoft Defender for Office 365
// section of the benchmark. Tenants without the Defender service plan
// answer these cmdlets with a license error, which the evaluation boundary
// reports as a Manual verdict.
package defender

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// SafeLinksOfficeProtection verifies every Safe Links policy scans URLs in
// mail, Teams, and Office clients at click time without click-through. A
// tenant with no Safe Links policies fails: the control requires at least
// one configured policy.
func SafeLinksOfficeProtection(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policies, err := s.Exchange().ListSafeLinksPolicies(ctx)
	if err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		return []types.Finding{
			types.NewFinding("no Safe Links policies configured", false),
		}, nil
	}

	findings := make([]types.Finding, 0, len(policies))
	for _, policy := range policies {
		compliant := policy.EnableSafeLinksForEmail &&
			policy.EnableSafeLinksForTeams &&
			policy.EnableSafeLinksForOffice &&
			policy.TrackClicks &&
			!policy.AllowClickThrough &&
			policy.ScanUrls &&
			policy.EnableForInternalSenders &&
			policy.DeliverMessageAfterScan &&
			!policy.DisableUrlRewrite
		findings = append(findings,
			types.NewFinding(policy.Identity, compliant).
				With("EnableSafeLinksForEmail", policy.EnableSafeLinksForEmail).
				With("EnableSafeLinksForTeams", policy.EnableSafeLinksForTeams).
				With("EnableSafeLinksForOffice", policy.EnableSafeLinksForOffice).
				With("TrackClicks", policy.TrackClicks).
				With("AllowClickThrough", policy.AllowClickThrough).
				With("ScanUrls", policy.ScanUrls).
				With("EnableForInternalSenders", policy.EnableForInternalSenders).
				With("DeliverMessageAfterScan", policy.DeliverMessageAfterScan).
				With("DisableUrlRewrite", policy.DisableUrlRewrite))
	}
	return findings, nil
}
