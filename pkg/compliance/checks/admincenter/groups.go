package admincenter

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// PublicGroupsReviewed surfaces every Microsoft 365 group with Public
// visibility as an undetermined finding: whether a public group is
// organizationally approved cannot be read from the directory, so their
// presence yields a Manual verdict. A tenant without public groups passes
// with a synthetic compliant finding.
func PublicGroupsReviewed(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	groups, err := s.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	var findings []types.Finding
	for _, group := range groups {
		visibility := group.GetVisibility()
		if visibility == nil || *visibility != "Public" {
			continue
		}
		name := "unnamed group"
		if dn := group.GetDisplayName(); dn != nil {
			name = *dn
		}
		findings = append(findings,
			types.NewManualFinding(name).
				With("Visibility", "Public").
				With("Reason", "confirm the group is organizationally managed"))
	}
	if len(findings) == 0 {
		return []types.Finding{types.NewFinding("no public groups found", true)}, nil
	}
	return findings, nil
}
