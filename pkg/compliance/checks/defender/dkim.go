package defender

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// DkimSigningEnabled verifies DKIM signing is enabled for every domain
// with a signing configuration. A tenant with no signing configurations
// at all is not signing outbound mail and fails with a synthetic finding.
func DkimSigningEnabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	configs, err := s.Exchange().ListDkimSigningConfigs(ctx)
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return []types.Finding{
			types.NewFinding("DKIM signing is not configured", false),
		}, nil
	}

	findings := make([]types.Finding, 0, len(configs))
	for _, config := range configs {
		findings = append(findings,
			types.NewFinding(config.Domain, config.Enabled).
				With("Enabled", config.Enabled).
				With("Status", config.Status))
	}
	return findings, nil
}
