package admincenter

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// passwordNeverExpires is the validity period Entra uses for passwords
// that never expire.
const passwordNeverExpires = 2147483647

// PasswordsNeverExpire verifies every verified domain sets its password
// validity period to never expire. Unverified domains are skipped; a
// domain without an explicit validity period uses the expiring service
// default and fails.
func PasswordsNeverExpire(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	domains, err := s.ListDomains(ctx)
	if err != nil {
		return nil, err
	}

	var findings []types.Finding
	for _, domain := range domains {
		if domain.GetIsVerified() == nil || !*domain.GetIsVerified() {
			continue
		}
		name := "unnamed domain"
		if id := domain.GetId(); id != nil {
			name = *id
		}

		validity := domain.GetPasswordValidityPeriodInDays()
		finding := types.NewFinding(name, validity != nil && *validity == passwordNeverExpires)
		if validity != nil {
			finding = finding.With("PasswordValidityPeriodInDays", *validity)
		} else {
			finding = finding.With("PasswordValidityPeriodInDays", "not set")
		}
		findings = append(findings, finding)
	}
	return findings, nil
}
