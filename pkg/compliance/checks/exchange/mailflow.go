package exchange

import (
	"context"
	"strings"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// ExternalForwardingBlocked verifies no remote domain permits automatic
// forwarding and no enabled transport rule forwards or copies messages
// to external recipients. Remote domains yield one finding each, and
// every enabled forwarding rule yields a failing finding on top.
func ExternalForwardingBlocked(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	domains, err := s.Exchange().ListRemoteDomains(ctx)
	if err != nil {
		return nil, err
	}
	rules, err := s.Exchange().ListTransportRules(ctx)
	if err != nil {
		return nil, err
	}

	findings := make([]types.Finding, 0, len(domains))
	for _, domain := range domains {
		findings = append(findings,
			types.NewFinding(domain.Identity, !domain.AutoForwardEnabled).
				With("DomainName", domain.DomainName).
				With("AutoForwardEnabled", domain.AutoForwardEnabled))
	}
	for _, rule := range rules {
		if !ruleEnabled(rule) {
			continue
		}
		recipients := append(append(append([]string{}, rule.RedirectMessageTo...), rule.BlindCopyTo...), rule.CopyTo...)
		if len(recipients) == 0 {
			continue
		}
		findings = append(findings,
			types.NewFinding(rule.Name, false).
				With("State", rule.State).
				With("ForwardsTo", strings.Join(recipients, ", ")))
	}
	return findings, nil
}

// NoWhitelistedTransportRules verifies no enabled transport rule sets
// the spam confidence level to -1 for whole sender domains, which would
// bypass filtering for those senders. Only offending rules yield
// findings; a clean tenant passes with a single synthetic finding
// carrying the rule count.
func NoWhitelistedTransportRules(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	rules, err := s.Exchange().ListTransportRules(ctx)
	if err != nil {
		return nil, err
	}

	var findings []types.Finding
	for _, rule := range rules {
		if !ruleEnabled(rule) || rule.SetSCL == nil || *rule.SetSCL != -1 || len(rule.SenderDomainIs) == 0 {
			continue
		}
		findings = append(findings,
			types.NewFinding(rule.Name, false).
				With("SetSCL", *rule.SetSCL).
				With("SenderDomainIs", strings.Join(rule.SenderDomainIs, ", ")))
	}
	if len(findings) == 0 {
		return []types.Finding{
			types.NewFinding("no whitelisting transport rules found", true).
				With("RuleCount", len(rules)),
		}, nil
	}
	return findings, nil
}

// ExternalSenderTagging verifies external sender identification is
// enabled in Outlook without exempted senders. A tenant where the
// setting was never configured fails with a synthetic finding.
func ExternalSenderTagging(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	configs, err := s.Exchange().ListExternalSenderConfigs(ctx)
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return []types.Finding{
			types.NewFinding("external sender identification is not configured", false),
		}, nil
	}

	findings := make([]types.Finding, 0, len(configs))
	for _, config := range configs {
		findings = append(findings,
			types.NewFinding(config.Identity, config.Enabled && len(config.AllowList) == 0).
				With("Enabled", config.Enabled).
				With("AllowList", strings.Join(config.AllowList, ", ")))
	}
	return findings, nil
}

func ruleEnabled(rule m365.TransportRule) bool {
	return strings.EqualFold(rule.State, "Enabled")
}
