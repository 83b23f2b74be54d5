package exchange

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/internal/m365test"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

func TestExternalForwardingBlocked(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-RemoteDomain", `[
		{"Identity":"Default","DomainName":"*","AutoForwardEnabled":false}
	]`)
	srv.StageCmdlet("Get-TransportRule", `[]`)

	findings, err := ExternalForwardingBlocked(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusPassed, types.StatusFromFindings(findings))
	assert.Equal(t, "Default", findings[0].Resource)
}

func TestExternalForwardingBlocked_ForwardingDomainFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-RemoteDomain", `[
		{"Identity":"Default","DomainName":"*","AutoForwardEnabled":false},
		{"Identity":"Partner","DomainName":"partner.example.com","AutoForwardEnabled":true}
	]`)
	srv.StageCmdlet("Get-TransportRule", `[]`)

	findings, err := ExternalForwardingBlocked(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
}

func TestExternalForwardingBlocked_ForwardingRuleFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-RemoteDomain", `[
		{"Identity":"Default","DomainName":"*","AutoForwardEnabled":false}
	]`)
	srv.StageCmdlet("Get-TransportRule", `[
		{"Name":"Forward invoices","State":"Enabled","Priority":0,
		 "RedirectMessageTo":["billing@partner.example.com"]},
		{"Name":"Disabled forward","State":"Disabled","Priority":1,
		 "RedirectMessageTo":["old@partner.example.com"]}
	]`)

	findings, err := ExternalForwardingBlocked(context.Background(), srv.Session(t))
	require.NoError(t, err)

	// The default domain finding plus one failing finding for the enabled
	// rule; the disabled rule is skipped.
	require.Len(t, findings, 2)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
	assert.Equal(t, "Forward invoices", findings[1].Resource)
	assert.Equal(t, "billing@partner.example.com", findings[1].Fields[1].Value)
}

func TestNoWhitelistedTransportRules(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-TransportRule", `[
		{"Name":"Tag subject","State":"Enabled","Priority":0}
	]`)

	findings, err := NoWhitelistedTransportRules(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusPassed, types.StatusFromFindings(findings))
	assert.Equal(t, "no whitelisting transport rules found", findings[0].Resource)
	assert.Equal(t, 1, findings[0].Fields[0].Value)
}

func TestNoWhitelistedTransportRules_SclBypassFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-TransportRule", `[
		{"Name":"Trust partner mail","State":"Enabled","Priority":0,
		 "SetSCL":-1,"SenderDomainIs":["partner.example.com"]},
		{"Name":"Quarantine spoof","State":"Enabled","Priority":1,"SetSCL":9}
	]`)

	findings, err := NoWhitelistedTransportRules(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
	assert.Equal(t, "Trust partner mail", findings[0].Resource)
	assert.Equal(t, -1, findings[0].Fields[0].Value)
}

func TestExternalSenderTagging(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-ExternalInOutlook", `[
		{"Identity":"tag-1","Enabled":true,"AllowList":[]}
	]`)

	findings, err := ExternalSenderTagging(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusPassed, types.StatusFromFindings(findings))
}

func TestExternalSenderTagging_AllowListFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-ExternalInOutlook", `[
		{"Identity":"tag-1","Enabled":true,"AllowList":["trusted@partner.example.com"]}
	]`)

	findings, err := ExternalSenderTagging(context.Background(), srv.Session(t))
	require.NoError(t, err)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
}

func TestExternalSenderTagging_NotConfiguredFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-ExternalInOutlook", `[]`)

	findings, err := ExternalSenderTagging(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
	assert.Equal(t, "external sender identification is not configured", findings[0].Resource)
}

func Test_ruleEnabled(t *testing.T) {
	assert.True(t, ruleEnabled(m365.TransportRule{State: "Enabled"}))
	assert.True(t, ruleEnabled(m365.TransportRule{State: "enabled"}))
	assert.False(t, ruleEnabled(m365.TransportRule{State: "Disabled"}))
	assert.False(t, ruleEnabled(m365.TransportRule{}))
}
