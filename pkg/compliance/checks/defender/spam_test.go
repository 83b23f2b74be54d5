package defender

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/internal/m365test"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

func TestOutboundSpamNotification(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-HostedOutboundSpamFilterPolicy", `[
		{"Identity":"Default","NotifyOutboundSpam":true,"NotifyOutboundSpamRecipients":["secops@contoso.com"],
		 "BccSuspiciousOutboundMail":true,"BccSuspiciousOutboundAdditionalRecipients":["audit@contoso.com"]}
	]`)

	findings, err := OutboundSpamNotification(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusPassed, types.StatusFromFindings(findings))
}

func TestOutboundSpamNotification_NoRecipientsFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-HostedOutboundSpamFilterPolicy", `[
		{"Identity":"Default","NotifyOutboundSpam":true,"NotifyOutboundSpamRecipients":[],
		 "BccSuspiciousOutboundMail":true,"BccSuspiciousOutboundAdditionalRecipients":["audit@contoso.com"]}
	]`)

	findings, err := OutboundSpamNotification(context.Background(), srv.Session(t))
	require.NoError(t, err)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
}

func TestOutboundSpamNotification_NoPoliciesFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-HostedOutboundSpamFilterPolicy", `[]`)

	findings, err := OutboundSpamNotification(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
}

func TestConnectionFilterAllowListEmpty(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-HostedConnectionFilterPolicy", `[
		{"Identity":"Default","IPAllowList":[],"EnableSafeList":false}
	]`)

	findings, err := ConnectionFilterAllowListEmpty(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusPassed, types.StatusFromFindings(findings))
}

func TestConnectionFilterAllowListEmpty_AllowListFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-HostedConnectionFilterPolicy", `[
		{"Identity":"Default","IPAllowList":["198.51.100.0/24"],"EnableSafeList":false}
	]`)

	findings, err := ConnectionFilterAllowListEmpty(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
	assert.Equal(t, "IPAllowList", findings[0].Fields[0].Key)
	assert.Equal(t, "198.51.100.0/24", findings[0].Fields[0].Value)
}

func TestConnectionFilterAllowListEmpty_NoPoliciesPasses(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-HostedConnectionFilterPolicy", `[]`)

	findings, err := ConnectionFilterAllowListEmpty(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusPassed, types.StatusFromFindings(findings))
	assert.Equal(t, "no connection filter policies found", findings[0].Resource)
}
