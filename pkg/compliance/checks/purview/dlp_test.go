package purview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/internal/m365test"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

func TestDlpPoliciesEnabled(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-DlpCompliancePolicy", `[
		{"Name":"Financial Data","Mode":"Enable","Enabled":true,"Workload":"Exchange, SharePoint"},
		{"Name":"Pilot","Mode":"TestWithNotifications","Enabled":true,"Workload":"Exchange"}
	]`)

	findings, err := DlpPoliciesEnabled(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusPassed, types.StatusFromFindings(findings))
	assert.Equal(t, 2, findings[0].Fields[0].Value)
	assert.Equal(t, "Financial Data", findings[0].Fields[1].Value)
}

func TestDlpPoliciesEnabled_OnlyTestModeFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-DlpCompliancePolicy", `[
		{"Name":"Pilot","Mode":"TestWithNotifications","Enabled":true,"Workload":"Exchange"},
		{"Name":"Disabled","Mode":"Enable","Enabled":false,"Workload":"Exchange"}
	]`)

	findings, err := DlpPoliciesEnabled(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
}

func TestDlpPoliciesEnabled_NoPoliciesFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-DlpCompliancePolicy", `[]`)

	findings, err := DlpPoliciesEnabled(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
	assert.Equal(t, "data loss prevention policies", findings[0].Resource)
}
