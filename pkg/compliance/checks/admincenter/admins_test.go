package admincenter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/internal/m365test"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

const globalAdminRole = `{"value":[{"id":"role-ga","roleTemplateId":"62e90394-69f5-4237-9190-012177145e10","displayName":"Global Administrator"}]}`

func TestAdministratorsCloudOnly(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageGraph("/directoryRoles", globalAdminRole)
	srv.StageGraph("/directoryRoles/role-ga/members", `{"value":[
		{"@odata.type":"#microsoft.graph.user","id":"u1","userPrincipalName":"breakglass@contoso.com"},
		{"@odata.type":"#microsoft.graph.user","id":"u2","userPrincipalName":"synced.admin@contoso.com","onPremisesSyncEnabled":true}
	]}`)

	findings, err := AdministratorsCloudOnly(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))

	assert.Equal(t, "breakglass@contoso.com", findings[0].Resource)
	assert.True(t, *findings[0].IsCompliant)
	assert.Equal(t, "synced.admin@contoso.com", findings[1].Resource)
	assert.False(t, *findings[1].IsCompliant)
}

func TestAdministratorsCloudOnly_RoleNeverActivated(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageGraph("/directoryRoles", `{"value":[]}`)

	findings, err := AdministratorsCloudOnly(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusPassed, types.StatusFromFindings(findings))
	assert.Equal(t, "no global administrators found", findings[0].Resource)
}

func TestGlobalAdministratorCount(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageGraph("/directoryRoles", globalAdminRole)
	srv.StageGraph("/directoryRoles/role-ga/members", `{"value":[
		{"@odata.type":"#microsoft.graph.user","id":"u1","userPrincipalName":"admin1@contoso.com"},
		{"@odata.type":"#microsoft.graph.user","id":"u2","userPrincipalName":"admin2@contoso.com"}
	]}`)

	findings, err := GlobalAdministratorCount(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusPassed, types.StatusFromFindings(findings))
	assert.Equal(t, "Count", findings[0].Fields[0].Key)
	assert.Equal(t, 2, findings[0].Fields[0].Value)
}

func TestGlobalAdministratorCount_SingleAdminFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageGraph("/directoryRoles", globalAdminRole)
	srv.StageGraph("/directoryRoles/role-ga/members", `{"value":[
		{"@odata.type":"#microsoft.graph.user","id":"u1","userPrincipalName":"admin1@contoso.com"}
	]}`)

	findings, err := GlobalAdministratorCount(context.Background(), srv.Session(t))
	require.NoError(t, err)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
}

func TestGlobalAdministratorCount_NonUserMembersIgnored(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageGraph("/directoryRoles", globalAdminRole)
	srv.StageGraph("/directoryRoles/role-ga/members", `{"value":[
		{"@odata.type":"#microsoft.graph.user","id":"u1","userPrincipalName":"admin1@contoso.com"},
		{"@odata.type":"#microsoft.graph.user","id":"u2","userPrincipalName":"admin2@contoso.com"},
		{"@odata.type":"#microsoft.graph.servicePrincipal","id":"sp1","displayName":"automation"}
	]}`)

	findings, err := GlobalAdministratorCount(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, 2, findings[0].Fields[0].Value)
	assert.Equal(t, types.ComplianceStatusPassed, types.StatusFromFindings(findings))
}
