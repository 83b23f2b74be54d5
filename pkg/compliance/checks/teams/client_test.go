package teams

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/internal/m365test"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

func TestCloudStorageProvidersDisabled(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageTeams("TeamsClientConfiguration", `[
		{"Identity":"Global","AllowDropBox":false,"AllowBox":false,"AllowGoogleDrive":false,
		 "AllowShareFile":false,"AllowEgnyte":false}
	]`)

	findings, err := CloudStorageProvidersDisabled(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusPassed, types.StatusFromFindings(findings))
	assert.Equal(t, "Global", findings[0].Resource)
}

func TestCloudStorageProvidersDisabled_ProviderOnFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageTeams("TeamsClientConfiguration", `[
		{"Identity":"Global","AllowDropBox":false,"AllowBox":false,"AllowGoogleDrive":true,
		 "AllowShareFile":false,"AllowEgnyte":false}
	]`)

	findings, err := CloudStorageProvidersDisabled(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
	assert.Equal(t, "AllowGoogleDrive", findings[0].Fields[2].Key)
	assert.Equal(t, true, findings[0].Fields[2].Value)
}

func TestChannelEmailDisabled(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageTeams("TeamsClientConfiguration", `[
		{"Identity":"Global","AllowEmailIntoChannel":false}
	]`)

	findings, err := ChannelEmailDisabled(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusPassed, types.StatusFromFindings(findings))
}

func TestChannelEmailDisabled_EnabledFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageTeams("TeamsClientConfiguration", `[
		{"Identity":"Global","AllowEmailIntoChannel":true}
	]`)

	findings, err := ChannelEmailDisabled(context.Background(), srv.Session(t))
	require.NoError(t, err)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
}
