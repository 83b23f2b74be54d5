package defender

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/internal/m365test"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

const compliantSafeLinks = `{"Identity":"Strict","EnableSafeLinksForEmail":true,"EnableSafeLinksForTeams":true,
	"EnableSafeLinksForOffice":true,"TrackClicks":true,"AllowClickThrough":false,"ScanUrls":true,
	"EnableForInternalSenders":true,"DeliverMessageAfterScan":true,"DisableUrlRewrite":false}`

func TestSafeLinksOfficeProtection(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-SafeLinksPolicy", `[`+compliantSafeLinks+`]`)

	findings, err := SafeLinksOfficeProtection(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusPassed, types.StatusFromFindings(findings))
	assert.Equal(t, "Strict", findings[0].Resource)
}

func TestSafeLinksOfficeProtection_ClickThroughFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-SafeLinksPolicy", `[
		{"Identity":"Lax","EnableSafeLinksForEmail":true,"EnableSafeLinksForTeams":true,
		 "EnableSafeLinksForOffice":true,"TrackClicks":true,"AllowClickThrough":true,"ScanUrls":true,
		 "EnableForInternalSenders":true,"DeliverMessageAfterScan":true,"DisableUrlRewrite":false}
	]`)

	findings, err := SafeLinksOfficeProtection(context.Background(), srv.Session(t))
	require.NoError(t, err)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
}

func TestSafeLinksOfficeProtection_NoPoliciesFails(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.StageCmdlet("Get-SafeLinksPolicy", `[]`)

	findings, err := SafeLinksOfficeProtection(context.Background(), srv.Session(t))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, types.ComplianceStatusFailed, types.StatusFromFindings(findings))
	assert.Equal(t, "no Safe Links policies configured", findings[0].Resource)
}

func TestSafeLinksOfficeProtection_NoDefenderPlan(t *testing.T) {
	srv := m365test.NewServer()
	defer srv.Close()
	srv.FailCmdlet("Get-SafeLinksPolicy", http.StatusBadRequest, "CmdletNotFound",
		"The tenant license does not include Defender for Office 365")

	_, err := SafeLinksOfficeProtection(context.Background(), srv.Session(t))
	require.Error(t, err)
	capErr := m365.AsCapabilityError(err)
	require.NotNil(t, capErr)
	assert.Equal(t, "required service plan", capErr.Capability)
}
