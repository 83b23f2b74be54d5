package entra

import (
	"context"

	"github.com/microsoftgraph/msgraph-sdk-go/models"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// AuthenticatorContextConfigured verifies the Microsoft Authenticator
// method is enabled and shows both the application name and the
// geographic location in push approvals. A tenant whose authentication
// methods policy carries no Authenticator configuration fails with a
// synthetic finding.
func AuthenticatorContextConfigured(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policy, err := s.GetAuthenticationMethodsPolicy(ctx)
	if err != nil {
		return nil, err
	}

	for _, config := range policy.GetAuthenticationMethodConfigurations() {
		authenticator, ok := config.(models.MicrosoftAuthenticatorAuthenticationMethodConfigurationable)
		if !ok {
			continue
		}

		enabled := authenticator.GetState() != nil && *authenticator.GetState() == models.ENABLED_AUTHENTICATIONMETHODSTATE
		appInfo := featureEnabled(authenticator, appInformation)
		location := featureEnabled(authenticator, locationInformation)
		return []types.Finding{
			types.NewFinding("Microsoft Authenticator", enabled && appInfo && location).
				With("Enabled", enabled).
				With("DisplayAppInformation", appInfo).
				With("DisplayLocationInformation", location),
		}, nil
	}
	return []types.Finding{
		types.NewFinding("Microsoft Authenticator is not configured", false),
	}, nil
}

type authenticatorFeature int

const (
	appInformation authenticatorFeature = iota
	locationInformation
)

func featureEnabled(config models.MicrosoftAuthenticatorAuthenticationMethodConfigurationable, feature authenticatorFeature) bool {
	settings := config.GetFeatureSettings()
	if settings == nil {
		return false
	}

	var fc models.AuthenticationMethodFeatureConfigurationable
	switch feature {
	case appInformation:
		fc = settings.GetDisplayAppInformationRequiredState()
	case locationInformation:
		fc = settings.GetDisplayLocationInformationRequiredState()
	}
	if fc == nil || fc.GetState() == nil {
		return false
	}
	return *fc.GetState() == models.ENABLED_ADVANCEDCONFIGSTATE
}
