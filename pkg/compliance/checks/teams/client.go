// Package teams implements the Microsoft Teams section of the
// benchmark: client storage, external federation, meeting policies and
// security reporting.
package teams

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// CloudStorageProvidersDisabled verifies every third-party cloud storage
// provider is disabled in the Teams client configuration. The result is
// a single tenant-level finding.
func CloudStorageProvidersDisabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	config, err := s.Teams().GetClientConfiguration(ctx)
	if err != nil {
		return nil, err
	}

	compliant := !config.AllowDropBox && !config.AllowBox && !config.AllowGoogleDrive &&
		!config.AllowShareFile && !config.AllowEgnyte
	return []types.Finding{
		types.NewFinding(config.Identity, compliant).
			With("AllowDropBox", config.AllowDropBox).
			With("AllowBox", config.AllowBox).
			With("AllowGoogleDrive", config.AllowGoogleDrive).
			With("AllowShareFile", config.AllowShareFile).
			With("AllowEgnyte", config.AllowEgnyte),
	}, nil
}

// ChannelEmailDisabled verifies users cannot send email straight into a
// channel. The result is a single tenant-level finding.
func ChannelEmailDisabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	config, err := s.Teams().GetClientConfiguration(ctx)
	if err != nil {
		return nil, err
	}
	return []types.Finding{
		types.NewFinding(config.Identity, !config.AllowEmailIntoChannel).
			With("AllowEmailIntoChannel", config.AllowEmailIntoChannel),
	}, nil
}
