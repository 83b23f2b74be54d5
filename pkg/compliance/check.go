// Package compliance holds the evaluation contract for benchmark controls:
// the Check type, the Evaluate boundary that turns a check run into a
// terminal verdict, the control registry, and the embedded benchmark
// catalog.
package compliance

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// CheckFunc is the body of one control. It reads tenant state through the
// session and returns one finding per evaluated resource instance. Bodies
// are read-only against the tenant and perform no retries, caching, or
// session management of their own.
type CheckFunc func(ctx context.Context, s *m365.Session) ([]types.Finding, error)

// Check pairs a control's catalog metadata with its executable body.
type Check struct {
	Control types.Control
	Run     CheckFunc
}

// ManualCheck is the shared body of controls that cannot be audited through
// any tenant API. It yields one undetermined finding so the verdict is
// always Manual.
func ManualCheck(_ context.Context, _ *m365.Session) ([]types.Finding, error) {
	return []types.Finding{
		types.NewManualFinding("tenant").
			With("Reason", "control requires manual verification in the admin portal"),
	}, nil
}
