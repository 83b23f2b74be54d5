package admincenter

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// SharedMailboxSignInBlocked verifies the directory account behind every
// shared mailbox has sign-in disabled. A tenant without shared mailboxes
// passes with a synthetic compliant finding. A mailbox whose directory
// account cannot be resolved yields an undetermined finding.
func SharedMailboxSignInBlocked(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	mailboxes, err := s.Exchange().ListSharedMailboxes(ctx)
	if err != nil {
		return nil, err
	}
	if len(mailboxes) == 0 {
		return []types.Finding{types.NewFinding("no shared mailboxes found", true)}, nil
	}

	findings := make([]types.Finding, 0, len(mailboxes))
	for _, mailbox := range mailboxes {
		resource := mailbox.UserPrincipalName
		if resource == "" {
			resource = mailbox.Identity
		}
		if mailbox.ExternalDirectoryObjectId == "" {
			findings = append(findings,
				types.NewManualFinding(resource).
					With("Reason", "mailbox has no directory object to inspect"))
			continue
		}

		user, err := s.GetUser(ctx, mailbox.ExternalDirectoryObjectId)
		if err != nil {
			return nil, err
		}
		enabled := user.GetAccountEnabled() != nil && *user.GetAccountEnabled()
		findings = append(findings,
			types.NewFinding(resource, !enabled).
				With("AccountEnabled", enabled).
				With("RecipientTypeDetails", mailbox.RecipientTypeDetails))
	}
	return findings, nil
}
