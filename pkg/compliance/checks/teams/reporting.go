package teams

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// SecurityReportingEnabled verifies users can report suspicious Teams
// messages and the reports land at a configured security mailbox. The
// check spans two services and yields one finding for the Teams
// messaging policy and one for the Exchange report submission policy;
// both must comply.
func SecurityReportingEnabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	messaging, err := s.Teams().GetGlobalMessagingPolicy(ctx)
	if err != nil {
		return nil, err
	}
	submission, err := s.Exchange().GetReportSubmissionPolicy(ctx)
	if err != nil {
		return nil, err
	}

	submissionCompliant := submission.ReportJunkToCustomizedAddress &&
		submission.ReportNotJunkToCustomizedAddress &&
		submission.ReportPhishToCustomizedAddress &&
		len(submission.ReportJunkAddresses) > 0 &&
		len(submission.ReportNotJunkAddresses) > 0 &&
		len(submission.ReportPhishAddresses) > 0 &&
		!submission.ReportChatMessageEnabled &&
		submission.ReportChatMessageToCustomizedAddressEnabled

	return []types.Finding{
		types.NewFinding(messaging.Identity, messaging.AllowSecurityEndUserReporting).
			With("AllowSecurityEndUserReporting", messaging.AllowSecurityEndUserReporting),
		types.NewFinding(submission.Identity, submissionCompliant).
			With("ReportJunkToCustomizedAddress", submission.ReportJunkToCustomizedAddress).
			With("ReportNotJunkToCustomizedAddress", submission.ReportNotJunkToCustomizedAddress).
			With("ReportPhishToCustomizedAddress", submission.ReportPhishToCustomizedAddress).
			With("ReportChatMessageEnabled", submission.ReportChatMessageEnabled).
			With("ReportChatMessageToCustomizedAddressEnabled", submission.ReportChatMessageToCustomizedAddressEnabled),
	}, nil
}
