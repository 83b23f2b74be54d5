package teams

import (
	"context"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

// organizationOnlyAdmittance lists the lobby admittance modes that keep
// guests and external participants waiting for approval.
var organizationOnlyAdmittance = map[string]struct{}{
	"EveryoneInCompanyExcludingGuests": {},
	"OrganizerOnly":                    {},
	"InvitedUsers":                     {},
}

// AnonymousJoinDisabled verifies anonymous participants cannot join
// meetings under the global meeting policy. The result is a single
// tenant-level finding.
func AnonymousJoinDisabled(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policy, err := s.Teams().GetGlobalMeetingPolicy(ctx)
	if err != nil {
		return nil, err
	}
	return []types.Finding{
		types.NewFinding(policy.Identity, !policy.AllowAnonymousUsersToJoinMeeting).
			With("AllowAnonymousUsersToJoinMeeting", policy.AllowAnonymousUsersToJoinMeeting),
	}, nil
}

// LobbyBypassRestricted verifies only organization members skip the
// meeting lobby and dial-in callers always wait. The result is a single
// tenant-level finding.
func LobbyBypassRestricted(ctx context.Context, s *m365.Session) ([]types.Finding, error) {
	policy, err := s.Teams().GetGlobalMeetingPolicy(ctx)
	if err != nil {
		return nil, err
	}

	_, orgOnly := organizationOnlyAdmittance[policy.AutoAdmittedUsers]
	compliant := orgOnly && !policy.AllowPSTNUsersToBypassLobby
	return []types.Finding{
		types.NewFinding(policy.Identity, compliant).
			With("AutoAdmittedUsers", policy.AutoAdmittedUsers).
			With("AllowPSTNUsersToBypassLobby", policy.AllowPSTNUsersToBypassLobby),
	}, nil
}
