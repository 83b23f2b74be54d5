package m365

import (
	"context"
	"fmt"
)

// TeamsClient reads tenant-wide Teams settings from the Teams admin records
// service. A configuration name resolves to a list of instances; the
// tenant-wide one carries the Global identity.
type TeamsClient struct {
	rest *restClient
}

type TeamsClientConfiguration struct {
	Identity              string `json:"Identity"`
	AllowDropBox          bool   `json:"AllowDropBox"`
	AllowBox              bool   `json:"AllowBox"`
	AllowGoogleDrive      bool   `json:"AllowGoogleDrive"`
	AllowShareFile        bool   `json:"AllowShareFile"`
	AllowEgnyte           bool   `json:"AllowEgnyte"`
	AllowEmailIntoChannel bool   `json:"AllowEmailIntoChannel"`
}

type TenantFederationConfiguration struct {
	Identity                  string   `json:"Identity"`
	AllowFederatedUsers       bool     `json:"AllowFederatedUsers"`
	AllowedDomains            []string `json:"AllowedDomains"`
	AllowTeamsConsumer        bool     `json:"AllowTeamsConsumer"`
	AllowTeamsConsumerInbound bool     `json:"AllowTeamsConsumerInbound"`
	AllowPublicUsers          bool     `json:"AllowPublicUsers"`
}

type TeamsMeetingPolicy struct {
	Identity                                   string `json:"Identity"`
	AllowAnonymousUsersToJoinMeeting           bool   `json:"AllowAnonymousUsersToJoinMeeting"`
	AllowAnonymousUsersToStartMeeting          bool   `json:"AllowAnonymousUsersToStartMeeting"`
	AutoAdmittedUsers                          string `json:"AutoAdmittedUsers"`
	AllowPSTNUsersToBypassLobby                bool   `json:"AllowPSTNUsersToBypassLobby"`
	AllowExternalParticipantGiveRequestControl bool   `json:"AllowExternalParticipantGiveRequestControl"`
	DesignatedPresenterRoleMode                string `json:"DesignatedPresenterRoleMode"`
}

type TeamsMessagingPolicy struct {
	Identity                      string `json:"Identity"`
	AllowSecurityEndUserReporting bool   `json:"AllowSecurityEndUserReporting"`
}

func (c *TeamsClient) configuration(ctx context.Context, name string, v any) error {
	return c.rest.get(ctx, "/Skype.Policy/configurations/"+name, v)
}

// globalOf picks the tenant-wide instance out of a configuration list,
// falling back to the first instance when none is named Global.
func globalOf[T any](name string, items []T, identity func(T) string) (*T, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%s returned no configurations", name)
	}
	for i, item := range items {
		if identity(item) == "Global" {
			return &items[i], nil
		}
	}
	return &items[0], nil
}

func (c *TeamsClient) GetClientConfiguration(ctx context.Context) (*TeamsClientConfiguration, error) {
	var items []TeamsClientConfiguration
	if err := c.configuration(ctx, "TeamsClientConfiguration", &items); err != nil {
		return nil, err
	}
	return globalOf("TeamsClientConfiguration", items, func(v TeamsClientConfiguration) string { return v.Identity })
}

func (c *TeamsClient) GetTenantFederationConfiguration(ctx context.Context) (*TenantFederationConfiguration, error) {
	var items []TenantFederationConfiguration
	if err := c.configuration(ctx, "TenantFederationSettings", &items); err != nil {
		return nil, err
	}
	return globalOf("TenantFederationSettings", items, func(v TenantFederationConfiguration) string { return v.Identity })
}

func (c *TeamsClient) GetGlobalMeetingPolicy(ctx context.Context) (*TeamsMeetingPolicy, error) {
	var items []TeamsMeetingPolicy
	if err := c.configuration(ctx, "TeamsMeetingPolicy", &items); err != nil {
		return nil, err
	}
	return globalOf("TeamsMeetingPolicy", items, func(v TeamsMeetingPolicy) string { return v.Identity })
}

func (c *TeamsClient) GetGlobalMessagingPolicy(ctx context.Context) (*TeamsMessagingPolicy, error) {
	var items []TeamsMessagingPolicy
	if err := c.configuration(ctx, "TeamsMessagingPolicy", &items); err != nil {
		return nil, err
	}
	return globalOf("TeamsMessagingPolicy", items, func(v TeamsMessagingPolicy) string { return v.Identity })
}
