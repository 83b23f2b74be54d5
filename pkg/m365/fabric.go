package m365

import (
	"context"
)

// FabricClient reads tenant settings from the Fabric (Power BI) admin API.
type FabricClient struct {
	rest *restClient
}

// TenantSetting is one switch on the Fabric admin tenant settings page.
// A disabled switch, or one scoped to specific security groups, counts as
// restricted for the benchmark's purposes.
type TenantSetting struct {
	SettingName              string                 `json:"settingName"`
	Title                    string                 `json:"title"`
	Enabled                  bool                   `json:"enabled"`
	CanSpecifySecurityGroups bool                   `json:"canSpecifySecurityGroups"`
	EnabledSecurityGroups    []TenantSettingGroup   `json:"enabledSecurityGroups"`
	TenantSettingGroup       string                 `json:"tenantSettingGroup"`
	Properties               []TenantSettingDetails `json:"properties"`
}

type TenantSettingGroup struct {
	GraphID string `json:"graphId"`
	Name    string `json:"name"`
}

type TenantSettingDetails struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// RestrictedToGroups reports whether the setting, while enabled, only
// applies to an explicit list of security groups.
func (s TenantSetting) RestrictedToGroups() bool {
	return s.Enabled && len(s.EnabledSecurityGroups) > 0
}

func (c *FabricClient) ListTenantSettings(ctx context.Context) ([]TenantSetting, error) {
	var res struct {
		TenantSettings []TenantSetting `json:"tenantSettings"`
	}
	if err := c.rest.get(ctx, "/v1/admin/tenantsettings", &res); err != nil {
		return nil, err
	}
	return res.TenantSettings, nil
}

// FindTenantSetting looks a setting up by name; ok is false when the
// tenant does not expose it.
func FindTenantSetting(settings []TenantSetting, name string) (TenantSetting, bool) {
	for _, s := range settings {
		if s.SettingName == name {
			return s, true
		}
	}
	return TenantSetting{}, false
}
