package m365

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/microsoftgraph/msgraph-sdk-go/users"
)

// GlobalAdministratorTemplateID is the directory role template of the
// Global Administrator role, identical in every tenant.
const GlobalAdministratorTemplateID = "62e90394-69f5-4237-9190-012177145e10"

// ListUsers returns every user with the requested properties selected.
// TODO: page with msgraphcore.PageIterator for tenants above 999 users.
func (s *Session) ListUsers(ctx context.Context, selectFields ...string) ([]models.Userable, error) {
	resp, err := s.graph.Users().Get(ctx, &users.UsersRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.UsersRequestBuilderGetQueryParameters{
			Select: selectFields,
			Top:    to.Ptr(int32(999)),
		},
	})
	if err != nil {
		return nil, classifyGraphError(err)
	}
	return resp.GetValue(), nil
}

func (s *Session) GetUser(ctx context.Context, id string) (models.Userable, error) {
	user, err := s.graph.Users().ByUserId(id).Get(ctx, nil)
	if err != nil {
		return nil, classifyGraphError(err)
	}
	return user, nil
}

func (s *Session) ListGroups(ctx context.Context) ([]models.Groupable, error) {
	resp, err := s.graph.Groups().Get(ctx, nil)
	if err != nil {
		return nil, classifyGraphError(err)
	}
	return resp.GetValue(), nil
}

func (s *Session) ListDomains(ctx context.Context) ([]models.Domainable, error) {
	resp, err := s.graph.Domains().Get(ctx, nil)
	if err != nil {
		return nil, classifyGraphError(err)
	}
	return resp.GetValue(), nil
}

// GetOrganization returns the tenant's organization object.
func (s *Session) GetOrganization(ctx context.Context) (models.Organizationable, error) {
	resp, err := s.graph.Organization().Get(ctx, nil)
	if err != nil {
		return nil, classifyGraphError(err)
	}
	orgs := resp.GetValue()
	if len(orgs) == 0 {
		return nil, fmt.Errorf("organization query returned no results")
	}
	return orgs[0], nil
}

// ListRoleMemberUsers resolves the activated directory role with the given
// template ID and returns its user members. A role that was never activated
// in the tenant yields an empty slice.
func (s *Session) ListRoleMemberUsers(ctx context.Context, roleTemplateID string) ([]models.Userable, error) {
	resp, err := s.graph.DirectoryRoles().Get(ctx, nil)
	if err != nil {
		return nil, classifyGraphError(err)
	}

	var roleID string
	for _, role := range resp.GetValue() {
		if tpl := role.GetRoleTemplateId(); tpl != nil && *tpl == roleTemplateID {
			if id := role.GetId(); id != nil {
				roleID = *id
			}
			break
		}
	}
	if roleID == "" {
		return nil, nil
	}

	members, err := s.graph.DirectoryRoles().ByDirectoryRoleId(roleID).Members().Get(ctx, nil)
	if err != nil {
		return nil, classifyGraphError(err)
	}

	var result []models.Userable
	for _, member := range members.GetValue() {
		if user, ok := member.(models.Userable); ok {
			result = append(result, user)
		}
	}
	return result, nil
}

func (s *Session) ListConditionalAccessPolicies(ctx context.Context) ([]models.ConditionalAccessPolicyable, error) {
	resp, err := s.graph.Identity().ConditionalAccess().Policies().Get(ctx, nil)
	if err != nil {
		return nil, classifyGraphError(err)
	}
	return resp.GetValue(), nil
}

func (s *Session) GetAuthorizationPolicy(ctx context.Context) (models.AuthorizationPolicyable, error) {
	policy, err := s.graph.Policies().AuthorizationPolicy().Get(ctx, nil)
	if err != nil {
		return nil, classifyGraphError(err)
	}
	return policy, nil
}

func (s *Session) GetAuthenticationMethodsPolicy(ctx context.Context) (models.AuthenticationMethodsPolicyable, error) {
	policy, err := s.graph.Policies().AuthenticationMethodsPolicy().Get(ctx, nil)
	if err != nil {
		return nil, classifyGraphError(err)
	}
	return policy, nil
}

func (s *Session) GetSecurityDefaultsPolicy(ctx context.Context) (models.IdentitySecurityDefaultsEnforcementPolicyable, error) {
	policy, err := s.graph.Policies().IdentitySecurityDefaultsEnforcementPolicy().Get(ctx, nil)
	if err != nil {
		return nil, classifyGraphError(err)
	}
	return policy, nil
}

// ListRoleEligibilityScheduleInstances lists PIM role eligibility. Tenants
// without a premium license answer with a license error that surfaces as a
// CapabilityError.
func (s *Session) ListRoleEligibilityScheduleInstances(ctx context.Context) ([]models.UnifiedRoleEligibilityScheduleInstanceable, error) {
	resp, err := s.graph.RoleManagement().Directory().RoleEligibilityScheduleInstances().Get(ctx, nil)
	if err != nil {
		return nil, classifyGraphError(err)
	}
	return resp.GetValue(), nil
}

func (s *Session) GetSharepointSettings(ctx context.Context) (models.SharepointSettingsable, error) {
	settings, err := s.graph.Admin().Sharepoint().Settings().Get(ctx, nil)
	if err != nil {
		return nil, classifyGraphError(err)
	}
	return settings, nil
}
