// Package checks binds every automated control in the benchmark catalog
// to its body. Section packages hold the bodies; this table is the only
// place the binding lives.
package checks

import (
	"github.com/kaytu-io/kaytu-m365-audit/pkg/compliance"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/compliance/checks/admincenter"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/compliance/checks/defender"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/compliance/checks/entra"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/compliance/checks/exchange"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/compliance/checks/fabric"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/compliance/checks/purview"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/compliance/checks/sharepoint"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/compliance/checks/teams"
)

// Bodies maps control IDs to check bodies. Controls missing here must be
// marked for manual verification in the catalog; NewRegistry enforces the
// correspondence in both directions.
var Bodies = map[string]compliance.CheckFunc{
	"m365_cis_v400_1_1_1": admincenter.AdministratorsCloudOnly,
	"m365_cis_v400_1_1_3": admincenter.GlobalAdministratorCount,
	"m365_cis_v400_1_2_1": admincenter.PublicGroupsReviewed,
	"m365_cis_v400_1_2_2": admincenter.SharedMailboxSignInBlocked,
	"m365_cis_v400_1_3_1": admincenter.PasswordsNeverExpire,
	"m365_cis_v400_1_3_3": admincenter.CalendarExternalSharingDisabled,
	"m365_cis_v400_1_3_6": admincenter.CustomerLockboxEnabled,

	"m365_cis_v400_2_1_1":  defender.SafeLinksOfficeProtection,
	"m365_cis_v400_2_1_2":  defender.CommonAttachmentFilter,
	"m365_cis_v400_2_1_3":  defender.InternalMalwareNotification,
	"m365_cis_v400_2_1_4":  defender.SafeAttachmentsEnabled,
	"m365_cis_v400_2_1_5":  defender.SafeAttachmentsForCollaboration,
	"m365_cis_v400_2_1_6":  defender.OutboundSpamNotification,
	"m365_cis_v400_2_1_7":  defender.AntiPhishingPolicyConfigured,
	"m365_cis_v400_2_1_9":  defender.DkimSigningEnabled,
	"m365_cis_v400_2_1_12": defender.ConnectionFilterAllowListEmpty,

	"m365_cis_v400_3_1_1": purview.UnifiedAuditLogEnabled,
	"m365_cis_v400_3_2_1": purview.DlpPoliciesEnabled,

	"m365_cis_v400_5_1_1_1": entra.SecurityDefaultsDisabled,
	"m365_cis_v400_5_1_2_2": entra.AppRegistrationRestricted,
	"m365_cis_v400_5_1_2_3": entra.TenantCreationRestricted,
	"m365_cis_v400_5_1_6_1": entra.GuestAccessRestricted,
	"m365_cis_v400_5_1_8_1": entra.PasswordHashSyncEnabled,
	"m365_cis_v400_5_2_2_1": entra.AdminMfaConditionalAccess,
	"m365_cis_v400_5_2_2_2": entra.AllUsersMfaConditionalAccess,
	"m365_cis_v400_5_2_2_3": entra.LegacyAuthenticationBlocked,
	"m365_cis_v400_5_2_3_1": entra.AuthenticatorContextConfigured,
	"m365_cis_v400_5_3_1":   entra.PrivilegedRolesUseEligibility,

	"m365_cis_v400_6_1_1": exchange.OrganizationAuditingEnabled,
	"m365_cis_v400_6_2_1": exchange.ExternalForwardingBlocked,
	"m365_cis_v400_6_2_2": exchange.NoWhitelistedTransportRules,
	"m365_cis_v400_6_2_3": exchange.ExternalSenderTagging,
	"m365_cis_v400_6_5_1": exchange.ModernAuthenticationRequired,
	"m365_cis_v400_6_5_2": exchange.MailTipsEnabled,
	"m365_cis_v400_6_5_3": exchange.OwaStorageProvidersDisabled,

	"m365_cis_v400_7_2_1": sharepoint.LegacyAuthenticationDisabled,
	"m365_cis_v400_7_2_3": sharepoint.SharingCapabilityRestricted,
	"m365_cis_v400_7_2_5": sharepoint.GuestResharingPrevented,
	"m365_cis_v400_7_2_6": sharepoint.SharingDomainAllowList,
	"m365_cis_v400_7_3_2": sharepoint.UnmanagedDeviceSyncRestricted,

	"m365_cis_v400_8_1_1": teams.CloudStorageProvidersDisabled,
	"m365_cis_v400_8_1_2": teams.ChannelEmailDisabled,
	"m365_cis_v400_8_2_1": teams.FederationAllowListConfigured,
	"m365_cis_v400_8_2_2": teams.ConsumerCommunicationBlocked,
	"m365_cis_v400_8_5_1": teams.AnonymousJoinDisabled,
	"m365_cis_v400_8_5_3": teams.LobbyBypassRestricted,
	"m365_cis_v400_8_6_1": teams.SecurityReportingEnabled,

	"m365_cis_v400_9_1_1": fabric.GuestContentAccessRestricted,
	"m365_cis_v400_9_1_2": fabric.GuestInvitationsRestricted,
	"m365_cis_v400_9_1_7": fabric.PublishToWebRestricted,
	"m365_cis_v400_9_1_9": fabric.ResourceKeyAuthenticationBlocked,
}

// NewRegistry loads the embedded catalog and binds it to Bodies.
func NewRegistry() (*compliance.Registry, error) {
	benchmark, err := compliance.LoadBenchmark()
	if err != nil {
		return nil, err
	}
	return compliance.NewRegistry(benchmark, Bodies)
}
