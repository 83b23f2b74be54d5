package m365

import (
	"context"
	"encoding/json"
	"fmt"
)

// ExchangeClient queries Exchange Online (and, on its own endpoint,
// Security & Compliance) through the admin REST protocol: each cmdlet
// invocation is a POST to /adminapi/beta/{organization}/InvokeCommand and
// answers with an OData value array. Only Get- cmdlets are ever issued.
type ExchangeClient struct {
	rest       *restClient
	invokePath string
}

type cmdletInput struct {
	CmdletName string         `json:"CmdletName"`
	Parameters map[string]any `json:"Parameters,omitempty"`
}

type invokeCommandRequest struct {
	CmdletInput cmdletInput `json:"CmdletInput"`
}

func (c *ExchangeClient) invoke(ctx context.Context, cmdlet string, params map[string]any, v any) error {
	var res struct {
		Value json.RawMessage `json:"value"`
	}
	req := invokeCommandRequest{CmdletInput: cmdletInput{CmdletName: cmdlet, Parameters: params}}
	if err := c.rest.post(ctx, c.invokePath, req, &res); err != nil {
		return err
	}
	if v == nil || len(res.Value) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.Value, v); err != nil {
		return fmt.Errorf("decode %s response: %w", cmdlet, err)
	}
	return nil
}

func invokeList[T any](ctx context.Context, c *ExchangeClient, cmdlet string, params map[string]any) ([]T, error) {
	var out []T
	if err := c.invoke(ctx, cmdlet, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func invokeOne[T any](ctx context.Context, c *ExchangeClient, cmdlet string, params map[string]any) (*T, error) {
	out, err := invokeList[T](ctx, c, cmdlet, params)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned no results", cmdlet)
	}
	return &out[0], nil
}

// OrganizationConfig is the tenant-wide Exchange configuration record
// (Get-OrganizationConfig).
type OrganizationConfig struct {
	Name                                  string `json:"Name"`
	Identity                              string `json:"Identity"`
	AuditDisabled                         bool   `json:"AuditDisabled"`
	CustomerLockboxEnabled                bool   `json:"CustomerLockboxEnabled"`
	OAuth2ClientProfileEnabled            bool   `json:"OAuth2ClientProfileEnabled"`
	MailTipsAllTipsEnabled                bool   `json:"MailTipsAllTipsEnabled"`
	MailTipsExternalRecipientsTipsEnabled bool   `json:"MailTipsExternalRecipientsTipsEnabled"`
	MailTipsGroupMetricsEnabled           bool   `json:"MailTipsGroupMetricsEnabled"`
	MailTipsLargeAudienceThreshold        int    `json:"MailTipsLargeAudienceThreshold"`
}

type AdminAuditLogConfig struct {
	Name                            string `json:"Name"`
	AdminAuditLogEnabled            bool   `json:"AdminAuditLogEnabled"`
	UnifiedAuditLogIngestionEnabled bool   `json:"UnifiedAuditLogIngestionEnabled"`
}

type MalwareFilterPolicy struct {
	Identity                               string   `json:"Identity"`
	IsDefault                              bool     `json:"IsDefault"`
	EnableFileFilter                       bool     `json:"EnableFileFilter"`
	FileTypes                              []string `json:"FileTypes"`
	EnableInternalSenderAdminNotifications bool     `json:"EnableInternalSenderAdminNotifications"`
	InternalSenderAdminAddress             string   `json:"InternalSenderAdminAddress"`
}

type SafeLinksPolicy struct {
	Identity                 string `json:"Identity"`
	EnableSafeLinksForEmail  bool   `json:"EnableSafeLinksForEmail"`
	EnableSafeLinksForTeams  bool   `json:"EnableSafeLinksForTeams"`
	EnableSafeLinksForOffice bool   `json:"EnableSafeLinksForOffice"`
	TrackClicks              bool   `json:"TrackClicks"`
	AllowClickThrough        bool   `json:"AllowClickThrough"`
	ScanUrls                 bool   `json:"ScanUrls"`
	EnableForInternalSenders bool   `json:"EnableForInternalSenders"`
	DeliverMessageAfterScan  bool   `json:"DeliverMessageAfterScan"`
	DisableUrlRewrite        bool   `json:"DisableUrlRewrite"`
}

type SafeAttachmentPolicy struct {
	Identity string `json:"Identity"`
	Enable   bool   `json:"Enable"`
	Action   string `json:"Action"`
	Redirect bool   `json:"Redirect"`
}

type AtpPolicyForO365 struct {
	Identity                string `json:"Identity"`
	EnableATPForSPOTeamsODB bool   `json:"EnableATPForSPOTeamsODB"`
	EnableSafeDocs          bool   `json:"EnableSafeDocs"`
	AllowSafeDocsOpen       bool   `json:"AllowSafeDocsOpen"`
}

type AntiPhishPolicy struct {
	Identity                            string `json:"Identity"`
	IsDefault                           bool   `json:"IsDefault"`
	Enabled                             bool   `json:"Enabled"`
	PhishThresholdLevel                 int    `json:"PhishThresholdLevel"`
	EnableMailboxIntelligence           bool   `json:"EnableMailboxIntelligence"`
	EnableMailboxIntelligenceProtection bool   `json:"EnableMailboxIntelligenceProtection"`
	EnableSpoofIntelligence             bool   `json:"EnableSpoofIntelligence"`
}

type HostedOutboundSpamFilterPolicy struct {
	Identity                                  string   `json:"Identity"`
	IsDefault                                 bool     `json:"IsDefault"`
	NotifyOutboundSpam                        bool     `json:"NotifyOutboundSpam"`
	NotifyOutboundSpamRecipients              []string `json:"NotifyOutboundSpamRecipients"`
	BccSuspiciousOutboundMail                 bool     `json:"BccSuspiciousOutboundMail"`
	BccSuspiciousOutboundAdditionalRecipients []string `json:"BccSuspiciousOutboundAdditionalRecipients"`
}

type HostedConnectionFilterPolicy struct {
	Identity       string   `json:"Identity"`
	IsDefault      bool     `json:"IsDefault"`
	IPAllowList    []string `json:"IPAllowList"`
	EnableSafeList bool     `json:"EnableSafeList"`
}

type TransportRule struct {
	Name              string   `json:"Name"`
	State             string   `json:"State"`
	Priority          int      `json:"Priority"`
	SetSCL            *int     `json:"SetSCL"`
	SenderDomainIs    []string `json:"SenderDomainIs"`
	RedirectMessageTo []string `json:"RedirectMessageTo"`
	BlindCopyTo       []string `json:"BlindCopyTo"`
	CopyTo            []string `json:"CopyTo"`
}

type RemoteDomain struct {
	Identity           string `json:"Identity"`
	DomainName         string `json:"DomainName"`
	AutoForwardEnabled bool   `json:"AutoForwardEnabled"`
	AllowedOOFType     string `json:"AllowedOOFType"`
}

type SharingPolicy struct {
	Identity string   `json:"Identity"`
	Name     string   `json:"Name"`
	Enabled  bool     `json:"Enabled"`
	Default  bool     `json:"Default"`
	Domains  []string `json:"Domains"`
}

type OwaMailboxPolicy struct {
	Identity                            string `json:"Identity"`
	IsDefault                           bool   `json:"IsDefault"`
	AdditionalStorageProvidersAvailable bool   `json:"AdditionalStorageProvidersAvailable"`
}

// ExternalSenderConfig is the external-sender identification setting
// (Get-ExternalInOutlook).
type ExternalSenderConfig struct {
	Identity  string   `json:"Identity"`
	Enabled   bool     `json:"Enabled"`
	AllowList []string `json:"AllowList"`
}

type ExoMailbox struct {
	Identity                  string `json:"Identity"`
	ExternalDirectoryObjectId string `json:"ExternalDirectoryObjectId"`
	UserPrincipalName         string `json:"UserPrincipalName"`
	DisplayName               string `json:"DisplayName"`
	PrimarySmtpAddress        string `json:"PrimarySmtpAddress"`
	RecipientTypeDetails      string `json:"RecipientTypeDetails"`
}

type DkimSigningConfig struct {
	Identity string `json:"Identity"`
	Domain   string `json:"Domain"`
	Enabled  bool   `json:"Enabled"`
	Status   string `json:"Status"`
}

type ReportSubmissionPolicy struct {
	Identity                                    string   `json:"Identity"`
	ReportJunkToCustomizedAddress               bool     `json:"ReportJunkToCustomizedAddress"`
	ReportNotJunkToCustomizedAddress            bool     `json:"ReportNotJunkToCustomizedAddress"`
	ReportPhishToCustomizedAddress              bool     `json:"ReportPhishToCustomizedAddress"`
	ReportJunkAddresses                         []string `json:"ReportJunkAddresses"`
	ReportNotJunkAddresses                      []string `json:"ReportNotJunkAddresses"`
	ReportPhishAddresses                        []string `json:"ReportPhishAddresses"`
	ReportChatMessageEnabled                    bool     `json:"ReportChatMessageEnabled"`
	ReportChatMessageToCustomizedAddressEnabled bool     `json:"ReportChatMessageToCustomizedAddressEnabled"`
}

// DlpCompliancePolicy lives in Security & Compliance
// (Get-DlpCompliancePolicy via the SecurityCompliance client).
type DlpCompliancePolicy struct {
	Name     string `json:"Name"`
	Mode     string `json:"Mode"`
	Enabled  bool   `json:"Enabled"`
	Workload string `json:"Workload"`
}

func (c *ExchangeClient) GetOrganizationConfig(ctx context.Context) (*OrganizationConfig, error) {
	return invokeOne[OrganizationConfig](ctx, c, "Get-OrganizationConfig", nil)
}

func (c *ExchangeClient) GetAdminAuditLogConfig(ctx context.Context) (*AdminAuditLogConfig, error) {
	return invokeOne[AdminAuditLogConfig](ctx, c, "Get-AdminAuditLogConfig", nil)
}

func (c *ExchangeClient) ListMalwareFilterPolicies(ctx context.Context) ([]MalwareFilterPolicy, error) {
	return invokeList[MalwareFilterPolicy](ctx, c, "Get-MalwareFilterPolicy", nil)
}

func (c *ExchangeClient) ListSafeLinksPolicies(ctx context.Context) ([]SafeLinksPolicy, error) {
	return invokeList[SafeLinksPolicy](ctx, c, "Get-SafeLinksPolicy", nil)
}

func (c *ExchangeClient) ListSafeAttachmentPolicies(ctx context.Context) ([]SafeAttachmentPolicy, error) {
	return invokeList[SafeAttachmentPolicy](ctx, c, "Get-SafeAttachmentPolicy", nil)
}

func (c *ExchangeClient) GetAtpPolicyForO365(ctx context.Context) (*AtpPolicyForO365, error) {
	return invokeOne[AtpPolicyForO365](ctx, c, "Get-AtpPolicyForO365", nil)
}

func (c *ExchangeClient) ListAntiPhishPolicies(ctx context.Context) ([]AntiPhishPolicy, error) {
	return invokeList[AntiPhishPolicy](ctx, c, "Get-AntiPhishPolicy", nil)
}

func (c *ExchangeClient) ListHostedOutboundSpamFilterPolicies(ctx context.Context) ([]HostedOutboundSpamFilterPolicy, error) {
	return invokeList[HostedOutboundSpamFilterPolicy](ctx, c, "Get-HostedOutboundSpamFilterPolicy", nil)
}

func (c *ExchangeClient) ListHostedConnectionFilterPolicies(ctx context.Context) ([]HostedConnectionFilterPolicy, error) {
	return invokeList[HostedConnectionFilterPolicy](ctx, c, "Get-HostedConnectionFilterPolicy", nil)
}

func (c *ExchangeClient) ListTransportRules(ctx context.Context) ([]TransportRule, error) {
	return invokeList[TransportRule](ctx, c, "Get-TransportRule", nil)
}

func (c *ExchangeClient) ListRemoteDomains(ctx context.Context) ([]RemoteDomain, error) {
	return invokeList[RemoteDomain](ctx, c, "Get-RemoteDomain", nil)
}

func (c *ExchangeClient) ListSharingPolicies(ctx context.Context) ([]SharingPolicy, error) {
	return invokeList[SharingPolicy](ctx, c, "Get-SharingPolicy", nil)
}

func (c *ExchangeClient) ListOwaMailboxPolicies(ctx context.Context) ([]OwaMailboxPolicy, error) {
	return invokeList[OwaMailboxPolicy](ctx, c, "Get-OwaMailboxPolicy", nil)
}

func (c *ExchangeClient) ListExternalSenderConfigs(ctx context.Context) ([]ExternalSenderConfig, error) {
	return invokeList[ExternalSenderConfig](ctx, c, "Get-ExternalInOutlook", nil)
}

// ListSharedMailboxes returns only mailboxes of type SharedMailbox.
func (c *ExchangeClient) ListSharedMailboxes(ctx context.Context) ([]ExoMailbox, error) {
	return invokeList[ExoMailbox](ctx, c, "Get-EXOMailbox", map[string]any{
		"RecipientTypeDetails": "SharedMailbox",
		"ResultSize":           "Unlimited",
	})
}

func (c *ExchangeClient) ListDkimSigningConfigs(ctx context.Context) ([]DkimSigningConfig, error) {
	return invokeList[DkimSigningConfig](ctx, c, "Get-DkimSigningConfig", nil)
}

func (c *ExchangeClient) GetReportSubmissionPolicy(ctx context.Context) (*ReportSubmissionPolicy, error) {
	return invokeOne[ReportSubmissionPolicy](ctx, c, "Get-ReportSubmissionPolicy", nil)
}

func (c *ExchangeClient) ListDlpCompliancePolicies(ctx context.Context) ([]DlpCompliancePolicy, error) {
	return invokeList[DlpCompliancePolicy](ctx, c, "Get-DlpCompliancePolicy", nil)
}
