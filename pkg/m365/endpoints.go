package m365

// Endpoints carries the service roots and token scopes for one Microsoft
// cloud. Checks never see these: they are resolved once when the Session is
// built.
type Endpoints struct {
	GraphBaseURL string
	GraphScope   string

	ExchangeBaseURL string
	ExchangeScope   string

	// Security & Compliance shares the Exchange admin protocol on its own
	// host and audience.
	ComplianceBaseURL string
	ComplianceScope   string

	TeamsBaseURL string
	TeamsScope   string

	FabricBaseURL string
	FabricScope   string
}

// teamsAdminAppID is the well-known application ID of the Skype and Teams
// Tenant Admin API, the audience the Teams records service expects.
const teamsAdminAppID = "48ac35b8-9aa8-4d74-927d-1f4a14a0b239"

func WorldwideEndpoints() Endpoints {
	return Endpoints{
		GraphBaseURL:      "https://graph.microsoft.com",
		GraphScope:        "https://graph.microsoft.com/.default",
		ExchangeBaseURL:   "https://outlook.office365.com",
		ExchangeScope:     "https://outlook.office365.com/.default",
		ComplianceBaseURL: "https://ps.compliance.protection.outlook.com",
		ComplianceScope:   "https://ps.compliance.protection.outlook.com/.default",
		TeamsBaseURL:      "https://api.interfaces.records.teams.microsoft.com",
		TeamsScope:        teamsAdminAppID + "/.default",
		FabricBaseURL:     "https://api.fabric.microsoft.com",
		FabricScope:       "https://analysis.windows.net/powerbi/api/.default",
	}
}

func USGovernmentEndpoints() Endpoints {
	return Endpoints{
		GraphBaseURL:      "https://graph.microsoft.us",
		GraphScope:        "https://graph.microsoft.us/.default",
		ExchangeBaseURL:   "https://outlook.office365.us",
		ExchangeScope:     "https://outlook.office365.us/.default",
		ComplianceBaseURL: "https://ps.compliance.protection.office365.us",
		ComplianceScope:   "https://ps.compliance.protection.office365.us/.default",
		TeamsBaseURL:      "https://api.interfaces.records.teams.microsoft.us",
		TeamsScope:        teamsAdminAppID + "/.default",
		FabricBaseURL:     "https://api.powerbigov.us",
		FabricScope:       "https://analysis.usgovcloudapi.net/powerbi/api/.default",
	}
}

func (e Endpoints) isZero() bool {
	return e == Endpoints{}
}
