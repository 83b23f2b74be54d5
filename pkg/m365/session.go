// Package m365 holds the authenticated client bundle compliance checks
// read tenant configuration through. A Session is built once by the caller
// from an azcore.TokenCredential and handed to every check; the package
// never acquires credentials itself.
package m365

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	absauth "github.com/microsoft/kiota-abstractions-go/authentication"
	authentication "github.com/microsoft/kiota-authentication-azure-go"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	"go.uber.org/zap"
)

type SessionOptions struct {
	// Endpoints selects the target cloud. The zero value means the
	// worldwide service endpoints.
	Endpoints Endpoints
	// HTTPClient is used for Exchange Online, Security & Compliance, Teams
	// and Fabric traffic, and for Graph when set. When nil the Graph SDK
	// keeps its own middleware client and the REST clients use
	// http.DefaultClient.
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Session bundles the per-service clients for one tenant. It is immutable
// after construction and safe for concurrent use; constructing it performs
// no network I/O.
type Session struct {
	organization string
	endpoints    Endpoints
	logger       *zap.Logger

	graph      *msgraphsdk.GraphServiceClient
	exchange   *ExchangeClient
	compliance *ExchangeClient
	teams      *TeamsClient
	fabric     *FabricClient
}

// NewSession builds the client bundle for one tenant. organization is the
// tenant's initial domain (contoso.onmicrosoft.com), which the Exchange
// admin protocol addresses commands to.
func NewSession(cred azcore.TokenCredential, organization string, options *SessionOptions) (*Session, error) {
	if cred == nil {
		return nil, fmt.Errorf("credential is required")
	}
	if organization == "" {
		return nil, fmt.Errorf("organization is required")
	}

	var opts SessionOptions
	if options != nil {
		opts = *options
	}
	endpoints := opts.Endpoints
	if endpoints.isZero() {
		endpoints = WorldwideEndpoints()
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	graphURL, err := url.Parse(endpoints.GraphBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse graph base url: %w", err)
	}
	tokenProvider, err := authentication.NewAzureIdentityAccessTokenProviderWithScopesAndValidHosts(
		cred, []string{endpoints.GraphScope}, []string{graphURL.Host})
	if err != nil {
		return nil, fmt.Errorf("build graph token provider: %w", err)
	}
	authProvider := absauth.NewBaseBearerTokenAuthenticationProvider(tokenProvider)

	var requestAdapter *msgraphsdk.GraphRequestAdapter
	if opts.HTTPClient != nil {
		requestAdapter, err = msgraphsdk.NewGraphRequestAdapterWithParseNodeFactoryAndSerializationWriterFactoryAndHttpClient(
			authProvider, nil, nil, opts.HTTPClient)
	} else {
		requestAdapter, err = msgraphsdk.NewGraphRequestAdapter(authProvider)
	}
	if err != nil {
		return nil, fmt.Errorf("build graph request adapter: %w", err)
	}
	requestAdapter.SetBaseUrl(strings.TrimSuffix(endpoints.GraphBaseURL, "/") + "/v1.0")

	invokePath := "/adminapi/beta/" + url.PathEscape(organization) + "/InvokeCommand"
	return &Session{
		organization: organization,
		endpoints:    endpoints,
		logger:       logger,
		graph:        msgraphsdk.NewGraphServiceClient(requestAdapter),
		exchange: &ExchangeClient{
			rest:       newRESTClient(serviceExchange, endpoints.ExchangeBaseURL, endpoints.ExchangeScope, cred, httpClient, logger),
			invokePath: invokePath,
		},
		compliance: &ExchangeClient{
			rest:       newRESTClient(serviceCompliance, endpoints.ComplianceBaseURL, endpoints.ComplianceScope, cred, httpClient, logger),
			invokePath: invokePath,
		},
		teams:  &TeamsClient{rest: newRESTClient(serviceTeams, endpoints.TeamsBaseURL, endpoints.TeamsScope, cred, httpClient, logger)},
		fabric: &FabricClient{rest: newRESTClient(serviceFabric, endpoints.FabricBaseURL, endpoints.FabricScope, cred, httpClient, logger)},
	}, nil
}

func (s *Session) Organization() string {
	return s.organization
}

// Graph returns the Microsoft Graph SDK client.
func (s *Session) Graph() *msgraphsdk.GraphServiceClient {
	return s.graph
}

// Exchange returns the Exchange Online admin client.
func (s *Session) Exchange() *ExchangeClient {
	return s.exchange
}

// SecurityCompliance returns the Security & Compliance admin client. It
// speaks the same command protocol as Exchange Online on its own endpoint.
func (s *Session) SecurityCompliance() *ExchangeClient {
	return s.compliance
}

// Teams returns the Teams admin configuration client.
func (s *Session) Teams() *TeamsClient {
	return s.teams
}

// Fabric returns the Fabric (Power BI) admin client.
func (s *Session) Fabric() *FabricClient {
	return s.fabric
}
