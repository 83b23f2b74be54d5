// Package m365test fakes the tenant side of every service a Session
// talks to. Tests stage the responses a check should see, build a
// Session against the fake, and assert on the verdict. Unstaged routes
// answer 404 so a check reaching an endpoint its test did not stage
// fails loudly instead of passing on empty data.
package m365test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/require"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
)

// Organization is the tenant domain every fake Session is built for.
const Organization = "contoso.onmicrosoft.com"

// Credential hands out static bearer tokens without talking to Entra.
type Credential struct{}

func (Credential) GetToken(_ context.Context, _ policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: "m365test-token", ExpiresOn: time.Now().Add(time.Hour)}, nil
}

type failure struct {
	status int
	body   string
}

// Server serves staged responses for Graph, the Exchange and Security &
// Compliance command endpoints, the Teams configuration records and the
// Fabric tenant settings, all on one TLS listener.
type Server struct {
	srv *httptest.Server

	mu       sync.Mutex
	graph    map[string]string
	cmdlets  map[string]string
	teams    map[string]string
	fabric   string
	failures map[string]failure
}

func NewServer() *Server {
	s := &Server{
		graph:    map[string]string{},
		cmdlets:  map[string]string{},
		teams:    map[string]string{},
		failures: map[string]failure{},
	}
	s.srv = httptest.NewTLSServer(http.HandlerFunc(s.handle))
	return s
}

func (s *Server) Close() {
	s.srv.Close()
}

func (s *Server) URL() string {
	return s.srv.URL
}

// StageGraph serves body for a Graph path such as "/users" or
// "/policies/authorizationPolicy". Collection responses need the usual
// {"value":[...]} envelope, and directory object members need their
// @odata.type annotation to deserialize as the concrete type.
func (s *Server) StageGraph(path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph["/v1.0"+path] = body
}

// StageCmdlet serves records, a JSON array, as the result of one
// Exchange or Security & Compliance cmdlet.
func (s *Server) StageCmdlet(name, records string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cmdlets[name] = records
}

// StageTeams serves records, a JSON array of configuration instances,
// for one Teams configuration name.
func (s *Server) StageTeams(name, records string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[name] = records
}

// StageFabric serves settings, a JSON array, as the tenant settings list.
func (s *Server) StageFabric(settings string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fabric = settings
}

// FailPath forces an OData error response for one exact request path,
// Graph paths included under their /v1.0 prefix.
func (s *Server) FailPath(path string, status int, code, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = failure{status: status, body: odataError(code, message)}
}

// FailCmdlet forces an OData error response for one cmdlet.
func (s *Server) FailCmdlet(name string, status int, code, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures["cmdlet:"+name] = failure{status: status, body: odataError(code, message)}
}

// Session builds a Session whose every service endpoint points at the
// fake server.
func (s *Server) Session(t *testing.T) *m365.Session {
	t.Helper()
	scope := "api://m365test/.default"
	session, err := m365.NewSession(Credential{}, Organization, &m365.SessionOptions{
		Endpoints: m365.Endpoints{
			GraphBaseURL:      s.srv.URL,
			GraphScope:        scope,
			ExchangeBaseURL:   s.srv.URL,
			ExchangeScope:     scope,
			ComplianceBaseURL: s.srv.URL,
			ComplianceScope:   scope,
			TeamsBaseURL:      s.srv.URL,
			TeamsScope:        scope,
			FabricBaseURL:     s.srv.URL,
			FabricScope:       scope,
		},
		HTTPClient: s.srv.Client(),
	})
	require.NoError(t, err)
	return session
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if f, ok := s.failures[r.URL.Path]; ok {
		w.WriteHeader(f.status)
		fmt.Fprint(w, f.body)
		return
	}

	switch {
	case strings.HasPrefix(r.URL.Path, "/adminapi/beta/") && strings.HasSuffix(r.URL.Path, "/InvokeCommand"):
		s.handleCmdlet(w, r)
	case strings.HasPrefix(r.URL.Path, "/Skype.Policy/configurations/"):
		name := strings.TrimPrefix(r.URL.Path, "/Skype.Policy/configurations/")
		body, ok := s.teams[name]
		if !ok {
			notStaged(w, "configuration "+name)
			return
		}
		fmt.Fprint(w, body)
	case r.URL.Path == "/v1/admin/tenantsettings":
		if s.fabric == "" {
			notStaged(w, "tenant settings")
			return
		}
		fmt.Fprintf(w, `{"tenantSettings":%s}`, s.fabric)
	default:
		body, ok := s.graph[r.URL.Path]
		if !ok {
			notStaged(w, r.URL.Path)
			return
		}
		fmt.Fprint(w, body)
	}
}

func (s *Server) handleCmdlet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CmdletInput struct {
			CmdletName string         `json:"CmdletName"`
			Parameters map[string]any `json:"Parameters"`
		} `json:"CmdletInput"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, odataError("InvalidRequest", err.Error()))
		return
	}

	name := req.CmdletInput.CmdletName
	if f, ok := s.failures["cmdlet:"+name]; ok {
		w.WriteHeader(f.status)
		fmt.Fprint(w, f.body)
		return
	}
	records, ok := s.cmdlets[name]
	if !ok {
		notStaged(w, "cmdlet "+name)
		return
	}
	fmt.Fprintf(w, `{"value":%s}`, records)
}

func notStaged(w http.ResponseWriter, what string) {
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprint(w, odataError("NotFound", what+" is not staged"))
}

func odataError(code, message string) string {
	body, _ := json.Marshal(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
	return string(body)
}
