package m365

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teamsServer(t *testing.T, configs map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		const prefix = "/Skype.Policy/configurations/"
		require.True(t, len(r.URL.Path) > len(prefix))

		body, ok := configs[r.URL.Path[len(prefix):]]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestTeamsClient_PicksGlobalInstance(t *testing.T) {
	srv := teamsServer(t, map[string]string{
		"TeamsClientConfiguration": `[
			{"Identity":"Site:emea","AllowDropBox":true},
			{"Identity":"Global","AllowDropBox":false,"AllowEmailIntoChannel":true}
		]`,
	})
	defer srv.Close()

	client := &TeamsClient{rest: testRESTClient(srv)}
	config, err := client.GetClientConfiguration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Global", config.Identity)
	assert.False(t, config.AllowDropBox)
	assert.True(t, config.AllowEmailIntoChannel)
}

func TestTeamsClient_FallsBackToFirstInstance(t *testing.T) {
	srv := teamsServer(t, map[string]string{
		"TenantFederationSettings": `[{"Identity":"Tenant:1234","AllowFederatedUsers":true,"AllowedDomains":["partner.example"]}]`,
	})
	defer srv.Close()

	client := &TeamsClient{rest: testRESTClient(srv)}
	config, err := client.GetTenantFederationConfiguration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tenant:1234", config.Identity)
	assert.Equal(t, []string{"partner.example"}, config.AllowedDomains)
}

func TestTeamsClient_EmptyConfiguration(t *testing.T) {
	srv := teamsServer(t, map[string]string{
		"TeamsMeetingPolicy": `[]`,
	})
	defer srv.Close()

	client := &TeamsClient{rest: testRESTClient(srv)}
	_, err := client.GetGlobalMeetingPolicy(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no configurations")
}

func Test_globalOf(t *testing.T) {
	type item struct{ id string }
	identity := func(v item) string { return v.id }

	got, err := globalOf("x", []item{{id: "A"}, {id: "Global"}, {id: "B"}}, identity)
	require.NoError(t, err)
	assert.Equal(t, "Global", got.id)

	got, err = globalOf("x", []item{{id: "A"}, {id: "B"}}, identity)
	require.NoError(t, err)
	assert.Equal(t, "A", got.id)

	_, err = globalOf("x", nil, identity)
	require.Error(t, err)
}
