package m365

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// restClient is the shared transport for the admin services that have no
// official Go SDK (Exchange Online, Security & Compliance, Teams, Fabric).
// It acquires a bearer token for the service audience on every call and
// decodes JSON responses into caller-supplied structs.
type restClient struct {
	service    string
	baseURL    string
	scope      string
	cred       azcore.TokenCredential
	httpClient *http.Client
	logger     *zap.Logger
}

func newRESTClient(service, baseURL, scope string, cred azcore.TokenCredential, httpClient *http.Client, logger *zap.Logger) *restClient {
	return &restClient{
		service:    service,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		scope:      scope,
		cred:       cred,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *restClient) get(ctx context.Context, path string, v any) error {
	return c.do(ctx, http.MethodGet, path, nil, v)
}

func (c *restClient) post(ctx context.Context, path string, payload, v any) error {
	return c.do(ctx, http.MethodPost, path, payload, v)
}

func (c *restClient) do(ctx context.Context, method, path string, payload, v any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", c.service, err)
		}
		body = bytes.NewReader(data)
	}

	token, err := c.cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{c.scope}})
	if err != nil {
		return fmt.Errorf("acquire %s token: %w", c.service, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token.Token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("client-request-id", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("tenant request", zap.String("service", c.service), zap.String("method", method), zap.String("path", path))

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", c.service, err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return c.responseError(res.StatusCode, data)
	}
	if v == nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s response: %w", c.service, err)
	}
	return nil
}

// responseError maps a non-success response onto the error taxonomy. The
// admin services answer in the OData error envelope; bodies that do not
// parse are carried verbatim as the message.
func (c *restClient) responseError(statusCode int, data []byte) error {
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.Unmarshal(data, &envelope)

	code := envelope.Error.Code
	message := envelope.Error.Message
	if message == "" {
		message = strings.TrimSpace(string(data))
		if len(message) > 512 {
			message = message[:512]
		}
	}

	if capability, ok := capabilityFor(statusCode, code, message); ok {
		return &CapabilityError{Service: c.service, Capability: capability, Message: message}
	}

	c.logger.Warn("tenant request failed",
		zap.String("service", c.service),
		zap.Int("status_code", statusCode),
		zap.String("code", code))
	return &RequestError{Service: c.service, StatusCode: statusCode, Code: code, Message: message}
}
