package m365

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/microsoftgraph/msgraph-sdk-go/models/odataerrors"
)

const (
	serviceGraph      = "graph"
	serviceExchange   = "exchange"
	serviceCompliance = "security-compliance"
	serviceTeams      = "teams"
	serviceFabric     = "fabric"
)

// RequestError is returned when an admin endpoint answers with a
// non-success status. It carries whatever diagnostic code the service
// reported so callers can log or match on it.
type RequestError struct {
	Service    string
	StatusCode int
	Code       string
	Message    string
}

func (e *RequestError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s request failed: %s (status %d): %s", e.Service, e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s request failed (status %d): %s", e.Service, e.StatusCode, e.Message)
}

// CapabilityError means the tenant lacks the license or service plan the
// queried API requires. It is a distinct outcome from RequestError: the
// evaluation boundary turns it into a Manual verdict, never Error or Fail.
type CapabilityError struct {
	Service    string
	Capability string
	Message    string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s capability unavailable (%s): %s", e.Service, e.Capability, e.Message)
}

// AsCapabilityError unwraps err to a CapabilityError, or returns nil.
func AsCapabilityError(err error) *CapabilityError {
	var capErr *CapabilityError
	if errors.As(err, &capErr) {
		return capErr
	}
	return nil
}

// capabilityCodes maps the error codes tenant APIs return for
// license-gated surfaces to the capability they require.
var capabilityCodes = map[string]string{
	"AadPremiumLicenseRequired":                             "Microsoft Entra ID premium license",
	"Authentication_RequestFromNonPremiumTenantOrB2CTenant": "Microsoft Entra ID premium license",
}

func capabilityFor(statusCode int, code, message string) (string, bool) {
	if capability, ok := capabilityCodes[code]; ok {
		return capability, true
	}
	switch statusCode {
	case http.StatusBadRequest, http.StatusPaymentRequired, http.StatusForbidden:
		if strings.Contains(strings.ToLower(message), "license") {
			return "required service plan", true
		}
	}
	return "", false
}

// classifyGraphError rewrites Graph SDK OData errors into the library's
// error taxonomy. Non-OData errors (transport failures, context
// cancellation) pass through unchanged.
func classifyGraphError(err error) error {
	if err == nil {
		return nil
	}
	var odataErr *odataerrors.ODataError
	if !errors.As(err, &odataErr) {
		return err
	}

	var code, message string
	if mainErr := odataErr.GetErrorEscaped(); mainErr != nil {
		if v := mainErr.GetCode(); v != nil {
			code = *v
		}
		if v := mainErr.GetMessage(); v != nil {
			message = *v
		}
	}
	if message == "" {
		message = odataErr.Error()
	}

	statusCode := odataErr.ResponseStatusCode
	if capability, ok := capabilityFor(statusCode, code, message); ok {
		return &CapabilityError{Service: serviceGraph, Capability: capability, Message: message}
	}
	return &RequestError{Service: serviceGraph, StatusCode: statusCode, Code: code, Message: message}
}
