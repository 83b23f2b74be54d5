package compliance_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"go.uber.org/zap"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/compliance"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/compliance/checks"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
)

// Example evaluates the full benchmark against one tenant. The caller owns
// the credential; any azcore.TokenCredential works, here a client secret
// from the environment.
func Example() {
	cred, err := azidentity.NewClientSecretCredential(
		os.Getenv("AZURE_TENANT_ID"),
		os.Getenv("AZURE_CLIENT_ID"),
		os.Getenv("AZURE_CLIENT_SECRET"),
		nil)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	session, err := m365.NewSession(cred, "contoso.onmicrosoft.com", &m365.SessionOptions{
		Logger: logger,
	})
	if err != nil {
		log.Fatal(err)
	}

	registry, err := checks.NewRegistry()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	for _, check := range registry.List() {
		result := compliance.Evaluate(ctx, logger, session, check)
		encoded, err := json.Marshal(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s %s %s\n", check.Control.SectionCode, check.Control.Title, encoded)
	}
}
