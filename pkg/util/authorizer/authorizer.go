package authorizer

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	azlog "github.com/Azure/azure-sdk-for-go/sdk/azcore/log"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/go-logr/logr"

	"github.com/Azure/azure-arc-models/pkg/util/deployment"
	"github.com/Azure/azure-arc-models/pkg/util/env"
)

const (
	envClientID     = "AZURE_CLIENT_ID"
	envClientSecret = "AZURE_CLIENT_SECRET"
	envTenantID     = "AZURE_TENANT_ID"
)

// New returns the credential used to call ARM. Development mode requires a
// service principal in the environment; production defers to the default
// azidentity chain. Tokens are acquired and refreshed by the credential.
func New(source env.EnvironmentSource, mode deployment.Mode, c cloud.Configuration) (azcore.TokenCredential, error) {
	options := azcore.ClientOptions{
		Cloud: c,
	}

	if mode == deployment.Development {
		err := env.ValidateVars(source, envClientID, envClientSecret, envTenantID)
		if err != nil {
			return nil, fmt.Errorf("%w (development mode)", err)
		}

		return azidentity.NewClientSecretCredential(
			source.Getenv(envTenantID),
			source.Getenv(envClientID),
			source.Getenv(envClientSecret),
			&azidentity.ClientSecretCredentialOptions{
				ClientOptions: options,
			},
		)
	}

	return azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
		ClientOptions: options,
		TenantID:      source.Getenv(envTenantID),
	})
}

// Scopes returns the scopes to request for ARM in cloud c.
func Scopes(c cloud.Configuration) ([]string, error) {
	rm, found := c.Services[cloud.ResourceManager]
	if !found || rm.Audience == "" {
		return nil, fmt.Errorf("cloud configuration has no %s audience", cloud.ResourceManager)
	}

	return []string{strings.TrimSuffix(rm.Audience, "/") + "/.default"}, nil
}

// EnableLogging routes azidentity authentication events to log at V(1).
// The listener is process wide.
func EnableLogging(log logr.Logger) {
	azlog.SetEvents(azidentity.EventAuthentication)
	azlog.SetListener(listener(log))
}

func listener(log logr.Logger) func(azlog.Event, string) {
	return func(event azlog.Event, msg string) {
		log.V(1).Info(msg, "event", string(event))
	}
}
