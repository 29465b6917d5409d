package config

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-arc-models/pkg/api"
	"github.com/Azure/azure-arc-models/pkg/util/version"
)

const (
	flagLogLevel   = "loglevel"
	flagNamespace  = "namespace"
	flagAPIVersion = "api-version"
	flagType       = "type"
)

// Common holds the configuration shared by every command.
type Common struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// AddCommonFlags adds the persistent flags read by CommonConfigFromCmd.
func AddCommonFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(flagLogLevel, "", "log level (overrides LOG_LEVEL)")
}

// CommonConfigFromCmd reads the environment, then applies any flags set on
// cmd or its parents.
func CommonConfigFromCmd(cmd *cobra.Command) (Common, error) {
	var c Common

	err := envconfig.Process("", &c)
	if err != nil {
		return c, err
	}

	if f := cmd.Flag(flagLogLevel); f != nil && f.Changed {
		c.LogLevel = f.Value.String()
	}

	return c, nil
}

// Resource selects a registered resource type.
type Resource struct {
	Namespace  string `ignored:"true"`
	APIVersion string `ignored:"true"`
	Type       string `ignored:"true"`
}

// AddResourceFlags adds the flags read by ResourceConfigFromCmd.
func AddResourceFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagNamespace, "", "resource provider namespace, e.g. Microsoft.AzureArcData")
	cmd.Flags().String(flagAPIVersion, "", "api version (default: latest registered)")
	cmd.Flags().String(flagType, "", "resource type, e.g. sqlServerEsuLicenses")
}

// ResourceConfigFromCmd reads the resource flags. An unset api version
// resolves to the latest one registered for the namespace.
func ResourceConfigFromCmd(cmd *cobra.Command) (Resource, error) {
	var r Resource
	var err error

	for flag, v := range map[string]*string{
		flagNamespace:  &r.Namespace,
		flagAPIVersion: &r.APIVersion,
		flagType:       &r.Type,
	} {
		*v, err = cmd.Flags().GetString(flag)
		if err != nil {
			return r, err
		}
	}

	if r.Namespace == "" {
		return r, fmt.Errorf("--%s is required", flagNamespace)
	}
	if r.Type == "" {
		return r, fmt.Errorf("--%s is required", flagType)
	}

	if r.APIVersion == "" {
		r.APIVersion, err = version.Latest(api.Versions(r.Namespace))
		if err != nil {
			return r, fmt.Errorf("namespace %q: %w", r.Namespace, err)
		}
	}

	return r, nil
}

// Lookup returns the registered resource type.
func (r Resource) Lookup() (*api.ResourceType, error) {
	return api.Lookup(r.Namespace, r.APIVersion, r.Type)
}
