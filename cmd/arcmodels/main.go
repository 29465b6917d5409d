package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"os"

	"github.com/spf13/cobra"

	_ "github.com/Azure/azure-arc-models/pkg/api/azurearcdata/v20240501preview"
	_ "github.com/Azure/azure-arc-models/pkg/api/hybridcompute/v20240710"
	"github.com/Azure/azure-arc-models/pkg/entrypoint/config"
	"github.com/Azure/azure-arc-models/pkg/entrypoint/decode"
	"github.com/Azure/azure-arc-models/pkg/entrypoint/examples"
	"github.com/Azure/azure-arc-models/pkg/entrypoint/validate"
	"github.com/Azure/azure-arc-models/pkg/util/version"
)

func newRootCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:          "arcmodels",
		Short:        "Tooling for the Azure Arc resource models",
		Version:      version.GitCommit,
		SilenceUsage: true,
	}

	config.AddCommonFlags(cc)
	cc.AddCommand(
		decode.NewCommand(),
		validate.NewCommand(),
		examples.NewCommand(),
	)

	return cc
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
