package validate

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-arc-models/pkg/entrypoint/config"
	utillog "github.com/Azure/azure-arc-models/pkg/util/log"
)

type Config struct {
	config.Common
	config.Resource

	ResourceID string `ignored:"true"`
	Location   string `ignored:"true"`
}

// NewCommand returns the cobra command for "validate".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Statically validate resource payloads",
		Long:  "Statically validate PUT payloads against the resource ID and location they would be sent to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfig(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()
			log := utillog.GetLogger(cfg.LogLevel)

			return start(ctx, log, cfg, args)
		},
	}

	config.AddResourceFlags(cc)
	cc.Flags().String("resource-id", "", "resource ID the payload is sent to")
	cc.Flags().String("location", "", "location of the request, required for tracked resources")

	return cc
}

func getConfig(cmd *cobra.Command) (*Config, error) {
	var c Config
	var err error
	err = envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	c.Common, err = config.CommonConfigFromCmd(cmd)
	if err != nil {
		return nil, err
	}
	c.Resource, err = config.ResourceConfigFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	c.ResourceID, err = cmd.Flags().GetString("resource-id")
	if err != nil {
		return nil, err
	}
	if c.ResourceID == "" {
		return nil, fmt.Errorf("--resource-id is required")
	}

	c.Location, err = cmd.Flags().GetString("location")
	if err != nil {
		return nil, err
	}

	return &c, nil
}
