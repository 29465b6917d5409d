package examples

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

	OutputDir string `ignored:"true"`
}

// NewCommand returns the cobra command for "examples".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "examples",
		Short: "Write example payloads for every registered resource type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfig(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()
			log := utillog.GetLogger(cfg.LogLevel)

			return start(ctx, log, cfg)
		},
	}

	cc.Flags().String("output-dir", "", "directory to write examples to")

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

	c.OutputDir, err = cmd.Flags().GetString("output-dir")
	if err != nil {
		return nil, err
	}
	if c.OutputDir == "" {
		return nil, fmt.Errorf("--output-dir is required")
	}

	return &c, nil
}
