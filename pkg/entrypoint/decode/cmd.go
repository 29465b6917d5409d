package decode

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

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

type Config struct {
	config.Common
	config.Resource

	Parallelism int `envconfig:"ARCMODELS_PARALLELISM" default:"4"`

	List     bool   `ignored:"true"`
	Defaults bool   `ignored:"true"`
	Output   string `ignored:"true"`
}

// NewCommand returns the cobra command for "decode".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "decode FILE...",
		Short: "Decode and re-encode resource payloads",
		Long:  "Decode resource payloads, warn about unknown enum values and write them back out",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfig(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()
			log := utillog.GetLogger(cfg.LogLevel)

			return start(ctx, log, cfg, args, cmd.OutOrStdout())
		},
	}

	config.AddResourceFlags(cc)
	cc.Flags().Bool("list", false, "decode a list response rather than a single resource")
	cc.Flags().Bool("defaults", false, "apply defaults to absent fields before encoding")
	cc.Flags().StringP("output", "o", outputJSON, "output format: json or yaml")

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

	c.List, err = cmd.Flags().GetBool("list")
	if err != nil {
		return nil, err
	}
	c.Defaults, err = cmd.Flags().GetBool("defaults")
	if err != nil {
		return nil, err
	}
	c.Output, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	switch c.Output {
	case outputJSON, outputYAML:
	default:
		return nil, fmt.Errorf("invalid output format %q", c.Output)
	}

	if c.Parallelism < 1 {
		return nil, fmt.Errorf("invalid parallelism %d", c.Parallelism)
	}

	return &c, nil
}
