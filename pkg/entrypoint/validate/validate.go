package validate

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-arc-models/pkg/api"
	"github.com/Azure/azure-arc-models/pkg/api/arm"
	utillog "github.com/Azure/azure-arc-models/pkg/util/log"
)

func start(ctx context.Context, log *logrus.Entry, cfg *Config, files []string) error {
	rt, err := cfg.Lookup()
	if err != nil {
		return err
	}
	if rt.StaticValidator == nil {
		return fmt.Errorf("%s/%s has no validator", cfg.Namespace, cfg.Type)
	}
	if rt.Tracked && cfg.Location == "" {
		return fmt.Errorf("--location is required for %s/%s", cfg.Namespace, cfg.Type)
	}

	log = utillog.EnrichWithResourceID(log, cfg.ResourceID)

	var merr *multierror.Error
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := validateFile(log.WithField("file", file), rt, cfg, file)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", file, err))
		}
	}

	return merr.ErrorOrNil()
}

func validateFile(log *logrus.Entry, rt *api.ResourceType, cfg *Config, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	v := rt.New()
	err = json.Unmarshal(b, v)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	// unknown values are never a validation failure
	for _, u := range arm.UnknownValues(v) {
		log.Warnf("unknown value %s", u)
	}

	err = rt.StaticValidator(cfg.Location, cfg.ResourceID).Static(v)
	if err != nil {
		return err
	}

	log.Info("valid")
	return nil
}
