package examples

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-arc-models/pkg/api"
)

// start writes <dir>/<namespace>/<api version>/<type>.json and
// <type>_list.json for each registered resource type. Nested types have their
// slashes replaced, e.g. sqlServerInstances_availabilityGroups.json.
func start(ctx context.Context, log *logrus.Entry, cfg *Config) error {
	return api.Each(func(namespace, apiVersion, resourceType string, rt *api.ResourceType) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := filepath.Join(cfg.OutputDir, namespace, apiVersion)
		err := os.MkdirAll(dir, 0777)
		if err != nil {
			return err
		}

		name := strings.ReplaceAll(resourceType, "/", "_")

		if rt.Example != nil {
			err = writeExample(log, rt.Example, filepath.Join(dir, name+".json"))
			if err != nil {
				return err
			}
		}

		if rt.ExampleList != nil {
			err = writeExample(log, rt.ExampleList, filepath.Join(dir, name+"_list.json"))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func writeExample(log *logrus.Entry, f func() interface{}, output string) error {
	b, err := json.MarshalIndent(f(), "", "    ")
	if err != nil {
		return err
	}
	b = append(b, byte('\n'))

	log.Debugf("writing %s", output)
	return os.WriteFile(output, b, 0666)
}
