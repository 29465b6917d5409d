package decode

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/yaml"

	"github.com/Azure/azure-arc-models/pkg/api"
	"github.com/Azure/azure-arc-models/pkg/api/arm"
)

type continuer interface {
	ContinuationToken() *string
}

func start(ctx context.Context, log *logrus.Entry, cfg *Config, files []string, w io.Writer) error {
	rt, err := cfg.Lookup()
	if err != nil {
		return err
	}
	if cfg.List && rt.NewList == nil {
		return fmt.Errorf("%s/%s does not support lists", cfg.Namespace, cfg.Type)
	}

	outputs := make([][]byte, len(files))

	var mu sync.Mutex
	var merr *multierror.Error

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)

	for i, file := range files {
		g.Go(func() error {
			b, err := decodeFile(ctx, log.WithField("file", file), rt, cfg, file)
			if err != nil {
				mu.Lock()
				merr = multierror.Append(merr, fmt.Errorf("%s: %w", file, err))
				mu.Unlock()
				return nil
			}

			outputs[i] = b
			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return err
	}

	for i, b := range outputs {
		if b == nil {
			continue
		}
		if cfg.Output == outputYAML && i > 0 {
			b = append([]byte("---\n"), b...)
		}

		_, err = w.Write(b)
		if err != nil {
			return err
		}
	}

	return merr.ErrorOrNil()
}

func decodeFile(ctx context.Context, log *logrus.Entry, rt *api.ResourceType, cfg *Config, file string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var v interface{}
	if cfg.List {
		v = rt.NewList()
	} else {
		v = rt.New()
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	for _, u := range arm.UnknownValues(v) {
		log.Warnf("unknown value %s", u)
	}

	if c, ok := v.(continuer); ok {
		if token := c.ContinuationToken(); token != nil {
			log.Infof("more results available at %s", *token)
		}
	}

	if cfg.Defaults && rt.SetDefaults != nil {
		rt.SetDefaults(v)
	}

	return encode(v, cfg.Output)
}

func encode(v interface{}, output string) ([]byte, error) {
	if output == outputYAML {
		return yaml.Marshal(v)
	}

	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return nil, err
	}

	return append(b, '\n'), nil
}
