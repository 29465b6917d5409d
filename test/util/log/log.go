package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logrus_test "github.com/sirupsen/logrus/hooks/test"
)

// ExpectedLogEntry is a log entry a test expects to be emitted.
type ExpectedLogEntry struct {
	Level   logrus.Level
	Message string

	// Fields which must be present on the entry with these values. Fields
	// not listed are not checked.
	Fields logrus.Fields
}

func (ex ExpectedLogEntry) mismatch(e *logrus.Entry) string {
	if e.Level != ex.Level {
		return fmt.Sprintf("level: found %s, expected %s", e.Level, ex.Level)
	}

	if e.Message != ex.Message {
		return fmt.Sprintf("message: found `%s`, expected `%s`", e.Message, ex.Message)
	}

	for k, want := range ex.Fields {
		got, found := e.Data[k]
		if !found {
			return fmt.Sprintf("field %s: not set, expected `%v`", k, want)
		}
		if !reflect.DeepEqual(got, want) {
			return fmt.Sprintf("field %s: found `%v`, expected `%v`", k, got, want)
		}
	}

	return ""
}

// NewCapturingLogger returns a hook recording every entry logged through the
// returned entry. Debug entries are discarded until the caller raises the
// level of log.Logger.
func NewCapturingLogger() (*logrus_test.Hook, *logrus.Entry) {
	logger, h := logrus_test.NewNullLogger()
	return h, logrus.NewEntry(logger)
}

// AssertLoggingOutput compares the entries recorded by h with expected, in
// order, and returns one error per mismatch.
func AssertLoggingOutput(h *logrus_test.Hook, expected []ExpectedLogEntry) []error {
	entries := h.AllEntries()

	if len(entries) != len(expected) {
		errs := []error{fmt.Errorf("got %d logs, expected %d", len(entries), len(expected))}
		for i, e := range entries {
			errs = append(errs, errors.Errorf("log #%d - %s: %s", i, e.Level, e.Message))
		}
		return errs
	}

	var errs []error
	for i, e := range entries {
		if m := expected[i].mismatch(e); m != "" {
			errs = append(errs, errors.Errorf("log #%d - %s", i, m))
		}
	}

	return errs
}
