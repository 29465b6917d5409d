package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	azcorearm "github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/sirupsen/logrus"
)

var (
	_, thisfile, _, _ = runtime.Caller(0)
	repopath          = strings.Replace(thisfile, "pkg/util/log/log.go", "", -1)
	pkgpath           = filepath.Dir(thisfile)
)

// GetLogger returns a consistently configured log entry. An unparseable level
// falls back to info.
func GetLogger(level string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetReportCaller(true)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		DisableLevelTruncation: true,
		CallerPrettyfier:       RelativeFilePathPrettier,
	})
	logger.AddHook(logrHook{})

	l, err := logrus.ParseLevel(level)
	if err != nil {
		l = logrus.InfoLevel
	}
	logger.SetLevel(l)

	return logrus.NewEntry(logger)
}

// EnrichWithResourceID sets fields on the log entry describing the resource
// a log line refers to. An unparseable ID is logged as-is.
func EnrichWithResourceID(log *logrus.Entry, resourceID string) *logrus.Entry {
	if resourceID == "" {
		return log
	}

	r, err := azcorearm.ParseResourceID(resourceID)
	if err != nil {
		return log.WithField("resource_id", resourceID)
	}

	fields := logrus.Fields{
		"resource_id":   strings.ToLower(r.String()),
		"resource_name": r.Name,
		"resource_type": strings.ToLower(r.ResourceType.String()),
	}
	if r.SubscriptionID != "" {
		fields["subscription_id"] = r.SubscriptionID
	}
	if r.ResourceGroupName != "" {
		fields["resource_group"] = r.ResourceGroupName
	}

	return log.WithFields(fields)
}

// RelativeFilePathPrettier changes absolute paths with relative paths
func RelativeFilePathPrettier(f *runtime.Frame) (string, string) {
	file := strings.TrimPrefix(f.File, repopath)
	function := f.Function[strings.LastIndexByte(f.Function, '/')+1:]
	return fmt.Sprintf("%s()", function), fmt.Sprintf(" %s:%d", file, f.Line)
}
