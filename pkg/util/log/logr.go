package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

// logrWrapper sends logr output to a logrus entry. V(0) maps to info, V(1)
// to debug and anything above to trace.
type logrWrapper struct {
	entry *logrus.Entry
}

func (lw *logrWrapper) Init(info logr.RuntimeInfo) {
}

func (lw *logrWrapper) level(level int) logrus.Level {
	l := logrus.InfoLevel + logrus.Level(level)
	if l > logrus.TraceLevel {
		l = logrus.TraceLevel
	}
	return l
}

func (lw *logrWrapper) Enabled(level int) bool {
	return lw.entry.Logger.IsLevelEnabled(lw.level(level))
}

func (lw *logrWrapper) Error(err error, msg string, keysAndValues ...interface{}) {
	lw.withKeysAndValues(keysAndValues).Error(msg, " ", err)
}

func (lw *logrWrapper) withKeysAndValues(keysAndValues []interface{}) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i < len(keysAndValues); i += 2 {
		var v interface{}
		if i+1 < len(keysAndValues) {
			v = keysAndValues[i+1]
		}
		fields[fmt.Sprint(keysAndValues[i])] = v
	}

	return lw.entry.WithFields(fields)
}

func (lw *logrWrapper) Info(level int, msg string, keysAndValues ...interface{}) {
	lw.withKeysAndValues(keysAndValues).Log(lw.level(level), msg)
}

func (lw *logrWrapper) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return &logrWrapper{
		entry: lw.withKeysAndValues(keysAndValues),
	}
}

func (lw *logrWrapper) WithName(name string) logr.LogSink {
	return &logrWrapper{
		entry: lw.entry.WithField("logger", name),
	}
}

// LogrWrapper returns a logr.Logger backed by logger, for libraries which
// take one.
func LogrWrapper(logger *logrus.Entry) logr.Logger {
	return logr.New(&logrWrapper{entry: logger})
}

type logrHook struct{}

func (logrHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire is an ugly hack to attempt to correct the caller information when
// logrWrapper is in use.  If the entry Caller refers to a function in this
// package, it re-fetches the backtrace again, attempts to find the frame
// matching Caller and replace it with its parent.
func (logrHook) Fire(log *logrus.Entry) error {
	if log.Caller == nil || !strings.HasPrefix(log.Caller.File, pkgpath+"/") {
		return nil
	}

	pc := make([]uintptr, 10)
	count := runtime.Callers(1, pc)
	frames := runtime.CallersFrames(pc[:count])

	for {
		frame, more := frames.Next()

		if frame == *log.Caller && more {
			frame, _ = frames.Next()
			log.Caller = &frame
			break
		}

		if !more {
			break
		}
	}

	return nil
}
