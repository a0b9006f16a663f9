/*
Copyright 2025 The JWST Datamodels Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logging configures the logr logger shared by the models and CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Verbosity levels passed to logr.Logger.V.
const (
	DEBUG = 1
	TRACE = 2
)

// ParseLevel maps a level name to a zap level. logr verbosity V(n) is
// enabled when the zap level is at or below -n.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.Level(-DEBUG), nil
	case "trace":
		return zapcore.Level(-TRACE), nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
}

// NewLogger builds a zap-backed logger writing to w at the given level and
// installs it as the controller-runtime root logger.
func NewLogger(level string, development bool, w io.Writer) (logr.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}
	if w == nil {
		w = os.Stderr
	}
	logger := zap.New(
		zap.UseDevMode(development),
		zap.Level(lvl),
		zap.WriteTo(w),
	)
	ctrl.SetLogger(logger)
	return logger, nil
}

// NewTestLogger installs a development logger for test suites.
func NewTestLogger() logr.Logger {
	logger := zap.New(zap.UseDevMode(true), zap.Level(zapcore.Level(-DEBUG)), zap.WriteTo(os.Stderr))
	ctrl.SetLogger(logger)
	return logger
}
