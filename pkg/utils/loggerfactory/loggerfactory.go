/*
Copyright 2026 The OSIRIS Authors.

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

package loggerfactory

import (
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// GetLogger builds the process logger: JSON output with ISO8601 timestamps
// and caller information, at debug level when DEBUG_ENV is true.
func GetLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.TimeKey = "ts"

	isDebugEnv, _ := strconv.ParseBool(os.Getenv("DEBUG_ENV"))
	if isDebugEnv {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.Development = true
	}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		// the production config only fails on broken sinks; fall back to stderr
		return zap.NewExample()
	}
	return logger
}
