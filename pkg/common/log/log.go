// Copyright 2024 Taskfabric
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TFLogger is the logger handed to every taskfabric component. It wraps a
// zap logger and adds per-key rate limited warnings for log sites that sit
// on message-delivery hot paths.
type TFLogger struct {
	logger  *zap.Logger
	limiter *rateLimiter
}

// GetServiceLogger returns a component logger tagged with the service name
// and id.
func GetServiceLogger(logger *zap.Logger, service string, serviceID string) *TFLogger {
	return wrap(logger.With(
		zap.String("service", service),
		zap.String("uuid", serviceID)))
}

func wrap(logger *zap.Logger) *TFLogger {
	return &TFLogger{
		logger:  logger,
		limiter: newRateLimiter(defaultRateLimitKeys),
	}
}

// RawLogger returns the underlying zap logger.
func (l *TFLogger) RawLogger() *zap.Logger {
	return l.logger
}

// With returns a logger with the fields attached to every message. The rate
// limiter is shared with the parent.
func (l *TFLogger) With(fields ...zap.Field) *TFLogger {
	return &TFLogger{
		logger:  l.logger.With(fields...),
		limiter: l.limiter,
	}
}

// Enabled returns true if the given level is enabled.
func (l *TFLogger) Enabled(level zapcore.Level) bool {
	return l.logger.Core().Enabled(level)
}

func (l *TFLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Debug(msg, fields...)
}

func (l *TFLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Info(msg, fields...)
}

func (l *TFLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Warn(msg, fields...)
}

func (l *TFLogger) Error(msg string, fields ...zap.Field) {
	l.logger.Error(msg, fields...)
}

func (l *TFLogger) Fatal(msg string, fields ...zap.Field) {
	l.logger.Fatal(msg, fields...)
}

// WithWarnInterval sets the minimum delay between two rate limited
// warnings with the same key and returns the logger.
func (l *TFLogger) WithWarnInterval(d time.Duration) *TFLogger {
	if d > 0 {
		l.limiter.setInterval(d)
	}
	return l
}

// WarnEvery logs at WARN at most once per interval per key. Log sites that
// fire once per delivered message use this to avoid flooding the log when a
// peer retries in a loop.
func (l *TFLogger) WarnEvery(key string, msg string, fields ...zap.Field) {
	if !l.limiter.allow(key) {
		return
	}
	l.logger.Warn(msg, fields...)
}
