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

package logutil

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/taskfabric/taskfabric/pkg/common/tferr"
)

// LogConfig configures the process-wide logger.
type LogConfig struct {
	// Level zap level: debug, info, warn, error, fatal.
	Level string `toml:"level"`
	// Format console or json.
	Format string `toml:"format"`
	// Filename log file, stderr when empty.
	Filename string `toml:"filename"`
	// MaxSize maximum size in MB of a log file before rotation.
	MaxSize int `toml:"max-size"`
	// MaxDays how many days rotated files are retained.
	MaxDays int `toml:"max-days"`
	// MaxBackups how many rotated files are retained.
	MaxBackups int `toml:"max-backups"`
}

// Validate checks the config and fills in defaults.
func (c *LogConfig) Validate() error {
	if c.Level == "" {
		c.Level = "info"
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return tferr.NewBadConfig("unknown log level %q", c.Level)
	}
	switch c.Format {
	case "":
		c.Format = "console"
	case "console", "json":
	default:
		return tferr.NewBadConfig("unknown log format %q", c.Format)
	}
	if c.MaxSize == 0 {
		c.MaxSize = 512
	}
	return nil
}

var globalLogger atomic.Value // *zap.Logger

// SetupLogger builds the global logger from the config. Called once at
// process start, before any component asks for a logger.
func SetupLogger(cfg LogConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return tferr.NewBadConfig("unknown log level %q", cfg.Level)
	}

	var sink zapcore.WriteSyncer
	if cfg.Filename == "" {
		sink = zapcore.AddSync(os.Stderr)
	} else {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxDays,
			MaxBackups: cfg.MaxBackups,
		})
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	logger := zap.New(
		zapcore.NewCore(enc, sink, level),
		zap.AddStacktrace(zapcore.FatalLevel))
	globalLogger.Store(logger)
	return nil
}

// GetGlobalLogger returns the process logger. Components that run before
// SetupLogger get a console logger at info level.
func GetGlobalLogger() *zap.Logger {
	if l := globalLogger.Load(); l != nil {
		return l.(*zap.Logger)
	}
	if err := SetupLogger(LogConfig{}); err != nil {
		panic(err)
	}
	return globalLogger.Load().(*zap.Logger)
}
