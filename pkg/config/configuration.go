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

package config

import (
	"github.com/BurntSushi/toml"

	"github.com/taskfabric/taskfabric/pkg/common/tferr"
	"github.com/taskfabric/taskfabric/pkg/logutil"
	"github.com/taskfabric/taskfabric/pkg/refservice"
)

// Config is the worker process configuration.
type Config struct {
	// ServiceID unique id of this worker, generated when empty.
	ServiceID string `toml:"service-id"`
	// Log logger configuration.
	Log logutil.LogConfig `toml:"log"`
	// RefService reference service configuration.
	RefService refservice.Config `toml:"ref-service"`
}

// Load parses a TOML config file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, tferr.NewBadConfig("cannot parse %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parse parses a TOML config document.
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, tferr.NewBadConfig("cannot parse config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config and fills in defaults.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if c.RefService.WarnInterval < 0 {
		return tferr.NewBadConfig("warn-interval must not be negative")
	}
	if c.RefService.MaxDebugRefs < -1 {
		return tferr.NewBadConfig("max-debug-refs must be >= -1")
	}
	c.RefService.Adjust()
	return nil
}
