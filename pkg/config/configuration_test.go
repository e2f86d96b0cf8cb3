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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskfabric/taskfabric/pkg/common/tferr"
)

func TestParse(t *testing.T) {
	cfg, err := Parse(`
service-id = "worker-1"

[log]
level = "debug"
format = "json"

[ref-service]
lineage-pinning = true
warn-interval = 10000000000
`)
	require.NoError(t, err)
	assert.Equal(t, "worker-1", cfg.ServiceID)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.RefService.LineagePinning)
	assert.Equal(t, 10*time.Second, cfg.RefService.WarnInterval)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.RefService.LineagePinning)
	assert.Equal(t, 5*time.Second, cfg.RefService.WarnInterval)
	assert.Equal(t, int64(-1), cfg.RefService.MaxDebugRefs)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse(`
[log]
level = "shout"
`)
	assert.True(t, tferr.IsErrCode(err, tferr.ErrBadConfig))

	_, err = Parse(`
[ref-service]
max-debug-refs = -2
`)
	assert.True(t, tferr.IsErrCode(err, tferr.ErrBadConfig))

	_, err = Parse("not toml [")
	assert.True(t, tferr.IsErrCode(err, tferr.ErrBadConfig))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.toml")
	assert.True(t, tferr.IsErrCode(err, tferr.ErrBadConfig))
}
