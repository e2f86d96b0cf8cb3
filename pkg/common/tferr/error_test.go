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

package tferr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	err := NewBadConfig("lineage eviction batch %d must be > 0", -1)
	assert.True(t, IsErrCode(err, ErrBadConfig))
	assert.False(t, IsErrCode(err, ErrInternal))
	assert.Equal(t, ErrBadConfig, err.ErrorCode())
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestErrorWrapping(t *testing.T) {
	err := fmt.Errorf("load config: %w", NewBadConfig("missing log level"))
	assert.True(t, IsErrCode(err, ErrBadConfig))
	assert.False(t, IsErrCode(fmt.Errorf("plain"), ErrBadConfig))
	assert.False(t, IsErrCode(nil, ErrBadConfig))
}

func TestUnknownCodePanics(t *testing.T) {
	assert.Panics(t, func() {
		newError(9999)
	})
}
