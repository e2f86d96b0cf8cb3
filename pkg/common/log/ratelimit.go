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
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

const (
	// defaultRateLimitKeys bounds the memory spent remembering log sites.
	defaultRateLimitKeys = 1024
	// defaultWarnInterval minimum delay between two warnings with the same key.
	defaultWarnInterval = 5 * time.Second
)

// nowFunc is replaced in tests.
var nowFunc = time.Now

type rateLimiter struct {
	sync.Mutex
	interval time.Duration
	seen     *lru.Cache
}

func newRateLimiter(keys int) *rateLimiter {
	c, err := lru.New(keys)
	if err != nil {
		panic(err)
	}
	return &rateLimiter{
		interval: defaultWarnInterval,
		seen:     c,
	}
}

func (r *rateLimiter) setInterval(d time.Duration) {
	r.Lock()
	defer r.Unlock()
	r.interval = d
}

// allow returns true for the first call with a key and again once interval
// has elapsed since the last allowed call.
func (r *rateLimiter) allow(key string) bool {
	r.Lock()
	defer r.Unlock()

	now := nowFunc()
	if v, ok := r.seen.Get(key); ok {
		if now.Sub(v.(time.Time)) < r.interval {
			return false
		}
	}
	r.seen.Add(key, now)
	return true
}
