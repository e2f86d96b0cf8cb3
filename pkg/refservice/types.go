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

package refservice

import (
	"time"

	"github.com/taskfabric/taskfabric/pkg/common/log"
	"github.com/taskfabric/taskfabric/pkg/pb/refs"
	"github.com/taskfabric/taskfabric/pkg/types"
)

// Publisher pushes messages to remote subscribers. Publish must not block:
// delivery runs on the transport, the reference counter only hands the
// message over. Implemented by the worker's pub/sub layer.
type Publisher interface {
	// Publish sends msg to every subscriber of (msg.Channel, msg.Key).
	Publish(msg *refs.PubMessage)
	// PublishFailure tells subscribers of (channel, key) that the key is
	// gone and no further message will arrive.
	PublishFailure(channel refs.Channel, key []byte)
}

// Subscriber opens long-poll subscriptions against remote workers.
// Callbacks fire on the transport's delivery path, never inside Subscribe
// itself.
type Subscriber interface {
	// Subscribe registers interest in (channel, key) at the worker owning
	// the channel. onPublished runs for every published message,
	// onPublisherFailed runs once if the remote worker dies first. Returns
	// false if a subscription for the key already exists.
	Subscribe(
		sub *refs.SubMessage,
		channel refs.Channel,
		owner refs.Address,
		key []byte,
		onPublished func(*refs.PubMessage),
		onPublisherFailed func(key []byte)) bool
	// Unsubscribe drops the subscription. Returns false if it was not
	// registered.
	Unsubscribe(channel refs.Channel, owner refs.Address, key []byte) bool
}

// NodeLivenessProbe answers whether a node is currently a live cluster
// member. Implemented by clusterservice.Cluster.
type NodeLivenessProbe interface {
	IsNodeAlive(types.NodeID) bool
}

// ObjectCallback is invoked with the id of the object the event is about.
// All callbacks installed on the counter run while the counter lock is
// held and must not re-enter the counter.
type ObjectCallback func(types.ObjectID)

// RefRemovedCallback replies to an owner waiting on the ref-removed
// channel. Runs while the counter lock is held and must not re-enter the
// counter.
type RefRemovedCallback func(types.ObjectID)

// LineageReleasedCallback releases the lineage of an owned object. It
// returns the ids of the task arguments whose lineage counts must be
// decremented in turn, and the number of bytes reclaimed. Runs while the
// counter lock is held and must not re-enter the counter.
type LineageReleasedCallback func(types.ObjectID) ([]types.ObjectID, int64)

// LocalityData is the locality view of an object handed to the scheduler.
type LocalityData struct {
	ObjectSize int64
	Locations  map[types.NodeID]struct{}
}

// RefCounts is a point-in-time snapshot of an object's local counts.
type RefCounts struct {
	LocalRefCount         int
	SubmittedTaskRefCount int
}

// PinnedObjectInfo describes an object pinned in the local object store,
// supplied by the store when exporting debug stats.
type PinnedObjectInfo struct {
	ObjectSize int64
	CallSite   string
}

// ObjectRefStat is one row of the debug stats export.
type ObjectRefStat struct {
	ObjectID              types.ObjectID
	CallSite              string
	ObjectSize            int64
	LocalRefCount         int
	SubmittedTaskRefCount int
	PinnedInMemory        bool
	ContainedInOwned      []types.ObjectID
	Finished              bool
}

// Config configures the reference service of one worker.
type Config struct {
	// LineagePinning keeps task arguments alive after they go out of scope
	// so a lost output can be recomputed.
	LineagePinning bool `toml:"lineage-pinning"`
	// WarnInterval minimum delay between repeated warnings from one log
	// site.
	WarnInterval time.Duration `toml:"warn-interval"`
	// MaxDebugRefs caps the rows exported by debug stats, -1 means all.
	MaxDebugRefs int64 `toml:"max-debug-refs"`
}

// Adjust fills in defaults.
func (c *Config) Adjust() {
	if c.WarnInterval == 0 {
		c.WarnInterval = 5 * time.Second
	}
	if c.MaxDebugRefs == 0 {
		c.MaxDebugRefs = -1
	}
}

// Option customizes the counter.
type Option func(*ReferenceCounter)

// WithLineagePinning enables lineage pinning.
func WithLineagePinning() Option {
	return func(c *ReferenceCounter) {
		c.lineagePinningEnabled = true
	}
}

// WithLogger sets the component logger.
func WithLogger(logger *log.TFLogger) Option {
	return func(c *ReferenceCounter) {
		c.logger = logger
	}
}

// WithConfig applies a full config.
func WithConfig(cfg Config) Option {
	return func(c *ReferenceCounter) {
		cfg.Adjust()
		c.lineagePinningEnabled = cfg.LineagePinning
		c.maxDebugRefs = cfg.MaxDebugRefs
		c.warnInterval = cfg.WarnInterval
	}
}
