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
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskfabric/taskfabric/pkg/pb/refs"
	"github.com/taskfabric/taskfabric/pkg/types"
)

// testBroker wires several counters together in one process. Subscribe
// requests and published messages are buffered and delivered by explicit
// flush calls so tests control the message order and no callback runs
// while a counter lock is held.
type testBroker struct {
	mu      sync.Mutex
	workers map[types.WorkerID]*testWorker

	subs        map[brokerSubKey]brokerSub
	pendingSubs []pendingSubRequest
	pendingPubs []pendingPublish
}

type brokerSubKey struct {
	channel   refs.Channel
	publisher types.WorkerID
	key       string
}

type brokerSub struct {
	onPublished       func(*refs.PubMessage)
	onPublisherFailed func(key []byte)
}

type pendingSubRequest struct {
	target types.WorkerID
	sub    *refs.SubMessage
}

type pendingPublish struct {
	key     brokerSubKey
	msg     *refs.PubMessage
	failure bool
	rawKey  []byte
}

func newTestBroker() *testBroker {
	return &testBroker{
		workers: make(map[types.WorkerID]*testWorker),
		subs:    make(map[brokerSubKey]brokerSub),
	}
}

// FlushSubscribeRequests hands queued ref-removed subscriptions to the
// borrower counters.
func (b *testBroker) FlushSubscribeRequests() int {
	b.mu.Lock()
	pending := b.pendingSubs
	b.pendingSubs = nil
	b.mu.Unlock()

	for _, req := range pending {
		w, ok := b.workers[req.target]
		if !ok || req.sub.RefRemoved == nil {
			continue
		}
		sub := req.sub.RefRemoved
		var containedIn types.ObjectID
		if len(sub.ContainedInId) > 0 {
			containedIn = types.MustObjectIDFromBinary(sub.ContainedInId)
		}
		w.rc.SetRefRemovedCallback(
			sub.Reference.ObjectID(),
			containedIn,
			sub.Reference.OwnerAddress,
			nil)
	}
	return len(pending)
}

// FlushPublished delivers queued messages to their subscribers.
func (b *testBroker) FlushPublished() int {
	b.mu.Lock()
	pending := b.pendingPubs
	b.pendingPubs = nil
	b.mu.Unlock()

	for _, p := range pending {
		b.mu.Lock()
		sub, ok := b.subs[p.key]
		b.mu.Unlock()
		if !ok {
			continue
		}
		if p.failure {
			// A failed publisher terminates the subscription.
			b.mu.Lock()
			delete(b.subs, p.key)
			b.mu.Unlock()
			sub.onPublisherFailed(p.rawKey)
		} else {
			sub.onPublished(p.msg)
		}
	}
	return len(pending)
}

// Drain flushes until no queued request or message remains.
func (b *testBroker) Drain() {
	for {
		n := b.FlushSubscribeRequests()
		n += b.FlushPublished()
		if n == 0 {
			return
		}
	}
}

// testWorker is one simulated worker process.
type testWorker struct {
	broker *testBroker
	addr   refs.Address
	id     types.WorkerID
	probe  *testProbe
	rc     *ReferenceCounter

	// published location messages, keyed by object id.
	locationUpdates map[types.ObjectID][]*refs.ObjectLocationsPubMessage
	// keys failed on the object-locations channel.
	locationFailures map[string]int
}

func newTestWorker(b *testBroker, opts ...Option) *testWorker {
	id := types.NewWorkerID()
	w := &testWorker{
		broker:           b,
		addr:             refs.NewAddress(id, "127.0.0.1", 7070, types.NewNodeID()),
		id:               id,
		probe:            newTestProbe(),
		locationUpdates:  make(map[types.ObjectID][]*refs.ObjectLocationsPubMessage),
		locationFailures: make(map[string]int),
	}
	w.rc = NewReferenceCounter(
		w.addr,
		&brokerPublisher{worker: w},
		&brokerSubscriber{worker: w},
		w.probe,
		opts...)
	b.mu.Lock()
	b.workers[id] = w
	b.mu.Unlock()
	return w
}

type brokerPublisher struct {
	worker *testWorker
}

func (p *brokerPublisher) Publish(msg *refs.PubMessage) {
	w := p.worker
	if msg.Channel == refs.ObjectLocations {
		// Location updates are inspected directly by tests, there is no
		// remote location subscriber in this harness.
		id := types.MustObjectIDFromBinary(msg.Key)
		w.locationUpdates[id] = append(w.locationUpdates[id], msg.ObjectLocations)
		return
	}
	b := w.broker
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pendingPubs = append(b.pendingPubs, pendingPublish{
		key: brokerSubKey{channel: msg.Channel, publisher: w.id, key: string(msg.Key)},
		msg: msg,
	})
}

func (p *brokerPublisher) PublishFailure(channel refs.Channel, key []byte) {
	w := p.worker
	if channel == refs.ObjectLocations {
		w.locationFailures[string(key)]++
		return
	}
	b := w.broker
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pendingPubs = append(b.pendingPubs, pendingPublish{
		key:     brokerSubKey{channel: channel, publisher: w.id, key: string(key)},
		failure: true,
		rawKey:  key,
	})
}

type brokerSubscriber struct {
	worker *testWorker
}

func (s *brokerSubscriber) Subscribe(
	sub *refs.SubMessage,
	channel refs.Channel,
	owner refs.Address,
	key []byte,
	onPublished func(*refs.PubMessage),
	onPublisherFailed func(key []byte)) bool {
	b := s.worker.broker
	b.mu.Lock()
	defer b.mu.Unlock()
	k := brokerSubKey{channel: channel, publisher: owner.WorkerID(), key: string(key)}
	if _, ok := b.subs[k]; ok {
		return false
	}
	b.subs[k] = brokerSub{
		onPublished:       onPublished,
		onPublisherFailed: onPublisherFailed,
	}
	b.pendingSubs = append(b.pendingSubs, pendingSubRequest{
		target: owner.WorkerID(),
		sub:    sub,
	})
	return true
}

func (s *brokerSubscriber) Unsubscribe(
	channel refs.Channel, owner refs.Address, key []byte) bool {
	b := s.worker.broker
	b.mu.Lock()
	defer b.mu.Unlock()
	k := brokerSubKey{channel: channel, publisher: owner.WorkerID(), key: string(key)}
	if _, ok := b.subs[k]; !ok {
		return false
	}
	delete(b.subs, k)
	return true
}

// FailWorker simulates the death of a worker: it receives nothing further
// and every subscription against it fires its failure callback.
func (b *testBroker) FailWorker(id types.WorkerID) {
	b.mu.Lock()
	delete(b.workers, id)
	var remaining []pendingSubRequest
	for _, req := range b.pendingSubs {
		if req.target != id {
			remaining = append(remaining, req)
		}
	}
	b.pendingSubs = remaining
	for k := range b.subs {
		if k.publisher == id {
			b.pendingPubs = append(b.pendingPubs, pendingPublish{
				key:     k,
				failure: true,
				rawKey:  []byte(k.key),
			})
		}
	}
	b.mu.Unlock()
}

// testProbe is a mutable node liveness view.
type testProbe struct {
	mu   sync.Mutex
	dead map[types.NodeID]struct{}
}

func newTestProbe() *testProbe {
	return &testProbe{dead: make(map[types.NodeID]struct{})}
}

func (p *testProbe) IsNodeAlive(id types.NodeID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, dead := p.dead[id]
	return !dead
}

func (p *testProbe) kill(id types.NodeID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dead[id] = struct{}{}
}

// checkInvariants asserts the structural invariants of the table: the
// containment graph is symmetric and the ownership counters match the
// table contents.
func checkInvariants(t *testing.T, c *ReferenceCounter) {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()

	owned := 0
	actors := 0
	for id, r := range c.refs {
		if r.ownedByUs {
			if id.IsActorHandle() {
				actors++
			} else {
				owned++
			}
		}
		for innerID := range r.contains() {
			inner, ok := c.refs[innerID]
			if !ok {
				continue
			}
			_, inOwned := inner.containedInOwnedIDs()[id]
			_, inBorrowed := inner.containedInBorrowedIDs()[id]
			if r.ownedByUs {
				require.True(t, inOwned,
					"object %s contains %s but the contained-in-owned edge is missing", id, innerID)
			} else {
				require.True(t, inBorrowed,
					"object %s contains %s but the contained-in-borrowed edge is missing", id, innerID)
			}
		}
	}
	require.Equal(t, c.numObjectsOwnedByUs, owned)
	require.Equal(t, c.numActorsOwnedByUs, actors)

	for id := range c.freedObjects {
		_, ok := c.refs[id]
		require.True(t, ok, "freed object %s has no reference", id)
	}
}

// ownObject is the common AddOwnedObject call with a local ref.
func (w *testWorker) ownObject(id types.ObjectID, inner ...types.ObjectID) {
	w.rc.AddOwnedObject(
		id, inner, w.addr, "test.go:1", -1,
		false, true, nil, refs.ObjectStore)
}

// borrowForTask simulates receiving id as a task argument: the runtime
// takes an artificial local ref and records the owner.
func (w *testWorker) borrowForTask(id types.ObjectID, owner refs.Address) {
	w.rc.AddLocalReference(id, "")
	w.rc.AddBorrowedObject(id, types.ObjectID{}, owner, false)
}
