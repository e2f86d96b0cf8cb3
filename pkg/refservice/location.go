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
	"fmt"

	"go.uber.org/zap"

	"github.com/taskfabric/taskfabric/pkg/pb/refs"
	"github.com/taskfabric/taskfabric/pkg/types"
)

// UpdateObjectPinnedAtNode records the node holding the primary copy of an
// owned object. If the node already died the object is queued for
// recovery instead.
func (c *ReferenceCounter) UpdateObjectPinnedAtNode(id types.ObjectID, node types.NodeID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		return
	}
	if _, freed := c.freedObjects[id]; freed {
		// The object was freed explicitly, nothing to track.
		return
	}
	if r.pinnedAtNodeID != nil {
		c.logger.Info("object already has a primary location, expected only during reconstruction",
			zap.String("object", id.String()),
			zap.String("node", node.String()),
			zap.String("previous", r.pinnedAtNodeID.String()))
	}
	if !r.ownedByUs {
		panic(fmt.Sprintf("only the owner tracks the primary copy of object %s", id))
	}
	if r.outOfScope() {
		return
	}
	if c.probe.IsNodeAlive(node) {
		pinned := node
		r.pinnedAtNodeID = &pinned
	} else {
		c.unsetObjectPrimaryCopy(r)
		c.objectsToRecover = append(c.objectsToRecover, id)
	}
}

// IsObjectPinnedOrSpilled reports the primary copy state of an object.
// present is false if the reference is gone; the remaining returns are
// meaningful only for owned objects.
func (c *ReferenceCounter) IsObjectPinnedOrSpilled(
	id types.ObjectID) (present bool, ownedByUs bool, pinnedAt types.NodeID, spilled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		return false, false, types.NodeID{}, false
	}
	if !r.ownedByUs {
		return true, false, types.NodeID{}, false
	}
	pinned := types.NodeID{}
	if r.pinnedAtNodeID != nil {
		pinned = *r.pinnedAtNodeID
	}
	return true, true, pinned, r.spilled
}

// ResetObjectsOnRemovedNode clears the primary and spill state of every
// object whose copy lived on the removed node and queues the affected
// owned objects for recovery.
func (c *ReferenceCounter) ResetObjectsOnRemovedNode(node types.NodeID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, r := range c.refs {
		pinnedHere := r.pinnedAtNodeID != nil && *r.pinnedAtNodeID == node
		if pinnedHere || r.spilledNodeID == node {
			c.unsetObjectPrimaryCopy(r)
			if !r.outOfScope() {
				c.objectsToRecover = append(c.objectsToRecover, id)
			}
		}
		c.removeObjectLocationInternal(id, r, node)
	}
}

// FlushObjectsToRecover drains the queue of objects that lost their
// primary copy.
func (c *ReferenceCounter) FlushObjectsToRecover() []types.ObjectID {
	c.mu.Lock()
	defer c.mu.Unlock()
	toRecover := c.objectsToRecover
	c.objectsToRecover = nil
	return toRecover
}

// AddObjectLocation records an additional copy of the object.
func (c *ReferenceCounter) AddObjectLocation(id types.ObjectID, node types.NodeID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		c.logger.Debug("location report for unknown object, it may already be evicted",
			zap.String("object", id.String()))
		return false
	}
	c.addObjectLocationInternal(id, r, node)
	return true
}

func (c *ReferenceCounter) addObjectLocationInternal(
	id types.ObjectID, r *reference, node types.NodeID) {
	if r.locations == nil {
		r.locations = make(map[types.NodeID]struct{})
	}
	if _, ok := r.locations[node]; ok {
		// The pinned location is added eagerly, the store notification may
		// arrive afterwards.
		return
	}
	r.locations[node] = struct{}{}
	c.pushToLocationSubscribers(id, r)
}

// RemoveObjectLocation removes a known copy of the object.
func (c *ReferenceCounter) RemoveObjectLocation(id types.ObjectID, node types.NodeID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		c.logger.Debug("location removal for unknown object, it may already be evicted",
			zap.String("object", id.String()))
		return false
	}
	c.removeObjectLocationInternal(id, r, node)
	return true
}

func (c *ReferenceCounter) removeObjectLocationInternal(
	id types.ObjectID, r *reference, node types.NodeID) {
	delete(r.locations, node)
	c.pushToLocationSubscribers(id, r)
}

// GetObjectLocations returns the known copies of the object.
func (c *ReferenceCounter) GetObjectLocations(
	id types.ObjectID) (map[types.NodeID]struct{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		return nil, false
	}
	out := make(map[types.NodeID]struct{}, len(r.locations))
	for node := range r.locations {
		out[node] = struct{}{}
	}
	return out, true
}

// UpdateObjectPendingCreation flips the pending-creation flag, pushing a
// location update on change.
func (c *ReferenceCounter) UpdateObjectPendingCreation(id types.ObjectID, pending bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateObjectPendingCreationInternal(id, pending)
}

func (c *ReferenceCounter) updateObjectPendingCreationInternal(
	id types.ObjectID, pending bool) {
	r, ok := c.refs[id]
	if !ok {
		return
	}
	changed := r.pendingCreation != pending
	r.pendingCreation = pending
	if changed {
		c.pushToLocationSubscribers(id, r)
	}
}

// IsObjectPendingCreation returns true while the task creating the object
// has not finished.
func (c *ReferenceCounter) IsObjectPendingCreation(id types.ObjectID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		return false
	}
	return r.pendingCreation
}

// HandleObjectSpilled records that the object was spilled to external
// storage. Returns false if the reference is gone or the spill must be
// ignored.
func (c *ReferenceCounter) HandleObjectSpilled(
	id types.ObjectID, spilledURL string, spilledNode types.NodeID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		c.logger.Warn("spilled object already out of scope",
			zap.String("object", id.String()))
		return false
	}
	if r.outOfScope() && !spilledNode.IsNil() {
		// An out-of-scope object spilled by its primary node was already
		// dropped at the spill location, the URL must not come back.
		return false
	}

	r.spilled = true
	r.didSpill = true
	locationAlive := spilledNode.IsNil() || c.probe.IsNodeAlive(spilledNode)
	if locationAlive {
		if spilledURL != "" {
			r.spilledURL = spilledURL
		}
		if !spilledNode.IsNil() {
			r.spilledNodeID = spilledNode
		}
		c.pushToLocationSubscribers(id, r)
	} else {
		c.logger.Debug("object spilled to dead node",
			zap.String("object", id.String()),
			zap.String("node", spilledNode.String()))
		c.unsetObjectPrimaryCopy(r)
		c.objectsToRecover = append(c.objectsToRecover, id)
	}
	return true
}

// GetLocalityData returns the size and locations of the object for the
// scheduler, nil when size or reference are unknown.
func (c *ReferenceCounter) GetLocalityData(id types.ObjectID) *LocalityData {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		return nil
	}
	if r.objectSize < 0 {
		return nil
	}
	nodes := make(map[types.NodeID]struct{}, len(r.locations)+1)
	for node := range r.locations {
		nodes[node] = struct{}{}
	}
	// The primary copy is a valid location, in memory or spilled.
	if r.pinnedAtNodeID != nil {
		nodes[*r.pinnedAtNodeID] = struct{}{}
	}
	return &LocalityData{
		ObjectSize: r.objectSize,
		Locations:  nodes,
	}
}

// ReportLocalityData records locations learned from the owner of a
// borrowed object.
func (c *ReferenceCounter) ReportLocalityData(
	id types.ObjectID, locations map[types.NodeID]struct{}, objectSize int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		c.logger.Debug("locality report for unknown object, it was probably freed",
			zap.String("object", id.String()))
		return false
	}
	if r.ownedByUs {
		panic(fmt.Sprintf(
			"locality reports are only valid for borrowed references, object %s is owned", id))
	}
	if r.locations == nil {
		r.locations = make(map[types.NodeID]struct{}, len(locations))
	}
	for node := range locations {
		r.locations[node] = struct{}{}
	}
	if objectSize > 0 {
		r.objectSize = objectSize
	}
	return true
}

// pushToLocationSubscribers publishes the object's current location state.
func (c *ReferenceCounter) pushToLocationSubscribers(id types.ObjectID, r *reference) {
	msg := &refs.PubMessage{
		Channel:         refs.ObjectLocations,
		Key:             id.Binary(),
		ObjectLocations: c.fillObjectInformationInternal(r),
	}
	c.publisher.Publish(msg)
}

// FillObjectInformation writes the location state of the object into msg.
// A removed reference sets the ref-removed flag instead.
func (c *ReferenceCounter) FillObjectInformation(
	id types.ObjectID, msg *refs.ObjectLocationsPubMessage) {
	if msg == nil {
		panic("nil object locations message")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		c.logger.Warn("object locations requested but ref already removed, possible protocol bug",
			zap.String("object", id.String()))
		msg.RefRemoved = true
		return
	}
	*msg = *c.fillObjectInformationInternal(r)
}

func (c *ReferenceCounter) fillObjectInformationInternal(
	r *reference) *refs.ObjectLocationsPubMessage {
	msg := &refs.ObjectLocationsPubMessage{
		SpilledUrl:      r.spilledURL,
		PendingCreation: r.pendingCreation,
		DidSpill:        r.didSpill,
	}
	for node := range r.locations {
		msg.NodeIds = append(msg.NodeIds, node.Binary())
	}
	if r.objectSize > 0 {
		msg.ObjectSize = r.objectSize
	}
	if !r.spilledNodeID.IsNil() {
		msg.SpilledNodeId = r.spilledNodeID.Binary()
	}
	if r.pinnedAtNodeID != nil {
		msg.PrimaryNodeId = r.pinnedAtNodeID.Binary()
	}
	return msg
}

// PublishObjectLocationSnapshot pushes the current location state once, so
// a fresh subscriber always receives an initial snapshot.
func (c *ReferenceCounter) PublishObjectLocationSnapshot(id types.ObjectID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		c.logger.Warn("location snapshot requested but ref already removed, possible protocol bug",
			zap.String("object", id.String()))
		// Let subscribers see the error first, then fail the key since the
		// object is unreachable.
		c.publisher.Publish(&refs.PubMessage{
			Channel:         refs.ObjectLocations,
			Key:             id.Binary(),
			ObjectLocations: &refs.ObjectLocationsPubMessage{RefRemoved: true},
		})
		c.publisher.PublishFailure(refs.ObjectLocations, id.Binary())
		return
	}
	c.pushToLocationSubscribers(id, r)
}
