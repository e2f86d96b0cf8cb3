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
	"container/list"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/taskfabric/taskfabric/pkg/common/log"
	"github.com/taskfabric/taskfabric/pkg/logutil"
	"github.com/taskfabric/taskfabric/pkg/pb/refs"
	"github.com/taskfabric/taskfabric/pkg/types"
)

// ReferenceCounter decides which objects in the cluster are still
// reachable from this worker and which may be reclaimed. There is one
// counter per worker process. Every public method takes the counter lock
// for its whole duration; all outbound calls (publish, subscribe) are
// fire-and-forget on the injected interfaces.
type ReferenceCounter struct {
	logger *log.TFLogger

	ownAddress  refs.Address
	ownWorkerID types.WorkerID

	lineagePinningEnabled bool
	maxDebugRefs          int64
	warnInterval          time.Duration

	publisher  Publisher
	subscriber Subscriber
	probe      NodeLivenessProbe

	onLineageReleased LineageReleasedCallback

	mu sync.Mutex

	// refs the authoritative table, all state below is guarded by mu.
	refs map[types.ObjectID]*reference

	// freedObjects ids whose store value was freed explicitly while the
	// reference itself stays in the table.
	freedObjects map[types.ObjectID]struct{}

	// reconstructableOwnedObjects owned objects in creation order, the
	// eviction walk releases lineage front to back. The index gives O(1)
	// removal.
	reconstructableOwnedObjects      *list.List
	reconstructableOwnedObjectsIndex map[types.ObjectID]*list.Element

	// objectsToRecover objects that lost their primary copy, drained by
	// FlushObjectsToRecover.
	objectsToRecover []types.ObjectID

	numObjectsOwnedByUs int
	numActorsOwnedByUs  int

	shutdownHook func()
}

// NewReferenceCounter builds the counter for a worker with the given
// address. The publisher, subscriber and liveness probe are the only ways
// the counter talks to the rest of the cluster.
func NewReferenceCounter(
	ownAddress refs.Address,
	publisher Publisher,
	subscriber Subscriber,
	probe NodeLivenessProbe,
	opts ...Option) *ReferenceCounter {
	c := &ReferenceCounter{
		ownAddress:                       ownAddress,
		ownWorkerID:                      ownAddress.WorkerID(),
		publisher:                        publisher,
		subscriber:                       subscriber,
		probe:                            probe,
		maxDebugRefs:                     -1,
		refs:                             make(map[types.ObjectID]*reference),
		freedObjects:                     make(map[types.ObjectID]struct{}),
		reconstructableOwnedObjects:      list.New(),
		reconstructableOwnedObjectsIndex: make(map[types.ObjectID]*list.Element),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.GetServiceLogger(
			logutil.GetGlobalLogger(),
			"ref-service",
			c.ownWorkerID.String())
	}
	c.logger = c.logger.WithWarnInterval(c.warnInterval)
	return c
}

// SetReleaseLineageCallback installs the lineage release hook. Must be
// called once before any task is submitted.
func (c *ReferenceCounter) SetReleaseLineageCallback(cb LineageReleasedCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.onLineageReleased != nil {
		panic("release lineage callback already set")
	}
	c.onLineageReleased = cb
}

// DrainAndShutdown calls hook once the table is empty. If it is already
// empty the hook runs before DrainAndShutdown returns.
func (c *ReferenceCounter) DrainAndShutdown(hook func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.refs) == 0 {
		hook()
		return
	}
	c.logger.Warn("worker still manages objects, delaying shutdown until they go out of scope",
		zap.Int("objects", len(c.refs)))
	c.shutdownHook = hook
}

func (c *ReferenceCounter) shutdownIfNeeded() {
	if c.shutdownHook != nil && len(c.refs) == 0 {
		c.logger.Warn("all object references out of scope, shutting down worker")
		c.shutdownHook()
	}
}

// Size returns the number of references in the table.
func (c *ReferenceCounter) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.refs)
}

// OwnedByUs returns true if this worker owns the object.
func (c *ReferenceCounter) OwnedByUs(id types.ObjectID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.refs[id]; ok {
		return r.ownedByUs
	}
	return false
}

// AddOwnedObject records a new object created by this worker. innerIDs are
// object ids serialized inside the new object's value. Owning the same id
// twice is a bug.
func (c *ReferenceCounter) AddOwnedObject(
	id types.ObjectID,
	innerIDs []types.ObjectID,
	owner refs.Address,
	callSite string,
	objectSize int64,
	isReconstructable bool,
	addLocalRef bool,
	pinnedAt *types.NodeID,
	transport refs.Transport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.addOwnedObjectInternal(
		id, innerIDs, owner, callSite, objectSize,
		isReconstructable, addLocalRef, pinnedAt, transport) {
		panic(fmt.Sprintf("tried to create an owned object that already exists: %s", id))
	}
}

func (c *ReferenceCounter) addOwnedObjectInternal(
	id types.ObjectID,
	innerIDs []types.ObjectID,
	owner refs.Address,
	callSite string,
	objectSize int64,
	isReconstructable bool,
	addLocalRef bool,
	pinnedAt *types.NodeID,
	transport refs.Transport) bool {
	if _, ok := c.refs[id]; ok {
		return false
	}
	if id.IsActorHandle() {
		c.numActorsOwnedByUs++
	} else {
		c.numObjectsOwnedByUs++
	}
	r := newOwnedReference(owner, callSite, objectSize, isReconstructable, pinnedAt, transport)
	c.refs[id] = r
	if len(innerIDs) > 0 {
		// The inner objects stay alive until the outer id goes out of scope.
		c.addNestedObjectIDsInternal(id, innerIDs, c.ownAddress)
	}
	if pinnedAt != nil {
		// The primary copy is a known location from the start.
		c.addObjectLocationInternal(id, r, *pinnedAt)
	}

	elem := c.reconstructableOwnedObjects.PushBack(id)
	if _, ok := c.reconstructableOwnedObjectsIndex[id]; ok {
		panic(fmt.Sprintf("owned object %s already indexed for lineage eviction", id))
	}
	c.reconstructableOwnedObjectsIndex[id] = elem

	if addLocalRef {
		r.localRefCount++
	}
	return true
}

// AddDynamicReturn records a return object created during the execution
// of a generator task. Its liveness is tied to the generator id. No-op if
// the generator already went out of scope.
func (c *ReferenceCounter) AddDynamicReturn(id, generatorID types.ObjectID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	outer, ok := c.refs[generatorID]
	if !ok {
		// The generator went out of scope, either the return was never
		// deserialized or it was already registered.
		return
	}
	if !outer.ownedByUs || outer.ownerAddress == nil {
		panic(fmt.Sprintf("generator %s for dynamic return %s is not owned by us", generatorID, id))
	}
	owner := *outer.ownerAddress
	c.addOwnedObjectInternal(
		id, nil, owner, outer.callSite, -1,
		outer.isReconstructable, false, nil, refs.ObjectStore)
	c.addNestedObjectIDsInternal(generatorID, []types.ObjectID{id}, owner)
}

// OwnDynamicStreamingTaskReturnRef records a streamed generator return and
// takes a local reference for it. The stream layer releases the ref, no
// containment edge is added.
func (c *ReferenceCounter) OwnDynamicStreamingTaskReturnRef(id, generatorID types.ObjectID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	outer, ok := c.refs[generatorID]
	if !ok {
		c.logger.Debug("dynamic return registered after generator went out of scope",
			zap.String("object", id.String()),
			zap.String("generator", generatorID.String()))
		return
	}
	if !outer.ownedByUs || outer.ownerAddress == nil {
		panic(fmt.Sprintf("generator %s for dynamic return %s is not owned by us", generatorID, id))
	}
	c.addOwnedObjectInternal(
		id, nil, *outer.ownerAddress, outer.callSite, -1,
		outer.isReconstructable, true, nil, refs.ObjectStore)
}

// CheckGeneratorRefsLineageOutOfScope returns true if the generator and
// all of its first numObjectsGenerated returns are gone from the table.
func (c *ReferenceCounter) CheckGeneratorRefsLineageOutOfScope(
	generatorID types.ObjectID, numObjectsGenerated int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.refs[generatorID]; ok {
		return false
	}
	task := generatorID.TaskID()
	for i := 0; i < numObjectsGenerated; i++ {
		// Task returns start at index 1 and the first return is the
		// generator itself.
		returnID := types.ObjectIDFromIndex(task, uint32(i+2))
		if _, ok := c.refs[returnID]; ok {
			return false
		}
	}
	return true
}

// AddLocalReference records a reference held by the local runtime. An
// unknown id gets a reference with no owner, the owner arrives later via
// AddBorrowedObject.
func (c *ReferenceCounter) AddLocalReference(id types.ObjectID, callSite string) {
	if id.IsNil() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		r = newReference(callSite, -1)
		c.refs[id] = r
	}
	wasInUse := r.refCount() > 0
	r.localRefCount++
	if !wasInUse && r.refCount() > 0 {
		c.setNestedRefInUseRecursive(r)
	}
}

// RemoveLocalReference drops one local runtime reference and returns the
// ids whose store values became reclaimable.
func (c *ReferenceCounter) RemoveLocalReference(id types.ObjectID) []types.ObjectID {
	if id.IsNil() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var deleted []types.ObjectID
	c.removeLocalReferenceInternal(id, &deleted)
	return deleted
}

func (c *ReferenceCounter) removeLocalReferenceInternal(
	id types.ObjectID, deleted *[]types.ObjectID) {
	if id.IsNil() {
		panic("removing local reference for nil object id")
	}
	r, ok := c.refs[id]
	if !ok {
		c.logger.WarnEvery("remove-local-missing",
			"tried to decrease ref count for nonexistent object",
			zap.String("object", id.String()))
		return
	}
	if r.localRefCount == 0 {
		c.logger.WarnEvery("remove-local-zero",
			"tried to decrease ref count below zero, can happen after an explicit free",
			zap.String("object", id.String()))
		return
	}
	r.localRefCount--
	if r.refCount() == 0 {
		c.deleteReferenceInternal(id, r, deleted)
	}
}

// ReleaseAllLocalReferences drops every local reference held by the
// runtime. Teardown and test aid.
func (c *ReferenceCounter) ReleaseAllLocalReferences() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var toRemove []types.ObjectID
	for id, r := range c.refs {
		for i := 0; i < r.localRefCount; i++ {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		c.removeLocalReferenceInternal(id, nil)
	}
}

// TryReleaseLocalRefs releases the local ref for each id that still holds
// one. Ids already released are skipped.
func (c *ReferenceCounter) TryReleaseLocalRefs(ids []types.ObjectID) []types.ObjectID {
	c.mu.Lock()
	defer c.mu.Unlock()
	var deleted []types.ObjectID
	for _, id := range ids {
		r, ok := c.refs[id]
		if !ok || r.localRefCount == 0 {
			continue
		}
		c.removeLocalReferenceInternal(id, &deleted)
	}
	return deleted
}

// UpdateObjectSize records a late size report and pushes a location
// update.
func (c *ReferenceCounter) UpdateObjectSize(id types.ObjectID, objectSize int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.refs[id]; ok {
		r.objectSize = objectSize
		c.pushToLocationSubscribers(id, r)
	}
}

// UpdateSubmittedTaskReferences records a task submission: return ids
// become pending, argument ids gain a submitted-task ref and a lineage
// ref. removeArgs lists arguments whose values were inlined after
// submission, their counts are released again.
func (c *ReferenceCounter) UpdateSubmittedTaskReferences(
	returnIDs []types.ObjectID,
	addArgs []types.ObjectID,
	removeArgs []types.ObjectID) []types.ObjectID {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range returnIDs {
		c.updateObjectPendingCreationInternal(id, true)
	}
	for _, id := range addArgs {
		r, ok := c.refs[id]
		if !ok {
			// A large argument passed purely by reference, the runtime
			// holds no local ref for it.
			r = newReference("", -1)
			c.refs[id] = r
		}
		wasInUse := r.refCount() > 0
		r.submittedTaskRefCount++
		// Released once the task finishes and cannot be retried again.
		r.lineageRefCount++
		if !wasInUse && r.refCount() > 0 {
			c.setNestedRefInUseRecursive(r)
		}
	}
	var deleted []types.ObjectID
	c.removeSubmittedTaskReferences(removeArgs, true, &deleted)
	return deleted
}

// UpdateResubmittedTaskReferences records the re-submission of a task for
// object reconstruction. The lineage ref is already held.
func (c *ReferenceCounter) UpdateResubmittedTaskReferences(argIDs []types.ObjectID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range argIDs {
		r, ok := c.refs[id]
		if !ok {
			panic(fmt.Sprintf("resubmitted task argument %s not in reference table", id))
		}
		wasInUse := r.refCount() > 0
		r.submittedTaskRefCount++
		if !wasInUse && r.refCount() > 0 {
			c.setNestedRefInUseRecursive(r)
		}
	}
}

// UpdateFinishedTaskReferences records the completion of a task executed
// on worker. borrowedRefs is the worker's report of references it still
// holds. The report is merged before any submitted-task count drops so an
// id serialized inside an argument gains its borrower before the argument
// loses its count.
func (c *ReferenceCounter) UpdateFinishedTaskReferences(
	returnIDs []types.ObjectID,
	argIDs []types.ObjectID,
	releaseLineage bool,
	worker refs.Address,
	borrowedRefs *refs.ReferenceTable) []types.ObjectID {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range returnIDs {
		c.updateObjectPendingCreationInternal(id, false)
	}
	var table referenceTable
	if borrowedRefs != nil {
		table = referenceTableFromProto(borrowedRefs)
	}
	if len(table) > 0 && worker.IsEmpty() {
		panic("finished task reported borrowed refs without a worker address")
	}
	for _, id := range argIDs {
		c.mergeRemoteBorrowers(id, worker, table)
	}
	var deleted []types.ObjectID
	c.removeSubmittedTaskReferences(argIDs, releaseLineage, &deleted)
	return deleted
}

func (c *ReferenceCounter) removeSubmittedTaskReferences(
	argIDs []types.ObjectID, releaseLineage bool, deleted *[]types.ObjectID) {
	for _, id := range argIDs {
		r, ok := c.refs[id]
		if !ok {
			c.logger.Warn("tried to decrease ref count for nonexistent submitted task argument",
				zap.String("object", id.String()))
			continue
		}
		if r.submittedTaskRefCount <= 0 {
			panic(fmt.Sprintf("submitted task ref count underflow for object %s", id))
		}
		r.submittedTaskRefCount--
		if releaseLineage && r.lineageRefCount > 0 {
			r.lineageRefCount--
		}
		if r.refCount() == 0 {
			c.deleteReferenceInternal(id, r, deleted)
		}
	}
}

// FreeObjects releases the store values of the given objects while
// keeping the references so ownership information survives.
func (c *ReferenceCounter) FreeObjects(ids []types.ObjectID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		r, ok := c.refs[id]
		if !ok {
			c.logger.Warn("tried to free an object that is already out of scope",
				zap.String("object", id.String()))
			continue
		}
		// Removed again once the reference itself is deleted.
		c.freedObjects[id] = struct{}{}
		if !r.ownedByUs {
			c.logger.Warn("tried to free an object we did not create, the value may not be released",
				zap.String("object", id.String()))
			continue
		}
		c.onObjectOutOfScopeOrFreed(id, r)
	}
}

// IsObjectFreed returns true if the object's store value was freed
// explicitly.
func (c *ReferenceCounter) IsObjectFreed(id types.ObjectID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.freedObjects[id]
	return ok
}

// TryMarkFreedObjectInUseAgain puts a freed object back in use, returns
// false if the reference is gone or the object was never freed.
func (c *ReferenceCounter) TryMarkFreedObjectInUseAgain(id types.ObjectID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.refs[id]; !ok {
		return false
	}
	if _, ok := c.freedObjects[id]; !ok {
		return false
	}
	delete(c.freedObjects, id)
	return true
}

// deleteReferenceInternal attempts to reclaim the object and erase the
// reference. Called whenever a mutation may have driven the ref count to
// zero. Deletion recurses through contained ids.
func (c *ReferenceCounter) deleteReferenceInternal(
	id types.ObjectID, r *reference, deleted *[]types.ObjectID) {
	if r.refCount() == 0 && r.onRefRemoved != nil {
		r.onRefRemoved(id)
		r.onRefRemoved = nil
	}

	if r.outOfScope() {
		for innerID := range r.contains() {
			inner, ok := c.refs[innerID]
			if !ok {
				continue
			}
			if r.ownedByUs {
				// The outer id counted toward the inner's ref count via
				// the contained-in-owned edge.
				if _, ok := inner.containedInOwnedIDs()[id]; !ok {
					panic(fmt.Sprintf("inner object %s missing contained-in-owned edge to %s", innerID, id))
				}
				delete(inner.nested.containedInOwned, id)
			} else {
				if _, ok := inner.containedInBorrowedIDs()[id]; !ok {
					panic(fmt.Sprintf("inner object %s missing contained-in-borrowed edge to %s", innerID, id))
				}
				delete(inner.nested.containedInBorrowedIDs, id)
			}
			c.deleteReferenceInternal(innerID, inner, deleted)
		}
		c.onObjectOutOfScopeOrFreed(id, r)
		if deleted != nil {
			*deleted = append(*deleted, id)
		}
		c.removeFromReconstructableIndex(id)
	}

	if r.shouldDelete(c.lineagePinningEnabled) {
		c.releaseLineageReferences(id, r)
		c.eraseReference(id, r)
	}
}

func (c *ReferenceCounter) removeFromReconstructableIndex(id types.ObjectID) {
	if elem, ok := c.reconstructableOwnedObjectsIndex[id]; ok {
		c.reconstructableOwnedObjects.Remove(elem)
		delete(c.reconstructableOwnedObjectsIndex, id)
	}
}

// eraseReference removes the reference from the table, fires the delete
// callback and tells location subscribers the object is gone for good.
func (c *ReferenceCounter) eraseReference(id types.ObjectID, r *reference) {
	// Publish failure so subscribers that arrive after the erase still
	// observe the loss.
	c.publisher.PublishFailure(refs.ObjectLocations, id.Binary())

	if !r.shouldDelete(c.lineagePinningEnabled) {
		panic(fmt.Sprintf("erasing reference %s that should not be deleted", id))
	}
	c.removeFromReconstructableIndex(id)
	delete(c.freedObjects, id)
	if r.ownedByUs {
		if id.IsActorHandle() {
			c.numActorsOwnedByUs--
		} else {
			c.numObjectsOwnedByUs--
		}
	}
	if r.onObjectRefDelete != nil {
		r.onObjectRefDelete(id)
	}
	delete(c.refs, id)
	c.shutdownIfNeeded()
}

// onObjectOutOfScopeOrFreed fires the out-of-scope callbacks and releases
// the primary copy.
func (c *ReferenceCounter) onObjectOutOfScopeOrFreed(id types.ObjectID, r *reference) {
	for _, cb := range r.onOutOfScopeOrFreed {
		cb(id)
	}
	r.onOutOfScopeOrFreed = nil
	c.unsetObjectPrimaryCopy(r)
}

func (c *ReferenceCounter) unsetObjectPrimaryCopy(r *reference) {
	r.pinnedAtNodeID = nil
	if r.spilled && !r.spilledNodeID.IsNil() {
		r.spilled = false
		r.spilledURL = ""
		r.spilledNodeID = types.NodeID{}
	}
}

// SetObjectRefDeletedCallback installs the callback fired when the
// reference is erased from the table. Returns false if the reference is
// gone.
func (c *ReferenceCounter) SetObjectRefDeletedCallback(
	id types.ObjectID, cb ObjectCallback) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		return false
	}
	r.onObjectRefDelete = cb
	return true
}

// AddObjectOutOfScopeOrFreedCallback installs a callback fired when the
// object becomes unreachable or is freed. Returns false if that already
// happened.
func (c *ReferenceCounter) AddObjectOutOfScopeOrFreedCallback(
	id types.ObjectID, cb ObjectCallback) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		return false
	}
	if r.outOfScope() && !r.shouldDelete(c.lineagePinningEnabled) {
		// Out of scope already but the reference cannot be deleted yet,
		// the callback might never fire.
		return false
	}
	if _, freed := c.freedObjects[id]; freed {
		return false
	}
	r.onOutOfScopeOrFreed = append(r.onOutOfScopeOrFreed, cb)
	return true
}

// HasOwner returns true if the object is known to the table.
func (c *ReferenceCounter) HasOwner(id types.ObjectID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.refs[id]
	return ok
}

// GetOwner returns the owner address of the object.
func (c *ReferenceCounter) GetOwner(id types.ObjectID) (refs.Address, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getOwnerInternal(id)
}

func (c *ReferenceCounter) getOwnerInternal(id types.ObjectID) (refs.Address, bool) {
	r, ok := c.refs[id]
	if !ok || r.ownerAddress == nil {
		return refs.Address{}, false
	}
	return *r.ownerAddress, true
}

// GetOwnerAddresses returns the owner of every id. Ids without a known
// owner yield an empty address.
func (c *ReferenceCounter) GetOwnerAddresses(ids []types.ObjectID) []refs.Address {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]refs.Address, 0, len(ids))
	for _, id := range ids {
		addr, ok := c.getOwnerInternal(id)
		if !ok {
			c.logger.Warn("object id without known owner, ids created out of band cannot be resolved",
				zap.String("object", id.String()))
		}
		out = append(out, addr)
	}
	return out
}

// HasReference returns true if the object is in the table.
func (c *ReferenceCounter) HasReference(id types.ObjectID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.refs[id]
	return ok
}

// NumObjectIDsInScope returns the table size.
func (c *ReferenceCounter) NumObjectIDsInScope() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.refs)
}

// NumObjectsOwnedByUs returns how many plain objects this worker owns.
func (c *ReferenceCounter) NumObjectsOwnedByUs() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.numObjectsOwnedByUs
}

// NumActorsOwnedByUs returns how many actor handles this worker owns.
func (c *ReferenceCounter) NumActorsOwnedByUs() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.numActorsOwnedByUs
}

// GetAllInScopeObjectIDs returns the ids of every reference in the table.
func (c *ReferenceCounter) GetAllInScopeObjectIDs() map[types.ObjectID]struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[types.ObjectID]struct{}, len(c.refs))
	for id := range c.refs {
		out[id] = struct{}{}
	}
	return out
}

// GetAllReferenceCounts returns the local and submitted counts of every
// reference.
func (c *ReferenceCounter) GetAllReferenceCounts() map[types.ObjectID]RefCounts {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[types.ObjectID]RefCounts, len(c.refs))
	for id, r := range c.refs {
		out[id] = RefCounts{
			LocalRefCount:         r.localRefCount,
			SubmittedTaskRefCount: r.submittedTaskRefCount,
		}
	}
	return out
}

// GetObjectTransport returns the transport tag recorded for the object.
func (c *ReferenceCounter) GetObjectTransport(id types.ObjectID) (refs.Transport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		return refs.ObjectStore, false
	}
	return r.transport, true
}

// DebugString returns a short description of the table.
func (c *ReferenceCounter) DebugString() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := fmt.Sprintf("referenceTable{size: %d", len(c.refs))
	for id, r := range c.refs {
		s += fmt.Sprintf(" sample: %s:%s", id, r.debugString())
		break
	}
	return s + "}"
}
