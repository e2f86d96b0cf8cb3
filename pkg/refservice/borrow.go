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

// AddBorrowedObject records the owner of an object this worker borrows.
// outerID, if set, is the borrowed object the id was deserialized from.
// foreignOwnerAlreadyMonitoring suppresses reporting when the owner is
// known to be watching this borrow already.
func (c *ReferenceCounter) AddBorrowedObject(
	id, outerID types.ObjectID,
	owner refs.Address,
	foreignOwnerAlreadyMonitoring bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addBorrowedObjectInternal(id, outerID, owner, foreignOwnerAlreadyMonitoring)
}

func (c *ReferenceCounter) addBorrowedObjectInternal(
	id, outerID types.ObjectID,
	owner refs.Address,
	foreignOwnerAlreadyMonitoring bool) bool {
	r, ok := c.refs[id]
	if !ok {
		r = newReference("", -1)
		c.refs[id] = r
	}

	r.ownerAddress = &owner
	r.foreignOwnerAlreadyMonitoring =
		r.foreignOwnerAlreadyMonitoring || foreignOwnerAlreadyMonitoring

	if !outerID.IsNil() {
		outer, ok := c.refs[outerID]
		if ok && !outer.ownedByUs {
			if id == outerID {
				panic(fmt.Sprintf("object %s cannot contain itself", id))
			}
			r.mutableNested().containedInBorrowedIDs[outerID] = struct{}{}
			outer.mutableNested().contains[id] = struct{}{}
			// The inner ref is in use, its owner must hear about our ref.
			if r.refCount() > 0 {
				c.setNestedRefInUseRecursive(r)
			}
		}
	}

	if r.refCount() == 0 {
		c.deleteReferenceInternal(id, r, nil)
	}
	return true
}

// AddBorrowerAddress records that the owner handed the object off to
// borrower directly, outside of any task argument.
func (c *ReferenceCounter) AddBorrowerAddress(id types.ObjectID, borrower refs.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		panic(fmt.Sprintf("adding borrower for unknown object %s", id))
	}
	if !r.ownedByUs {
		panic("borrowers can only be added to owned references")
	}
	if borrower.WorkerID() == c.ownWorkerID {
		panic("the borrower cannot be the owner itself")
	}
	if r.addBorrower(borrower) {
		c.waitForRefRemoved(id, r, borrower, types.ObjectID{})
	}
}

// PopAndClearLocalBorrowers builds the borrowed-refs report for a
// finishing task and releases the artificial local refs the runtime held
// during execution. The returned table transfers this worker's borrow
// bookkeeping to the caller.
func (c *ReferenceCounter) PopAndClearLocalBorrowers(
	borrowedIDs []types.ObjectID) (*refs.ReferenceTable, []types.ObjectID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	borrowed := make(referenceProtoTable)
	for _, id := range borrowedIDs {
		// The artificial local ref pinned the object during execution, it
		// must not count toward the state reported to the caller.
		if !c.getAndClearLocalBorrowersInternal(id, false, true, borrowed) {
			panic(fmt.Sprintf("borrowed object %s not in reference table", id))
		}
	}
	proto := borrowed.toProto()

	var deleted []types.ObjectID
	for _, id := range borrowedIDs {
		r, ok := c.refs[id]
		if !ok {
			c.logger.WarnEvery("pop-borrowed-missing",
				"tried to decrease ref count for nonexistent borrowed object",
				zap.String("object", id.String()))
			continue
		}
		if r.localRefCount == 0 {
			c.logger.WarnEvery("pop-borrowed-zero",
				"tried to decrease ref count below zero, can happen after an explicit free",
				zap.String("object", id.String()))
		} else {
			r.localRefCount--
		}
		if r.refCount() == 0 {
			c.deleteReferenceInternal(id, r, &deleted)
		}
	}
	return proto, deleted
}

func (c *ReferenceCounter) getAndClearLocalBorrowersInternal(
	id types.ObjectID,
	forRefRemoved bool,
	deductLocalRef bool,
	out referenceProtoTable) bool {
	r, ok := c.refs[id]
	if !ok {
		return false
	}

	// A task can receive an object we own, e.g. an id we created in an
	// earlier task. There is nothing to report then.
	if r.ownedByUs {
		return true
	}

	if forRefRemoved || !r.foreignOwnerAlreadyMonitoring {
		if _, exists := out[id]; !exists {
			out[id] = r.toProto(deductLocalRef)
			// The receiver of the report takes over the borrow bookkeeping.
			// When a foreign owner is already waiting for this ref, keep the
			// stored metadata so that owner still learns about the parent
			// task's borrow.
			r.borrow = nil
		}
	}
	for containedID := range r.contains() {
		c.getAndClearLocalBorrowersInternal(containedID, forRefRemoved, false, out)
	}
	r.hasNestedRefsToReport = false
	return true
}

// mergeRemoteBorrowers absorbs a borrower's report about id into our view
// and recursively merges everything nested inside it. New borrowers get a
// ref-removed subscription if we own the object.
func (c *ReferenceCounter) mergeRemoteBorrowers(
	id types.ObjectID, worker refs.Address, borrowedRefs referenceTable) {
	borrowerRef, ok := borrowedRefs[id]
	if !ok {
		return
	}

	r, exists := c.refs[id]
	if !exists {
		r = newReference("", -1)
		c.refs[id] = r
	}
	var newBorrowers []refs.Address

	// The worker still uses the reference, so it is itself a borrower.
	if borrowerRef.refCount() > 0 {
		if r.addBorrower(worker) {
			newBorrowers = append(newBorrowers, worker)
		}
	}

	// Workers the borrower passed the id on to become borrowers too.
	for _, nested := range borrowerRef.borrowers() {
		if r.addBorrower(nested) {
			newBorrowers = append(newBorrowers, nested)
		}
	}

	// The borrower saw the id nested inside another object, copy that
	// information into our table.
	for containedInID := range borrowerRef.containedInBorrowedIDs() {
		if borrowerRef.ownerAddress == nil {
			panic(fmt.Sprintf("borrowed ref %s has containment edges but no owner", id))
		}
		c.addBorrowedObjectInternal(id, containedInID, *borrowerRef.ownerAddress, false)
	}

	if r.ownedByUs {
		// Wait for every new borrower to drop its ref before the value is
		// reclaimed.
		for _, addr := range newBorrowers {
			c.waitForRefRemoved(id, r, addr, types.ObjectID{})
		}
	} else {
		// Counts received from another borrower must flow onward to the
		// owner.
		c.setNestedRefInUseRecursive(r)
	}

	// The borrower stored the id inside objects it does not own.
	for storedInID, owner := range borrowerRef.storedInObjects() {
		c.addNestedObjectIDsInternal(storedInID, []types.ObjectID{id}, owner)
	}

	// Handle borrowers of nested objects.
	for innerID := range borrowerRef.contains() {
		c.mergeRemoteBorrowers(innerID, worker, borrowedRefs)
	}
}

// cleanupBorrowersOnRefRemoved runs when a borrower published its final
// report (or died). Any borrowers it learned of are merged, then the
// borrower itself is dropped.
func (c *ReferenceCounter) cleanupBorrowersOnRefRemoved(
	newBorrowerRefs referenceTable, id types.ObjectID, borrower refs.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mergeRemoteBorrowers(id, borrower, newBorrowerRefs)

	r, ok := c.refs[id]
	if !ok {
		panic(fmt.Sprintf("borrower removed for unknown object %s", id))
	}
	workerID := borrower.WorkerID()
	if _, ok := r.borrowers()[workerID]; !ok {
		panic(fmt.Sprintf("unknown borrower %s removed for object %s", workerID, id))
	}
	delete(r.borrow.borrowers, workerID)
	c.deleteReferenceInternal(id, r, nil)
}

// waitForRefRemoved subscribes on the borrower's ref-removed channel. The
// borrower entry keeps the reference alive until the channel fires.
func (c *ReferenceCounter) waitForRefRemoved(
	id types.ObjectID, r *reference, addr refs.Address, containedInID types.ObjectID) {
	// Only the owner asks borrowers to report back.
	if !r.ownedByUs {
		panic(fmt.Sprintf("non-owner waiting for ref removal of object %s", id))
	}
	sub := &refs.SubMessage{
		Channel: refs.RefRemoved,
		Key:     id.Binary(),
		RefRemoved: &refs.RefRemovedSubMessage{
			Reference: refs.ObjectReference{
				ObjectId:     id.Binary(),
				OwnerAddress: *r.ownerAddress,
			},
			IntendedWorkerId:   addr.WorkerId,
			SubscriberWorkerId: c.ownAddress.WorkerId,
		},
	}
	if !containedInID.IsNil() {
		sub.RefRemoved.ContainedInId = containedInID.Binary()
	}

	onPublished := func(msg *refs.PubMessage) {
		if msg.RefRemoved == nil {
			panic("ref-removed channel delivered a message without a borrowed-refs payload")
		}
		newBorrowerRefs := referenceTableFromProto(&msg.RefRemoved.BorrowedRefs)
		c.cleanupBorrowersOnRefRemoved(newBorrowerRefs, id, addr)
		if !c.subscriber.Unsubscribe(refs.RefRemoved, addr, id.Binary()) {
			panic(fmt.Sprintf("unsubscribe failed for object %s", id))
		}
	}

	// A dead borrower publishes nothing, it simply stops borrowing.
	onPublisherFailed := func(key []byte) {
		failedID := types.MustObjectIDFromBinary(key)
		c.cleanupBorrowersOnRefRemoved(nil, failedID, addr)
	}

	if !c.subscriber.Subscribe(
		sub, refs.RefRemoved, addr, id.Binary(), onPublished, onPublisherFailed) {
		panic(fmt.Sprintf("subscribe failed for object %s borrower %s", id, addr.WorkerID()))
	}
}

// HandleRefRemoved builds this worker's borrowed-refs report for one id
// and publishes it on the ref-removed channel.
func (c *ReferenceCounter) HandleRefRemoved(id types.ObjectID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handleRefRemoved(id)
}

func (c *ReferenceCounter) handleRefRemoved(id types.ObjectID) {
	borrowed := make(referenceProtoTable)
	c.getAndClearLocalBorrowersInternal(id, true, false, borrowed)

	msg := &refs.PubMessage{
		Channel: refs.RefRemoved,
		Key:     id.Binary(),
		RefRemoved: &refs.RefRemovedPubMessage{
			BorrowedRefs: *borrowed.toProto(),
		},
	}
	c.publisher.Publish(msg)
}

// SetRefRemovedCallback runs when the owner of id asks this worker to
// report once it stops borrowing. A nil callback publishes the report on
// the ref-removed channel. If the worker already stopped borrowing the
// callback fires immediately.
func (c *ReferenceCounter) SetRefRemovedCallback(
	id, containedInID types.ObjectID, owner refs.Address, cb RefRemovedCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cb == nil {
		cb = c.handleRefRemoved
	}

	r, ok := c.refs[id]
	if !ok {
		r = newReference("", -1)
		c.refs[id] = r
	}

	// Borrowing because we own an object that contains the id: the outer
	// object counts toward the inner ref, the owner hears from us once the
	// outer goes out of scope.
	if !containedInID.IsNil() {
		c.addNestedObjectIDsInternal(containedInID, []types.ObjectID{id}, c.ownAddress)
	}

	if r.refCount() == 0 {
		// Already stopped borrowing, respond immediately.
		cb(id)
		c.deleteReferenceInternal(id, r, nil)
		return
	}
	if r.onRefRemoved != nil {
		// A duplicate request means the owner task died and was
		// re-executed. The newer owner wins.
		c.logger.Warn("ref-removed callback already set, owner task must have died and re-executed",
			zap.String("object", id.String()))
	}
	r.onRefRemoved = cb
}
