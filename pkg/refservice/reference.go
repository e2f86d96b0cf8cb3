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

	"github.com/taskfabric/taskfabric/pkg/pb/refs"
	"github.com/taskfabric/taskfabric/pkg/types"
)

// nestedRefs tracks the containment graph around one object. Allocated on
// first use, most references never nest.
type nestedRefs struct {
	// contains ids nested inside this object's value.
	contains map[types.ObjectID]struct{}
	// containedInOwned owned outer ids this object is nested in.
	containedInOwned map[types.ObjectID]struct{}
	// containedInBorrowedIDs borrowed outer ids this object is nested in.
	containedInBorrowedIDs map[types.ObjectID]struct{}
}

// borrowInfo tracks where a reference has been lent out. Allocated on
// first use.
type borrowInfo struct {
	// borrowers remote workers currently borrowing the object, keyed by
	// worker identity.
	borrowers map[types.WorkerID]refs.Address
	// storedInObjects outer objects this borrowed id was stored in, mapped
	// to the owner of the outer object.
	storedInObjects map[types.ObjectID]refs.Address
}

// reference is the per-object record of the table.
type reference struct {
	// ownerAddress the worker that owns the object, nil until known.
	ownerAddress *refs.Address
	// ownedByUs true if this process created the object.
	ownedByUs bool

	localRefCount         int
	submittedTaskRefCount int
	lineageRefCount       int

	callSite   string
	objectSize int64

	nested *nestedRefs
	borrow *borrowInfo

	// hasNestedRefsToReport set when a nested id under this borrowed
	// object is in use and must be reported to the owner.
	hasNestedRefsToReport bool
	// foreignOwnerAlreadyMonitoring set when a foreign owner is already
	// waiting on this borrow, so a finished task need not report it.
	foreignOwnerAlreadyMonitoring bool

	onRefRemoved        RefRemovedCallback
	onOutOfScopeOrFreed []ObjectCallback
	onObjectRefDelete   ObjectCallback

	pinnedAtNodeID *types.NodeID
	spilled        bool
	spilledURL     string
	spilledNodeID  types.NodeID
	didSpill       bool
	locations      map[types.NodeID]struct{}

	isReconstructable bool
	lineageEvicted    bool
	pendingCreation   bool

	transport refs.Transport
}

func newReference(callSite string, objectSize int64) *reference {
	return &reference{
		callSite:   callSite,
		objectSize: objectSize,
	}
}

func newOwnedReference(
	owner refs.Address,
	callSite string,
	objectSize int64,
	isReconstructable bool,
	pinnedAt *types.NodeID,
	transport refs.Transport) *reference {
	return &reference{
		ownerAddress:      &owner,
		ownedByUs:         true,
		callSite:          callSite,
		objectSize:        objectSize,
		isReconstructable: isReconstructable,
		pinnedAtNodeID:    pinnedAt,
		transport:         transport,
	}
}

// refCount is the total count that keeps the reference in scope: local
// refs, submitted tasks, remote borrowers and containment edges.
func (r *reference) refCount() int {
	n := r.localRefCount + r.submittedTaskRefCount
	if r.nested != nil {
		n += len(r.nested.containedInOwned)
		n += len(r.nested.containedInBorrowedIDs)
	}
	if r.borrow != nil {
		n += len(r.borrow.borrowers)
		n += len(r.borrow.storedInObjects)
	}
	return n
}

// outOfScope the object value may be reclaimed. Lineage does not keep a
// value in scope, only the reference record.
func (r *reference) outOfScope() bool {
	return r.refCount() == 0
}

// shouldDelete the reference record may be erased from the table.
func (r *reference) shouldDelete(lineagePinningEnabled bool) bool {
	if !r.outOfScope() {
		return false
	}
	if lineagePinningEnabled && r.lineageRefCount > 0 {
		return false
	}
	return r.onRefRemoved == nil
}

func (r *reference) mutableNested() *nestedRefs {
	if r.nested == nil {
		r.nested = &nestedRefs{
			contains:               make(map[types.ObjectID]struct{}),
			containedInOwned:       make(map[types.ObjectID]struct{}),
			containedInBorrowedIDs: make(map[types.ObjectID]struct{}),
		}
	}
	return r.nested
}

func (r *reference) mutableBorrow() *borrowInfo {
	if r.borrow == nil {
		r.borrow = &borrowInfo{
			borrowers:       make(map[types.WorkerID]refs.Address),
			storedInObjects: make(map[types.ObjectID]refs.Address),
		}
	}
	return r.borrow
}

func (r *reference) contains() map[types.ObjectID]struct{} {
	if r.nested == nil {
		return nil
	}
	return r.nested.contains
}

func (r *reference) containedInBorrowedIDs() map[types.ObjectID]struct{} {
	if r.nested == nil {
		return nil
	}
	return r.nested.containedInBorrowedIDs
}

func (r *reference) borrowers() map[types.WorkerID]refs.Address {
	if r.borrow == nil {
		return nil
	}
	return r.borrow.borrowers
}

func (r *reference) storedInObjects() map[types.ObjectID]refs.Address {
	if r.borrow == nil {
		return nil
	}
	return r.borrow.storedInObjects
}

// addBorrower returns true if the borrower was not yet known.
func (r *reference) addBorrower(addr refs.Address) bool {
	b := r.mutableBorrow()
	id := addr.WorkerID()
	if _, ok := r.borrow.borrowers[id]; ok {
		return false
	}
	b.borrowers[id] = addr
	return true
}

// toProto serializes the reference for a borrowed-refs report. With
// deductLocalRef the artificial local ref the runtime holds for the
// duration of a task is not counted, so the owner sees the post-task
// state.
func (r *reference) toProto(deductLocalRef bool) refs.ObjectReferenceCount {
	var out refs.ObjectReferenceCount
	if r.ownerAddress != nil {
		out.Reference.OwnerAddress = *r.ownerAddress
	}
	threshold := 0
	if deductLocalRef {
		threshold = 1
	}
	out.HasLocalRef = r.refCount() > threshold
	for _, addr := range r.borrowers() {
		out.Borrowers = append(out.Borrowers, addr)
	}
	for id, owner := range r.storedInObjects() {
		out.StoredInObjects = append(out.StoredInObjects, refs.ObjectReference{
			ObjectId:     id.Binary(),
			OwnerAddress: owner,
		})
	}
	for id := range r.containedInBorrowedIDs() {
		out.ContainedInBorrowedIds = append(out.ContainedInBorrowedIds, id.Binary())
	}
	for id := range r.contains() {
		out.Contains = append(out.Contains, id.Binary())
	}
	return out
}

// referenceFromProto is the mirror of toProto.
func referenceFromProto(in *refs.ObjectReferenceCount) *reference {
	r := &reference{objectSize: -1}
	owner := in.Reference.OwnerAddress
	r.ownerAddress = &owner
	if in.HasLocalRef {
		r.localRefCount = 1
	}
	for _, addr := range in.Borrowers {
		r.addBorrower(addr)
	}
	for _, stored := range in.StoredInObjects {
		r.mutableBorrow().storedInObjects[stored.ObjectID()] = stored.OwnerAddress
	}
	for _, raw := range in.Contains {
		r.mutableNested().contains[types.MustObjectIDFromBinary(raw)] = struct{}{}
	}
	for _, raw := range in.ContainedInBorrowedIds {
		r.mutableNested().containedInBorrowedIDs[types.MustObjectIDFromBinary(raw)] = struct{}{}
	}
	return r
}

func (r *reference) debugString() string {
	return fmt.Sprintf(
		"reference{borrowers: %d local: %d submitted: %d contained_in_owned: %d "+
			"contained_in_borrowed: %d contains: %d stored_in: %d lineage: %d}",
		len(r.borrowers()),
		r.localRefCount,
		r.submittedTaskRefCount,
		len(r.containedInOwnedIDs()),
		len(r.containedInBorrowedIDs()),
		len(r.contains()),
		len(r.storedInObjects()),
		r.lineageRefCount)
}

func (r *reference) containedInOwnedIDs() map[types.ObjectID]struct{} {
	if r.nested == nil {
		return nil
	}
	return r.nested.containedInOwned
}

// referenceTable is an in-memory deserialized borrowed-refs report.
type referenceTable map[types.ObjectID]*reference

func referenceTableFromProto(proto *refs.ReferenceTable) referenceTable {
	table := make(referenceTable, len(proto.References))
	for i := range proto.References {
		rc := &proto.References[i]
		table[rc.Reference.ObjectID()] = referenceFromProto(rc)
	}
	return table
}

// referenceProtoTable accumulates per-object rows while a borrower builds
// its report.
type referenceProtoTable map[types.ObjectID]refs.ObjectReferenceCount

func (t referenceProtoTable) toProto() *refs.ReferenceTable {
	out := &refs.ReferenceTable{}
	for id, rc := range t {
		rc.Reference.ObjectId = id.Binary()
		out.References = append(out.References, rc)
	}
	return out
}
