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

// AddNestedObjectIDs records that the object with outerID contains
// innerIDs in its serialized value. ownerAddress is the owner of the
// outer object: when it is this worker the containment is tracked
// directly, otherwise the outer's owner becomes a borrower of each inner
// id.
func (c *ReferenceCounter) AddNestedObjectIDs(
	outerID types.ObjectID, innerIDs []types.ObjectID, ownerAddress refs.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addNestedObjectIDsInternal(outerID, innerIDs, ownerAddress)
}

func (c *ReferenceCounter) addNestedObjectIDsInternal(
	outerID types.ObjectID, innerIDs []types.ObjectID, ownerAddress refs.Address) {
	if ownerAddress.IsEmpty() {
		panic(fmt.Sprintf("nesting edges for object %s need an owner address", outerID))
	}
	outer, outerExists := c.refs[outerID]
	if ownerAddress.WorkerID() == c.ownWorkerID {
		// We own the outer id: an object put into the store or a task
		// return whose caller runs in this process.
		if !outerExists {
			return
		}
		if !outer.ownedByUs {
			panic(fmt.Sprintf("outer object %s has our address but is not owned by us", outerID))
		}
		// The outer object is still in scope, the inner objects must not
		// be reclaimed before it.
		for _, innerID := range innerIDs {
			outer.mutableNested().contains[innerID] = struct{}{}
		}
		for _, innerID := range innerIDs {
			inner, ok := c.refs[innerID]
			if !ok {
				inner = newReference("", -1)
				c.refs[innerID] = inner
			}
			wasInUse := inner.refCount() > 0
			inner.mutableNested().containedInOwned[outerID] = struct{}{}
			if !wasInUse && inner.refCount() > 0 {
				c.setNestedRefInUseRecursive(inner)
			}
		}
		return
	}

	// A remote process owns the outer id: we returned the inner ids from a
	// task whose caller runs elsewhere. The caller keeps each inner alive
	// until it drops the outer.
	for _, innerID := range innerIDs {
		inner, ok := c.refs[innerID]
		if !ok {
			inner = newReference("", -1)
			c.refs[innerID] = inner
		}
		if inner.ownedByUs {
			// The outer's owner borrows the inner object from us.
			if inner.addBorrower(ownerAddress) {
				c.waitForRefRemoved(innerID, inner, ownerAddress, outerID)
			}
		} else {
			if _, ok := inner.mutableBorrow().storedInObjects[outerID]; ok {
				panic(fmt.Sprintf(
					"object %s already recorded as stored in %s", innerID, outerID))
			}
			inner.borrow.storedInObjects[outerID] = ownerAddress
		}
	}
}

// setNestedRefInUseRecursive marks every borrowed object enclosing this
// one as having nested refs in use, so the enclosing ids are reported to
// their owners together with their nested descendants.
func (c *ReferenceCounter) setNestedRefInUseRecursive(inner *reference) {
	for containedInID := range inner.containedInBorrowedIDs() {
		outer, ok := c.refs[containedInID]
		if !ok {
			panic(fmt.Sprintf(
				"borrowed container %s missing from reference table", containedInID))
		}
		if !outer.hasNestedRefsToReport {
			outer.hasNestedRefsToReport = true
			c.setNestedRefInUseRecursive(outer)
		}
	}
}
