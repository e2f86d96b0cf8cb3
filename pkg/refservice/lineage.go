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

	"github.com/taskfabric/taskfabric/pkg/types"
)

// EvictLineage releases lineage of owned objects in creation order until
// at least minBytesToEvict bytes were reclaimed or no reconstructable
// object remains. Returns the bytes reclaimed.
func (c *ReferenceCounter) EvictLineage(minBytesToEvict int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var evicted int64
	for c.reconstructableOwnedObjects.Len() > 0 && evicted < minBytesToEvict {
		front := c.reconstructableOwnedObjects.Front()
		id := front.Value.(types.ObjectID)
		c.reconstructableOwnedObjects.Remove(front)
		delete(c.reconstructableOwnedObjectsIndex, id)

		r, ok := c.refs[id]
		if !ok {
			panic(fmt.Sprintf("lineage eviction walk found unknown object %s", id))
		}
		evicted += c.releaseLineageReferences(id, r)
	}
	return evicted
}

// releaseLineageReferences releases the lineage of one object and
// cascades through the lineage counts of the task's arguments.
func (c *ReferenceCounter) releaseLineageReferences(id types.ObjectID, r *reference) int64 {
	var bytesEvicted int64
	var argIDs []types.ObjectID
	if c.onLineageReleased != nil && r.ownedByUs {
		var released int64
		argIDs, released = c.onLineageReleased(id)
		bytesEvicted += released
		// Still in scope but no longer recoverable: reconstruction
		// attempts must fail with the right error.
		if !r.outOfScope() && r.isReconstructable {
			r.lineageEvicted = true
			r.isReconstructable = false
		}
	}

	for _, argID := range argIDs {
		arg, ok := c.refs[argID]
		if !ok {
			continue
		}
		if arg.lineageRefCount == 0 {
			continue
		}
		arg.lineageRefCount--
		if arg.outOfScope() {
			c.onObjectOutOfScopeOrFreed(argID, arg)
		}
		if arg.shouldDelete(c.lineagePinningEnabled) {
			if arg.onRefRemoved != nil {
				panic(fmt.Sprintf(
					"deleting object %s with a pending ref-removed callback", argID))
			}
			bytesEvicted += c.releaseLineageReferences(argID, arg)
			c.eraseReference(argID, arg)
		}
	}
	return bytesEvicted
}

// IsObjectReconstructable reports whether the object can be recomputed
// from lineage. lineageEvicted is true if it could have been but its
// lineage was evicted.
func (c *ReferenceCounter) IsObjectReconstructable(
	id types.ObjectID) (reconstructable bool, lineageEvicted bool) {
	if !c.lineagePinningEnabled {
		return false, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.refs[id]
	if !ok {
		return false, false
	}
	return r.isReconstructable, r.lineageEvicted
}
