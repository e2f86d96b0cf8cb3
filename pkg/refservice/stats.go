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
	"github.com/taskfabric/taskfabric/pkg/types"
)

// ObjectRefStats exports one debug row per reference, plus rows for
// objects that are pinned in the store without a reference. pinnedObjects
// is the store's view of pinned objects, limit caps the number of rows,
// -1 for all and 0 for the configured default.
func (c *ReferenceCounter) ObjectRefStats(
	pinnedObjects map[types.ObjectID]PinnedObjectInfo,
	limit int64) (stats []ObjectRefStat, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if limit == 0 {
		limit = c.maxDebugRefs
	}
	total = len(c.refs)
	count := int64(0)

	for id, r := range c.refs {
		if limit != -1 && count >= limit {
			break
		}
		count++

		stat := ObjectRefStat{
			ObjectID:              id,
			CallSite:              r.callSite,
			ObjectSize:            r.objectSize,
			LocalRefCount:         r.localRefCount,
			SubmittedTaskRefCount: r.submittedTaskRefCount,
		}
		if pinned, ok := pinnedObjects[id]; ok {
			stat.PinnedInMemory = true
			// Fall back to the store's view for info the table is missing.
			if stat.ObjectSize <= 0 {
				stat.ObjectSize = pinned.ObjectSize
			}
			if stat.CallSite == "" {
				stat.CallSite = pinned.CallSite
			}
		}
		for outerID := range r.containedInOwnedIDs() {
			stat.ContainedInOwned = append(stat.ContainedInOwned, outerID)
		}
		// A task whose spec was already collected still reports a final
		// status through its returns.
		if r.ownedByUs && !r.pendingCreation {
			stat.Finished = true
		}
		stats = append(stats, stat)
	}

	// Pinned objects without a reference still occupy store memory and
	// belong in the export.
	for id, pinned := range pinnedObjects {
		if _, ok := c.refs[id]; ok {
			continue
		}
		if limit != -1 && count >= limit {
			break
		}
		count++
		total++
		stats = append(stats, ObjectRefStat{
			ObjectID:       id,
			CallSite:       pinned.CallSite,
			ObjectSize:     pinned.ObjectSize,
			PinnedInMemory: true,
		})
	}
	return stats, total
}
