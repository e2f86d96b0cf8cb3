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
	"testing"

	"github.com/lni/goutils/leaktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskfabric/taskfabric/pkg/pb/refs"
	"github.com/taskfabric/taskfabric/pkg/types"
)

func newLineageWorker(t *testing.T) (*testWorker, map[types.ObjectID][]types.ObjectID,
	map[types.ObjectID]int64, *[]types.ObjectID) {
	t.Helper()
	w := newTestWorker(newTestBroker(), WithLineagePinning())
	lineage := make(map[types.ObjectID][]types.ObjectID)
	sizes := make(map[types.ObjectID]int64)
	var released []types.ObjectID
	w.rc.SetReleaseLineageCallback(func(id types.ObjectID) ([]types.ObjectID, int64) {
		released = append(released, id)
		return lineage[id], sizes[id]
	})
	return w, lineage, sizes, &released
}

func (w *testWorker) ownReconstructable(id types.ObjectID) {
	w.rc.AddOwnedObject(
		id, nil, w.addr, "", 100, true, true, nil, refs.ObjectStore)
}

// TestLineagePinsArgument: with lineage pinning, a finished task whose
// lineage is retained keeps its argument in the table after the argument
// goes out of scope.
func TestLineagePinsArgument(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w, _, _, _ := newLineageWorker(t)
	arg := types.NewObjectID()
	w.ownReconstructable(arg)

	w.rc.UpdateSubmittedTaskReferences(nil, []types.ObjectID{arg}, nil)
	w.rc.UpdateFinishedTaskReferences(
		nil, []types.ObjectID{arg}, false, refs.Address{}, nil)
	w.rc.RemoveLocalReference(arg)

	// Out of scope but pinned by lineage.
	assert.True(t, w.rc.HasReference(arg))
	checkInvariants(t, w.rc)
}

// TestEvictLineage: eviction releases lineage in creation order, cascades
// to argument lineage counts and removes pinned-only references.
func TestEvictLineage(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w, lineage, sizes, released := newLineageWorker(t)
	arg := types.NewObjectID()
	ret := types.NewObjectID()
	w.ownReconstructable(arg)
	w.ownReconstructable(ret)
	// ret was computed from arg.
	lineage[ret] = []types.ObjectID{arg}
	sizes[ret] = 100

	w.rc.UpdateSubmittedTaskReferences(
		[]types.ObjectID{ret}, []types.ObjectID{arg}, nil)
	w.rc.UpdateFinishedTaskReferences(
		nil, []types.ObjectID{arg}, false, refs.Address{}, nil)
	w.rc.RemoveLocalReference(arg)
	require.True(t, w.rc.HasReference(arg))

	evicted := w.rc.EvictLineage(1)
	assert.Equal(t, int64(100), evicted)
	// arg left the eviction walk when it went out of scope, so the walk
	// starts at ret and cascades into arg's lineage count.
	assert.Equal(t, []types.ObjectID{ret, arg}, *released)
	// arg lost its lineage pin and was removed.
	assert.False(t, w.rc.HasReference(arg))

	// ret is still in scope but no longer reconstructable.
	reconstructable, lineageEvicted := w.rc.IsObjectReconstructable(ret)
	assert.False(t, reconstructable)
	assert.True(t, lineageEvicted)
	checkInvariants(t, w.rc)
}

// TestReleaseLineageOnTaskFinish: release_lineage=true on task completion
// drops the pin immediately.
func TestReleaseLineageOnTaskFinish(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w, _, _, released := newLineageWorker(t)
	arg := types.NewObjectID()
	w.ownReconstructable(arg)

	w.rc.UpdateSubmittedTaskReferences(nil, []types.ObjectID{arg}, nil)
	w.rc.RemoveLocalReference(arg)
	w.rc.UpdateFinishedTaskReferences(
		nil, []types.ObjectID{arg}, true, refs.Address{}, nil)
	assert.False(t, w.rc.HasReference(arg))
	// Erasing the reference released its lineage too.
	assert.Equal(t, []types.ObjectID{arg}, *released)
}

// TestIsObjectReconstructable without lineage pinning always reports
// false.
func TestIsObjectReconstructableWithoutPinning(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w.ownReconstructable(id)
	reconstructable, lineageEvicted := w.rc.IsObjectReconstructable(id)
	assert.False(t, reconstructable)
	assert.False(t, lineageEvicted)
}

// TestEvictLineageEmptyTable is a no-op.
func TestEvictLineageEmptyTable(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w, _, _, _ := newLineageWorker(t)
	assert.Equal(t, int64(0), w.rc.EvictLineage(1000))
}

// TestSetReleaseLineageCallbackTwicePanics.
func TestSetReleaseLineageCallbackTwicePanics(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w, _, _, _ := newLineageWorker(t)
	assert.Panics(t, func() {
		w.rc.SetReleaseLineageCallback(
			func(types.ObjectID) ([]types.ObjectID, int64) { return nil, 0 })
	})
}
