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

func TestLocalLifecycle(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w.ownObject(id)
	assert.True(t, w.rc.HasReference(id))
	assert.True(t, w.rc.OwnedByUs(id))
	assert.Equal(t, 1, w.rc.NumObjectsOwnedByUs())
	checkInvariants(t, w.rc)

	deleted := w.rc.RemoveLocalReference(id)
	assert.Equal(t, []types.ObjectID{id}, deleted)
	assert.False(t, w.rc.HasReference(id))
	assert.Equal(t, 0, w.rc.NumObjectsOwnedByUs())
	checkInvariants(t, w.rc)
}

func TestLocalRefCounting(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w.ownObject(id)
	w.rc.AddLocalReference(id, "")

	counts := w.rc.GetAllReferenceCounts()
	assert.Equal(t, RefCounts{LocalRefCount: 2}, counts[id])

	assert.Empty(t, w.rc.RemoveLocalReference(id))
	assert.True(t, w.rc.HasReference(id))
	assert.Equal(t, []types.ObjectID{id}, w.rc.RemoveLocalReference(id))
	assert.False(t, w.rc.HasReference(id))
}

func TestRemoveNonexistentIsNoOp(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	assert.Empty(t, w.rc.RemoveLocalReference(types.NewObjectID()))
}

func TestAddLocalReferenceBeforeOwnerKnown(t *testing.T) {
	defer leaktest.AfterTest(t)()

	b := newTestBroker()
	w := newTestWorker(b)
	owner := newTestWorker(b)

	id := types.NewObjectID()
	w.rc.AddLocalReference(id, "")
	assert.True(t, w.rc.HasReference(id))
	_, ok := w.rc.GetOwner(id)
	assert.False(t, ok)

	require.True(t, w.rc.AddBorrowedObject(id, types.ObjectID{}, owner.addr, false))
	got, ok := w.rc.GetOwner(id)
	require.True(t, ok)
	assert.True(t, got.Same(owner.addr))
}

func TestAddOwnedObjectTwicePanics(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w.ownObject(id)
	assert.Panics(t, func() {
		w.ownObject(id)
	})
}

func TestActorHandleCounting(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	handle := types.NewActorHandleID()
	w.ownObject(handle)
	assert.Equal(t, 1, w.rc.NumActorsOwnedByUs())
	assert.Equal(t, 0, w.rc.NumObjectsOwnedByUs())
	checkInvariants(t, w.rc)

	w.rc.RemoveLocalReference(handle)
	assert.Equal(t, 0, w.rc.NumActorsOwnedByUs())
}

func TestSubmittedTaskRefs(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	arg := types.NewObjectID()
	ret := types.NewObjectID()
	w.ownObject(arg)
	w.ownObject(ret)

	w.rc.UpdateSubmittedTaskReferences(
		[]types.ObjectID{ret}, []types.ObjectID{arg}, nil)
	assert.True(t, w.rc.IsObjectPendingCreation(ret))
	counts := w.rc.GetAllReferenceCounts()
	assert.Equal(t, 1, counts[arg].SubmittedTaskRefCount)

	// The local ref alone no longer keeps the argument: dropping it leaves
	// the submitted-task ref in place.
	w.rc.RemoveLocalReference(arg)
	assert.True(t, w.rc.HasReference(arg))

	deleted := w.rc.UpdateFinishedTaskReferences(
		[]types.ObjectID{ret}, []types.ObjectID{arg}, true, refs.Address{}, nil)
	assert.Equal(t, []types.ObjectID{arg}, deleted)
	assert.False(t, w.rc.IsObjectPendingCreation(ret))
	checkInvariants(t, w.rc)
}

func TestInlinedArgumentsReleaseOnSubmit(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	arg := types.NewObjectID()
	w.ownObject(arg)
	w.rc.UpdateSubmittedTaskReferences(nil, []types.ObjectID{arg}, nil)
	w.rc.RemoveLocalReference(arg)
	require.True(t, w.rc.HasReference(arg))

	// The value was inlined after submission, the submitted ref drops.
	w.rc.UpdateSubmittedTaskReferences(nil, nil, []types.ObjectID{arg})
	assert.False(t, w.rc.HasReference(arg))
}

func TestSubmittedTaskRefUnderflowPanics(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	arg := types.NewObjectID()
	w.ownObject(arg)
	assert.Panics(t, func() {
		w.rc.UpdateFinishedTaskReferences(
			nil, []types.ObjectID{arg}, true, refs.Address{}, nil)
	})
}

func TestResubmittedTaskRefs(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	arg := types.NewObjectID()
	w.ownObject(arg)
	w.rc.UpdateSubmittedTaskReferences(nil, []types.ObjectID{arg}, nil)
	w.rc.UpdateResubmittedTaskReferences([]types.ObjectID{arg})
	counts := w.rc.GetAllReferenceCounts()
	assert.Equal(t, 2, counts[arg].SubmittedTaskRefCount)

	assert.Panics(t, func() {
		w.rc.UpdateResubmittedTaskReferences([]types.ObjectID{types.NewObjectID()})
	})
}

func TestFreeWithSurvivingReference(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w.ownObject(id)
	node := types.NewNodeID()
	w.rc.UpdateObjectPinnedAtNode(id, node)

	w.rc.FreeObjects([]types.ObjectID{id})
	assert.True(t, w.rc.IsObjectFreed(id))
	assert.True(t, w.rc.HasReference(id))
	checkInvariants(t, w.rc)

	// Freeing released the primary copy.
	_, ownedByUs, pinnedAt, _ := w.rc.IsObjectPinnedOrSpilled(id)
	assert.True(t, ownedByUs)
	assert.True(t, pinnedAt.IsNil())

	assert.True(t, w.rc.TryMarkFreedObjectInUseAgain(id))
	assert.False(t, w.rc.IsObjectFreed(id))
	assert.False(t, w.rc.TryMarkFreedObjectInUseAgain(id))

	w.rc.RemoveLocalReference(id)
	assert.False(t, w.rc.HasReference(id))
	assert.False(t, w.rc.IsObjectFreed(id))
}

func TestFreeUnknownObjectIsNoOp(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	w.rc.FreeObjects([]types.ObjectID{types.NewObjectID()})
	assert.Equal(t, 0, w.rc.Size())
}

func TestOutOfScopeCallbacks(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w.ownObject(id)

	var outOfScope, deletedCb []types.ObjectID
	require.True(t, w.rc.AddObjectOutOfScopeOrFreedCallback(id, func(id types.ObjectID) {
		outOfScope = append(outOfScope, id)
	}))
	require.True(t, w.rc.SetObjectRefDeletedCallback(id, func(id types.ObjectID) {
		deletedCb = append(deletedCb, id)
	}))

	w.rc.RemoveLocalReference(id)
	assert.Equal(t, []types.ObjectID{id}, outOfScope)
	assert.Equal(t, []types.ObjectID{id}, deletedCb)

	// Installing on a gone reference fails.
	assert.False(t, w.rc.AddObjectOutOfScopeOrFreedCallback(id, func(types.ObjectID) {}))
	assert.False(t, w.rc.SetObjectRefDeletedCallback(id, func(types.ObjectID) {}))
}

func TestFreedObjectRejectsOutOfScopeCallback(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w.ownObject(id)
	w.rc.FreeObjects([]types.ObjectID{id})
	assert.False(t, w.rc.AddObjectOutOfScopeOrFreedCallback(id, func(types.ObjectID) {}))
}

func TestDrainAndShutdown(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	fired := false
	w.rc.DrainAndShutdown(func() { fired = true })
	assert.True(t, fired)

	w2 := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w2.ownObject(id)
	fired = false
	w2.rc.DrainAndShutdown(func() { fired = true })
	assert.False(t, fired)
	w2.rc.RemoveLocalReference(id)
	assert.True(t, fired)
}

func TestReleaseAllLocalReferences(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	a := types.NewObjectID()
	b := types.NewObjectID()
	w.ownObject(a)
	w.ownObject(b)
	w.rc.AddLocalReference(a, "")

	w.rc.ReleaseAllLocalReferences()
	assert.Equal(t, 0, w.rc.Size())
}

func TestTryReleaseLocalRefs(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	a := types.NewObjectID()
	w.ownObject(a)

	deleted := w.rc.TryReleaseLocalRefs([]types.ObjectID{a, types.NewObjectID()})
	assert.Equal(t, []types.ObjectID{a}, deleted)
	// Releasing again is a no-op.
	assert.Empty(t, w.rc.TryReleaseLocalRefs([]types.ObjectID{a}))
}

func TestDynamicReturns(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	task := types.NewTaskID()
	generator := types.ObjectIDFromIndex(task, 1)
	ret := types.ObjectIDFromIndex(task, 2)

	w.ownObject(generator)
	w.rc.AddDynamicReturn(ret, generator)
	assert.True(t, w.rc.HasReference(ret))
	assert.True(t, w.rc.OwnedByUs(ret))
	checkInvariants(t, w.rc)

	assert.False(t, w.rc.CheckGeneratorRefsLineageOutOfScope(generator, 1))

	// Dropping the generator cascades to the dynamic return.
	w.rc.RemoveLocalReference(generator)
	assert.False(t, w.rc.HasReference(generator))
	assert.False(t, w.rc.HasReference(ret))
	assert.True(t, w.rc.CheckGeneratorRefsLineageOutOfScope(generator, 1))

	// Registering after the generator is gone is a no-op.
	w.rc.AddDynamicReturn(types.ObjectIDFromIndex(task, 3), generator)
	assert.False(t, w.rc.HasReference(types.ObjectIDFromIndex(task, 3)))
}

func TestOwnDynamicStreamingTaskReturnRef(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	task := types.NewTaskID()
	generator := types.ObjectIDFromIndex(task, 1)
	ret := types.ObjectIDFromIndex(task, 2)

	w.ownObject(generator)
	w.rc.OwnDynamicStreamingTaskReturnRef(ret, generator)
	assert.True(t, w.rc.HasReference(ret))
	counts := w.rc.GetAllReferenceCounts()
	assert.Equal(t, 1, counts[ret].LocalRefCount)

	// No containment edge: the generator can go first.
	w.rc.RemoveLocalReference(generator)
	assert.True(t, w.rc.HasReference(ret))
	w.rc.RemoveLocalReference(ret)
	assert.False(t, w.rc.HasReference(ret))
}

func TestNestedOwnedObjects(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	inner := types.NewObjectID()
	outer := types.NewObjectID()
	w.ownObject(inner)
	w.ownObject(outer, inner)
	checkInvariants(t, w.rc)

	// The inner object survives its local ref while the outer holds it.
	w.rc.RemoveLocalReference(inner)
	assert.True(t, w.rc.HasReference(inner))

	deleted := w.rc.RemoveLocalReference(outer)
	assert.ElementsMatch(t, []types.ObjectID{inner, outer}, deleted)
	assert.Equal(t, 0, w.rc.Size())
}

func TestGetOwnerAddresses(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w.ownObject(id)

	addrs := w.rc.GetOwnerAddresses([]types.ObjectID{id, types.NewObjectID()})
	require.Equal(t, 2, len(addrs))
	assert.True(t, addrs[0].Same(w.addr))
	assert.True(t, addrs[1].IsEmpty())
}

func TestGetAllInScopeObjectIDs(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	a := types.NewObjectID()
	b := types.NewObjectID()
	w.ownObject(a)
	w.ownObject(b)
	ids := w.rc.GetAllInScopeObjectIDs()
	assert.Contains(t, ids, a)
	assert.Contains(t, ids, b)
	assert.Equal(t, 2, len(ids))
}

func TestObjectTransport(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w.rc.AddOwnedObject(
		id, nil, w.addr, "", -1, false, true, nil, refs.OutOfBand)
	tr, ok := w.rc.GetObjectTransport(id)
	require.True(t, ok)
	assert.Equal(t, refs.OutOfBand, tr)

	_, ok = w.rc.GetObjectTransport(types.NewObjectID())
	assert.False(t, ok)
}

func TestObjectRefStats(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w.rc.AddOwnedObject(
		id, nil, w.addr, "stats.go:10", 64, false, true, nil, refs.ObjectStore)

	pinnedOnly := types.NewObjectID()
	pinned := map[types.ObjectID]PinnedObjectInfo{
		pinnedOnly: {ObjectSize: 128, CallSite: "stats.go:20"},
	}
	stats, total := w.rc.ObjectRefStats(pinned, -1)
	assert.Equal(t, 2, total)
	require.Equal(t, 2, len(stats))

	byID := make(map[types.ObjectID]ObjectRefStat)
	for _, s := range stats {
		byID[s.ObjectID] = s
	}
	assert.Equal(t, int64(64), byID[id].ObjectSize)
	assert.True(t, byID[id].Finished)
	assert.True(t, byID[pinnedOnly].PinnedInMemory)
	assert.Equal(t, int64(128), byID[pinnedOnly].ObjectSize)
}

func TestDebugString(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	assert.Contains(t, w.rc.DebugString(), "size: 0")
	w.ownObject(types.NewObjectID())
	assert.Contains(t, w.rc.DebugString(), "size: 1")
}
