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

func lastLocationUpdate(
	t *testing.T, w *testWorker, id types.ObjectID) *refs.ObjectLocationsPubMessage {
	t.Helper()
	updates := w.locationUpdates[id]
	require.NotEmpty(t, updates)
	return updates[len(updates)-1]
}

func TestPinnedAtNode(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	node := types.NewNodeID()
	w.ownObject(id)
	w.rc.UpdateObjectPinnedAtNode(id, node)

	present, ownedByUs, pinnedAt, spilled := w.rc.IsObjectPinnedOrSpilled(id)
	assert.True(t, present)
	assert.True(t, ownedByUs)
	assert.Equal(t, node, pinnedAt)
	assert.False(t, spilled)
}

func TestPinnedAtDeadNodeQueuesRecovery(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	node := types.NewNodeID()
	w.ownObject(id)
	w.probe.kill(node)

	w.rc.UpdateObjectPinnedAtNode(id, node)
	_, _, pinnedAt, _ := w.rc.IsObjectPinnedOrSpilled(id)
	assert.True(t, pinnedAt.IsNil())
	assert.Equal(t, []types.ObjectID{id}, w.rc.FlushObjectsToRecover())
	assert.Empty(t, w.rc.FlushObjectsToRecover())
}

// TestNodeLoss: losing the primary node unsets the primary copy, queues
// recovery and pushes a location update without the lost node.
func TestNodeLoss(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	n := types.NewNodeID()
	m := types.NewNodeID()
	w.ownObject(id)
	w.rc.UpdateObjectPinnedAtNode(id, n)
	require.True(t, w.rc.AddObjectLocation(id, n))
	require.True(t, w.rc.AddObjectLocation(id, m))

	w.rc.ResetObjectsOnRemovedNode(n)

	_, _, pinnedAt, _ := w.rc.IsObjectPinnedOrSpilled(id)
	assert.True(t, pinnedAt.IsNil())
	assert.Equal(t, []types.ObjectID{id}, w.rc.FlushObjectsToRecover())

	locations, ok := w.rc.GetObjectLocations(id)
	require.True(t, ok)
	assert.NotContains(t, locations, n)
	assert.Contains(t, locations, m)

	update := lastLocationUpdate(t, w, id)
	assert.Equal(t, [][]byte{m.Binary()}, update.NodeIds)
	assert.Empty(t, update.PrimaryNodeId)
}

func TestObjectSpilled(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	node := types.NewNodeID()
	w.ownObject(id)

	require.True(t, w.rc.HandleObjectSpilled(id, "s3://bucket/obj", node))
	_, _, _, spilled := w.rc.IsObjectPinnedOrSpilled(id)
	assert.True(t, spilled)

	update := lastLocationUpdate(t, w, id)
	assert.Equal(t, "s3://bucket/obj", update.SpilledUrl)
	assert.Equal(t, node.Binary(), update.SpilledNodeId)
	assert.True(t, update.DidSpill)

	assert.False(t, w.rc.HandleObjectSpilled(types.NewObjectID(), "u", node))
}

func TestObjectSpilledToDeadNode(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	node := types.NewNodeID()
	w.ownObject(id)
	w.probe.kill(node)

	require.True(t, w.rc.HandleObjectSpilled(id, "s3://bucket/obj", node))
	assert.Equal(t, []types.ObjectID{id}, w.rc.FlushObjectsToRecover())
	_, _, _, spilled := w.rc.IsObjectPinnedOrSpilled(id)
	// The spill flag survives, the dead location does not.
	assert.True(t, spilled)
	locations, _ := w.rc.GetObjectLocations(id)
	assert.NotContains(t, locations, node)
}

func TestLocalityData(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	node := types.NewNodeID()
	replica := types.NewNodeID()
	w.rc.AddOwnedObject(
		id, nil, w.addr, "", 2048, false, true, nil, refs.ObjectStore)
	w.rc.UpdateObjectPinnedAtNode(id, node)
	w.rc.AddObjectLocation(id, replica)

	data := w.rc.GetLocalityData(id)
	require.NotNil(t, data)
	assert.Equal(t, int64(2048), data.ObjectSize)
	assert.Contains(t, data.Locations, node)
	assert.Contains(t, data.Locations, replica)

	// Unknown size means no locality data.
	unsized := types.NewObjectID()
	w.ownObject(unsized)
	assert.Nil(t, w.rc.GetLocalityData(unsized))
	assert.Nil(t, w.rc.GetLocalityData(types.NewObjectID()))
}

func TestReportLocalityData(t *testing.T) {
	defer leaktest.AfterTest(t)()

	broker := newTestBroker()
	owner := newTestWorker(broker)
	w := newTestWorker(broker)

	id := types.NewObjectID()
	w.borrowForTask(id, owner.addr)
	node := types.NewNodeID()
	require.True(t, w.rc.ReportLocalityData(
		id, map[types.NodeID]struct{}{node: {}}, 512))

	data := w.rc.GetLocalityData(id)
	require.NotNil(t, data)
	assert.Equal(t, int64(512), data.ObjectSize)
	assert.Contains(t, data.Locations, node)

	// Owned references must not accept locality reports.
	ownID := types.NewObjectID()
	w.ownObject(ownID)
	assert.Panics(t, func() {
		w.rc.ReportLocalityData(ownID, nil, 1)
	})
	assert.False(t, w.rc.ReportLocalityData(types.NewObjectID(), nil, 1))
}

func TestUpdateObjectSizePushesUpdate(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w.ownObject(id)
	w.rc.UpdateObjectSize(id, 4096)
	update := lastLocationUpdate(t, w, id)
	assert.Equal(t, int64(4096), update.ObjectSize)
}

func TestPendingCreationPushesUpdateOnChange(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w.ownObject(id)
	w.rc.UpdateObjectPendingCreation(id, true)
	assert.True(t, w.rc.IsObjectPendingCreation(id))
	n := len(w.locationUpdates[id])
	// No change, no push.
	w.rc.UpdateObjectPendingCreation(id, true)
	assert.Equal(t, n, len(w.locationUpdates[id]))
	w.rc.UpdateObjectPendingCreation(id, false)
	assert.Equal(t, n+1, len(w.locationUpdates[id]))
}

func TestPublishObjectLocationSnapshot(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w.ownObject(id)
	w.rc.PublishObjectLocationSnapshot(id)
	require.NotEmpty(t, w.locationUpdates[id])

	// A removed reference publishes a ref-removed marker plus a failure.
	gone := types.NewObjectID()
	w.rc.PublishObjectLocationSnapshot(gone)
	update := lastLocationUpdate(t, w, gone)
	assert.True(t, update.RefRemoved)
	assert.Equal(t, 1, w.locationFailures[string(gone.Binary())])
}

func TestFillObjectInformation(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	node := types.NewNodeID()
	w.rc.AddOwnedObject(
		id, nil, w.addr, "", 11, false, true, nil, refs.ObjectStore)
	w.rc.AddObjectLocation(id, node)

	var msg refs.ObjectLocationsPubMessage
	w.rc.FillObjectInformation(id, &msg)
	assert.Equal(t, int64(11), msg.ObjectSize)
	assert.Equal(t, [][]byte{node.Binary()}, msg.NodeIds)
	assert.False(t, msg.RefRemoved)

	var missing refs.ObjectLocationsPubMessage
	w.rc.FillObjectInformation(types.NewObjectID(), &missing)
	assert.True(t, missing.RefRemoved)
}

// TestEraseNotifiesLocationFailure: deleting the reference publishes a
// failure on the locations channel so late subscribers observe the loss.
func TestEraseNotifiesLocationFailure(t *testing.T) {
	defer leaktest.AfterTest(t)()

	w := newTestWorker(newTestBroker())
	id := types.NewObjectID()
	w.ownObject(id)
	w.rc.RemoveLocalReference(id)
	assert.Equal(t, 1, w.locationFailures[string(id.Binary())])
}
