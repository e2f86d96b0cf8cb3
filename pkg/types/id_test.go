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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectIDStructure(t *testing.T) {
	task := NewTaskID()
	id := ObjectIDFromIndex(task, 3)
	assert.Equal(t, task, id.TaskID())
	assert.Equal(t, uint32(3), id.ReturnIndex())
	assert.False(t, id.IsActorHandle())
	assert.False(t, id.IsNil())
}

func TestActorHandleID(t *testing.T) {
	task := NewActorCreationTaskID()
	assert.True(t, task.IsActorCreationTask())

	handle := ObjectIDFromIndex(task, 1)
	assert.True(t, handle.IsActorHandle())

	// Later returns of an actor creation task are plain objects.
	assert.False(t, ObjectIDFromIndex(task, 2).IsActorHandle())
	assert.False(t, NewObjectID().IsActorHandle())
}

func TestObjectIDBinaryRoundTrip(t *testing.T) {
	id := NewObjectID()
	got, err := ObjectIDFromBinary(id.Binary())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ObjectIDFromBinary([]byte("short"))
	assert.Error(t, err)
}

func TestObjectIDFromIndexZeroPanics(t *testing.T) {
	assert.Panics(t, func() {
		ObjectIDFromIndex(NewTaskID(), 0)
	})
}

func TestWorkerAndNodeIDs(t *testing.T) {
	w := NewWorkerID()
	assert.False(t, w.IsNil())
	got, err := WorkerIDFromBinary(w.Binary())
	require.NoError(t, err)
	assert.Equal(t, w, got)

	n := NewNodeID()
	assert.False(t, n.IsNil())
	gotN, err := NodeIDFromBinary(n.Binary())
	require.NoError(t, err)
	assert.Equal(t, n, gotN)

	assert.True(t, WorkerID{}.IsNil())
	assert.True(t, NodeID{}.IsNil())
	assert.True(t, ObjectID{}.IsNil())
	assert.True(t, TaskID{}.IsNil())
}
