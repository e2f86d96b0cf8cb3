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

package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskfabric/taskfabric/pkg/types"
)

func testAddress() Address {
	return NewAddress(types.NewWorkerID(), "127.0.0.1", 9090, types.NewNodeID())
}

func TestAddressSame(t *testing.T) {
	a := testAddress()
	b := a
	b.Ip = "10.0.0.1"
	b.Port = 1234
	assert.True(t, a.Same(b))

	c := testAddress()
	assert.False(t, a.Same(c))
	assert.False(t, a.IsEmpty())
	assert.True(t, Address{}.IsEmpty())
}

func TestAddressRoundTrip(t *testing.T) {
	a := testAddress()
	data, err := a.Marshal()
	require.NoError(t, err)

	var got Address
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, a, got)
	assert.Equal(t, a.WorkerID(), got.WorkerID())
}

func TestReferenceTableRoundTrip(t *testing.T) {
	owner := testAddress()
	inner := types.NewObjectID()
	outer := types.NewObjectID()

	table := ReferenceTable{
		References: []ObjectReferenceCount{
			{
				Reference: ObjectReference{
					ObjectId:     inner.Binary(),
					OwnerAddress: owner,
				},
				HasLocalRef: true,
				Borrowers:   []Address{testAddress(), testAddress()},
				StoredInObjects: []ObjectReference{
					{ObjectId: outer.Binary(), OwnerAddress: testAddress()},
				},
				ContainedInBorrowedIds: [][]byte{outer.Binary()},
				Contains:               [][]byte{types.NewObjectID().Binary()},
			},
			{
				Reference: ObjectReference{
					ObjectId:     outer.Binary(),
					OwnerAddress: owner,
				},
			},
		},
	}

	data, err := table.Marshal()
	require.NoError(t, err)

	var got ReferenceTable
	require.NoError(t, got.Unmarshal(data))
	require.Equal(t, len(table.References), len(got.References))
	assert.Equal(t, table, got)

	ref := got.References[0]
	assert.True(t, ref.HasLocalRef)
	assert.Equal(t, 2, len(ref.Borrowers))
	assert.Equal(t, 1, len(ref.StoredInObjects))
	assert.Equal(t, inner, ref.Reference.ObjectID())
	assert.False(t, got.References[1].HasLocalRef)
}

func TestPubMessageRoundTrip(t *testing.T) {
	id := types.NewObjectID()
	node := types.NewNodeID()
	msg := PubMessage{
		Channel: ObjectLocations,
		Key:     id.Binary(),
		ObjectLocations: &ObjectLocationsPubMessage{
			NodeIds:         [][]byte{node.Binary()},
			ObjectSize:      1024,
			SpilledUrl:      "s3://bucket/key",
			SpilledNodeId:   node.Binary(),
			PrimaryNodeId:   node.Binary(),
			PendingCreation: true,
			DidSpill:        true,
		},
	}

	data, err := msg.Marshal()
	require.NoError(t, err)

	var got PubMessage
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, msg, got)
}

func TestSubMessageRoundTrip(t *testing.T) {
	id := types.NewObjectID()
	outer := types.NewObjectID()
	msg := SubMessage{
		Channel: RefRemoved,
		Key:     id.Binary(),
		RefRemoved: &RefRemovedSubMessage{
			Reference: ObjectReference{
				ObjectId:     id.Binary(),
				OwnerAddress: testAddress(),
			},
			ContainedInId:      outer.Binary(),
			IntendedWorkerId:   types.NewWorkerID().Binary(),
			SubscriberWorkerId: types.NewWorkerID().Binary(),
		},
	}

	data, err := msg.Marshal()
	require.NoError(t, err)

	var got SubMessage
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, msg, got)
}

func TestRefRemovedPubMessageEmptyTable(t *testing.T) {
	msg := PubMessage{
		Channel:    RefRemoved,
		Key:        types.NewObjectID().Binary(),
		RefRemoved: &RefRemovedPubMessage{},
	}
	data, err := msg.Marshal()
	require.NoError(t, err)

	var got PubMessage
	require.NoError(t, got.Unmarshal(data))
	require.NotNil(t, got.RefRemoved)
	assert.Equal(t, 0, len(got.RefRemoved.BorrowedRefs.References))
}
