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
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

const (
	// TaskIDLength the number of bytes in a TaskID.
	TaskIDLength = 24
	// ObjectIDLength the number of bytes in an ObjectID. An ObjectID is the
	// TaskID that produced the object followed by the big-endian return index.
	ObjectIDLength = TaskIDLength + 4
	// WorkerIDLength the number of bytes in a WorkerID.
	WorkerIDLength = 16
	// NodeIDLength the number of bytes in a NodeID.
	NodeIDLength = 16

	// taskFlagsOffset byte of the TaskID that carries structural flags.
	taskFlagsOffset = TaskIDLength - 1
	// taskFlagActorCreation set if the task creates an actor. The first
	// return of such a task is the actor handle.
	taskFlagActorCreation = byte(0x01)
)

// TaskID identifies a submitted task.
type TaskID [TaskIDLength]byte

// ObjectID identifies an object in the cluster. The id is structural: it
// encodes the producing task and the return index within that task, return
// indices start at 1.
type ObjectID [ObjectIDLength]byte

// WorkerID identifies a worker process.
type WorkerID [WorkerIDLength]byte

// NodeID identifies a host in the cluster.
type NodeID [NodeIDLength]byte

// NewTaskID returns a random TaskID with no structural flags set.
func NewTaskID() TaskID {
	var id TaskID
	fill(id[:taskFlagsOffset])
	return id
}

// NewActorCreationTaskID returns a random TaskID flagged as an actor
// creation task.
func NewActorCreationTaskID() TaskID {
	id := NewTaskID()
	id[taskFlagsOffset] |= taskFlagActorCreation
	return id
}

// IsActorCreationTask returns true if the task creates an actor.
func (t TaskID) IsActorCreationTask() bool {
	return t[taskFlagsOffset]&taskFlagActorCreation != 0
}

// IsNil returns true for the zero TaskID.
func (t TaskID) IsNil() bool {
	return t == TaskID{}
}

func (t TaskID) String() string {
	return hex.EncodeToString(t[:])
}

// ObjectIDFromIndex returns the id of the task's idx-th return value.
// Return indices start at 1.
func ObjectIDFromIndex(task TaskID, idx uint32) ObjectID {
	if idx == 0 {
		panic("object return index must be >= 1")
	}
	var id ObjectID
	copy(id[:TaskIDLength], task[:])
	binary.BigEndian.PutUint32(id[TaskIDLength:], idx)
	return id
}

// NewObjectID returns the first return id of a fresh random task. Test and
// put-style helper.
func NewObjectID() ObjectID {
	return ObjectIDFromIndex(NewTaskID(), 1)
}

// NewActorHandleID returns an id that identifies an actor handle.
func NewActorHandleID() ObjectID {
	return ObjectIDFromIndex(NewActorCreationTaskID(), 1)
}

// ObjectIDFromBinary parses an ObjectID from its wire encoding.
func ObjectIDFromBinary(b []byte) (ObjectID, error) {
	var id ObjectID
	if len(b) != ObjectIDLength {
		return id, fmt.Errorf("invalid object id length %d", len(b))
	}
	copy(id[:], b)
	return id, nil
}

// MustObjectIDFromBinary parses an ObjectID and panics on malformed input.
// Used on wire payloads that have already passed codec validation.
func MustObjectIDFromBinary(b []byte) ObjectID {
	id, err := ObjectIDFromBinary(b)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskID returns the id of the task that produced this object.
func (o ObjectID) TaskID() TaskID {
	var t TaskID
	copy(t[:], o[:TaskIDLength])
	return t
}

// ReturnIndex returns the 1-based return index within the producing task.
func (o ObjectID) ReturnIndex() uint32 {
	return binary.BigEndian.Uint32(o[TaskIDLength:])
}

// IsActorHandle returns true if the id refers to an actor handle, the first
// return of an actor creation task.
func (o ObjectID) IsActorHandle() bool {
	return o.TaskID().IsActorCreationTask() && o.ReturnIndex() == 1
}

// IsNil returns true for the zero ObjectID.
func (o ObjectID) IsNil() bool {
	return o == ObjectID{}
}

// Binary returns the wire encoding of the id.
func (o ObjectID) Binary() []byte {
	return append([]byte(nil), o[:]...)
}

func (o ObjectID) String() string {
	return hex.EncodeToString(o[:])
}

// NewWorkerID returns a fresh random WorkerID.
func NewWorkerID() WorkerID {
	return WorkerID(uuid.New())
}

// WorkerIDFromBinary parses a WorkerID from its wire encoding.
func WorkerIDFromBinary(b []byte) (WorkerID, error) {
	var id WorkerID
	if len(b) != WorkerIDLength {
		return id, fmt.Errorf("invalid worker id length %d", len(b))
	}
	copy(id[:], b)
	return id, nil
}

// IsNil returns true for the zero WorkerID.
func (w WorkerID) IsNil() bool {
	return w == WorkerID{}
}

// Binary returns the wire encoding of the id.
func (w WorkerID) Binary() []byte {
	return append([]byte(nil), w[:]...)
}

func (w WorkerID) String() string {
	return hex.EncodeToString(w[:])
}

// NewNodeID returns a fresh random NodeID.
func NewNodeID() NodeID {
	return NodeID(uuid.New())
}

// NodeIDFromBinary parses a NodeID from its wire encoding.
func NodeIDFromBinary(b []byte) (NodeID, error) {
	var id NodeID
	if len(b) != NodeIDLength {
		return id, fmt.Errorf("invalid node id length %d", len(b))
	}
	copy(id[:], b)
	return id, nil
}

// IsNil returns true for the zero NodeID.
func (n NodeID) IsNil() bool {
	return n == NodeID{}
}

// Binary returns the wire encoding of the id.
func (n NodeID) Binary() []byte {
	return append([]byte(nil), n[:]...)
}

func (n NodeID) String() string {
	return hex.EncodeToString(n[:])
}

func fill(b []byte) {
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("cannot read random bytes: %v", err))
	}
}
