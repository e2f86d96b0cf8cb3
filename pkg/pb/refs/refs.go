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
	"fmt"

	"github.com/taskfabric/taskfabric/pkg/types"
)

// Same returns true if both addresses refer to the same worker. Only the
// worker id participates in identity, the ip/port pair may change across
// restarts.
func (m Address) Same(m2 Address) bool {
	return string(m.WorkerId) == string(m2.WorkerId)
}

// IsEmpty returns true if the address carries no worker identity.
func (m Address) IsEmpty() bool {
	return len(m.WorkerId) == 0
}

// WorkerID returns the typed worker id of the address.
func (m Address) WorkerID() types.WorkerID {
	id, err := types.WorkerIDFromBinary(m.WorkerId)
	if err != nil {
		panic(fmt.Sprintf("malformed address worker id: %v", err))
	}
	return id
}

// NewAddress builds an Address for a worker endpoint.
func NewAddress(worker types.WorkerID, ip string, port int32, node types.NodeID) Address {
	return Address{
		WorkerId: worker.Binary(),
		Ip:       ip,
		Port:     port,
		NodeId:   node.Binary(),
	}
}

// ObjectID returns the typed object id of the reference.
func (m ObjectReference) ObjectID() types.ObjectID {
	id, err := types.ObjectIDFromBinary(m.ObjectId)
	if err != nil {
		panic(fmt.Sprintf("malformed object reference id: %v", err))
	}
	return id
}

func (m *PubMessage) TypeName() string {
	return "pb.refs.PubMessage"
}

func (m *SubMessage) TypeName() string {
	return "pb.refs.SubMessage"
}

// DebugString returns a short human readable description of the message.
func (m *PubMessage) DebugString() string {
	return fmt.Sprintf("PubMessage{channel: %s, key: %x}", m.Channel, m.Key)
}

// DebugString returns a short human readable description of the message.
func (m *SubMessage) DebugString() string {
	return fmt.Sprintf("SubMessage{channel: %s, key: %x}", m.Channel, m.Key)
}
