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

package clusterservice

import (
	"sync"

	"go.uber.org/zap"

	"github.com/taskfabric/taskfabric/pkg/common/log"
	"github.com/taskfabric/taskfabric/pkg/types"
)

// Node is one cluster member as reported by the control plane.
type Node struct {
	ID   types.NodeID
	Addr string
}

// RemovedNodeWatcher is invoked once for every node that leaves the
// cluster. Watchers run on the caller of UpdateNodes/MarkNodeDead and must
// not block.
type RemovedNodeWatcher func(types.NodeID)

// Cluster tracks the live membership of the cluster. It answers liveness
// probes for the reference service and notifies watchers when a node is
// lost so per-node state can be dropped.
type Cluster struct {
	logger *log.TFLogger

	mu struct {
		sync.RWMutex
		nodes    map[types.NodeID]Node
		watchers []RemovedNodeWatcher
	}
}

// NewCluster returns an empty membership table.
func NewCluster(logger *log.TFLogger) *Cluster {
	c := &Cluster{logger: logger}
	c.mu.nodes = make(map[types.NodeID]Node)
	return c
}

// AddRemovedNodeWatcher registers a watcher for node-loss events.
func (c *Cluster) AddRemovedNodeWatcher(w RemovedNodeWatcher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mu.watchers = append(c.mu.watchers, w)
}

// UpdateNodes replaces the membership with a fresh snapshot from the
// control plane. Watchers fire for every node that disappeared.
func (c *Cluster) UpdateNodes(nodes []Node) {
	c.mu.Lock()
	current := make(map[types.NodeID]Node, len(nodes))
	for _, n := range nodes {
		current[n.ID] = n
	}
	var removed []types.NodeID
	for id := range c.mu.nodes {
		if _, ok := current[id]; !ok {
			removed = append(removed, id)
		}
	}
	c.mu.nodes = current
	watchers := c.mu.watchers
	c.mu.Unlock()

	for _, id := range removed {
		c.logger.Info("node removed from cluster",
			zap.String("node", id.String()))
		for _, w := range watchers {
			w(id)
		}
	}
}

// MarkNodeDead removes a single node, firing watchers. No-op if the node
// is not a member.
func (c *Cluster) MarkNodeDead(id types.NodeID) {
	c.mu.Lock()
	_, ok := c.mu.nodes[id]
	if ok {
		delete(c.mu.nodes, id)
	}
	watchers := c.mu.watchers
	c.mu.Unlock()

	if !ok {
		return
	}
	c.logger.Info("node marked dead",
		zap.String("node", id.String()))
	for _, w := range watchers {
		w(id)
	}
}

// IsNodeAlive returns true if the node is a live cluster member.
func (c *Cluster) IsNodeAlive(id types.NodeID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.mu.nodes[id]
	return ok
}

// Nodes returns a snapshot of the current membership.
func (c *Cluster) Nodes() []Node {
	c.mu.RLock()
	defer c.mu.RUnlock()
	nodes := make([]Node, 0, len(c.mu.nodes))
	for _, n := range c.mu.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}
