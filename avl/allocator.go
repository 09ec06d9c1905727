// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// index of a node in the arena
type handle uint32

// the zero handle is never allocated so it can denote "no node"
const none handle = 0

// a node in the tree
type node[K cmp.Ordered] struct {
	left   handle // left sub-tree
	right  handle // right sub-tree
	key    K      // key part for ordering
	height int    // 1 for a leaf, 0 when on the free list
}

// storage for all the nodes of one tree
type arena[K cmp.Ordered] struct {
	nodes []node[K]
	pool  handle // linked list of reclaimed nodes through left
	inUse int    // live nodes
	limit int    // maximum live nodes, zero for no limit
}

// create an arena, slot zero is reserved
func newArena[K cmp.Ordered](limit int) *arena[K] {
	return &arena[K]{
		nodes: make([]node[K], 1, 16),
		pool:  none,
		inUse: 0,
		limit: limit,
	}
}

// true if another node cannot be allocated
func (a *arena[K]) full() bool {
	return a.limit > 0 && a.inUse >= a.limit
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
//
// this may grow the node slice, so any *node obtained before the call
// must not be used afterwards
func (a *arena[K]) allocate(key K) handle {
	if none != a.pool {
		h := a.pool
		p := &a.nodes[h]
		a.pool = p.left // ensure freelist pointer is cleared
		*p = node[K]{
			left:   none,
			right:  none,
			key:    key,
			height: 1,
		}
		a.inUse += 1
		return h
	}
	if uint64(len(a.nodes)) > math.MaxUint32 {
		fault.Panicf("avl: arena exhausted at: %d nodes", len(a.nodes))
	}
	a.nodes = append(a.nodes, node[K]{
		left:   none,
		right:  none,
		key:    key,
		height: 1,
	})
	a.inUse += 1
	return handle(len(a.nodes) - 1)
}

// reclaim a node and keep it in the pool
func (a *arena[K]) release(h handle) {
	p := a.at(h)
	var zero K
	p.left = a.pool // use as free list pointer
	p.right = none
	p.key = zero
	p.height = 0
	a.pool = h
	a.inUse -= 1
}

// access a live node
func (a *arena[K]) at(h handle) *node[K] {
	if none == h || int(h) >= len(a.nodes) {
		fault.Panicf("avl: invalid handle: %d", h)
	}
	p := &a.nodes[h]
	if 0 == p.height {
		fault.Panicf("avl: stale handle: %d", h)
	}
	return p
}
