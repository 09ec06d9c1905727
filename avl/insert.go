// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new key into the tree
// returns the updated tree, a duplicate key leaves it unchanged
//
// panics if the tree was created with a limit that has been reached,
// use TryInsert to get an error instead
func (tree Tree[K]) Insert(key K) Tree[K] {
	tree, err := tree.TryInsert(key)
	fault.PanicIfError("avl insert", err)
	return tree
}

// TryInsert - insert a new key into the tree
// returns the updated tree, a duplicate key leaves it unchanged
//
// a full tree is not modified and fault.ErrTreeFull is returned
func (tree Tree[K]) TryInsert(key K) (Tree[K], error) {
	if nil == tree.nodes {
		tree.nodes = newArena[K](0)
	}

	// check before descending so nothing is touched on failure
	if tree.nodes.full() && !tree.Contains(key) {
		return tree, fault.ErrTreeFull
	}

	added := false
	tree.root, added = tree.nodes.insert(tree.root, key)
	if added {
		tree.count += 1
	}
	return tree, nil
}

// internal routine for insert
// returns the new sub-tree root and whether a node was added
func (a *arena[K]) insert(h handle, key K) (handle, bool) {
	if none == h { // insert new node
		return a.allocate(key), true
	}

	// the recursive call may grow the arena: re-fetch after it returns
	child := none
	added := false
	switch c := cmp.Compare(key, a.at(h).key); {
	case c < 0:
		child, added = a.insert(a.at(h).left, key)
		a.at(h).left = child
	case c > 0:
		child, added = a.insert(a.at(h).right, key)
		a.at(h).right = child
	default: // already present
		return h, false
	}

	a.fix(h)
	return a.insertBalance(h, key), added
}

// restore balance at h after key was inserted below it, the position
// of key relative to the heavy child selects single or double rotation
func (a *arena[K]) insertBalance(h handle, key K) handle {
	p := a.at(h)
	b := a.balance(h)

	switch {
	case b > 1 && cmp.Less(key, a.at(p.left).key):
		// single LL rotation
		return a.rotateRight(h)

	case b < -1 && cmp.Less(a.at(p.right).key, key):
		// single RR rotation
		return a.rotateLeft(h)

	case b > 1 && cmp.Less(a.at(p.left).key, key):
		// double LR rotation
		p.left = a.rotateLeft(p.left)
		return a.rotateRight(h)

	case b < -1 && cmp.Less(key, a.at(p.right).key):
		// double RL rotation
		p.right = a.rotateRight(p.right)
		return a.rotateLeft(h)
	}
	return h
}
