// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Delete - removes a specific key from the tree
// returns the updated tree, an absent key leaves it unchanged
func (tree Tree[K]) Delete(key K) Tree[K] {
	if nil == tree.nodes { // never inserted into
		return tree
	}
	removed := false
	tree.root, removed = tree.nodes.delete(tree.root, key)
	if removed {
		tree.count -= 1
	}
	return tree
}

// internal delete routine
// returns the new sub-tree root and whether a node was removed
//
// delete never allocates so p stays valid throughout
func (a *arena[K]) delete(h handle, key K) (handle, bool) {
	if none == h { // key not in tree
		return none, false
	}

	p := a.at(h)
	child := none
	removed := false

	switch c := cmp.Compare(key, p.key); {
	case c < 0:
		child, removed = a.delete(p.left, key)
		p.left = child

	case c > 0:
		child, removed = a.delete(p.right, key)
		p.right = child

	default: // found: delete h
		if none == p.left || none == p.right {
			// splice: the surviving child, if any, takes this slot
			child = p.left
			if none == child {
				child = p.right
			}
			a.release(h)
			return child, true
		}

		// two children: take over the successor key and then
		// remove the successor, which has no left child
		successor := a.minimum(p.right)
		p.key = a.at(successor).key
		child, _ = a.delete(p.right, p.key)
		p.right = child
		removed = true
	}

	a.fix(h)
	return a.deleteBalance(h), removed
}

// restore balance at h after a removal below it, the balance of the
// heavy child selects single or double rotation
func (a *arena[K]) deleteBalance(h handle) handle {
	p := a.at(h)
	b := a.balance(h)

	switch {
	case b > 1 && a.balance(p.left) >= 0:
		// single LL rotation
		return a.rotateRight(h)

	case b > 1:
		// double LR rotation
		p.left = a.rotateLeft(p.left)
		return a.rotateRight(h)

	case b < -1 && a.balance(p.right) <= 0:
		// single RR rotation
		return a.rotateLeft(h)

	case b < -1:
		// double RL rotation
		p.right = a.rotateRight(p.right)
		return a.rotateLeft(h)
	}
	return h
}
