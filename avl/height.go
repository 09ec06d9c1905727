// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// cached height of a sub-tree, zero for no node
func (a *arena[K]) height(h handle) int {
	if none == h {
		return 0
	}
	return a.at(h).height
}

// left height minus right height: positive is left heavy
func (a *arena[K]) balance(h handle) int {
	if none == h {
		return 0
	}
	p := a.at(h)
	return a.height(p.left) - a.height(p.right)
}

// recompute the cached height from the children
func (a *arena[K]) fix(h handle) {
	p := a.at(h)
	p.height = 1 + max(a.height(p.left), a.height(p.right))
}

// leftmost node of a sub-tree
func (a *arena[K]) minimum(h handle) handle {
	for none != a.at(h).left {
		h = a.at(h).left
	}
	return h
}

// rightmost node of a sub-tree
func (a *arena[K]) maximum(h handle) handle {
	for none != a.at(h).right {
		h = a.at(h).right
	}
	return h
}
