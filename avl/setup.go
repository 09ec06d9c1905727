// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
//
// the zero value is an empty tree with no node limit
type Tree[K cmp.Ordered] struct {
	nodes *arena[K]
	root  handle
	count int
}

// New - create an initially empty tree
func New[K cmp.Ordered]() Tree[K] {
	return NewWithLimit[K](0)
}

// NewWithLimit - create an initially empty tree that will hold at
// most maximumNodes keys, zero or negative means no limit
func NewWithLimit[K cmp.Ordered](maximumNodes int) Tree[K] {
	if maximumNodes < 0 {
		maximumNodes = 0
	}
	return Tree[K]{
		nodes: newArena[K](maximumNodes),
		root:  none,
		count: 0,
	}
}

// IsEmpty - true if tree contains no keys
func (tree Tree[K]) IsEmpty() bool {
	return none == tree.root
}

// Count - number of keys currently in the tree
func (tree Tree[K]) Count() int {
	return tree.count
}

// Height - height of the root node, 0 for an empty tree
func (tree Tree[K]) Height() int {
	return tree.nodes.height(tree.root)
}

// Root - the key at the root node
func (tree Tree[K]) Root() (K, bool) {
	if none == tree.root {
		var zero K
		return zero, false
	}
	return tree.nodes.at(tree.root).key, true
}

// Limit - maximum number of keys, zero for no limit
func (tree Tree[K]) Limit() int {
	if nil == tree.nodes {
		return 0
	}
	return tree.nodes.limit
}
