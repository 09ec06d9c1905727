// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"iter"
)

// All - the keys in increasing order
//
// each range over the result starts a fresh walk; the tree must not
// be modified while a walk is in progress
func (tree Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if none == tree.root {
			return
		}
		a := tree.nodes
		stack := make([]handle, 0, tree.Height())
		h := tree.root
		for none != h || len(stack) > 0 {
			for none != h {
				stack = append(stack, h)
				h = a.at(h).left
			}
			h = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			p := a.at(h)
			key, next := p.key, p.right
			if !yield(key) {
				return
			}
			h = next
		}
	}
}

// Keys - all keys in increasing order
func (tree Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.count)
	for key := range tree.All() {
		keys = append(keys, key)
	}
	return keys
}

// First - return the lowest key
func (tree Tree[K]) First() (K, bool) {
	if none == tree.root {
		var zero K
		return zero, false
	}
	return tree.nodes.at(tree.nodes.minimum(tree.root)).key, true
}

// Last - return the highest key
func (tree Tree[K]) Last() (K, bool) {
	if none == tree.root {
		var zero K
		return zero, false
	}
	return tree.nodes.at(tree.nodes.maximum(tree.root)).key, true
}

// Next - return the lowest key greater than the given key, which need
// not be in the tree; false if there is no such key
func (tree Tree[K]) Next(key K) (K, bool) {
	var next K
	found := false
	h := tree.root
	for none != h {
		p := tree.nodes.at(h)
		if cmp.Less(key, p.key) { // p.key > key
			next = p.key
			found = true
			h = p.left
		} else {
			h = p.right
		}
	}
	return next, found
}

// Prev - return the highest key less than the given key, which need
// not be in the tree; false if there is no such key
func (tree Tree[K]) Prev(key K) (K, bool) {
	var prev K
	found := false
	h := tree.root
	for none != h {
		p := tree.nodes.at(h)
		if cmp.Less(p.key, key) { // p.key < key
			prev = p.key
			found = true
			h = p.right
		} else {
			h = p.left
		}
	}
	return prev, found
}
