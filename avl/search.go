// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Contains - true if the key is in the tree
func (tree Tree[K]) Contains(key K) bool {
	return none != tree.search(key)
}

// find the node holding key, none if absent
func (tree Tree[K]) search(key K) handle {
	h := tree.root
	for none != h {
		p := tree.nodes.at(h)
		switch c := cmp.Compare(key, p.key); {
		case c < 0:
			h = p.left
		case c > 0:
			h = p.right
		default:
			return h
		}
	}
	return none
}
