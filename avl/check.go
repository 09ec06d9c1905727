// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, cached heights, balance and counts
// returns the first inconsistency found
func (tree Tree[K]) Check() error {
	if nil == tree.nodes {
		if none != tree.root || 0 != tree.count {
			return fault.ErrCountMismatch
		}
		return nil
	}
	n, _, err := tree.nodes.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count || n != tree.nodes.inUse {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, every key must lie strictly between
// low and high (nil for unbounded)
// returns the node count and height of the sub-tree
func (a *arena[K]) check(h handle, low *K, high *K) (int, int, error) {
	if none == h {
		return 0, 0, nil
	}
	p := a.at(h)

	if err := ordered(low, &p.key); nil != err {
		return 0, 0, err
	}
	if err := ordered(&p.key, high); nil != err {
		return 0, 0, err
	}

	nl, hl, err := a.check(p.left, low, &p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := a.check(p.right, &p.key, high)
	if nil != err {
		return 0, 0, err
	}

	if p.height != 1+max(hl, hr) {
		return 0, 0, fault.ErrHeightMismatch
	}
	if hl-hr > 1 || hr-hl > 1 {
		return 0, 0, fault.ErrUnbalanced
	}
	return 1 + nl + nr, p.height, nil
}

// a nil pointer is treated as unbounded
func ordered[K cmp.Ordered](low *K, high *K) error {
	if nil == low || nil == high {
		return nil
	}
	switch c := cmp.Compare(*low, *high); {
	case 0 == c:
		return fault.ErrDuplicateKey
	case c > 0:
		return fault.ErrOrdering
	}
	return nil
}
