// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotate right - the left child becomes the sub-tree root
//
//	      y            x
//	     / \          / \
//	    x   c   →    a   y
//	   / \              / \
//	  a   t            t   c
func (a *arena[K]) rotateRight(y handle) handle {
	py := a.at(y)
	x := py.left
	px := a.at(x)
	t := px.right

	px.right = y
	py.left = t

	// y is now below x
	a.fix(y)
	a.fix(x)
	return x
}

// rotate left - the right child becomes the sub-tree root
//
//	    x                y
//	   / \              / \
//	  a   y     →      x   c
//	     / \          / \
//	    t   c        a   t
func (a *arena[K]) rotateLeft(x handle) handle {
	px := a.at(x)
	y := px.right
	py := a.at(y)
	t := py.left

	py.left = x
	px.right = t

	a.fix(x)
	a.fix(y)
	return y
}
