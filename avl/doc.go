// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of ordered keys
//
// Every node caches the height of its sub-tree and the tree is
// rebalanced on the way back up from each insert or delete so that
// the heights of the two sub-trees of any node never differ by more
// than one.
//
// Nodes live in an arena owned by the tree and are addressed by
// integer handles rather than pointers.  A deleted node's slot is
// cleared and kept on a free list for reuse by a later insert.
//
// A Tree is a small value: Insert and Delete return the updated tree
// and the caller must replace its copy, e.g.
//
//	tree = tree.Insert(5)
//	tree = tree.Delete(5)
//
// The old value must not be used after the call as it may refer to
// nodes that have been reclaimed.
//
// Note: a tree is not thread safe, access it only from a single go
//       routine.
//
// Inserting a key that is already present leaves the tree unchanged,
// and so does deleting a key that is not present.
package avl
