// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - line oriented operations on an integer AVL tree
//
// Script format:
//
//	# comment
//	insert 9 5 10 0 6 11 -1 1 2
//	delete 10
//	contains 5 7
//	list        # keys in order on one line
//	height
//	count
//	print       # drawing of the tree
//	check       # verify the tree invariants
//	clear       # discard all keys
package script
