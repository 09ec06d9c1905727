// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree,
// rotated so the root is at the left and higher keys are above
// returns the depth of the tree
func (tree Tree[K]) Print(w io.Writer) int {
	if none == tree.root {
		return 0
	}
	return tree.nodes.print(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the sub-tree
func (a *arena[K]) print(w io.Writer, h handle, prefix string, br branch) int {
	p := a.at(h)
	rd := 0
	ld := 0
	if none != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = a.print(w, p.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v h:%d %+d\n", p.key, p.height, a.balance(h))
	if none != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = a.print(w, p.left, prefix+t, left)
	}
	return 1 + max(ld, rd)
}
