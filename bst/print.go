// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
	"os"
)

// prefixes for the print routine
const (
	branchDown = "│   "
	branchNone = "    "
	leafLeft   = "└── "
	leafRight  = "┌── "
)

// Print - display a text graphic of the tree on stdout
// returns the maximum depth of the tree, 0 for an empty tree
func (tree *Tree) Print() int {
	return tree.PrettyPrint(os.Stdout)
}

// PrettyPrint - write a text graphic of the tree with the right
// sub-tree above and the left sub-tree below each node
// returns the maximum depth of the tree, 0 for an empty tree
func (tree *Tree) PrettyPrint(w io.Writer) int {
	return printTree(w, tree.root, "", true)
}

// internal print - returns the maximum depth of the sub-tree
func printTree(w io.Writer, p *Node, prefix string, isLeft bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := branchNone
		if isLeft {
			t = branchDown
		}
		rd = printTree(w, p.right, prefix+t, false)
	}

	leaf := leafRight
	if isLeft {
		leaf = leafLeft
	}
	fmt.Fprintf(w, "%s%s%d\n", prefix, leaf, p.key)

	if nil != p.left {
		t := branchDown
		if isLeft {
			t = branchNone
		}
		ld = printTree(w, p.left, prefix+t, true)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
