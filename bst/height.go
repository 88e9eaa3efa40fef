// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Height - number of edges on the longest path from the node holding
// key down to a leaf
//
// the node is located by scanning the whole tree, not by following
// the key ordering
func (tree *Tree) Height(key int) (int, error) {
	p := locate(key, tree.root)
	if nil == p {
		return 0, fault.ErrKeyNotFound
	}
	return height(p), nil
}

// internal: unordered search, this node then left then right
func locate(key int, p *Node) *Node {
	if nil == p {
		return nil
	}
	if key == p.key {
		return p
	}
	if l := locate(key, p.left); nil != l {
		return l
	}
	return locate(key, p.right)
}

// internal: height of a sub-tree, -1 for an empty one
func height(p *Node) int {
	if nil == p {
		return -1
	}
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// IsBalanced - true if at every node the heights of the two sub-trees
// differ by at most one
func (tree *Tree) IsBalanced() bool {
	return balanced(tree.root)
}

func balanced(p *Node) bool {
	if nil == p {
		return true
	}
	diff := height(p.left) - height(p.right)
	if diff < -1 || diff > 1 {
		return false
	}
	return balanced(p.left) && balanced(p.right)
}
