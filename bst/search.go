// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Find - true if the key is in the tree
func (tree *Tree) Find(key int) bool {
	_, found := search(key, tree.root, 0)
	return found
}

// Depth - number of edges from the root to the node holding key
func (tree *Tree) Depth(key int) (int, error) {
	depth, found := search(key, tree.root, 0)
	if !found {
		return 0, fault.ErrKeyNotFound
	}
	return depth, nil
}

// internal: ordered search counting the edges traversed
func search(key int, p *Node, depth int) (int, bool) {
	for nil != p {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return depth, true
		}
		depth += 1
	}
	return -1, false
}

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}
