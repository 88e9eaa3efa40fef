// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - add a key to the tree as a new leaf
//
// returns false if the key was already present, in which case the
// tree is unchanged
func (tree *Tree) Insert(key int) bool {
	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the possibly new sub-tree root
func insert(key int, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return &Node{key: key}, true
	}
	added := false
	switch {
	case key < p.key:
		p.left, added = insert(key, p.left)
	case key > p.key:
		p.right, added = insert(key, p.right)
	default:
		// already present
	}
	return p, added
}
