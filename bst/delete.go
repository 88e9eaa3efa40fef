// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Delete - removes a specific key from the tree
//
// returns false if the key was not in the tree
func (tree *Tree) Delete(key int) bool {
	removed := false
	tree.root, removed = del(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine, returns the replacement for p
func del(key int, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}
	removed := false
	switch {
	case key < p.key:
		p.left, removed = del(key, p.left)
	case key > p.key:
		p.right, removed = del(key, p.right)
	default: // found: delete p
		if nil == p.left {
			return p.right, true // also covers the leaf case
		}
		if nil == p.right {
			return p.left, true
		}

		// two children: take over the successor key, then remove
		// the successor which has at most a right child
		successor := p.right.first()
		p.key = successor.key
		p.right, removed = del(successor.key, p.right)
	}
	return p, removed
}
