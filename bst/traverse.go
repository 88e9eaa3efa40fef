// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Visitor - called once for each node of a traversal
//
// the visitor must not modify the tree
type Visitor func(*Node)

// LevelOrder - visit nodes breadth first, each level left to right
func (tree *Tree) LevelOrder(visit Visitor) error {
	if nil == visit {
		return fault.ErrMissingVisitor
	}
	if nil == tree.root {
		return nil
	}

	queue := []*Node{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue[0] = nil
		queue = queue[1:]

		visit(p)

		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return nil
}

// PreOrder - visit a node, then its left then its right sub-tree
func (tree *Tree) PreOrder(visit Visitor) error {
	if nil == visit {
		return fault.ErrMissingVisitor
	}
	preOrder(tree.root, visit)
	return nil
}

func preOrder(p *Node, visit Visitor) {
	if nil == p {
		return
	}
	visit(p)
	preOrder(p.left, visit)
	preOrder(p.right, visit)
}

// InOrder - visit the left sub-tree, the node, then the right sub-tree
// i.e. ascending key order
func (tree *Tree) InOrder(visit Visitor) error {
	if nil == visit {
		return fault.ErrMissingVisitor
	}
	inOrder(tree.root, visit)
	return nil
}

func inOrder(p *Node, visit Visitor) {
	if nil == p {
		return
	}
	inOrder(p.left, visit)
	visit(p)
	inOrder(p.right, visit)
}

// PostOrder - visit both sub-trees, left first, then the node
func (tree *Tree) PostOrder(visit Visitor) error {
	if nil == visit {
		return fault.ErrMissingVisitor
	}
	postOrder(tree.root, visit)
	return nil
}

func postOrder(p *Node, visit Visitor) {
	if nil == p {
		return
	}
	postOrder(p.left, visit)
	postOrder(p.right, visit)
	visit(p)
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.count)
	inOrder(tree.root, func(p *Node) {
		keys = append(keys, p.key)
	})
	return keys
}
