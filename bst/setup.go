// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Node - a single key and its two optional sub-trees
type Node struct {
	left  *Node // keys less than key
	right *Node // keys greater than key
	key   int
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Key - read the key from a node item
func (p *Node) Key() int {
	return p.key
}

// Left - sub-tree holding smaller keys, nil if none
func (p *Node) Left() *Node {
	return p.left
}

// Right - sub-tree holding larger keys, nil if none
func (p *Node) Right() *Node {
	return p.right
}

// IsLeaf - true if the node has no children
func (p *Node) IsLeaf() bool {
	return nil == p.left && nil == p.right
}

// NodesAtDepth - returns all nodes at a specific depth of the tree
// ordered from left to right
func (tree *Tree) NodesAtDepth(depth uint) []*Node {
	if nil == tree.root {
		return []*Node{}
	}
	return tree.root.childrenByDepth(depth)
}

func (p *Node) childrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.childrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.childrenByDepth(depth-1)...)
		}
	}
	return nodes
}
