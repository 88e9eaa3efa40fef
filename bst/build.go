// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"sort"
)

// Construct - create a balanced tree from an arbitrary list of keys
//
// duplicates are dropped and the input slice is not modified
func Construct(keys []int) *Tree {
	unique := make(map[int]struct{}, len(keys))
	sorted := make([]int, 0, len(keys))
	for _, k := range keys {
		if _, ok := unique[k]; ok {
			continue
		}
		unique[k] = struct{}{}
		sorted = append(sorted, k)
	}
	sort.Ints(sorted)

	return &Tree{
		root:  build(sorted),
		count: len(sorted),
	}
}

// internal: build a balanced sub-tree from strictly ascending keys
//
// the middle element (index n/2) becomes the sub-tree root
func build(keys []int) *Node {
	if 0 == len(keys) {
		return nil
	}
	mid := len(keys) / 2
	return &Node{
		key:   keys[mid],
		left:  build(keys[:mid]),
		right: build(keys[mid+1:]),
	}
}

// Rebalance - rebuild the whole tree so that it is balanced
//
// the in-order key sequence is already sorted so it is used directly
func (tree *Tree) Rebalance() {
	keys := tree.Keys()
	tree.root = build(keys)
	tree.count = len(keys)
}
