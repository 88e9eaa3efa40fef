// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// CheckOrder - verify that every key is strictly within the bounds set
// by its ancestors and that the node count is correct
func (tree *Tree) CheckOrder() bool {
	n, ok := checkOrder(tree.root, nil, nil)
	return ok && n == tree.count
}

// internal: consistency checker, returns nodes in the sub-tree
func checkOrder(p *Node, low *int, high *int) (int, bool) {
	if nil == p {
		return 0, true
	}
	if nil != low && p.key <= *low {
		return 0, false
	}
	if nil != high && p.key >= *high {
		return 0, false
	}
	nl, ok := checkOrder(p.left, low, &p.key)
	if !ok {
		return 0, false
	}
	nr, ok := checkOrder(p.right, &p.key, high)
	if !ok {
		return 0, false
	}
	return 1 + nl + nr, true
}
