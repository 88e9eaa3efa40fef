// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - a binary search tree of unique integer keys that is
// balanced when built and can be rebuilt balanced on request
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes have no parent pointers; insert and delete are recursive and
// return the possibly replaced sub-tree root to the caller, which
// reattaches it.
//
// Insert does not rebalance.  A long run of ascending or descending
// inserts will degrade the tree towards a list, so call Rebalance
// when IsBalanced reports false and lookups matter.
package bst
