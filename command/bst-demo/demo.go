// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

// keys in the range [0, maximum), duplicates are likely
func generateKeys(rng *rand.Rand, count int, maximum int) []int {
	keys := make([]int, count)
	for i := range keys {
		keys[i] = rng.Intn(maximum)
	}
	return keys
}

// build a tree from random keys, modify it as configured and write
// the results to w
func runDemo(w io.Writer, log *logger.L, options *Configuration) (*bst.Tree, error) {

	seed := options.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	keys := generateKeys(rng, options.Count, options.Maximum)
	log.Infof("seed: %d  keys: %d  maximum: %d", seed, len(keys), options.Maximum)
	log.Debugf("keys: %v", keys)

	tree := bst.Construct(keys)
	log.Infof("constructed: %d unique keys", tree.Count())

	fmt.Fprintf(w, "balanced: %v\n", tree.IsBalanced())
	depth := tree.PrettyPrint(w)
	log.Debugf("print depth: %d", depth)

	for _, k := range options.Insert {
		if tree.Insert(k) {
			log.Debugf("inserted: %d", k)
		} else {
			log.Debugf("insert: %d already present", k)
		}
	}
	for _, k := range options.Delete {
		if tree.Delete(k) {
			log.Debugf("deleted: %d", k)
		} else {
			log.Debugf("delete: %d not present", k)
		}
	}

	if len(options.Insert) > 0 || len(options.Delete) > 0 {
		fmt.Fprintf(w, "after %d inserts and %d deletes balanced: %v\n", len(options.Insert), len(options.Delete), tree.IsBalanced())
	}

	if err := report(w, tree); nil != err {
		return nil, err
	}

	if options.Rebalance && !tree.IsBalanced() {
		log.Info("rebalancing")
		tree.Rebalance()
		fmt.Fprintf(w, "rebalanced: %v\n", tree.IsBalanced())
		tree.PrettyPrint(w)
	}

	if !tree.CheckOrder() {
		fault.Criticalf("tree order check failed")
		return nil, fault.ErrInconsistentTree
	}

	traversals := []struct {
		name     string
		traverse func(bst.Visitor) error
	}{
		{"level-order", tree.LevelOrder},
		{"pre-order", tree.PreOrder},
		{"in-order", tree.InOrder},
		{"post-order", tree.PostOrder},
	}
	for _, t := range traversals {
		s, err := keyList(t.traverse)
		if nil != err {
			log.Errorf("%s error: %s", t.name, err)
			return nil, err
		}
		fmt.Fprintf(w, "%-12s %s\n", t.name+":", s)
	}

	return tree, nil
}

// height of the root and depth of the lowest key
func report(w io.Writer, tree *bst.Tree) error {
	if tree.IsEmpty() {
		fmt.Fprintf(w, "tree is empty\n")
		return nil
	}

	root := tree.Root().Key()
	h, err := tree.Height(root)
	if nil != err {
		return err
	}
	first := tree.First().Key()
	d, err := tree.Depth(first)
	if nil != err {
		return err
	}
	fmt.Fprintf(w, "count: %d  root: %d  height: %d  lowest: %d  depth: %d\n", tree.Count(), root, h, first, d)
	return nil
}

// space separated keys in traversal order
func keyList(traverse func(bst.Visitor) error) (string, error) {
	s := make([]string, 0)
	err := traverse(func(p *bst.Node) {
		s = append(s, fmt.Sprintf("%d", p.Key()))
	})
	if nil != err {
		return "", err
	}
	return strings.Join(s, " "), nil
}
