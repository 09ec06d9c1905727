// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Runner - applies operations to a single tree and writes results
type Runner struct {
	tree  avl.Tree[int]
	limit int
	log   *logger.L
	w     io.Writer
}

// NewRunner - create a runner with an empty tree
// limit is the maximum number of keys, zero for no limit
func NewRunner(limit int, log *logger.L, w io.Writer) (*Runner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Runner{
		tree:  avl.NewWithLimit[int](limit),
		limit: limit,
		log:   log,
		w:     w,
	}, nil
}

// Tree - the current tree
func (r *Runner) Tree() avl.Tree[int] {
	return r.tree
}

// Run - execute operations in order, stopping at the first error
func (r *Runner) Run(operations []Operation) error {
	for _, operation := range operations {
		if err := r.Execute(operation); nil != err {
			return fmt.Errorf("line: %d  %s: %w", operation.Line, operation.Command, err)
		}
	}
	return nil
}

// Execute - apply one operation
func (r *Runner) Execute(operation Operation) error {
	r.log.Debugf("line: %d  %s %v", operation.Line, operation.Command, operation.Keys)

	switch operation.Command {

	case Insert:
		for _, key := range operation.Keys {
			tree, err := r.tree.TryInsert(key)
			if nil != err {
				r.log.Warnf("insert: %d  count: %d  error: %s", key, r.tree.Count(), err)
				return err
			}
			if tree.Count() == r.tree.Count() {
				r.log.Debugf("insert: %d  already present", key)
			}
			r.tree = tree
		}

	case Delete:
		for _, key := range operation.Keys {
			count := r.tree.Count()
			r.tree = r.tree.Delete(key)
			if count == r.tree.Count() {
				r.log.Debugf("delete: %d  not present", key)
			}
		}

	case Contains:
		for _, key := range operation.Keys {
			fmt.Fprintf(r.w, "%d: %t\n", key, r.tree.Contains(key))
		}

	case List:
		s := make([]string, 0, r.tree.Count())
		for key := range r.tree.All() {
			s = append(s, strconv.Itoa(key))
		}
		fmt.Fprintf(r.w, "%s\n", strings.Join(s, " "))

	case Height:
		fmt.Fprintf(r.w, "height: %d\n", r.tree.Height())

	case Count:
		fmt.Fprintf(r.w, "count: %d\n", r.tree.Count())

	case Print:
		if r.tree.IsEmpty() {
			fmt.Fprintf(r.w, "(empty)\n")
		} else {
			r.tree.Print(r.w)
		}

	case Check:
		if err := r.tree.Check(); nil != err {
			r.log.Errorf("check failed: %s", err)
			return err
		}
		fmt.Fprintf(r.w, "check: ok\n")

	case Clear:
		r.log.Infof("clear: %d keys", r.tree.Count())
		r.tree = avl.NewWithLimit[int](r.limit)

	default:
		return fault.ErrInvalidCommand
	}
	return nil
}
