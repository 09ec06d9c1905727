// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// workload - random inserts and deletes on a single tree
type workload struct {
	sync.RWMutex

	log     *logger.L
	tree    avl.Tree[int]
	limiter *rate.Limiter
	random  *rand.Rand

	keyRange      int
	deletePercent int
	checkInterval uint64
	operations    uint64

	tally  *counter.Tally
	failed chan error

	// as at the last check
	count  int
	height int
}

func newWorkload(c *Configuration, log *logger.L, tally *counter.Tally) *workload {

	limit := rate.Limit(c.OperationsPerSecond)
	if 0 == c.OperationsPerSecond {
		limit = rate.Inf
	}

	return &workload{
		log:           log,
		tree:          avl.NewWithLimit[int](c.MaximumNodes),
		limiter:       rate.NewLimiter(limit, c.Burst),
		random:        rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15)),
		keyRange:      c.KeyRange,
		deletePercent: c.DeletePercent,
		checkInterval: uint64(c.CheckInterval),
		tally:         tally,
		failed:        make(chan error, 1),
	}
}

// Run - perform operations at the configured rate until shutdown or
// the tree fails a check
func (w *workload) Run(args interface{}, shutdown <-chan struct{}) {

	w.log.Info("starting…")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

loop:
	for {
		if err := w.limiter.Wait(ctx); nil != err {
			break loop
		}
		if err := w.step(); nil != err {
			w.log.Criticalf("tree check failed: %s", err)
			w.failed <- err
			break loop
		}
	}

	w.log.Info("stopped")
}

// one random operation, with a full check at every interval
func (w *workload) step() error {

	key := w.random.IntN(w.keyRange)

	if w.random.IntN(100) < w.deletePercent {
		count := w.tree.Count()
		w.tree = w.tree.Delete(key)
		if count == w.tree.Count() {
			w.tally.Missing.Increment()
		} else {
			w.tally.Deleted.Increment()
		}
	} else {
		count := w.tree.Count()
		tree, err := w.tree.TryInsert(key)
		switch {
		case fault.ErrTreeFull == err:
			w.tally.Rejected.Increment()
		case nil != err:
			return err
		case count == tree.Count():
			w.tally.Duplicates.Increment()
		default:
			w.tally.Inserted.Increment()
		}
		w.tree = tree
	}

	w.operations += 1
	if 0 == w.operations%w.checkInterval {
		return w.check()
	}
	return nil
}

// verify the tree invariants and the logarithmic height bound
func (w *workload) check() error {

	w.tally.Checks.Increment()

	if err := w.tree.Check(); nil != err {
		return err
	}

	count := w.tree.Count()
	height := w.tree.Height()
	if float64(height) > heightBound(count) {
		w.log.Errorf("count: %d  height: %d  bound: %.2f", count, height, heightBound(count))
		return fault.ErrHeightBound
	}

	w.Lock()
	w.count = count
	w.height = height
	w.Unlock()

	w.log.Debugf("check: %d  count: %d  height: %d", w.operations, count, height)
	return nil
}

// status - tree size as at the last check
func (w *workload) status() (int, int) {
	w.RLock()
	defer w.RUnlock()
	return w.count, w.height
}

// maximum height of an AVL tree holding n keys
func heightBound(n int) float64 {
	return 1.4405*math.Log2(float64(n)+2) - 0.3277
}
