// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/counter"
)

// reporter - periodic progress log
type reporter struct {
	log      *logger.L
	interval time.Duration
	tally    *counter.Tally
	status   func() (int, int)
}

// Run - log the operation counts every interval
func (r *reporter) Run(args interface{}, shutdown <-chan struct{}) {

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	previous := r.tally.Snapshot()
	start := time.Now()
	last := start

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case now := <-ticker.C:
			current := r.tally.Snapshot()
			r.report(current.Sub(previous), now.Sub(last))
			previous = current
			last = now
		}
	}

	total := r.tally.Snapshot()
	r.log.Infof("total: %+v", total)
	r.report(total, time.Since(start))
}

func (r *reporter) report(s counter.Snapshot, elapsed time.Duration) {
	count, height := r.status()

	perSecond := 0.0
	if elapsed > 0 {
		perSecond = float64(s.Operations()) / elapsed.Seconds()
	}
	r.log.Infof("operations: %d  rate: %.1f/s  inserted: %d  duplicates: %d  deleted: %d  missing: %d  rejected: %d  checks: %d  count: %d  height: %d",
		s.Operations(), perSecond,
		s.Inserted, s.Duplicates, s.Deleted, s.Missing, s.Rejected, s.Checks,
		count, height)
	r.log.Flush()
}
