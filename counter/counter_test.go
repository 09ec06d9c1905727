// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/counter"
)

// test incrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	assert.True(t, c1.IsZero(), "counter is not zero at start")

	c1.Increment()
	c1.Increment()
	c1.Increment()
	assert.Equal(t, uint64(3), c1.Uint64())

	assert.Equal(t, uint64(10), c1.Add(7))
	assert.False(t, c1.IsZero())
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < 8; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(8000), c.Uint64())
}

func TestTally(t *testing.T) {
	var tally counter.Tally

	tally.Inserted.Add(5)
	tally.Duplicates.Increment()
	tally.Deleted.Add(2)
	tally.Missing.Add(3)
	tally.Checks.Increment()

	first := tally.Snapshot()
	assert.Equal(t, counter.Snapshot{
		Inserted:   5,
		Duplicates: 1,
		Deleted:    2,
		Missing:    3,
		Checks:     1,
	}, first)
	assert.Equal(t, uint64(11), first.Operations())

	tally.Inserted.Increment()
	tally.Rejected.Increment()

	delta := tally.Snapshot().Sub(first)
	assert.Equal(t, counter.Snapshot{Inserted: 1, Rejected: 1}, delta)
	assert.Equal(t, uint64(2), delta.Operations())
}
