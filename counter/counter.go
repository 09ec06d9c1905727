// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - type to denote a counter that can be synchronously incremented
// just a 64 bit unsigned integer
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(ic), n)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return atomic.LoadUint64((*uint64)(ic)) == 0
}

// Tally - counts of tree operations by outcome
type Tally struct {
	Inserted   Counter
	Duplicates Counter
	Deleted    Counter
	Missing    Counter
	Rejected   Counter
	Checks     Counter
}

// Snapshot - point in time copy of a tally
type Snapshot struct {
	Inserted   uint64 `json:"inserted"`
	Duplicates uint64 `json:"duplicates"`
	Deleted    uint64 `json:"deleted"`
	Missing    uint64 `json:"missing"`
	Rejected   uint64 `json:"rejected"`
	Checks     uint64 `json:"checks"`
}

// Snapshot - read all counters
func (t *Tally) Snapshot() Snapshot {
	return Snapshot{
		Inserted:   t.Inserted.Uint64(),
		Duplicates: t.Duplicates.Uint64(),
		Deleted:    t.Deleted.Uint64(),
		Missing:    t.Missing.Uint64(),
		Rejected:   t.Rejected.Uint64(),
		Checks:     t.Checks.Uint64(),
	}
}

// Operations - total of insert and delete attempts
func (s Snapshot) Operations() uint64 {
	return s.Inserted + s.Duplicates + s.Deleted + s.Missing + s.Rejected
}

// Sub - difference between two snapshots, for rates over an interval
func (s Snapshot) Sub(earlier Snapshot) Snapshot {
	return Snapshot{
		Inserted:   s.Inserted - earlier.Inserted,
		Duplicates: s.Duplicates - earlier.Duplicates,
		Deleted:    s.Deleted - earlier.Deleted,
		Missing:    s.Missing - earlier.Missing,
		Rejected:   s.Rejected - earlier.Rejected,
		Checks:     s.Checks - earlier.Checks,
	}
}
