// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func TestListShort(t *testing.T) {
	addList := []int{
		4201, 1254, 8608, 1639, 8950,
		6740,
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []int{
		1720, 506, 8382, 6774, 1247,
		1250, 1264, 1258, 1255, 2247,
		2004, 2194, 2644, 2169, 8133,
		2136, 9651, 4079, 1042, 3579,
		3630, 1427, 5843, 9549, 5433,
		1274, 9034, 4724, 6179, 5072,
		9272, 4030, 4205, 3363, 8582,
		1720, 506, 8382, 6774, 1042,

		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []int{
		8133, 2136, 9651, 4079, 1042,
		3579, 3630, 1427, 5843, 9549,
		5433, 1274, 9034, 4724, 6179,
		5072, 9272, 4030, 4205, 3363,
		8582, 1720, 506, 8382, 6774,
		3088, 2329, 9039, 6703, 1027,
		7297, 6063, 4156, 1005, 982,
		3065, 2553, 795, 8426, 2377,
		877, 9085, 5918, 2581, 7797,
		3028, 5880, 3061, 5212, 6539,
		1320, 3581, 3334, 4348, 2934,
		8342, 8814, 8736, 1353, 3082,
		9620, 56, 5063, 1245, 7066,
		7435, 2999, 7803, 1303, 1697,
		17, 4314, 9926, 7587, 2531,
		8123, 5693, 7495, 9975, 5465,
		4342, 7958, 7138, 9382, 672,
		5402, 204, 2397, 2712, 938,
		9610, 3611, 2140, 4289, 9271,
		4786, 4145, 1066, 4366, 6716,
		8579, 1012, 5935, 8278, 5761,
		1871, 6257, 2649, 8643, 1239,
		3416, 6146, 7127, 9517, 5788,
		9025, 6880, 9064, 4849, 4503,
		4898, 6815, 8811, 6745, 6907,
		7503, 9869, 5491, 9940, 5955,
		3764, 3254, 8048, 5339, 2406,
		3137, 251, 486, 4202, 1844,
		1741, 7154, 4286, 5160, 9472,
		2998, 1935, 4758, 6478, 9572,
		9254, 6848, 3126, 1848, 7692,
		2791, 1504, 3469, 9701, 5077,
		7928, 7978, 5383, 4319, 8197,
		9227, 1166, 4216, 866, 1791,
		5395, 4310, 4452, 6140, 1494,
		8859, 3394, 5507, 7295, 5408,
		7789, 8237, 6990, 6882, 8243,
		8894, 4352, 6727, 7019, 3126,
		3102, 2948, 8242, 5027, 8892,
		3492, 1323, 1101, 4526, 5177,
		6175, 6664, 2742, 6094, 9877,
		2534, 2105, 6588, 9982, 3696,
		3480, 2244, 7487, 2844, 3199,
		5829, 6952, 6915, 905, 7615,
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// ascending and descending runs are the worst case for a plain BST
func TestListSorted(t *testing.T) {
	ascending := make([]int, 120)
	descending := make([]int, 120)
	for i := range ascending {
		ascending[i] = i
		descending[i] = len(descending) - i
	}
	doList(t, ascending)
	doTraverse(t, ascending)
	doList(t, descending)
	doTraverse(t, descending)
}

// build the tree, delete a prefix of the list, check, then delete the
// remainder and check the tree is empty; repeat for every prefix length
func doList(t *testing.T, addList []int) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[int]struct{})

		tree := avl.New[int]()
		for _, key := range addList {
			tree = tree.Insert(key)
			checkTree(t, tree, "add")
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Contains(key) {
				t.Fatalf("delete: key: %d missing before delete", key)
			}
			tree = tree.Delete(key)
			if tree.Contains(key) {
				t.Fatalf("delete: key: %d still present", key)
			}
		}
		checkTree(t, tree, "delete")

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			tree = tree.Delete(key)
			checkTree(t, tree, "remainder")
		}
		if !tree.IsEmpty() {
			t.Errorf("remainder: remaining nodes")
			depth := tree.Print(testWriter{t})
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// traverse the tree forwards and backwards
func doTraverse(t *testing.T, addList []int) {

	unique := make(map[int]struct{})
	tree := avl.New[int]()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree = tree.Insert(key)
	}

	expected := make([]int, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Ints(expected)

	if len(expected) != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), len(expected))
	}

	n := 0
	for key := range tree.All() {
		if expected[n] != key {
			t.Fatalf("all item: actual: %d  expected: %d", key, expected[n])
		}
		n += 1
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	key, ok := tree.First()
	if !ok {
		t.Fatalf("no first item")
	}
	for i := 0; ok; i += 1 {
		if expected[i] != key {
			t.Fatalf("next item: actual: %d  expected: %d", key, expected[i])
		}
		key, ok = tree.Next(key)
	}

	key, ok = tree.Last()
	if !ok {
		t.Fatalf("no last item")
	}
	for i := len(expected) - 1; ok; i -= 1 {
		if expected[i] != key {
			t.Fatalf("prev item: actual: %d  expected: %d", key, expected[i])
		}
		key, ok = tree.Prev(key)
	}

	// delete everything
	for _, key := range expected {
		tree = tree.Delete(key)
	}
	if !tree.IsEmpty() {
		t.Fatalf("remaining nodes")
	}
}

func checkTree(t *testing.T, tree avl.Tree[int], stage string) {
	t.Helper()
	if err := tree.Check(); nil != err {
		depth := tree.Print(testWriter{t})
		t.Logf("depth: %d", depth)
		t.Fatalf("%s: inconsistent tree: %s", stage, err)
	}
	limit := 1.44 * math.Log2(float64(tree.Count()+2))
	if float64(tree.Height()) > limit {
		t.Fatalf("%s: height: %d  exceeds: %.2f for: %d keys", stage, tree.Height(), limit, tree.Count())
	}
}

func makeKey() int {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	return int(binary.BigEndian.Uint32(b) % 10000)
}

func TestRandomTree(t *testing.T) {
	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New[int]()
	present := make(map[int]struct{})
	d := make([]int, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree = tree.Insert(key)
		present[key] = struct{}{}
	}
	checkTree(t, tree, "random add")

	for _, key := range d {
		tree = tree.Delete(key)
		delete(present, key)
		checkTree(t, tree, "random delete")
	}

	if len(present) != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(present))
	}
	for key := range present {
		if !tree.Contains(key) {
			t.Fatalf("key: %d missing", key)
		}
	}

	// add back a value outside the random range
	const testKey = 50000
	tree = tree.Insert(testKey)
	checkTree(t, tree, "test key")
	if last, ok := tree.Last(); !ok || testKey != last {
		t.Fatalf("last: actual: %d  expected: %d", last, testKey)
	}
	tree = tree.Delete(testKey)
	if tree.Contains(testKey) {
		t.Fatalf("test key not deleted")
	}
}

// a left-right rotation during the inserts and a left-left rotation
// at the root after the delete
func TestInsertThenDelete(t *testing.T) {
	tree := avl.New[int]()
	for _, key := range []int{9, 5, 10, 0, 6, 11, -1, 1, 2} {
		tree = tree.Insert(key)
		checkTree(t, tree, "insert")
	}
	root, _ := tree.Root()
	assert.Equal(t, 9, root, "root after inserts")
	assert.Equal(t, []int{-1, 0, 1, 2, 5, 6, 9, 10, 11}, tree.Keys())

	tree = tree.Delete(10)
	checkTree(t, tree, "delete")
	root, _ = tree.Root()
	assert.Equal(t, 1, root, "root after delete")
	assert.Equal(t, []int{-1, 0, 1, 2, 5, 6, 9, 11}, tree.Keys())
	assert.Equal(t, 4, tree.Height())
	assert.Equal(t, 8, tree.Count())
}

func TestNoOperation(t *testing.T) {
	tree := avl.New[int]()
	for _, key := range []int{30, 10, 50, 20, 40} {
		tree = tree.Insert(key)
	}
	before := tree.Keys()

	tree = tree.Insert(20)
	assert.Equal(t, before, tree.Keys(), "duplicate insert")
	assert.Equal(t, 5, tree.Count())

	tree = tree.Delete(25)
	assert.Equal(t, before, tree.Keys(), "absent delete")
	assert.Equal(t, 5, tree.Count())

	checkTree(t, tree, "no-op")
}

func TestZeroValue(t *testing.T) {
	var tree avl.Tree[string]

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Height())
	assert.False(t, tree.Contains("x"))
	assert.Empty(t, tree.Keys())
	assert.NoError(t, tree.Check())

	tree = tree.Delete("x")
	assert.True(t, tree.IsEmpty())

	_, ok := tree.First()
	assert.False(t, ok)
	_, ok = tree.Root()
	assert.False(t, ok)

	tree = tree.Insert("b").Insert("a").Insert("c")
	assert.Equal(t, []string{"a", "b", "c"}, tree.Keys())
	assert.Equal(t, 2, tree.Height())
	assert.NoError(t, tree.Check())
}

func TestLimit(t *testing.T) {
	tree := avl.NewWithLimit[int](3)
	assert.Equal(t, 3, tree.Limit())

	var err error
	for _, key := range []int{1, 2, 3} {
		tree, err = tree.TryInsert(key)
		assert.NoError(t, err)
	}

	// duplicate of a present key is still accepted
	tree, err = tree.TryInsert(2)
	assert.NoError(t, err)

	tree, err = tree.TryInsert(4)
	assert.Equal(t, fault.ErrTreeFull, err)
	assert.True(t, fault.IsErrLength(err))
	assert.Equal(t, []int{1, 2, 3}, tree.Keys())
	assert.NoError(t, tree.Check())

	assert.Panics(t, func() {
		tree.Insert(5)
	})

	// space is reclaimed by a delete
	tree = tree.Delete(1)
	tree, err = tree.TryInsert(4)
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, tree.Keys())
	assert.NoError(t, tree.Check())
}

func TestNextPrevBetweenKeys(t *testing.T) {
	tree := avl.New[int]()
	for _, key := range []int{10, 20, 30, 40} {
		tree = tree.Insert(key)
	}

	next, ok := tree.Next(25)
	assert.True(t, ok)
	assert.Equal(t, 30, next)

	prev, ok := tree.Prev(25)
	assert.True(t, ok)
	assert.Equal(t, 20, prev)

	_, ok = tree.Next(40)
	assert.False(t, ok)
	_, ok = tree.Prev(10)
	assert.False(t, ok)
}

// stop a walk early and then walk again from the start
func TestAllRestart(t *testing.T) {
	tree := avl.New[float64]()
	for _, key := range []float64{2.5, -1, 7, 3.25, 0} {
		tree = tree.Insert(key)
	}

	seen := []float64{}
	for key := range tree.All() {
		if key > 2.5 {
			break
		}
		seen = append(seen, key)
	}
	assert.Equal(t, []float64{-1, 0, 2.5}, seen)

	seen = seen[:0]
	for key := range tree.All() {
		seen = append(seen, key)
	}
	assert.Equal(t, []float64{-1, 0, 2.5, 3.25, 7}, seen)
}

func TestPrint(t *testing.T) {
	tree := avl.New[int]()
	for _, key := range []int{1, 2, 3, 4, 5, 6, 7} {
		tree = tree.Insert(key)
	}

	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer)
	assert.Equal(t, tree.Height(), depth)

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Len(t, lines, 7)
	assert.Contains(t, lines[3], "|------+ 4 h:3 +0")

	buffer.Reset()
	assert.Equal(t, 0, avl.New[int]().Print(buffer))
	assert.Empty(t, buffer.String())
}

// route Print output to the test log
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(b []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(b), "\n"))
	return len(b), nil
}
