package bst_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamOgunyinka/DSA/bst"
)

// sample is the five-node tree used across tests:
//
//	     50
//	    /  \
//	  30    70
//	 /  \
//	20  40
var sample = []int{50, 30, 70, 20, 40}

// build returns an int tree filled with values in order.
func build(values ...int) *bst.Tree[int] {
	t := bst.NewOrdered[int]()
	for _, v := range values {
		t.Insert(v)
	}

	return t
}

func TestNew_NilComparatorPanics(t *testing.T) {
	assert.PanicsWithValue(t, bst.ErrNilComparator, func() {
		bst.New[int](nil)
	})
}

func TestInsert_ShapeAndParents(t *testing.T) {
	tr := build(sample...)
	require.Equal(t, 5, tr.Size())
	require.NoError(t, tr.Check())

	root := tr.Root()
	require.NotNil(t, root)
	assert.Equal(t, 50, root.Value())
	assert.Nil(t, root.Parent())
	assert.Equal(t, 30, root.Left().Value())
	assert.Equal(t, 70, root.Right().Value())
	assert.Equal(t, 20, root.Left().Left().Value())
	assert.Equal(t, 40, root.Left().Right().Value())
	assert.Same(t, root, root.Left().Parent())
	assert.Same(t, root.Left(), root.Left().Right().Parent())
	assert.True(t, root.Right().IsLeaf())
	assert.False(t, root.IsLeaf())
}

func TestInsert_DuplicatesGoRight(t *testing.T) {
	tr := build(10, 10, 10)
	require.Equal(t, 3, tr.Size())
	require.NoError(t, tr.Check())

	root := tr.Root()
	assert.Nil(t, root.Left())
	require.NotNil(t, root.Right())
	require.NotNil(t, root.Right().Right())
	assert.Equal(t, []int{10, 10, 10}, tr.Values(bst.InOrder))
	assert.Equal(t, 3, tr.Height())
}

func TestFromValues_CustomComparator(t *testing.T) {
	desc := func(a, b int) bool { return a > b }
	tr := bst.FromValues(desc, sample)

	assert.Equal(t, []int{70, 50, 40, 30, 20}, tr.Values(bst.InOrder))
	lo, ok := tr.Min()
	require.True(t, ok)
	assert.Equal(t, 70, lo, "min is the first value in comparator order")
	assert.NoError(t, tr.Check())
}

type record struct {
	key  int
	name string
}

func TestWithEqual_MatchesOnlyIdenticalRecords(t *testing.T) {
	byKey := func(a, b record) bool { return a.key < b.key }
	tr := bst.New(byKey, bst.WithEqual(func(a, b record) bool { return a == b }))
	tr.Insert(record{1, "a"})
	tr.Insert(record{1, "b"})
	tr.Insert(record{0, "z"})

	assert.True(t, tr.Find(record{1, "b"}))
	assert.False(t, tr.Find(record{1, "c"}))

	n, ok := tr.FindNode(record{1, "b"})
	require.True(t, ok)
	assert.Equal(t, "b", n.Value().name)

	require.True(t, tr.Remove(record{1, "b"}))
	assert.False(t, tr.Find(record{1, "b"}))
	assert.True(t, tr.Find(record{1, "a"}))
	assert.NoError(t, tr.Check())
}

func TestFind(t *testing.T) {
	tr := build(sample...)
	for _, v := range sample {
		assert.True(t, tr.Find(v), "value %d", v)
	}
	for _, v := range []int{0, 25, 45, 100} {
		assert.False(t, tr.Find(v), "value %d", v)
	}
	assert.False(t, build().Find(1))
}

func TestFindNode(t *testing.T) {
	tr := build(sample...)
	n, ok := tr.FindNode(40)
	require.True(t, ok)
	assert.Equal(t, 40, n.Value())
	assert.Equal(t, 30, n.Parent().Value())

	n, ok = tr.FindNode(41)
	assert.False(t, ok)
	assert.Nil(t, n)
}

func TestFindParent_DistinctOutcomes(t *testing.T) {
	tr := build(sample...)

	res := tr.FindParent(40)
	require.Equal(t, bst.ParentFound, res.Kind)
	assert.Equal(t, 30, res.Parent.Value())

	res = tr.FindParent(50)
	assert.Equal(t, bst.ParentIsRoot, res.Kind)
	assert.Nil(t, res.Parent)

	res = tr.FindParent(99)
	assert.Equal(t, bst.ParentNotFound, res.Kind)
	assert.Nil(t, res.Parent)

	assert.Equal(t, "root", bst.ParentIsRoot.String())
	assert.Equal(t, "not-found", bst.ParentNotFound.String())
	assert.Equal(t, "found", bst.ParentFound.String())
}

func TestMinMax(t *testing.T) {
	tr := build(sample...)
	lo, ok := tr.Min()
	require.True(t, ok)
	hi, ok := tr.Max()
	require.True(t, ok)

	in := tr.Values(bst.InOrder)
	assert.Equal(t, in[0], lo)
	assert.Equal(t, in[len(in)-1], hi)
	assert.Equal(t, 20, lo)
	assert.Equal(t, 70, hi)
}

func TestEmptyTree(t *testing.T) {
	tr := bst.NewOrdered[string]()

	assert.True(t, tr.Empty())
	assert.Equal(t, 0, tr.Size())
	assert.Equal(t, 0, tr.Height())
	assert.Nil(t, tr.Root())

	v, ok := tr.Min()
	assert.False(t, ok)
	assert.Equal(t, "", v)
	v, ok = tr.Max()
	assert.False(t, ok)
	assert.Equal(t, "", v)

	for _, o := range []bst.Order{bst.PreOrder, bst.InOrder, bst.PostOrder, bst.BreadthFirst} {
		assert.Empty(t, tr.Values(o), "order %s", o)
	}
	assert.False(t, tr.Remove("x"))
	assert.Equal(t, bst.ParentNotFound, tr.FindParent("x").Kind)
	assert.NoError(t, tr.Check())
}

func TestHeightAndClear(t *testing.T) {
	tr := build(sample...)
	assert.Equal(t, 3, tr.Height())

	chain := build(1, 2, 3, 4, 5, 6)
	assert.Equal(t, 6, chain.Height(), "sorted input degenerates into a chain")

	tr.Clear()
	assert.True(t, tr.Empty())
	assert.Equal(t, 0, tr.Size())
	assert.NoError(t, tr.Check())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[20 30 40 50 70]", build(sample...).String())
	assert.Equal(t, "[]", build().String())
}

func TestWithLogger_LogsMutations(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tr := bst.NewOrdered(bst.WithLogger[int](logger))
	tr.Insert(2)
	tr.Insert(1)
	tr.Insert(3)
	require.True(t, tr.Remove(2))

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "bst: insert"))
	assert.Contains(t, out, "case=two-children")
	assert.Contains(t, out, "predecessor=1")
}
