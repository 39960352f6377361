package sortable_test

import (
	"testing"

	"go.llib.dev/frameless/pkg/compare"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/sortable"
)

func TestOps_Compare(t *testing.T) {
	s := testcase.NewSpec(t)

	ops := testcase.Let(s, func(t *testcase.T) sortable.Ops[Box] {
		ops, err := sortable.Complete(sortable.Ops[Box]{Equal: boxEq, Less: boxLt})
		assert.NoError(t, err)
		return ops
	})

	s.Test("the three-way result follows the bundle's ordering", func(t *testcase.T) {
		o := ops.Get(t)
		assert.True(t, compare.IsLess(o.Compare(Box{Size: 1}, Box{Size: 2})))
		assert.True(t, compare.IsEqual(o.Compare(Box{Size: 2}, Box{Size: 2})))
		assert.True(t, compare.IsMore(o.Compare(Box{Size: 3}, Box{Size: 2})))
	})

	s.Test("comparator is interchangeable with the method", func(t *testcase.T) {
		cmp := sortable.Comparator(ops.Get(t))
		t.Random.Repeat(3, 7, func() {
			a := Box{Size: t.Random.IntBetween(0, 10)}
			b := Box{Size: t.Random.IntBetween(0, 10)}
			assert.Equal(t, cmp(a, b), ops.Get(t).Compare(a, b))
		})
	})
}

func TestSort(t *testing.T) {
	s := testcase.NewSpec(t)

	ops := testcase.Let(s, func(t *testcase.T) sortable.Ops[Box] {
		ops, err := sortable.Complete(sortable.Ops[Box]{Equal: boxEq, Less: boxLt})
		assert.NoError(t, err)
		return ops
	})

	values := testcase.Let(s, func(t *testcase.T) []Box {
		var vs []Box
		t.Random.Repeat(5, 12, func() {
			vs = append(vs, Box{Size: t.Random.IntBetween(0, 100)})
		})
		return vs
	})

	s.Test("values order ascending by default", func(t *testcase.T) {
		vs := values.Get(t)
		sortable.Sort(vs, ops.Get(t))
		assert.True(t, sortable.IsSorted(vs, ops.Get(t)))
		for i := 0; i < len(vs)-1; i++ {
			assert.True(t, ops.Get(t).LessOrEqual(vs[i], vs[i+1]))
		}
	})

	s.Test("the descending option flips the order", func(t *testcase.T) {
		vs := values.Get(t)
		sortable.Sort(vs, ops.Get(t), sortable.Descending())
		for i := 0; i < len(vs)-1; i++ {
			assert.True(t, ops.Get(t).GreaterOrEqual(vs[i], vs[i+1]))
		}
	})

	s.Test("is-sorted detects unordered values", func(t *testcase.T) {
		vs := []Box{{Size: 3}, {Size: 1}, {Size: 2}}
		assert.False(t, sortable.IsSorted(vs, ops.Get(t)))
		sortable.Sort(vs, ops.Get(t))
		assert.True(t, sortable.IsSorted(vs, ops.Get(t)))
	})
}
