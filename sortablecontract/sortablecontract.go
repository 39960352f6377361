// Package sortablecontract defines the behavioral expectations
// towards a completed comparison capability bundle.
//
// Run it against any sortable.Ops value regardless of which minimal root set
// the underlying type supplied; the laws must hold either way.
package sortablecontract

import (
	"fmt"
	"reflect"
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/sortable"
)

// Ops returns the contract that every completed comparison bundle is expected to honor.
func Ops[T any](mk contract.Make[sortable.Ops[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	ops := testcase.Let(s, func(t *testcase.T) sortable.Ops[T] {
		return mk(t)
	})

	s.Test("every operation of the contract is bound", func(t *testcase.T) {
		assert.True(t, ops.Get(t).IsComplete())
		assert.Empty(t, ops.Get(t).Missing())
	})

	s.Test("inequality is the negation of equality", func(t *testcase.T) {
		o := ops.Get(t)
		t.Random.Repeat(3, 7, func() {
			a, b := c.makeV(t), c.makeV(t)
			assert.Equal(t, o.NotEqual(a, b), !o.Equal(a, b))
			assert.False(t, o.NotEqual(a, a))
		})
	})

	s.Test("equality is reflexive and symmetric", func(t *testcase.T) {
		o := ops.Get(t)
		t.Random.Repeat(3, 7, func() {
			a, b := c.makeV(t), c.makeV(t)
			assert.True(t, o.Equal(a, a))
			assert.Equal(t, o.Equal(a, b), o.Equal(b, a))
		})
	})

	s.Test("less-or-equal matches less combined with equality", func(t *testcase.T) {
		o := ops.Get(t)
		t.Random.Repeat(3, 7, func() {
			a, b := c.makeV(t), c.makeV(t)
			assert.Equal(t, o.LessOrEqual(a, b), o.Less(a, b) || o.Equal(a, b))
		})
	})

	s.Test("greater-or-equal is the negation of less", func(t *testcase.T) {
		o := ops.Get(t)
		t.Random.Repeat(3, 7, func() {
			a, b := c.makeV(t), c.makeV(t)
			assert.Equal(t, o.GreaterOrEqual(a, b), !o.Less(a, b))
		})
	})

	s.Test("greater is the mirror of less", func(t *testcase.T) {
		o := ops.Get(t)
		t.Random.Repeat(3, 7, func() {
			a, b := c.makeV(t), c.makeV(t)
			assert.Equal(t, o.Greater(a, b), o.Less(b, a))
		})
	})

	s.Test("trichotomy: exactly one of less, equal and greater holds", func(t *testcase.T) {
		o := ops.Get(t)
		t.Random.Repeat(3, 7, func() {
			a, b := c.makeV(t), c.makeV(t)
			var holds int
			for _, ok := range []bool{o.Less(a, b), o.Equal(a, b), o.Greater(a, b)} {
				if ok {
					holds++
				}
			}
			assert.Equal(t, 1, holds)
		})
	})

	s.Test("repeated completion keeps every binding intact", func(t *testcase.T) {
		o := ops.Get(t)
		again, err := sortable.Complete(o)
		assert.NoError(t, err)
		assert.Equal(t, fnID(o.Equal), fnID(again.Equal))
		assert.Equal(t, fnID(o.NotEqual), fnID(again.NotEqual))
		assert.Equal(t, fnID(o.Less), fnID(again.Less))
		assert.Equal(t, fnID(o.LessOrEqual), fnID(again.LessOrEqual))
		assert.Equal(t, fnID(o.Greater), fnID(again.Greater))
		assert.Equal(t, fnID(o.GreaterOrEqual), fnID(again.GreaterOrEqual))
	})

	return s.AsSuite(fmt.Sprintf("sortable.Ops[%s]", reflectkit.TypeOf[T]().String()))
}

func fnID[T any](fn func(a, b T) bool) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	// MakeV creates a sample value of T for the law assertions.
	MakeV func(tb testing.TB) T
}

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(o *Config[T]) {
	o.MakeV = zerokit.Coalesce(c.MakeV, o.MakeV)
}

func (c Config[T]) makeV(tb testing.TB) T {
	tb.Helper()
	if c.MakeV == nil {
		tb.Fatal("sortablecontract: Config.MakeV is required")
	}
	return c.MakeV(tb)
}
