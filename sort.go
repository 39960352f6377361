package sortable

import (
	"slices"

	"go.llib.dev/frameless/port/option"
)

// Compare is the three-way comparison over a completed bundle.
//
// It returns:
//   - -1 if a is less than b
//   - 0 if they are equal
//   - +1 if a is greater
//
// Compare expects the Equal and Less operations to be bound;
// run the bundle through Complete first.
func (ops Ops[T]) Compare(a, b T) int {
	if ops.Equal(a, b) {
		return 0
	}
	if ops.Less(a, b) {
		return -1
	}
	return 1
}

// Comparator returns Compare as a standalone comparison function.
func Comparator[T any](ops Ops[T]) func(a, b T) int {
	return ops.Compare
}

type SortOption interface {
	option.Option[SortConfig]
}

type SortConfig struct {
	// Descending orders from the greatest value towards the least.
	Descending bool
}

var _ SortOption = SortConfig{}

func (c SortConfig) Configure(o *SortConfig) {
	o.Descending = o.Descending || c.Descending
}

// Descending makes Sort order from the greatest value towards the least.
func Descending() SortOption {
	return option.Func[SortConfig](func(c *SortConfig) { c.Descending = true })
}

// Sort orders the values in place by the bundle's ordering operations.
// The sort is stable.
func Sort[T any](vs []T, ops Ops[T], opts ...SortOption) {
	c := option.ToConfig[SortConfig](opts)
	cmp := ops.Compare
	if c.Descending {
		cmp = func(a, b T) int { return ops.Compare(b, a) }
	}
	slices.SortStableFunc(vs, cmp)
}

// IsSorted reports whether the values are already ordered by the bundle.
func IsSorted[T any](vs []T, ops Ops[T]) bool {
	return slices.IsSortedFunc(vs, ops.Compare)
}
