package sortable

// Sortable is the full comparison contract.
// A type satisfies it once all six relational operations are concretely bound,
// though a type only needs to declare a minimal root set of them —
// OpsOf + Complete supply the rest as a capability bundle.
type Sortable[T any] interface {
	Equal(oth T) bool
	NotEqual(oth T) bool
	Less(oth T) bool
	LessOrEqual(oth T) bool
	Greater(oth T) bool
	GreaterOrEqual(oth T) bool
}

// Go interfaces can't express "any subset of Sortable",
// so classification probes the method set one operation at a time.
type (
	equaler[T any]          interface{ Equal(oth T) bool }
	notEqualer[T any]       interface{ NotEqual(oth T) bool }
	lesser[T any]           interface{ Less(oth T) bool }
	lessOrEqualer[T any]    interface{ LessOrEqual(oth T) bool }
	greater[T any]          interface{ Greater(oth T) bool }
	greaterOrEqualer[T any] interface{ GreaterOrEqual(oth T) bool }
)

// OpsOf classifies T by the comparison methods its method set declares,
// and returns the corresponding partial capability bundle.
//
// Only methods that are part of T's method set are found.
// When the methods use a pointer receiver, instantiate OpsOf with the pointer type.
func OpsOf[T any]() Ops[T] {
	var (
		zero T
		ops  Ops[T]
	)
	if _, ok := any(zero).(equaler[T]); ok {
		ops.Equal = func(a, b T) bool { return any(a).(equaler[T]).Equal(b) }
	}
	if _, ok := any(zero).(notEqualer[T]); ok {
		ops.NotEqual = func(a, b T) bool { return any(a).(notEqualer[T]).NotEqual(b) }
	}
	if _, ok := any(zero).(lesser[T]); ok {
		ops.Less = func(a, b T) bool { return any(a).(lesser[T]).Less(b) }
	}
	if _, ok := any(zero).(lessOrEqualer[T]); ok {
		ops.LessOrEqual = func(a, b T) bool { return any(a).(lessOrEqualer[T]).LessOrEqual(b) }
	}
	if _, ok := any(zero).(greater[T]); ok {
		ops.Greater = func(a, b T) bool { return any(a).(greater[T]).Greater(b) }
	}
	if _, ok := any(zero).(greaterOrEqualer[T]); ok {
		ops.GreaterOrEqual = func(a, b T) bool { return any(a).(greaterOrEqualer[T]).GreaterOrEqual(b) }
	}
	return ops
}

// For classifies T and completes its comparison capability in a single step.
func For[T any]() (Ops[T], error) {
	return Complete(OpsOf[T]())
}
