// Package sortable completes partially implemented comparison capabilities.
//
// A type rarely wants to hand-write all six relational operations.
// With sortable it supplies a minimal root set — one equality operation
// and one ordering operation — and the rest is derived from those roots.
// The result is a ready-to-use capability bundle (Ops),
// not a mutated type, so completion is an explicit, once-per-type step.
package sortable

import (
	"slices"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/reflectkit"
)

// Op identifies one of the six relational operations of the comparison contract.
type Op string

const (
	Equal          Op = "=="
	NotEqual       Op = "!="
	Less           Op = "<"
	LessOrEqual    Op = "<="
	Greater        Op = ">"
	GreaterOrEqual Op = ">="
)

func (op Op) String() string { return string(op) }

// canonicalOps lists the operations of the contract in their canonical order.
// The canonical order is what keeps derivation rule selection deterministic.
var canonicalOps = []Op{Equal, NotEqual, Less, LessOrEqual, Greater, GreaterOrEqual}

func (op Op) isEquality() bool { return op == Equal || op == NotEqual }

func (op Op) isOrdering() bool { return !op.isEquality() && slices.Contains(canonicalOps, op) }

const (
	// ErrIncomplete is returned when a comparison capability lacks its minimal root set:
	// at least one equality operation (Equal or NotEqual)
	// plus at least one ordering operation (Less, LessOrEqual, Greater or GreaterOrEqual).
	ErrIncomplete errorkit.Error = "sortable: incomplete comparison contract"
	// ErrDerivationGap is returned when the derivation table has no rule
	// to synthesize an operation from a validated root set.
	// It indicates an inconsistency in the table itself, not a usage error.
	ErrDerivationGap errorkit.Error = "sortable: no derivation path"
)

// Ops is the capability bundle of the six relational operations for T.
//
// A nil field stands for an operation that is not yet concretely bound.
// Complete fills the nil fields from the non-nil ones.
type Ops[T any] struct {
	Equal          func(a, b T) bool
	NotEqual       func(a, b T) bool
	Less           func(a, b T) bool
	LessOrEqual    func(a, b T) bool
	Greater        func(a, b T) bool
	GreaterOrEqual func(a, b T) bool
}

func (ops Ops[T]) fn(op Op) func(a, b T) bool {
	switch op {
	case Equal:
		return ops.Equal
	case NotEqual:
		return ops.NotEqual
	case Less:
		return ops.Less
	case LessOrEqual:
		return ops.LessOrEqual
	case Greater:
		return ops.Greater
	case GreaterOrEqual:
		return ops.GreaterOrEqual
	default:
		return nil
	}
}

func (ops *Ops[T]) bind(op Op, fn func(a, b T) bool) {
	switch op {
	case Equal:
		ops.Equal = fn
	case NotEqual:
		ops.NotEqual = fn
	case Less:
		ops.Less = fn
	case LessOrEqual:
		ops.LessOrEqual = fn
	case Greater:
		ops.Greater = fn
	case GreaterOrEqual:
		ops.GreaterOrEqual = fn
	}
}

// Concrete returns the operations that currently have a concrete binding,
// in canonical order.
func (ops Ops[T]) Concrete() []Op {
	var concrete []Op
	for _, op := range canonicalOps {
		if ops.fn(op) != nil {
			concrete = append(concrete, op)
		}
	}
	return concrete
}

// Missing returns the operations that still lack a concrete binding,
// in canonical order.
func (ops Ops[T]) Missing() []Op {
	var missing []Op
	for _, op := range canonicalOps {
		if ops.fn(op) == nil {
			missing = append(missing, op)
		}
	}
	return missing
}

// IsComplete reports whether all six operations are concretely bound.
func (ops Ops[T]) IsComplete() bool { return len(ops.Missing()) == 0 }

// Validate checks that the bundle holds a minimal root set,
// the precondition of Complete.
func (ops Ops[T]) Validate() error {
	var hasEquality, hasOrdering bool
	for _, op := range ops.Concrete() {
		hasEquality = hasEquality || op.isEquality()
		hasOrdering = hasOrdering || op.isOrdering()
	}
	if !hasEquality {
		return ErrIncomplete.F("%s declares no equality operation (%s or %s)",
			reflectkit.TypeOf[T]().String(), Equal, NotEqual)
	}
	if !hasOrdering {
		return ErrIncomplete.F("%s declares no ordering operation (%s, %s, %s or %s)",
			reflectkit.TypeOf[T]().String(), Less, LessOrEqual, Greater, GreaterOrEqual)
	}
	return nil
}

// Derivation is a single rule of the derivation table:
// Target can be synthesized once every operation in Roots is concretely bound.
type Derivation struct {
	Target Op
	Roots  []Op
}

func (d Derivation) has(op Op) bool { return slices.Contains(d.Roots, op) }

// derivations is the derivation table.
// It is read-only after load and covers every admissible minimal root pair.
//
// The rules of a target are ordered by the number of roots they need,
// then by the canonical order of their root operations,
// so the same bundle always completes the same way.
var derivations = map[Op][]Derivation{
	Equal:    {{Target: Equal, Roots: []Op{NotEqual}}},
	NotEqual: {{Target: NotEqual, Roots: []Op{Equal}}},
	Less: {
		{Target: Less, Roots: []Op{GreaterOrEqual}},
		{Target: Less, Roots: []Op{NotEqual, LessOrEqual}},
		{Target: Less, Roots: []Op{NotEqual, Greater}},
	},
	LessOrEqual: {
		{Target: LessOrEqual, Roots: []Op{Greater}},
		{Target: LessOrEqual, Roots: []Op{Equal, Less}},
		{Target: LessOrEqual, Roots: []Op{Equal, GreaterOrEqual}},
	},
	Greater: {
		{Target: Greater, Roots: []Op{LessOrEqual}},
		{Target: Greater, Roots: []Op{Equal, Less}},
		{Target: Greater, Roots: []Op{NotEqual, GreaterOrEqual}},
	},
	GreaterOrEqual: {
		{Target: GreaterOrEqual, Roots: []Op{Less}},
		{Target: GreaterOrEqual, Roots: []Op{Equal, LessOrEqual}},
		{Target: GreaterOrEqual, Roots: []Op{Equal, Greater}},
	},
}

// Complete synthesizes every missing operation of the bundle
// from the operations it already has.
//
// Completion never replaces a non-nil binding,
// so completing an already completed bundle changes nothing.
// When the minimal root set is absent,
// the bundle is returned unchanged along with ErrIncomplete.
func Complete[T any](ops Ops[T]) (Ops[T], error) {
	if err := ops.Validate(); err != nil {
		return ops, err
	}
	out := ops
	// The equality family completes first,
	// as the ordering formulas may lean on both of its operations.
	for _, op := range []Op{Equal, NotEqual} {
		if out.fn(op) != nil {
			continue
		}
		fn, err := derive(op, out, out.Concrete())
		if err != nil {
			return ops, err
		}
		out.bind(op, fn)
	}
	// Ordering operations derive from this snapshot only.
	// An operation synthesized within this pass never serves as the root of another.
	roots := out.Concrete()
	for _, op := range []Op{Less, LessOrEqual, Greater, GreaterOrEqual} {
		if out.fn(op) != nil {
			continue
		}
		fn, err := derive(op, out, roots)
		if err != nil {
			return ops, err
		}
		out.bind(op, fn)
	}
	return out, nil
}

// derive selects the first rule of the table whose roots are all concrete,
// and binds its formula.
func derive[T any](target Op, ops Ops[T], concrete []Op) (func(a, b T) bool, error) {
	for _, d := range derivations[target] {
		if !containsAll(concrete, d.Roots) {
			continue
		}
		return synthesize(d, ops)
	}
	return nil, ErrDerivationGap.F("%s is not derivable from %v", target, concrete)
}

func containsAll(haystack []Op, needles []Op) bool {
	for _, op := range needles {
		if !slices.Contains(haystack, op) {
			return false
		}
	}
	return true
}

// synthesize returns the implementation of d.Target expressed in terms of d.Roots.
func synthesize[T any](d Derivation, ops Ops[T]) (func(a, b T) bool, error) {
	var (
		eq, ne = ops.Equal, ops.NotEqual
		lt, le = ops.Less, ops.LessOrEqual
		gt, ge = ops.Greater, ops.GreaterOrEqual
	)
	switch {
	case d.Target == Equal && d.has(NotEqual):
		return func(a, b T) bool { return !ne(a, b) }, nil
	case d.Target == NotEqual && d.has(Equal):
		return func(a, b T) bool { return !eq(a, b) }, nil
	case d.Target == Less && d.has(GreaterOrEqual):
		return func(a, b T) bool { return !ge(a, b) }, nil
	case d.Target == Less && d.has(LessOrEqual):
		return func(a, b T) bool { return le(a, b) && ne(a, b) }, nil
	case d.Target == Less && d.has(Greater):
		return func(a, b T) bool { return !gt(a, b) && ne(a, b) }, nil
	case d.Target == LessOrEqual && d.has(Greater):
		return func(a, b T) bool { return !gt(a, b) }, nil
	case d.Target == LessOrEqual && d.has(Less):
		return func(a, b T) bool { return lt(a, b) || eq(a, b) }, nil
	case d.Target == LessOrEqual && d.has(GreaterOrEqual):
		return func(a, b T) bool { return !ge(a, b) || eq(a, b) }, nil
	case d.Target == Greater && d.has(LessOrEqual):
		return func(a, b T) bool { return !le(a, b) }, nil
	case d.Target == Greater && d.has(Less):
		return func(a, b T) bool { return !(lt(a, b) || eq(a, b)) }, nil
	case d.Target == Greater && d.has(GreaterOrEqual):
		return func(a, b T) bool { return ge(a, b) && ne(a, b) }, nil
	case d.Target == GreaterOrEqual && d.has(Less):
		return func(a, b T) bool { return !lt(a, b) }, nil
	case d.Target == GreaterOrEqual && d.has(LessOrEqual):
		return func(a, b T) bool { return !le(a, b) || eq(a, b) }, nil
	case d.Target == GreaterOrEqual && d.has(Greater):
		return func(a, b T) bool { return gt(a, b) || eq(a, b) }, nil
	}
	return nil, ErrDerivationGap.F("no formula for %s from %v", d.Target, d.Roots)
}
