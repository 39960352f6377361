package sortable

import (
	"reflect"
	"sync"

	"go.llib.dev/frameless/pkg/reflectkit"
)

// registry caches the completed capability bundle of each registered type.
// The derivation table is read-only and needs no guarding, the cache does.
var registry = struct {
	sync.RWMutex
	byType map[reflect.Type]any
}{byType: map[reflect.Type]any{}}

// Register resolves, completes and caches the comparison capability of T.
//
// Completion happens once per type;
// repeated calls return the very same bindings.
// A type lacking its minimal root set is never cached,
// and registering it keeps returning ErrIncomplete.
func Register[T any]() (Ops[T], error) {
	key := reflectkit.TypeOf[T]()

	registry.RLock()
	cached, ok := registry.byType[key]
	registry.RUnlock()
	if ok {
		return cached.(Ops[T]), nil
	}

	ops, err := For[T]()
	if err != nil {
		return ops, err
	}

	registry.Lock()
	defer registry.Unlock()
	if cached, ok := registry.byType[key]; ok { // lost the race, the first completion wins
		return cached.(Ops[T]), nil
	}
	registry.byType[key] = ops
	return ops, nil
}
