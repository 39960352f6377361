package sortable_test

import (
	"testing"

	"github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"

	"go.llib.dev/sortable"
)

// account identifies by an opaque id, while it orders by balance.
type account struct {
	ID      uuid.UUID
	Balance int
}

func (a account) Equal(oth account) bool { return uuid.Equal(a.ID, oth.ID) }
func (a account) Less(oth account) bool  { return a.Balance < oth.Balance }

func TestRegister(t *testing.T) {
	ops, err := sortable.Register[account]()
	require.NoError(t, err)
	require.True(t, ops.IsComplete())

	id := uuid.NewV4()
	a := account{ID: id, Balance: 50}
	b := account{ID: uuid.NewV4(), Balance: 100}

	require.True(t, ops.Less(a, b))
	require.True(t, ops.LessOrEqual(a, b))
	require.True(t, ops.Greater(b, a))
	require.True(t, ops.NotEqual(a, b))
	require.True(t, ops.Equal(a, account{ID: id, Balance: 12}))
}

func TestRegister_completionHappensOncePerType(t *testing.T) {
	first, err := sortable.Register[account]()
	require.NoError(t, err)

	second, err := sortable.Register[account]()
	require.NoError(t, err)

	require.Equal(t, fnID(first.Equal), fnID(second.Equal))
	require.Equal(t, fnID(first.NotEqual), fnID(second.NotEqual))
	require.Equal(t, fnID(first.Less), fnID(second.Less))
	require.Equal(t, fnID(first.LessOrEqual), fnID(second.LessOrEqual))
	require.Equal(t, fnID(first.Greater), fnID(second.Greater))
	require.Equal(t, fnID(first.GreaterOrEqual), fnID(second.GreaterOrEqual))
}

func TestRegister_incompleteTypeIsNotCached(t *testing.T) {
	_, err := sortable.Register[opaque]()
	require.ErrorIs(t, err, sortable.ErrIncomplete)

	_, err = sortable.Register[opaque]()
	require.ErrorIs(t, err, sortable.ErrIncomplete)
}

func TestRegister_distinctTypesGetDistinctBundles(t *testing.T) {
	accOps, err := sortable.Register[account]()
	require.NoError(t, err)

	stuOps, err := sortable.Register[student]()
	require.NoError(t, err)

	require.True(t, accOps.IsComplete())
	require.True(t, stuOps.IsComplete())
	require.True(t, stuOps.Less(student{Average: 1}, student{Average: 2}))
}
