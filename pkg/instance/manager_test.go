package instance

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
	"github.com/codeready-toolchain/pythmata/pkg/faststore"
)

// Transaction bookkeeping rides the fast store alone, so it tests against
// miniredis without a database; the durable lifecycle paths are covered
// end-to-end in test/e2e.
func newTxnManager(t *testing.T) *Manager {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewManager(nil, faststore.New(rdb), nil)
}

func TestTransactions_AtMostOneActive(t *testing.T) {
	ctx := context.Background()
	m := newTxnManager(t)

	require.NoError(t, m.StartTransaction(ctx, "inst-1", "Txn_1"))

	err := m.StartTransaction(ctx, "inst-1", "Txn_2")
	require.Error(t, err, "nested transaction start must be rejected")
	assert.True(t, engineerr.As(err, engineerr.KindTransaction))

	// A different instance is unaffected.
	require.NoError(t, m.StartTransaction(ctx, "inst-2", "Txn_1"))

	require.NoError(t, m.CompleteTransaction(ctx, "inst-1"))
	require.NoError(t, m.StartTransaction(ctx, "inst-1", "Txn_3"))
}

func TestTransactions_CompleteWithoutActive(t *testing.T) {
	m := newTxnManager(t)
	err := m.CompleteTransaction(context.Background(), "inst-1")
	require.Error(t, err)
	assert.True(t, engineerr.As(err, engineerr.KindTransaction))
}

// Two managers over the same fast store model two engine replicas: the
// marker is shared, so the second replica's start is rejected and either
// replica may complete.
func TestTransactions_SharedAcrossManagers(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := faststore.New(rdb)

	a := NewManager(nil, store, nil)
	b := NewManager(nil, store, nil)

	require.NoError(t, a.StartTransaction(ctx, "inst-1", "Txn_1"))

	err := b.StartTransaction(ctx, "inst-1", "Txn_1")
	require.Error(t, err)
	assert.True(t, engineerr.As(err, engineerr.KindTransaction))

	require.NoError(t, b.CompleteTransaction(ctx, "inst-1"))
}
