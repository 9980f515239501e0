package faststore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/pythmata/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb)
}

func TestTokens_AppendAndRead(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	tok := models.NewToken("inst-1", "Start_1")
	require.NoError(t, s.AppendToken(ctx, nil, tok))

	tokens, err := s.Tokens(ctx, "inst-1")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, tok.ID, tokens[0].ID)
	assert.Equal(t, models.TokenActive, tokens[0].State)

	at, err := s.TokenAt(ctx, "inst-1", "Start_1", "")
	require.NoError(t, err)
	require.NotNil(t, at)

	missing, err := s.TokenAt(ctx, "inst-1", "Nope", "")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestReplaceTokens_PreservesOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a := models.NewToken("inst-1", "A")
	b := models.NewToken("inst-1", "B")
	err := s.Pipeline(ctx, func(pipe redis.Pipeliner) error {
		return s.ReplaceTokens(ctx, pipe, "inst-1", []*models.Token{a, b})
	})
	require.NoError(t, err)

	tokens, err := s.Tokens(ctx, "inst-1")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "A", tokens[0].NodeID)
	assert.Equal(t, "B", tokens[1].NodeID)

	// Replacing with an empty set clears the list.
	err = s.Pipeline(ctx, func(pipe redis.Pipeliner) error {
		return s.ReplaceTokens(ctx, pipe, "inst-1", nil)
	})
	require.NoError(t, err)
	tokens, err = s.Tokens(ctx, "inst-1")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestVariables_ScopeResolution(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	global := models.VariableValue{Type: models.ValueTypeString, Value: "root"}
	inner := models.VariableValue{Type: models.ValueTypeString, Value: "shadowed"}
	require.NoError(t, s.SetVariable(ctx, nil, "inst-1", "", "v", global))
	require.NoError(t, s.SetVariable(ctx, nil, "inst-1", "Sub_1", "v", inner))

	// Innermost match wins.
	got, ok, err := s.ResolveVariable(ctx, "inst-1", "Sub_1", "v")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "shadowed", got.Value)

	// A sibling scope never sees the inner declaration.
	got, ok, err = s.ResolveVariable(ctx, "inst-1", "Sub_2", "v")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "root", got.Value)

	// Absent names report not-found, not an error.
	_, ok, err = s.ResolveVariable(ctx, "inst-1", "Sub_1", "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVariables_TypePreservedThroughRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.SetVariable(ctx, nil, "inst-1", "", "flag",
		models.VariableValue{Type: models.ValueTypeBoolean, Value: true}))

	got, ok, err := s.GetVariable(ctx, "inst-1", "", "flag")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.ValueTypeBoolean, got.Type)
	assert.Equal(t, true, got.Value)
}

func TestLocks(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ok, err := s.AcquireLock(ctx, "inst-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.AcquireLock(ctx, "inst-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must fail while held")

	require.NoError(t, s.RefreshLock(ctx, "inst-1", time.Minute))
	require.NoError(t, s.ReleaseLock(ctx, "inst-1"))

	ok, err = s.AcquireLock(ctx, "inst-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "acquire after release must succeed")
}

func TestSubscriptions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.SubscribeMessage(ctx, "order_placed", "inst-1", "Catch_1", "corr-9"))
	require.NoError(t, s.SubscribeMessage(ctx, "order_placed", "inst-2", "Catch_1", ""))
	require.NoError(t, s.SubscribeSignal(ctx, "halt", "inst-1", "Sig_1", ""))

	subs, err := s.FindMessageSubscriptions(ctx, "order_placed")
	require.NoError(t, err)
	assert.Len(t, subs, 2)

	sigs, err := s.FindSignalSubscriptions(ctx, "halt")
	require.NoError(t, err)
	require.Len(t, sigs, 1)
	assert.Equal(t, "inst-1", sigs[0].InstanceID)

	require.NoError(t, s.UnsubscribeMessage(ctx, "order_placed", "inst-1", "Catch_1"))
	subs, err = s.FindMessageSubscriptions(ctx, "order_placed")
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestCompensationRegistry_LIFO(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := CompensationEntry{ActivityID: "Book", HandlerID: "CancelBooking", BoundaryEventID: "B1"}
	second := CompensationEntry{ActivityID: "Charge", HandlerID: "Refund", BoundaryEventID: "B2"}
	require.NoError(t, s.RegisterCompensation(ctx, "inst-1", first))
	require.NoError(t, s.RegisterCompensation(ctx, "inst-1", second))

	entries, err := s.ListCompensation(ctx, "inst-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Refund", entries[0].HandlerID, "last registered replays first")
	assert.Equal(t, "CancelBooking", entries[1].HandlerID)
}

func TestMultiInstanceCounter(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.InitMultiInstance(ctx, "inst-1", "A", 3))

	completed, total, err := s.IncrMultiInstanceCompleted(ctx, "inst-1", "A")
	require.NoError(t, err)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 3, total)

	_, _, _ = s.IncrMultiInstanceCompleted(ctx, "inst-1", "A")
	completed, total, err = s.IncrMultiInstanceCompleted(ctx, "inst-1", "A")
	require.NoError(t, err)
	assert.Equal(t, 3, completed)
	assert.Equal(t, 3, total)

	require.NoError(t, s.ClearMultiInstance(ctx, "inst-1", "A"))
}

func TestTransactionContext(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ok, err := s.BeginTransaction(ctx, "inst-1", "Txn_1")
	require.NoError(t, err)
	assert.True(t, ok)

	// A second begin is rejected while one is active.
	ok, err = s.BeginTransaction(ctx, "inst-1", "Txn_2")
	require.NoError(t, err)
	assert.False(t, ok)

	active, err := s.ActiveTransaction(ctx, "inst-1")
	require.NoError(t, err)
	assert.Equal(t, "Txn_1", active)

	removed, err := s.EndTransaction(ctx, "inst-1")
	require.NoError(t, err)
	assert.True(t, removed)

	// Ending again reports nothing was active.
	removed, err = s.EndTransaction(ctx, "inst-1")
	require.NoError(t, err)
	assert.False(t, removed)

	active, err = s.ActiveTransaction(ctx, "inst-1")
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestTimerMetadata(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	meta := TimerMetadata{DefinitionID: "def-1", NodeID: "Start_1", TimerDef: "PT1H", TimerType: "duration", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.SetTimerMetadata(ctx, meta))

	got, err := s.GetTimerMetadata(ctx, "def-1", "Start_1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "PT1H", got.TimerDef)

	require.NoError(t, s.DeleteTimerMetadata(ctx, "def-1", "Start_1"))
	got, err = s.GetTimerMetadata(ctx, "def-1", "Start_1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClearInstance_RemovesEverything(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AppendToken(ctx, nil, models.NewToken("inst-1", "A")))
	require.NoError(t, s.SetVariable(ctx, nil, "inst-1", "", "v", models.VariableValue{Type: models.ValueTypeString, Value: "x"}))
	_, err := s.AcquireLock(ctx, "inst-1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, s.SubscribeMessage(ctx, "m", "inst-1", "N", ""))
	require.NoError(t, s.RegisterCompensation(ctx, "inst-1", CompensationEntry{ActivityID: "A", HandlerID: "H"}))
	require.NoError(t, s.InitMultiInstance(ctx, "inst-1", "A", 2))
	_, err = s.BeginTransaction(ctx, "inst-1", "Txn_1")
	require.NoError(t, err)

	require.NoError(t, s.ClearInstance(ctx, "inst-1"))

	tokens, err := s.Tokens(ctx, "inst-1")
	require.NoError(t, err)
	assert.Empty(t, tokens)

	_, ok, err := s.GetVariable(ctx, "inst-1", "", "v")
	require.NoError(t, err)
	assert.False(t, ok)

	subs, err := s.FindMessageSubscriptions(ctx, "m")
	require.NoError(t, err)
	assert.Empty(t, subs)

	entries, err := s.ListCompensation(ctx, "inst-1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	acquired, err := s.AcquireLock(ctx, "inst-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired, "lock must have been cleared")

	active, err := s.ActiveTransaction(ctx, "inst-1")
	require.NoError(t, err)
	assert.Empty(t, active, "transaction marker must have been cleared")
}
