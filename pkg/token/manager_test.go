package token

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
	"github.com/codeready-toolchain/pythmata/pkg/faststore"
	"github.com/codeready-toolchain/pythmata/pkg/models"
)

func newTestManager(t *testing.T) (*Manager, *faststore.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := faststore.New(rdb)
	return NewManager(store), store
}

func TestCreateInitial_RejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	tok, err := m.CreateInitial(ctx, "inst-1", "Start_1")
	require.NoError(t, err)
	assert.Equal(t, models.TokenActive, tok.State)

	// Duplicate process.started delivery must not produce a second token
	// (the idempotent-start guarantee).
	_, err = m.CreateInitial(ctx, "inst-1", "Start_1")
	require.Error(t, err)
	assert.True(t, engineerr.As(err, engineerr.KindTokenState))

	all, err := m.All(ctx, "inst-1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMove_ReplacesToken(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	tok, err := m.CreateInitial(ctx, "inst-1", "Start_1")
	require.NoError(t, err)
	tok.Data["carry"] = "v"
	require.NoError(t, m.MergeData(ctx, tok, map[string]any{"carry": "v"}))

	next, err := m.Move(ctx, tok, "Task_1")
	require.NoError(t, err)
	assert.Equal(t, "Task_1", next.NodeID)
	assert.Equal(t, "v", next.Data["carry"])
	assert.NotEqual(t, tok.ID, next.ID)

	all, err := m.All(ctx, "inst-1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Task_1", all[0].NodeID)

	// The original token is gone; moving it again is a state error.
	_, err = m.Move(ctx, tok, "Task_2")
	require.Error(t, err)
	assert.True(t, engineerr.As(err, engineerr.KindTokenState))
}

func TestSplit_FansOut(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	tok, err := m.CreateInitial(ctx, "inst-1", "GW")
	require.NoError(t, err)

	out, err := m.Split(ctx, tok, []string{"Task_A", "Task_B"})
	require.NoError(t, err)
	require.Len(t, out, 2)

	all, err := m.All(ctx, "inst-1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	nodes := []string{all[0].NodeID, all[1].NodeID}
	assert.ElementsMatch(t, []string{"Task_A", "Task_B"}, nodes)
}

func TestConsume_RemovesWaitingToken(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	tok, err := m.CreateInitial(ctx, "inst-1", "Join")
	require.NoError(t, err)
	require.NoError(t, m.UpdateState(ctx, tok, models.TokenWaiting))

	// Parallel joins consume WAITING arrivals.
	require.NoError(t, m.Consume(ctx, tok))

	all, err := m.All(ctx, "inst-1")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateState(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	tok, err := m.CreateInitial(ctx, "inst-1", "Catch_1")
	require.NoError(t, err)

	require.NoError(t, m.UpdateState(ctx, tok, models.TokenWaiting))
	all, err := m.All(ctx, "inst-1")
	require.NoError(t, err)
	assert.Equal(t, models.TokenWaiting, all[0].State)

	require.NoError(t, m.UpdateState(ctx, tok, models.TokenActive))
	all, _ = m.All(ctx, "inst-1")
	assert.Equal(t, models.TokenActive, all[0].State)

	ghost := models.NewToken("inst-1", "Nowhere")
	err = m.UpdateState(ctx, ghost, models.TokenActive)
	require.Error(t, err)
	assert.True(t, engineerr.As(err, engineerr.KindTokenState))
}

func TestPlace_ScopedToken(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	tok, err := m.Place(ctx, "inst-1", "A", "A_instance_0", models.TokenActive, map[string]any{"item": "HR"})
	require.NoError(t, err)
	assert.Equal(t, "A_instance_0", tok.ScopeID)

	inScope, err := m.TokensInScope(ctx, "inst-1", "A_instance_0")
	require.NoError(t, err)
	assert.Len(t, inScope, 1)

	other, err := m.TokensInScope(ctx, "inst-1", "A_instance_1")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCreateInitialChild_StampsParent(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	tok, err := m.CreateInitialChild(ctx, "child-1", "Start_1", "parent-1", "Call_1")
	require.NoError(t, err)
	assert.Equal(t, "parent-1", tok.ParentInstanceID)
	assert.Equal(t, "Call_1", tok.ParentActivityID)

	all, err := m.All(ctx, "child-1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "parent-1", all[0].ParentInstanceID)
}
