// Package e2e drives the full engine stack — durable store, fast store,
// token manager, node executors, and the run loop — against real backends:
// a PostgreSQL testcontainer and an in-process miniredis.
package e2e

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/pythmata/ent"
	"github.com/codeready-toolchain/pythmata/ent/activitylog"
	"github.com/codeready-toolchain/pythmata/ent/processinstance"
	"github.com/codeready-toolchain/pythmata/pkg/executor"
	"github.com/codeready-toolchain/pythmata/pkg/faststore"
	"github.com/codeready-toolchain/pythmata/pkg/instance"
	"github.com/codeready-toolchain/pythmata/pkg/models"
	"github.com/codeready-toolchain/pythmata/pkg/scheduler"
	"github.com/codeready-toolchain/pythmata/pkg/script"
	"github.com/codeready-toolchain/pythmata/pkg/servicetask"
	"github.com/codeready-toolchain/pythmata/pkg/token"
	"github.com/codeready-toolchain/pythmata/test/util"
)

// Harness wires every engine component against test backends. The
// scheduler's background loops run for the duration of the test so
// call-activity hand-offs and subscription resolution behave as in
// production.
type Harness struct {
	DB        *ent.Client
	Fast      *faststore.Store
	Tokens    *token.Manager
	Instances *instance.Manager
	Sched     *scheduler.Scheduler
	Services  *servicetask.Registry
}

func newHarness(t *testing.T) *Harness {
	t.Helper()

	entClient, _ := util.SetupTestDatabase(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	fast := faststore.New(rdb)
	tokens := token.NewManager(fast)
	instances := instance.NewManager(entClient, fast, tokens)

	scriptEnv, err := script.NewEnv()
	require.NoError(t, err)
	services := servicetask.NewRegistry()

	logger := slog.Default()
	sched := scheduler.New(entClient, fast, tokens, instances, nil, scheduler.Config{
		ScanInterval:  time.Hour, // no background definition scanning in tests
		PollInterval:  50 * time.Millisecond,
		LockTTL:       30 * time.Second,
		MaxIterations: 1000,
		WorkerCount:   2,
	}, logger)

	dispatcher := executor.New(tokens, fast, instances, scriptEnv, services, sched, logger)
	sched.SetDispatcher(dispatcher)

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	t.Cleanup(func() {
		cancel()
		sched.Stop()
	})

	return &Harness{
		DB:        entClient,
		Fast:      fast,
		Tokens:    tokens,
		Instances: instances,
		Sched:     sched,
		Services:  services,
	}
}

// deploy writes a definition row the engine can instantiate.
func (h *Harness) deploy(t *testing.T, defID, bpmnXML string) {
	t.Helper()
	_, err := h.DB.ProcessDefinition.Create().
		SetID(defID).
		SetName(defID).
		SetVersion(1).
		SetBpmnXML(bpmnXML).
		Save(context.Background())
	require.NoError(t, err)
}

// run creates an instance and drives it through one run-loop batch, exactly
// the path a process.started delivery takes.
func (h *Harness) run(t *testing.T, instanceID, defID string, variables map[string]models.VariableValue) {
	t.Helper()
	ctx := context.Background()
	_, err := h.Instances.CreateInstance(ctx, instanceID, defID, variables, "")
	require.NoError(t, err)
	require.NoError(t, h.Sched.RunInstance(ctx, instanceID, defID))
}

// awaitStatus polls the durable record until it reaches want — hand-offs to
// the worker pool (call activities, caller resumes) land asynchronously.
func (h *Harness) awaitStatus(t *testing.T, instanceID string, want processinstance.Status) {
	t.Helper()
	require.Eventually(t, func() bool {
		inst, err := h.DB.ProcessInstance.Get(context.Background(), instanceID)
		if err != nil {
			return false
		}
		return inst.Status == want
	}, 10*time.Second, 25*time.Millisecond, "instance %s never reached %s", instanceID, want)
}

// activityTypes returns the instance's audit trail as an ordered list of
// activity type names.
func (h *Harness) activityTypes(t *testing.T, instanceID string) []string {
	t.Helper()
	logs, err := h.DB.ActivityLog.Query().
		Where(activitylog.InstanceID(instanceID)).
		Order(ent.Asc(activitylog.FieldTimestamp)).
		All(context.Background())
	require.NoError(t, err)
	out := make([]string, len(logs))
	for i, l := range logs {
		out[i] = string(l.ActivityType)
	}
	return out
}

// nodeLogs returns activity rows of one type keyed by node ID.
func (h *Harness) nodeLogs(t *testing.T, instanceID string, at activitylog.ActivityType) []string {
	t.Helper()
	logs, err := h.DB.ActivityLog.Query().
		Where(activitylog.InstanceID(instanceID), activitylog.ActivityTypeEQ(at)).
		Order(ent.Asc(activitylog.FieldTimestamp)).
		All(context.Background())
	require.NoError(t, err)
	var out []string
	for _, l := range logs {
		if l.NodeID != nil {
			out = append(out, *l.NodeID)
		}
	}
	return out
}

func (h *Harness) liveTokens(t *testing.T, instanceID string) []*models.Token {
	t.Helper()
	tokens, err := h.Tokens.All(context.Background(), instanceID)
	require.NoError(t, err)
	return tokens
}

func strVar(v string) models.VariableValue {
	return models.VariableValue{Type: models.ValueTypeString, Value: v}
}

func intVar(v int64) models.VariableValue {
	return models.VariableValue{Type: models.ValueTypeInteger, Value: v}
}

func jsonVar(v any) models.VariableValue {
	return models.VariableValue{Type: models.ValueTypeJSON, Value: v}
}
