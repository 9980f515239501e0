// Package scheduler implements the Scheduler & Event Bus Bridge: a
// persistent timer job store, the process.started publish/consume cycle,
// message/signal subscription resolution, and the per-instance run loop that
// drives tokens through pkg/executor.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/pythmata/ent"
	"github.com/codeready-toolchain/pythmata/ent/processinstance"
	"github.com/codeready-toolchain/pythmata/pkg/bpmn"
	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
	"github.com/codeready-toolchain/pythmata/pkg/executor"
	"github.com/codeready-toolchain/pythmata/pkg/faststore"
	"github.com/codeready-toolchain/pythmata/pkg/instance"
	"github.com/codeready-toolchain/pythmata/pkg/models"
	"github.com/codeready-toolchain/pythmata/pkg/token"

	"github.com/google/uuid"
)

// Config tunes the scheduler's background loops and run-loop bound.
type Config struct {
	ScanInterval  time.Duration // how often process definitions are rescanned for timer start events
	PollInterval  time.Duration // how often the job store is polled for due timers
	LockTTL       time.Duration // lock:process:{instance} TTL, auto-refreshed for long batches
	MaxIterations int           // per-call dispatch cap
	WorkerCount   int           // size of the run-loop task pool
}

// DefaultConfig holds production-shaped magnitudes: a 30s instance lock and
// a definition rescan every minute.
func DefaultConfig() Config {
	return Config{
		ScanInterval:  60 * time.Second,
		PollInterval:  1 * time.Second,
		LockTTL:       faststore.DefaultLockTTL,
		MaxIterations: 10000,
		WorkerCount:   8,
	}
}

// Scheduler owns the timer job store, the event bus bridge, and the
// per-instance run loop. It implements executor.TimerScheduler so the
// Dispatcher can register/cancel boundary and intermediate timers without
// importing this package.
type Scheduler struct {
	db        *ent.Client
	fast      *faststore.Store
	tokens    *token.Manager
	instances *instance.Manager
	dispatch  *executor.Dispatcher
	cfg       Config
	log       *slog.Logger

	tasks  chan func()
	stopCh chan struct{}
	wg     sync.WaitGroup

	mu       sync.Mutex
	defsHash string
}

var _ executor.TimerScheduler = (*Scheduler)(nil)

func New(db *ent.Client, fast *faststore.Store, tokens *token.Manager, instances *instance.Manager, dispatch *executor.Dispatcher, cfg Config, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 1
	}
	return &Scheduler{
		db:        db,
		fast:      fast,
		tokens:    tokens,
		instances: instances,
		dispatch:  dispatch,
		cfg:       cfg,
		log:       log,
		tasks:     make(chan func(), 256),
		stopCh:    make(chan struct{}),
	}
}

// SetDispatcher wires the node-executor dispatcher after construction.
// Dispatcher and Scheduler reference each other (timer registration one way,
// token dispatch the other), so one side is attached late.
func (s *Scheduler) SetDispatcher(d *executor.Dispatcher) { s.dispatch = d }

// Start launches the scan loop, the fire loop, the event bus consumers, and
// the run-loop task pool. It does not block.
func (s *Scheduler) Start(ctx context.Context) {
	for i := 0; i < s.cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.runWorker(ctx)
	}

	s.wg.Add(1)
	go s.scanLoop(ctx)

	s.wg.Add(1)
	go s.fireLoop(ctx)

	s.wg.Add(1)
	go s.consumeProcessStarted(ctx)

	s.wg.Add(1)
	go s.consumeMessages(ctx)

	s.wg.Add(1)
	go s.consumeSignals(ctx)
}

// Stop signals every background loop and worker to exit and waits for them.
func (s *Scheduler) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

// submit enqueues a unit of run-loop work onto the worker pool. If the pool
// is saturated the caller blocks — the event bus consumer is the
// natural rate limit.
func (s *Scheduler) submit(task func()) {
	select {
	case s.tasks <- task:
	case <-s.stopCh:
	}
}

func (s *Scheduler) runWorker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case task := <-s.tasks:
			task()
		}
	}
}

func (s *Scheduler) scanLoop(ctx context.Context) {
	defer s.wg.Done()
	if err := s.reconcileDefinitions(ctx); err != nil {
		s.log.Error("initial timer scan failed", "error", err)
	}
	ticker := time.NewTicker(s.cfg.ScanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			if err := s.reconcileDefinitions(ctx); err != nil {
				s.log.Error("timer scan failed", "error", err)
			}
		}
	}
}

func (s *Scheduler) fireLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			jobs, err := s.dueJobs(ctx)
			if err != nil {
				s.log.Error("polling due timer jobs", "error", err)
				continue
			}
			for _, job := range jobs {
				job := job
				s.submit(func() { s.fireJob(context.Background(), job) })
			}
		}
	}
}

// fireJob handles one due job: a start-event job, or the boundary/intermediate
// analog for an instance-bound job.
func (s *Scheduler) fireJob(ctx context.Context, job *ent.TimerJob) {
	if err := s.advanceOrDeactivate(ctx, job); err != nil {
		s.log.Error("advancing timer job", "job_id", job.ID, "error", err)
		return
	}

	if job.InstanceID == "" {
		instanceID := uuid.New().String()
		if err := s.publishProcessStarted(ctx, instanceID, job.DefinitionID, "timer_scheduler", nil); err != nil {
			s.log.Error("publishing process.started", "definition_id", job.DefinitionID, "error", err)
		}
		return
	}

	if err := s.fireInstanceTimer(ctx, job); err != nil {
		s.log.Error("firing instance timer", "instance_id", job.InstanceID, "node_id", job.NodeID, "error", err)
		return
	}
	if err := s.RunInstance(ctx, job.InstanceID, job.DefinitionID); err != nil {
		s.log.Error("run loop failed after timer fire", "instance_id", job.InstanceID, "error", err)
	}
}

// fireInstanceTimer advances the token waiting on a boundary or intermediate
// timer catch. An intermediate catch already holds a WAITING token at the
// node itself; a boundary catch has no token yet and gets one placed fresh,
// scoped like the activity it's attached to.
func (s *Scheduler) fireInstanceTimer(ctx context.Context, job *ent.TimerJob) error {
	graph, err := s.instances.LoadGraph(ctx, job.InstanceID)
	if err != nil {
		return err
	}
	node, ok := graph.NodeByID(job.NodeID)
	if !ok {
		return fmt.Errorf("timer job %s: node %s not found in graph", job.ID, job.NodeID)
	}

	switch node.Kind {
	case bpmn.KindIntermediateEvent:
		waiting, err := s.tokens.TokensAtNode(ctx, job.InstanceID, job.NodeID)
		if err != nil {
			return err
		}
		for _, t := range waiting {
			if t.State == models.TokenWaiting {
				if err := s.tokens.MergeData(ctx, t, map[string]any{"resolved_event": job.NodeID}); err != nil {
					return err
				}
				return s.tokens.UpdateState(ctx, t, models.TokenActive)
			}
		}
		return engineerr.NewTokenStateError("no waiting token at %s for instance %s", job.NodeID, job.InstanceID)

	case bpmn.KindBoundaryEvent:
		attached, err := s.tokens.TokensAtNode(ctx, job.InstanceID, node.AttachedTo)
		if err != nil {
			return err
		}
		scope := ""
		for _, t := range attached {
			if t.State == models.TokenActive || t.State == models.TokenWaiting {
				scope = t.ScopeID
				break
			}
		}
		_, err = s.tokens.Place(ctx, job.InstanceID, job.NodeID, scope, models.TokenActive, nil)
		return err

	default:
		return fmt.Errorf("timer job %s: node %s has unsupported kind %s for a timer fire", job.ID, job.NodeID, node.Kind)
	}
}

// fireSubscription advances the token a resolved message/signal subscription
// is waiting on, mirroring fireInstanceTimer's intermediate/boundary split.
// The delivery's payload is copied into the resumed token's data as
// message_payload/signal_payload.
func (s *Scheduler) fireSubscription(ctx context.Context, kind string, sub faststore.Subscription, payload map[string]any) error {
	unsub := s.fast.UnsubscribeMessage
	if kind == "signal" {
		unsub = s.fast.UnsubscribeSignal
	}
	defer func() { _ = unsub(ctx, sub.Name, sub.InstanceID, sub.NodeID) }()

	// resolved_event marks WHICH catch was satisfied, so the executor's
	// re-dispatch advances this node only — a later catch of the same kind
	// downstream still waits for its own delivery.
	data := map[string]any{kind + "_payload": payload, "resolved_event": sub.NodeID}

	graph, err := s.instances.LoadGraph(ctx, sub.InstanceID)
	if err != nil {
		return err
	}
	node, ok := graph.NodeByID(sub.NodeID)
	if !ok {
		return fmt.Errorf("subscription %s/%s: node not found in graph", sub.InstanceID, sub.NodeID)
	}

	if node.Kind == bpmn.KindBoundaryEvent {
		attached, err := s.tokens.TokensAtNode(ctx, sub.InstanceID, node.AttachedTo)
		if err != nil {
			return err
		}
		scope := ""
		for _, t := range attached {
			if t.State == models.TokenActive || t.State == models.TokenWaiting {
				scope = t.ScopeID
				break
			}
		}
		_, err = s.tokens.Place(ctx, sub.InstanceID, sub.NodeID, scope, models.TokenActive, data)
		return err
	}

	waiting, err := s.tokens.TokensAtNode(ctx, sub.InstanceID, sub.NodeID)
	if err != nil {
		return err
	}
	for _, t := range waiting {
		if t.State == models.TokenWaiting {
			if err := s.tokens.MergeData(ctx, t, data); err != nil {
				return err
			}
			return s.tokens.UpdateState(ctx, t, models.TokenActive)
		}
	}
	return engineerr.NewTokenStateError("no waiting token at %s for instance %s", sub.NodeID, sub.InstanceID)
}

// RunInstance is the run loop: hold the instance lock for one batch, dispatch
// every ACTIVE token until none remain or MAX_ITERATIONS is hit, then
// complete the instance if it's quiescent.
func (s *Scheduler) RunInstance(ctx context.Context, instanceID, definitionID string) error {
	status, err := s.instances.InstanceStatus(ctx, instanceID)
	if err != nil {
		return err
	}
	if status != processinstance.StatusRUNNING {
		// Suspended and errored instances keep their tokens parked until an
		// explicit resume re-enters the loop.
		return nil
	}

	acquired, err := s.fast.AcquireLock(ctx, instanceID, s.cfg.LockTTL)
	if err != nil {
		return fmt.Errorf("acquiring lock for %s: %w", instanceID, err)
	}
	if !acquired {
		// Another worker already owns this instance's batch; its own pass
		// will observe whatever token state this caller's trigger produced.
		return nil
	}
	defer func() { _ = s.fast.ReleaseLock(ctx, instanceID) }()

	graph, err := s.instances.LoadGraph(ctx, instanceID)
	if err != nil {
		return err
	}

	refreshEvery := s.cfg.LockTTL / 2
	lastRefresh := time.Now()

	for i := 0; i < s.cfg.MaxIterations; i++ {
		all, err := s.tokens.All(ctx, instanceID)
		if err != nil {
			return err
		}
		var active []*models.Token
		for _, t := range all {
			if t.State == models.TokenActive {
				active = append(active, t)
			}
		}
		if len(active) == 0 {
			break
		}

		for _, tok := range active {
			if err := s.dispatch.Dispatch(ctx, graph, definitionID, tok); err != nil {
				if engineerr.As(err, engineerr.KindTokenState) {
					// The snapshot went stale mid-pass: a join or boundary
					// event consumed a sibling token, or the instance was
					// terminated concurrently. Re-read and carry on — a
					// terminated instance simply reads back empty.
					break
				}
				_ = s.instances.SetErrorState(ctx, instanceID, err.Error())
				s.propagateChildError(ctx, instanceID, err)
				return err
			}
		}

		if time.Since(lastRefresh) >= refreshEvery {
			if err := s.fast.RefreshLock(ctx, instanceID, s.cfg.LockTTL); err != nil {
				return fmt.Errorf("refreshing lock for %s: %w", instanceID, err)
			}
			lastRefresh = time.Now()
		}

		if i == s.cfg.MaxIterations-1 {
			limitErr := &engineerr.ProcessExecutionLimitError{InstanceID: instanceID, Limit: s.cfg.MaxIterations}
			_ = s.instances.SetErrorState(ctx, instanceID, limitErr.Error())
			return limitErr
		}
	}

	remaining, err := s.tokens.All(ctx, instanceID)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		status, err := s.instances.InstanceStatus(ctx, instanceID)
		if err == nil && status == processinstance.StatusRUNNING {
			return s.instances.CompleteInstance(ctx, instanceID)
		}
	}
	return nil
}

// propagateChildError surfaces a called process's failure to its caller: if
// the failed instance was started by a call activity and that activity has an
// errorBoundaryEvent, the caller's waiting token is cancelled and a fresh
// token is placed at the boundary with error_code in its data; without a
// boundary, the parent instance goes to ERROR too.
func (s *Scheduler) propagateChildError(ctx context.Context, instanceID string, cause error) {
	all, err := s.tokens.All(ctx, instanceID)
	if err != nil {
		return
	}
	var parentInstanceID, parentActivityID string
	for _, t := range all {
		if t.ParentInstanceID != "" {
			parentInstanceID, parentActivityID = t.ParentInstanceID, t.ParentActivityID
			break
		}
	}
	if parentInstanceID == "" {
		return
	}

	parentGraph, err := s.instances.LoadGraph(ctx, parentInstanceID)
	if err != nil {
		s.log.Error("loading parent graph for error propagation", "parent_instance", parentInstanceID, "error", err)
		return
	}

	var boundary *bpmn.Node
	for _, b := range parentGraph.BoundaryEventsFor(parentActivityID) {
		if b.EventDefinition == bpmn.EventError {
			boundary = b
			break
		}
	}
	if boundary == nil {
		_ = s.instances.SetErrorState(ctx, parentInstanceID, fmt.Sprintf("called process %s failed: %v", instanceID, cause))
		return
	}

	waiting, err := s.tokens.TokensAtNode(ctx, parentInstanceID, parentActivityID)
	if err != nil {
		return
	}
	scope := ""
	for _, w := range waiting {
		if w.State == models.TokenWaiting {
			scope = w.ScopeID
			if err := s.tokens.Consume(ctx, w); err != nil {
				s.log.Error("cancelling caller token for error propagation", "parent_instance", parentInstanceID, "error", err)
				return
			}
			break
		}
	}
	data := map[string]any{"error_code": "CHILD_PROCESS_ERROR", "error_message": cause.Error(), "failed_instance_id": instanceID}
	if _, err := s.tokens.Place(ctx, parentInstanceID, boundary.ID, scope, models.TokenActive, data); err != nil {
		s.log.Error("placing error boundary token", "parent_instance", parentInstanceID, "error", err)
		return
	}
	defID, err := s.instances.InstanceDefinitionID(ctx, parentInstanceID)
	if err != nil {
		return
	}
	if err := s.RunInstance(ctx, parentInstanceID, defID); err != nil {
		s.log.Error("run loop failed after error propagation", "parent_instance", parentInstanceID, "error", err)
	}
}

// Schedule implements executor.TimerScheduler: register a boundary or
// intermediate timer catch so a later fireJob advances it.
func (s *Scheduler) Schedule(ctx context.Context, instanceID, definitionID, nodeID string, def *bpmn.TimerDefinition) error {
	return s.upsertInstanceJob(ctx, instanceID, definitionID, nodeID, def)
}

// Cancel implements executor.TimerScheduler: deactivate a previously
// scheduled instance-bound timer (e.g. a sibling boundary event consumed by
// an interrupting one).
func (s *Scheduler) Cancel(ctx context.Context, instanceID, nodeID string) error {
	return s.cancelInstanceJob(ctx, instanceID, nodeID)
}

// convertVariables adapts a process.started payload's raw JSON variable map
// into the typed VariableValue map Instance Manager.CreateInstance expects,
// inferring each value's declared type the same way the executor does for
// script/service-task output.
func convertVariables(raw map[string]any) map[string]models.VariableValue {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]models.VariableValue, len(raw))
	for name, v := range raw {
		out[name] = models.VariableValue{Type: inferValueType(v), Value: v}
	}
	return out
}

func inferValueType(v any) models.ValueType {
	switch v.(type) {
	case bool:
		return models.ValueTypeBoolean
	case string:
		return models.ValueTypeString
	case int, int64:
		return models.ValueTypeInteger
	case float64, float32:
		return models.ValueTypeFloat
	default:
		return models.ValueTypeJSON
	}
}
