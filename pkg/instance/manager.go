// Package instance implements the instance manager: durable instance
// lifecycle, transaction scopes, and activity-log writes over the generated
// ent client, with per-call timeout contexts.
package instance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/pythmata/ent"
	"github.com/codeready-toolchain/pythmata/ent/activitylog"
	"github.com/codeready-toolchain/pythmata/ent/processdefinition"
	"github.com/codeready-toolchain/pythmata/ent/processinstance"
	"github.com/codeready-toolchain/pythmata/ent/variable"
	"github.com/codeready-toolchain/pythmata/pkg/bpmn"
	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
	"github.com/codeready-toolchain/pythmata/pkg/faststore"
	"github.com/codeready-toolchain/pythmata/pkg/models"
	"github.com/codeready-toolchain/pythmata/pkg/token"
)

const writeTimeout = 10 * time.Second

// Manager owns durable ProcessInstance records and fast-store cleanup.
type Manager struct {
	db     *ent.Client
	fast   *faststore.Store
	tokens *token.Manager
}

func NewManager(db *ent.Client, fast *faststore.Store, tokens *token.Manager) *Manager {
	return &Manager{db: db, fast: fast, tokens: tokens}
}

// CreateInstance validates the definition exists, resolves the start event,
// writes the instance row, hydrates variables, and plants the initial
// token. Idempotent on instanceID: a duplicate call (duplicate
// process.started delivery) reuses the existing row and skips token
// creation.
func (m *Manager) CreateInstance(ctx context.Context, instanceID, definitionID string, variables map[string]models.VariableValue, startEventID string) (*ent.ProcessInstance, error) {
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	existing, err := m.db.ProcessInstance.Get(wctx, instanceID)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("checking for existing instance %s: %w", instanceID, err)
	}

	def, err := m.db.ProcessDefinition.Query().
		Where(processdefinition.ID(definitionID)).
		Only(wctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, engineerr.NewDefinitionError("process definition %s not found", definitionID)
		}
		return nil, fmt.Errorf("loading definition %s: %w", definitionID, err)
	}

	graph, err := parseExecutable(def.BpmnXML, definitionID)
	if err != nil {
		return nil, err
	}

	startNodeID, err := resolveStartEvent(graph, startEventID)
	if err != nil {
		return nil, err
	}

	inst, err := m.db.ProcessInstance.Create().
		SetID(instanceID).
		SetDefinitionID(definitionID).
		SetStatus(processinstance.StatusRUNNING).
		SetStartEventID(startNodeID).
		Save(wctx)
	if err != nil {
		return nil, fmt.Errorf("creating instance %s: %w", instanceID, err)
	}

	if err := m.writeActivityLog(wctx, instanceID, activitylog.ActivityTypeINSTANCE_CREATED, nil, nil); err != nil {
		return nil, err
	}

	for name, v := range variables {
		if err := m.SetVariable(ctx, instanceID, "", name, v); err != nil {
			return nil, fmt.Errorf("hydrating variable %s: %w", name, err)
		}
	}

	if _, err := m.tokens.CreateInitial(ctx, instanceID, startNodeID); err != nil {
		return nil, err
	}

	if err := m.writeActivityLog(wctx, instanceID, activitylog.ActivityTypeINSTANCE_STARTED, &startNodeID, nil); err != nil {
		return nil, err
	}

	return inst, nil
}

// CreateChildInstance is CreateInstance for a call activity's called
// process: identical durable bootstrap, but the root token is stamped with
// ParentInstanceID/ParentActivityID so its end event can resume the
// caller.
func (m *Manager) CreateChildInstance(ctx context.Context, instanceID, definitionID string, variables map[string]models.VariableValue, startEventID, parentInstanceID, parentActivityID string) (*ent.ProcessInstance, error) {
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	existing, err := m.db.ProcessInstance.Get(wctx, instanceID)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("checking for existing child instance %s: %w", instanceID, err)
	}

	def, err := m.db.ProcessDefinition.Query().
		Where(processdefinition.ID(definitionID)).
		Only(wctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, engineerr.NewDefinitionError("process definition %s not found", definitionID)
		}
		return nil, fmt.Errorf("loading definition %s: %w", definitionID, err)
	}

	graph, err := parseExecutable(def.BpmnXML, definitionID)
	if err != nil {
		return nil, err
	}

	startNodeID, err := resolveStartEvent(graph, startEventID)
	if err != nil {
		return nil, err
	}

	inst, err := m.db.ProcessInstance.Create().
		SetID(instanceID).
		SetDefinitionID(definitionID).
		SetStatus(processinstance.StatusRUNNING).
		SetStartEventID(startNodeID).
		Save(wctx)
	if err != nil {
		return nil, fmt.Errorf("creating child instance %s: %w", instanceID, err)
	}

	if err := m.writeActivityLog(wctx, instanceID, activitylog.ActivityTypeINSTANCE_CREATED, nil, nil); err != nil {
		return nil, err
	}

	for name, v := range variables {
		if err := m.SetVariable(ctx, instanceID, "", name, v); err != nil {
			return nil, fmt.Errorf("hydrating variable %s: %w", name, err)
		}
	}

	if _, err := m.tokens.CreateInitialChild(ctx, instanceID, startNodeID, parentInstanceID, parentActivityID); err != nil {
		return nil, err
	}

	if err := m.writeActivityLog(wctx, instanceID, activitylog.ActivityTypeINSTANCE_STARTED, &startNodeID, nil); err != nil {
		return nil, err
	}

	return inst, nil
}

// parseExecutable parses a definition and rejects cyclic graphs — the run
// loop is a bounded iterator over active tokens, so loops must be modeled as
// multi-instance activities instead.
func parseExecutable(bpmnXML, definitionID string) (*bpmn.ProcessGraph, error) {
	graph, err := bpmn.Parse(bpmnXML)
	if err != nil {
		return nil, engineerr.WrapDefinitionError(err, "parsing definition %s", definitionID)
	}
	if found, at := graph.HasCycle(); found {
		return nil, engineerr.NewDefinitionError("definition %s: cycle detected at %s", definitionID, at)
	}
	return graph, nil
}

func resolveStartEvent(graph *bpmn.ProcessGraph, explicit string) (string, error) {
	if explicit != "" {
		if n, ok := graph.NodeByID(explicit); !ok || n.Kind != bpmn.KindStartEvent {
			return "", engineerr.NewDefinitionError("start event %q not found in graph", explicit)
		}
		return explicit, nil
	}
	starts := graph.StartEvents()
	if len(starts) != 1 {
		return "", engineerr.NewDefinitionError("graph has %d start events; an explicit start_event_id is required", len(starts))
	}
	return starts[0].ID, nil
}

// StartInstance is CreateInstance assuming the instance row already exists
// — used when an embedder pre-creates the row via its own CRUD
// surface before handing control to the engine.
func (m *Manager) StartInstance(ctx context.Context, instanceID, bpmnXML string, variables map[string]models.VariableValue, startEventID string) error {
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	inst, err := m.db.ProcessInstance.Get(wctx, instanceID)
	if err != nil {
		return fmt.Errorf("loading instance %s: %w", instanceID, err)
	}

	graph, err := parseExecutable(bpmnXML, instanceID)
	if err != nil {
		return err
	}
	startNodeID, err := resolveStartEvent(graph, startEventID)
	if err != nil {
		return err
	}

	if _, err := m.db.ProcessInstance.UpdateOneID(inst.ID).
		SetStartEventID(startNodeID).
		Save(wctx); err != nil {
		return fmt.Errorf("updating instance %s: %w", instanceID, err)
	}

	for name, v := range variables {
		if err := m.SetVariable(ctx, instanceID, "", name, v); err != nil {
			return err
		}
	}
	_, err = m.tokens.CreateInitial(ctx, instanceID, startNodeID)
	return err
}

// transition applies a durable status change plus activity log entry in one
// ent transaction.
func (m *Manager) transition(ctx context.Context, instanceID string, newStatus processinstance.Status, logType activitylog.ActivityType, errMsg *string) error {
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	tx, err := m.db.Tx(wctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	update := tx.ProcessInstance.UpdateOneID(instanceID).SetStatus(newStatus)
	if newStatus == processinstance.StatusCOMPLETED || newStatus == processinstance.StatusERROR {
		update = update.SetEndTime(time.Now())
	}
	if errMsg != nil {
		update = update.SetErrorMessage(*errMsg)
	}
	if _, err := update.Save(wctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("updating instance %s status: %w", instanceID, err)
	}

	if _, err := tx.ActivityLog.Create().
		SetID(uuid.New().String()).
		SetInstanceID(instanceID).
		SetActivityType(logType).
		Save(wctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("writing activity log for %s: %w", instanceID, err)
	}

	return tx.Commit()
}

// SuspendInstance: RUNNING -> SUSPENDED; tokens preserved.
func (m *Manager) SuspendInstance(ctx context.Context, instanceID string) error {
	inst, err := m.db.ProcessInstance.Get(ctx, instanceID)
	if err != nil {
		return fmt.Errorf("loading instance %s: %w", instanceID, err)
	}
	if inst.Status != processinstance.StatusRUNNING {
		return fmt.Errorf("%w: cannot suspend instance in state %s", engineerr.ErrInvalidTransition, inst.Status)
	}
	return m.transition(ctx, instanceID, processinstance.StatusSUSPENDED, activitylog.ActivityTypeINSTANCE_SUSPENDED, nil)
}

// ResumeInstance: SUSPENDED/ERROR -> RUNNING.
func (m *Manager) ResumeInstance(ctx context.Context, instanceID string) error {
	inst, err := m.db.ProcessInstance.Get(ctx, instanceID)
	if err != nil {
		return fmt.Errorf("loading instance %s: %w", instanceID, err)
	}
	if inst.Status != processinstance.StatusSUSPENDED && inst.Status != processinstance.StatusERROR {
		return fmt.Errorf("%w: cannot resume instance in state %s", engineerr.ErrInvalidTransition, inst.Status)
	}
	return m.transition(ctx, instanceID, processinstance.StatusRUNNING, activitylog.ActivityTypeINSTANCE_RESUMED, nil)
}

// TerminateInstance: any state -> COMPLETED with end_time; clears fast-store keys.
func (m *Manager) TerminateInstance(ctx context.Context, instanceID string) error {
	if err := m.transition(ctx, instanceID, processinstance.StatusCOMPLETED, activitylog.ActivityTypeINSTANCE_COMPLETED, nil); err != nil {
		return err
	}
	return m.fast.ClearInstance(ctx, instanceID)
}

// SetErrorState: any state -> ERROR.
func (m *Manager) SetErrorState(ctx context.Context, instanceID string, message string) error {
	msg := message
	return m.transition(ctx, instanceID, processinstance.StatusERROR, activitylog.ActivityTypeINSTANCE_ERROR, &msg)
}

// CompleteInstance is called by the run loop when no ACTIVE tokens remain:
// transitions to COMPLETED and clears every fast-store key for the
// instance.
func (m *Manager) CompleteInstance(ctx context.Context, instanceID string) error {
	return m.TerminateInstance(ctx, instanceID)
}

// StartTransaction enforces at-most-one active transaction per instance,
// raising a TransactionError on a nested start. The marker lives in the
// fast store (process:{instance}:txn), so it survives restarts and is
// shared across replicas like the instance lock.
func (m *Manager) StartTransaction(ctx context.Context, instanceID, txnID string) error {
	ok, err := m.fast.BeginTransaction(ctx, instanceID, txnID)
	if err != nil {
		return fmt.Errorf("recording transaction for %s: %w", instanceID, err)
	}
	if !ok {
		return engineerr.NewTransactionError("instance %s already has an active transaction", instanceID)
	}
	return nil
}

// CompleteTransaction clears the active-transaction marker; completing
// without an active transaction is a TransactionError.
func (m *Manager) CompleteTransaction(ctx context.Context, instanceID string) error {
	removed, err := m.fast.EndTransaction(ctx, instanceID)
	if err != nil {
		return fmt.Errorf("clearing transaction for %s: %w", instanceID, err)
	}
	if !removed {
		return engineerr.NewTransactionError("instance %s has no active transaction to complete", instanceID)
	}
	return nil
}

// SetVariable validates the declared type against the supplied value and
// writes both durable and fast-store representations in one logical
// operation.
func (m *Manager) SetVariable(ctx context.Context, instanceID, scopeID, name string, value models.VariableValue) error {
	coerced, err := value.Coerce()
	if err != nil {
		return engineerr.NewExecutorError("variable %s: %v", name, err)
	}
	value = coerced

	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	existing, err := m.db.Variable.Query().
		Where(
			variable.InstanceID(instanceID),
			scopePredicate(scopeID),
			variable.Name(name),
		).
		Only(wctx)

	switch {
	case err == nil:
		if _, err := m.db.Variable.UpdateOneID(existing.ID).
			SetValueType(variable.ValueType(value.Type)).
			SetValueData(map[string]any{"value": value.Value}).
			AddVersion(1).
			Save(wctx); err != nil {
			return fmt.Errorf("updating variable %s: %w", name, err)
		}
	case ent.IsNotFound(err):
		builder := m.db.Variable.Create().
			SetID(uuid.New().String()).
			SetInstanceID(instanceID).
			SetName(name).
			SetValueType(variable.ValueType(value.Type)).
			SetValueData(map[string]any{"value": value.Value})
		if scopeID != "" {
			builder = builder.SetScopeID(scopeID)
		}
		if _, err := builder.Save(wctx); err != nil {
			return fmt.Errorf("creating variable %s: %w", name, err)
		}
	default:
		return fmt.Errorf("looking up variable %s: %w", name, err)
	}

	return m.fast.SetVariable(ctx, nil, instanceID, scopeID, name, value)
}

func scopePredicate(scopeID string) func(*ent.VariableQuery) {
	if scopeID == "" {
		return variable.ScopeIDIsNil()
	}
	return variable.ScopeID(scopeID)
}

// GetInstanceVariables reads from the durable store, scope-filtered.
func (m *Manager) GetInstanceVariables(ctx context.Context, instanceID string, scopeID *string) ([]*ent.Variable, error) {
	q := m.db.Variable.Query().Where(variable.InstanceID(instanceID))
	if scopeID != nil {
		if *scopeID == "" {
			q = q.Where(variable.ScopeIDIsNil())
		} else {
			q = q.Where(variable.ScopeID(*scopeID))
		}
	}
	return q.All(ctx)
}

func (m *Manager) writeActivityLog(ctx context.Context, instanceID string, activityType activitylog.ActivityType, nodeID *string, details map[string]any) error {
	builder := m.db.ActivityLog.Create().
		SetID(uuid.New().String()).
		SetInstanceID(instanceID).
		SetActivityType(activityType)
	if nodeID != nil {
		builder = builder.SetNodeID(*nodeID)
	}
	if details != nil {
		builder = builder.SetDetails(details)
	}
	_, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("writing activity log (%s) for %s: %w", activityType, instanceID, err)
	}
	return nil
}

// GetInstance returns the durable instance row verbatim.
func (m *Manager) GetInstance(ctx context.Context, instanceID string) (*ent.ProcessInstance, error) {
	return m.db.ProcessInstance.Get(ctx, instanceID)
}

// ListInstances returns durable instance rows, optionally filtered by
// status, newest first.
func (m *Manager) ListInstances(ctx context.Context, status *processinstance.Status) ([]*ent.ProcessInstance, error) {
	q := m.db.ProcessInstance.Query()
	if status != nil {
		q = q.Where(processinstance.StatusEQ(*status))
	}
	return q.Order(ent.Desc(processinstance.FieldStartTime)).All(ctx)
}

// ListActivityLogs returns an instance's audit trail in write order.
func (m *Manager) ListActivityLogs(ctx context.Context, instanceID string) ([]*ent.ActivityLog, error) {
	return m.db.ActivityLog.Query().
		Where(activitylog.InstanceID(instanceID)).
		Order(ent.Asc(activitylog.FieldTimestamp)).
		All(ctx)
}

// LoadGraph re-parses the BPMN definition backing instanceID — used by the
// run loop to dispatch and by call-activity resume to reach back into a
// parent instance's graph from a child instance's completion.
func (m *Manager) LoadGraph(ctx context.Context, instanceID string) (*bpmn.ProcessGraph, error) {
	inst, err := m.db.ProcessInstance.Get(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("loading instance %s: %w", instanceID, err)
	}
	def, err := m.db.ProcessDefinition.Query().
		Where(processdefinition.ID(inst.DefinitionID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading definition for instance %s: %w", instanceID, err)
	}
	graph, err := bpmn.Parse(def.BpmnXML)
	if err != nil {
		return nil, engineerr.WrapDefinitionError(err, "parsing definition for instance %s", instanceID)
	}
	return graph, nil
}

// InstanceDefinitionID reports which definition backs instanceID, so a
// caller that only holds an instance ID (a resolved subscription, a timer
// fire) can re-enter the run loop without threading the definition ID
// through every intermediate call.
func (m *Manager) InstanceDefinitionID(ctx context.Context, instanceID string) (string, error) {
	inst, err := m.db.ProcessInstance.Get(ctx, instanceID)
	if err != nil {
		return "", fmt.Errorf("loading instance %s: %w", instanceID, err)
	}
	return inst.DefinitionID, nil
}

// InstanceStatus reports an instance's current durable status.
func (m *Manager) InstanceStatus(ctx context.Context, instanceID string) (processinstance.Status, error) {
	inst, err := m.db.ProcessInstance.Get(ctx, instanceID)
	if err != nil {
		return "", fmt.Errorf("loading instance %s: %w", instanceID, err)
	}
	return inst.Status, nil
}

// WriteActivityLog is the exported form used by the run loop and executors
// to emit NODE_ENTERED/NODE_COMPLETED/NODE_ERROR/SERVICE_TASK_EXECUTED rows
// uniformly across node kinds.
func (m *Manager) WriteActivityLog(ctx context.Context, instanceID string, activityType activitylog.ActivityType, nodeID string, details map[string]any) error {
	var nodePtr *string
	if nodeID != "" {
		nodePtr = &nodeID
	}
	return m.writeActivityLog(ctx, instanceID, activityType, nodePtr, details)
}
