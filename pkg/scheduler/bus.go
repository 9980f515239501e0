package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/codeready-toolchain/pythmata/pkg/faststore"
)

// Channel names for the event bus bridge: one dedicated channel for
// process.started, plus the message/signal channels faststore already
// publishes on (subscribed here via a wildcard pattern since the scheduler
// doesn't know event names in advance).
const (
	processStartedChannel = "pythmata:events:process.started"
	messagePattern        = "pythmata:events:message:*"
	signalPattern         = "pythmata:events:signal:*"
)

// ProcessStartedPayload is the wire shape published on processStartedChannel
// and consumed by every scheduler instance's run-loop dispatcher.
type ProcessStartedPayload struct {
	InstanceID   string         `json:"instance_id"`
	DefinitionID string         `json:"definition_id"`
	Variables    map[string]any `json:"variables,omitempty"`
	Source       string         `json:"source"`
	Timestamp    time.Time      `json:"timestamp"`
}

// publishProcessStarted: a timer fire publishes
// process.started for a freshly minted instance ID.
func (s *Scheduler) publishProcessStarted(ctx context.Context, instanceID, definitionID, source string, variables map[string]any) error {
	payload := ProcessStartedPayload{
		InstanceID:   instanceID,
		DefinitionID: definitionID,
		Variables:    variables,
		Source:       source,
		Timestamp:    time.Now(),
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling process.started payload: %w", err)
	}
	return s.fast.Raw().Publish(ctx, processStartedChannel, b).Err()
}

// StartProcess is the RPC trigger: it synchronously creates the durable
// instance row, publishes process.started for observers, and hands the run
// loop to the worker pool. Idempotent on instanceID like every other
// process.started path.
func (s *Scheduler) StartProcess(ctx context.Context, instanceID, definitionID string, variables map[string]any) error {
	if _, err := s.instances.CreateInstance(ctx, instanceID, definitionID, convertVariables(variables), ""); err != nil {
		return err
	}
	if err := s.publishProcessStarted(ctx, instanceID, definitionID, "api", variables); err != nil {
		s.log.Error("publishing process.started for API trigger", "instance_id", instanceID, "error", err)
	}
	return nil
}

// SubmitRun enqueues one run-loop pass for an instance onto the worker pool.
func (s *Scheduler) SubmitRun(instanceID, definitionID string) {
	s.submit(func() {
		if err := s.RunInstance(context.Background(), instanceID, definitionID); err != nil {
			s.log.Error("run loop failed", "instance_id", instanceID, "error", err)
		}
	})
}

// Submit implements executor.TimerScheduler: SubmitRun with the definition
// ID resolved from the durable store, for callers that only hold an
// instance ID (call-activity start, caller resume).
func (s *Scheduler) Submit(instanceID string) {
	s.submit(func() {
		defID, err := s.instances.InstanceDefinitionID(context.Background(), instanceID)
		if err != nil {
			s.log.Error("resolving definition for submitted instance", "instance_id", instanceID, "error", err)
			return
		}
		if err := s.RunInstance(context.Background(), instanceID, defID); err != nil {
			s.log.Error("run loop failed", "instance_id", instanceID, "error", err)
		}
	})
}

// consumeProcessStarted is the bus consumer. Every delivery
// creates (idempotently) the durable instance row and enters the run loop.
func (s *Scheduler) consumeProcessStarted(ctx context.Context) {
	defer s.wg.Done()
	sub := s.fast.SubscribeChannel(ctx, processStartedChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var payload ProcessStartedPayload
			if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
				s.log.Error("malformed process.started payload", "error", err)
				continue
			}
			s.submit(func() { s.handleProcessStarted(context.Background(), payload) })
		}
	}
}

// handleProcessStarted creates the instance (a no-op if it already exists —
// the idempotent-start guarantee) and runs it to quiescence.
func (s *Scheduler) handleProcessStarted(ctx context.Context, payload ProcessStartedPayload) {
	variables := convertVariables(payload.Variables)
	if _, err := s.instances.CreateInstance(ctx, payload.InstanceID, payload.DefinitionID, variables, ""); err != nil {
		s.log.Error("failed to create instance from process.started", "instance_id", payload.InstanceID, "error", err)
		return
	}
	if err := s.RunInstance(ctx, payload.InstanceID, payload.DefinitionID); err != nil {
		s.log.Error("run loop failed", "instance_id", payload.InstanceID, "error", err)
	}
}

// subscriptionEnvelope mirrors faststore.publish's wire shape.
type subscriptionEnvelope struct {
	CorrelationValue string         `json:"correlation_value"`
	Payload          map[string]any `json:"payload"`
}

// consumeMessages/consumeSignals resolve an incoming publish against every
// waiting subscription for that name, flip the matching
// token(s) ACTIVE, and resume each affected instance's run loop.
func (s *Scheduler) consumeMessages(ctx context.Context) {
	s.consumeEvents(ctx, messagePattern, "message", s.fast.FindMessageSubscriptions)
}

func (s *Scheduler) consumeSignals(ctx context.Context) {
	s.consumeEvents(ctx, signalPattern, "signal", s.fast.FindSignalSubscriptions)
}

func (s *Scheduler) consumeEvents(ctx context.Context, pattern, kind string, lookup func(context.Context, string) ([]faststore.Subscription, error)) {
	defer s.wg.Done()
	sub := s.fast.SubscribePattern(ctx, pattern)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			name := strings.TrimPrefix(msg.Channel, "pythmata:events:"+kind+":")
			var env subscriptionEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				s.log.Error("malformed "+kind+" payload", "error", err)
				continue
			}
			s.submit(func() { s.resolveSubscriptions(context.Background(), kind, name, env, lookup) })
		}
	}
}

// resolveSubscriptions finds every waiter for name whose correlation_value
// matches (or which registered with no correlation requirement), advances
// its token, and resumes the instance's run loop.
func (s *Scheduler) resolveSubscriptions(ctx context.Context, kind, name string, env subscriptionEnvelope, lookup func(context.Context, string) ([]faststore.Subscription, error)) {
	subs, err := lookup(ctx, name)
	if err != nil {
		s.log.Error("looking up "+kind+" subscriptions", "name", name, "error", err)
		return
	}
	for _, sub := range subs {
		if sub.CorrelationValue != "" && sub.CorrelationValue != env.CorrelationValue {
			continue
		}
		if err := s.fireSubscription(ctx, kind, sub, env.Payload); err != nil {
			s.log.Error("resolving "+kind+" subscription", "instance_id", sub.InstanceID, "node_id", sub.NodeID, "error", err)
			continue
		}
		def, err := s.instances.InstanceDefinitionID(ctx, sub.InstanceID)
		if err != nil {
			s.log.Error("loading definition id to resume instance after "+kind, "instance_id", sub.InstanceID, "error", err)
			continue
		}
		if err := s.RunInstance(ctx, sub.InstanceID, def); err != nil {
			s.log.Error("run loop failed after "+kind+" delivery", "instance_id", sub.InstanceID, "error", err)
		}
	}
}
