package executor

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/pythmata/pkg/bpmn"
	"github.com/codeready-toolchain/pythmata/pkg/models"
)

// registerBoundarySubscriptions arms every timer/message/signal boundary
// event attached to node the moment its activity becomes ACTIVE, since
// those boundaries fire from an external trigger rather than from a token
// arriving at the boundary node itself. Error and compensation
// boundaries are handled elsewhere (tryErrorBoundary, registerCompensationHandlers).
func (d *Dispatcher) registerBoundarySubscriptions(ctx context.Context, graph *bpmn.ProcessGraph, definitionID string, tok *models.Token, node *bpmn.Node) error {
	for _, b := range graph.BoundaryEventsFor(node.ID) {
		switch b.EventDefinition {
		case bpmn.EventTimer:
			if d.Timers == nil {
				return fmt.Errorf("boundary timer %s: no timer scheduler configured", b.ID)
			}
			if err := d.Timers.Schedule(ctx, tok.InstanceID, definitionID, b.ID, b.Timer); err != nil {
				return fmt.Errorf("scheduling boundary timer %s: %w", b.ID, err)
			}
		case bpmn.EventMessage:
			if err := d.Fast.SubscribeMessage(ctx, b.EventName, tok.InstanceID, b.ID, ""); err != nil {
				return fmt.Errorf("subscribing boundary message %s: %w", b.ID, err)
			}
		case bpmn.EventSignal:
			if err := d.Fast.SubscribeSignal(ctx, b.EventName, tok.InstanceID, b.ID, ""); err != nil {
				return fmt.Errorf("subscribing boundary signal %s: %w", b.ID, err)
			}
		}
	}
	return nil
}
