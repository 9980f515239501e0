// Package token implements the Token Manager: create, move, split,
// consume, and state-update operations over tokens living in the fast
// store. Every mutation goes through a single transactional pipeline —
// read, remove, append as one Redis transaction.
package token

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
	"github.com/codeready-toolchain/pythmata/pkg/faststore"
	"github.com/codeready-toolchain/pythmata/pkg/models"
)

// Manager mutates token state for a single instance through the fast store.
type Manager struct {
	store *faststore.Store
}

func NewManager(store *faststore.Store) *Manager { return &Manager{store: store} }

// CreateInitial places an ACTIVE token at a start event. It is an error to
// call this twice for the same (instance, node) pair — instance creation is
// expected to call it exactly once per start event.
func (m *Manager) CreateInitial(ctx context.Context, instanceID, startEventID string) (*models.Token, error) {
	existing, err := m.store.TokenAt(ctx, instanceID, startEventID, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, engineerr.NewTokenStateError("token already exists at %s for instance %s", startEventID, instanceID)
	}

	tok := models.NewToken(instanceID, startEventID)
	err = m.store.Pipeline(ctx, func(pipe redis.Pipeliner) error {
		return m.store.AppendToken(ctx, pipe, tok)
	})
	if err != nil {
		return nil, err
	}
	return tok, nil
}

// CreateInitialChild is CreateInitial for a called process's root token,
// additionally stamping the parent instance/activity so the End event
// handler knows to resume the caller.
func (m *Manager) CreateInitialChild(ctx context.Context, instanceID, startEventID, parentInstanceID, parentActivityID string) (*models.Token, error) {
	tok, err := m.CreateInitial(ctx, instanceID, startEventID)
	if err != nil {
		return nil, err
	}
	tok.ParentInstanceID = parentInstanceID
	tok.ParentActivityID = parentActivityID
	if err := m.store.Pipeline(ctx, func(pipe redis.Pipeliner) error {
		tokens, err := m.store.Tokens(ctx, instanceID)
		if err != nil {
			return err
		}
		replaced := replaceByID(tokens, tok.ID, tok)
		return m.store.ReplaceTokens(ctx, pipe, instanceID, replaced)
	}); err != nil {
		return nil, err
	}
	return tok, nil
}

// verifyActive re-reads the token list and confirms tok is still present and
// ACTIVE, guarding against concurrent executors racing the same token.
func (m *Manager) verifyActive(ctx context.Context, tok *models.Token) error {
	return m.verify(ctx, tok, models.TokenActive)
}

// verifyLive accepts any removable state: a parallel join consumes WAITING
// arrivals, an interrupting boundary cancels a WAITING activity token, a
// compensation handler consumes its own COMPENSATION token, and a finished
// multi-instance child is removed right after being marked COMPLETED.
func (m *Manager) verifyLive(ctx context.Context, tok *models.Token) error {
	return m.verify(ctx, tok, models.TokenActive, models.TokenWaiting, models.TokenCompensation, models.TokenCompleted)
}

func (m *Manager) verify(ctx context.Context, tok *models.Token, allowed ...models.TokenState) error {
	tokens, err := m.store.Tokens(ctx, tok.InstanceID)
	if err != nil {
		return err
	}
	for _, t := range tokens {
		if t.ID == tok.ID {
			for _, s := range allowed {
				if t.State == s {
					return nil
				}
			}
			return engineerr.NewTokenStateError("token %s is not in an allowed state (state: %s)", t.ID, t.State)
		}
	}
	return engineerr.NewTokenStateError("token not found: %s", tok.ID)
}

// Move transitions tok from its current node to targetNodeID, preserving
// scope and data. The original token is replaced, at its position in the
// list, by a new ACTIVE token (new ID, same scope/data) at the target.
func (m *Manager) Move(ctx context.Context, tok *models.Token, targetNodeID string) (*models.Token, error) {
	if err := m.verifyActive(ctx, tok); err != nil {
		return nil, err
	}

	next := tok.Clone()
	next.NodeID = targetNodeID
	next.State = models.TokenActive

	err := m.store.Pipeline(ctx, func(pipe redis.Pipeliner) error {
		tokens, err := m.store.Tokens(ctx, tok.InstanceID)
		if err != nil {
			return err
		}
		replaced := replaceByID(tokens, tok.ID, next)
		return m.store.ReplaceTokens(ctx, pipe, tok.InstanceID, replaced)
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

// Split replaces tok with one new ACTIVE token per target node — parallel
// gateway fan-out and multi-instance expansion.
func (m *Manager) Split(ctx context.Context, tok *models.Token, targetNodeIDs []string) ([]*models.Token, error) {
	if err := m.verifyActive(ctx, tok); err != nil {
		return nil, err
	}

	newTokens := make([]*models.Token, 0, len(targetNodeIDs))
	for _, nodeID := range targetNodeIDs {
		nt := tok.Clone()
		nt.NodeID = nodeID
		nt.State = models.TokenActive
		newTokens = append(newTokens, nt)
	}

	err := m.store.Pipeline(ctx, func(pipe redis.Pipeliner) error {
		tokens, err := m.store.Tokens(ctx, tok.InstanceID)
		if err != nil {
			return err
		}
		remaining := removeByID(tokens, tok.ID)
		remaining = append(remaining, newTokens...)
		return m.store.ReplaceTokens(ctx, pipe, tok.InstanceID, remaining)
	})
	if err != nil {
		return nil, err
	}
	return newTokens, nil
}

// TokensAtNode returns every token currently positioned at nodeID,
// regardless of state or scope — used by gateway join counting,
// multi-instance completion checks, and call-activity resume lookups.
func (m *Manager) TokensAtNode(ctx context.Context, instanceID, nodeID string) ([]*models.Token, error) {
	tokens, err := m.store.Tokens(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	var out []*models.Token
	for _, t := range tokens {
		if t.NodeID == nodeID {
			out = append(out, t)
		}
	}
	return out, nil
}

// All returns every token for an instance, any node/state.
func (m *Manager) All(ctx context.Context, instanceID string) ([]*models.Token, error) {
	return m.store.Tokens(ctx, instanceID)
}

// TokensInScope returns every still-live (ACTIVE/WAITING) token whose
// ScopeID is scopeID — used to decide whether a subprocess has any
// remaining in-flight branch before collapsing it to its outgoing flow.
func (m *Manager) TokensInScope(ctx context.Context, instanceID, scopeID string) ([]*models.Token, error) {
	tokens, err := m.store.Tokens(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	var out []*models.Token
	for _, t := range tokens {
		if t.ScopeID == scopeID && (t.State == models.TokenActive || t.State == models.TokenWaiting) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Place appends a brand-new token in the given state at nodeID/scopeID, independent of
// any existing token. Used where a new token is synthesized rather than
// derived from one via Move/Split: gateway joins collapsing N arrivals into
// one successor, subprocess entry, and compensation handler dispatch.
func (m *Manager) Place(ctx context.Context, instanceID, nodeID, scopeID string, state models.TokenState, data map[string]any) (*models.Token, error) {
	tok := models.NewToken(instanceID, nodeID)
	tok.ScopeID = scopeID
	tok.State = state
	if data != nil {
		tok.Data = data
	}
	err := m.store.Pipeline(ctx, func(pipe redis.Pipeliner) error {
		return m.store.AppendToken(ctx, pipe, tok)
	})
	if err != nil {
		return nil, err
	}
	return tok, nil
}

// Consume removes tok from the process entirely — parallel gateway join
// absorbing an arriving branch, a boundary event cancelling its attached
// activity, or a token reaching a terminating end event.
func (m *Manager) Consume(ctx context.Context, tok *models.Token) error {
	if err := m.verifyLive(ctx, tok); err != nil {
		return err
	}
	return m.store.Pipeline(ctx, func(pipe redis.Pipeliner) error {
		tokens, err := m.store.Tokens(ctx, tok.InstanceID)
		if err != nil {
			return err
		}
		remaining := removeByID(tokens, tok.ID)
		return m.store.ReplaceTokens(ctx, pipe, tok.InstanceID, remaining)
	})
}

// UpdateState sets tok's lifecycle state in place (e.g. ACTIVE -> WAITING
// while a boundary/intermediate event subscription is pending).
func (m *Manager) UpdateState(ctx context.Context, tok *models.Token, state models.TokenState) error {
	return m.store.Pipeline(ctx, func(pipe redis.Pipeliner) error {
		tokens, err := m.store.Tokens(ctx, tok.InstanceID)
		if err != nil {
			return err
		}
		found := false
		for _, t := range tokens {
			if t.ID == tok.ID {
				t.State = state
				found = true
			}
		}
		if !found {
			return engineerr.NewTokenStateError("token not found: %s", tok.ID)
		}
		tok.State = state
		return m.store.ReplaceTokens(ctx, pipe, tok.InstanceID, tokens)
	})
}

// MergeData folds key/value pairs into tok's data in place — a resolved
// message/signal subscription copying its payload into the waiting token
// before the run loop re-dispatches it.
func (m *Manager) MergeData(ctx context.Context, tok *models.Token, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	return m.store.Pipeline(ctx, func(pipe redis.Pipeliner) error {
		tokens, err := m.store.Tokens(ctx, tok.InstanceID)
		if err != nil {
			return err
		}
		found := false
		for _, t := range tokens {
			if t.ID == tok.ID {
				if t.Data == nil {
					t.Data = map[string]any{}
				}
				for k, v := range data {
					t.Data[k] = v
				}
				found = true
			}
		}
		if !found {
			return engineerr.NewTokenStateError("token not found: %s", tok.ID)
		}
		if tok.Data == nil {
			tok.Data = map[string]any{}
		}
		for k, v := range data {
			tok.Data[k] = v
		}
		return m.store.ReplaceTokens(ctx, pipe, tok.InstanceID, tokens)
	})
}

func replaceByID(tokens []*models.Token, id any, replacement *models.Token) []*models.Token {
	out := make([]*models.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.ID == id {
			out = append(out, replacement)
			continue
		}
		out = append(out, t)
	}
	return out
}

func removeByID(tokens []*models.Token, id any) []*models.Token {
	out := make([]*models.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.ID == id {
			continue
		}
		out = append(out, t)
	}
	return out
}
