// Package faststore wraps Redis as the engine's fast store: token
// lists, the variable hash, TTL locks, message/signal subscriptions, timer
// metadata, and the compensation registry. Every multi-step mutation that
// touches more than one key goes through a transactional pipeline so a
// crash mid-step cannot leave orphan keys.
package faststore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/codeready-toolchain/pythmata/pkg/models"
)

// DefaultLockTTL is the default lifetime of lock:process:{instance}.
const DefaultLockTTL = 30 * time.Second

// Store is the fast-store client. It is safe for concurrent use — the
// underlying redis.Client pools its own connections.
type Store struct {
	rdb *redis.Client
}

// New wraps an already-configured redis.Client.
func New(rdb *redis.Client) *Store { return &Store{rdb: rdb} }

// Connect dials Redis from a URL (e.g. "redis://localhost:6379/0").
func Connect(ctx context.Context, url string, poolSize int) (*Store, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	if poolSize > 0 {
		opt.PoolSize = poolSize
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return &Store{rdb: rdb}, nil
}

func (s *Store) Close() error { return s.rdb.Close() }

// Key layout.
func tokensKey(instanceID string) string       { return "process:" + instanceID + ":tokens" }
func stateKey(instanceID string) string        { return "process:" + instanceID + ":state" }
func varsKey(instanceID string) string         { return "process:" + instanceID + ":vars" }
func lockKey(instanceID string) string         { return "lock:process:" + instanceID }
func timerMetaKey(defID, nodeID string) string { return "pythmata:timer:" + defID + ":" + nodeID + ":metadata" }
func compensationKey(instanceID string) string { return "compensation:" + instanceID }
func txnKey(instanceID string) string          { return "process:" + instanceID + ":txn" }
func msgSubKey(name, instanceID, nodeID string) string {
	return "subscription:message:" + name + ":" + instanceID + ":" + nodeID
}
func sigSubKey(name, instanceID, nodeID string) string {
	return "subscription:signal:" + name + ":" + instanceID + ":" + nodeID
}

// --- Tokens ---

// Tokens returns the current ordered token list for an instance.
func (s *Store) Tokens(ctx context.Context, instanceID string) ([]*models.Token, error) {
	raw, err := s.rdb.LRange(ctx, tokensKey(instanceID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading token list: %w", err)
	}
	tokens := make([]*models.Token, 0, len(raw))
	for _, r := range raw {
		tok, err := models.UnmarshalToken([]byte(r))
		if err != nil {
			return nil, fmt.Errorf("decoding token: %w", err)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// TokenAt returns the first token at nodeID (and scopeID, if non-empty), or
// nil if none exists.
func (s *Store) TokenAt(ctx context.Context, instanceID, nodeID, scopeID string) (*models.Token, error) {
	tokens, err := s.Tokens(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	for _, t := range tokens {
		if t.NodeID == nodeID && (scopeID == "" || t.ScopeID == scopeID) {
			return t, nil
		}
	}
	return nil, nil
}

// AppendToken pushes a token onto the list within the given pipeline (or
// directly against rdb if pipe is nil).
func (s *Store) AppendToken(ctx context.Context, pipe redis.Pipeliner, tok *models.Token) error {
	b, err := tok.Marshal()
	if err != nil {
		return err
	}
	cmdable := s.cmdable(pipe)
	return cmdable.RPush(ctx, tokensKey(tok.InstanceID), b).Err()
}

// ReplaceTokens atomically rewrites the whole token list for an instance —
// used by move/split/consume, which reread-then-rewrite rather than
// surgically removing one element, to keep list order deterministic.
func (s *Store) ReplaceTokens(ctx context.Context, pipe redis.Pipeliner, instanceID string, tokens []*models.Token) error {
	cmdable := s.cmdable(pipe)
	key := tokensKey(instanceID)
	if err := cmdable.Del(ctx, key).Err(); err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}
	vals := make([]any, 0, len(tokens))
	for _, t := range tokens {
		b, err := t.Marshal()
		if err != nil {
			return err
		}
		vals = append(vals, b)
	}
	return cmdable.RPush(ctx, key, vals...).Err()
}

// Pipeline runs fn inside a transactional (MULTI/EXEC) pipeline, satisfying
// the contract that any mutation touching the token list plus an
// auxiliary key is atomic.
func (s *Store) Pipeline(ctx context.Context, fn func(pipe redis.Pipeliner) error) error {
	_, err := s.rdb.TxPipelined(ctx, fn)
	return err
}

// cmdable lets callers pass either a pipeliner (inside Pipeline) or nil to
// operate directly against the client.
func (s *Store) cmdable(pipe redis.Pipeliner) redis.Cmdable {
	if pipe != nil {
		return pipe
	}
	return s.rdb
}

// --- Variables ---

// SetVariable writes {scope}:{name} -> JSON value into the instance's
// variable hash.
func (s *Store) SetVariable(ctx context.Context, pipe redis.Pipeliner, instanceID, scopeID, name string, value models.VariableValue) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.cmdable(pipe).HSet(ctx, varsKey(instanceID), models.ScopedName(scopeID, name), b).Err()
}

// GetVariable reads a single scoped variable, returning (zero, false) if unset.
func (s *Store) GetVariable(ctx context.Context, instanceID, scopeID, name string) (models.VariableValue, bool, error) {
	raw, err := s.rdb.HGet(ctx, varsKey(instanceID), models.ScopedName(scopeID, name)).Result()
	if err == redis.Nil {
		return models.VariableValue{}, false, nil
	}
	if err != nil {
		return models.VariableValue{}, false, err
	}
	var v models.VariableValue
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return models.VariableValue{}, false, err
	}
	return v, true, nil
}

// ResolveVariable walks the scope chain innermost-first:
// absent keys anywhere in the chain return (zero, false, nil) — callers
// translate that to a null value, never an error.
func (s *Store) ResolveVariable(ctx context.Context, instanceID, scopeID, name string) (models.VariableValue, bool, error) {
	for _, scope := range models.ScopeChain(scopeID) {
		v, ok, err := s.GetVariable(ctx, instanceID, scope, name)
		if err != nil {
			return models.VariableValue{}, false, err
		}
		if ok {
			return v, true, nil
		}
	}
	return models.VariableValue{}, false, nil
}

// AllVariables returns the full scoped-name -> value map for an instance,
// used to seed expression-evaluation contexts.
func (s *Store) AllVariables(ctx context.Context, instanceID string) (map[string]models.VariableValue, error) {
	raw, err := s.rdb.HGetAll(ctx, varsKey(instanceID)).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.VariableValue, len(raw))
	for k, v := range raw {
		var vv models.VariableValue
		if err := json.Unmarshal([]byte(v), &vv); err != nil {
			return nil, err
		}
		out[k] = vv
	}
	return out, nil
}

// --- Locks ---

// AcquireLock attempts lock:process:{instance} with a TTL, returning whether
// it was acquired.
func (s *Store) AcquireLock(ctx context.Context, instanceID string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return s.rdb.SetNX(ctx, lockKey(instanceID), "1", ttl).Result()
}

// RefreshLock extends the TTL on an already-held lock (for long-running
// batches).
func (s *Store) RefreshLock(ctx context.Context, instanceID string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return s.rdb.Expire(ctx, lockKey(instanceID), ttl).Err()
}

// ReleaseLock drops the instance lock.
func (s *Store) ReleaseLock(ctx context.Context, instanceID string) error {
	return s.rdb.Del(ctx, lockKey(instanceID)).Err()
}

// --- Subscriptions ---

// Subscription is the payload registered while a message/signal intermediate
// or boundary event waits.
type Subscription struct {
	Name             string `json:"name"`
	InstanceID       string `json:"instance_id"`
	NodeID           string `json:"node_id"`
	CorrelationValue string `json:"correlation_value,omitempty"`
}

// SubscribeMessage registers a message subscription under
// subscription:message:{name}:{instance}:{node}.
func (s *Store) SubscribeMessage(ctx context.Context, name, instanceID, nodeID, correlation string) error {
	return s.subscribe(ctx, msgSubKey(name, instanceID, nodeID), Subscription{name, instanceID, nodeID, correlation})
}

// SubscribeSignal registers a signal subscription.
func (s *Store) SubscribeSignal(ctx context.Context, name, instanceID, nodeID, correlation string) error {
	return s.subscribe(ctx, sigSubKey(name, instanceID, nodeID), Subscription{name, instanceID, nodeID, correlation})
}

func (s *Store) subscribe(ctx context.Context, key string, sub Subscription) error {
	b, err := json.Marshal(sub)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, b, 0).Err()
}

// UnsubscribeMessage/UnsubscribeSignal remove a resolved or cancelled subscription.
func (s *Store) UnsubscribeMessage(ctx context.Context, name, instanceID, nodeID string) error {
	return s.rdb.Del(ctx, msgSubKey(name, instanceID, nodeID)).Err()
}

func (s *Store) UnsubscribeSignal(ctx context.Context, name, instanceID, nodeID string) error {
	return s.rdb.Del(ctx, sigSubKey(name, instanceID, nodeID)).Err()
}

// PublishMessage/PublishSignal deliver a payload to every matching
// subscription via Redis pub/sub; the event bus bridge's message/signal
// consumer (pkg/scheduler) resolves waiting executors on receipt.
func (s *Store) PublishMessage(ctx context.Context, name, correlation string, payload map[string]any) error {
	return s.publish(ctx, "pythmata:events:message:"+name, correlation, payload)
}

func (s *Store) PublishSignal(ctx context.Context, name, correlation string, payload map[string]any) error {
	return s.publish(ctx, "pythmata:events:signal:"+name, correlation, payload)
}

func (s *Store) publish(ctx context.Context, channel, correlation string, payload map[string]any) error {
	env := map[string]any{"correlation_value": correlation, "payload": payload}
	b, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return s.rdb.Publish(ctx, channel, b).Err()
}

// SubscribeChannel returns a raw pub/sub handle for consuming message or
// signal deliveries — used by the scheduler's event bus bridge.
func (s *Store) SubscribeChannel(ctx context.Context, channel string) *redis.PubSub {
	return s.rdb.Subscribe(ctx, channel)
}

// SubscribePattern is SubscribeChannel for a glob pattern, used to fan in
// every message/signal name at once (the scheduler doesn't know in advance
// which names a deployed definition will wait on).
func (s *Store) SubscribePattern(ctx context.Context, pattern string) *redis.PubSub {
	return s.rdb.PSubscribe(ctx, pattern)
}

// FindMessageSubscriptions/FindSignalSubscriptions resolve every waiter
// registered against name into its Subscription record, for the scheduler's
// delivery consumer to match against an incoming publish's correlation
// value.
func (s *Store) FindMessageSubscriptions(ctx context.Context, name string) ([]Subscription, error) {
	return s.scanSubscriptions(ctx, "subscription:message:"+name+":*")
}

func (s *Store) FindSignalSubscriptions(ctx context.Context, name string) ([]Subscription, error) {
	return s.scanSubscriptions(ctx, "subscription:signal:"+name+":*")
}

func (s *Store) scanSubscriptions(ctx context.Context, pattern string) ([]Subscription, error) {
	iter := s.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	var out []Subscription
	for iter.Next(ctx) {
		raw, err := s.rdb.Get(ctx, iter.Val()).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, err
		}
		var sub Subscription
		if err := json.Unmarshal([]byte(raw), &sub); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Timer metadata ---

// TimerMetadata mirrors a scheduled timer's descriptor to the fast store so
// a new scheduler instance can rehydrate jobs on startup.
type TimerMetadata struct {
	DefinitionID string    `json:"definition_id"`
	NodeID       string    `json:"node_id"`
	TimerDef     string    `json:"timer_def"`
	TimerType    string    `json:"timer_type"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Store) SetTimerMetadata(ctx context.Context, meta TimerMetadata) error {
	b, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, timerMetaKey(meta.DefinitionID, meta.NodeID), b, 0).Err()
}

func (s *Store) GetTimerMetadata(ctx context.Context, defID, nodeID string) (*TimerMetadata, error) {
	raw, err := s.rdb.Get(ctx, timerMetaKey(defID, nodeID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var meta TimerMetadata
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) DeleteTimerMetadata(ctx context.Context, defID, nodeID string) error {
	return s.rdb.Del(ctx, timerMetaKey(defID, nodeID)).Err()
}

// --- Compensation registry ---

// CompensationEntry records one handler registered against an activity's
// completion.
type CompensationEntry struct {
	ActivityID      string `json:"activity_id"`
	HandlerID       string `json:"handler_id"`
	BoundaryEventID string `json:"boundary_event_id"`
	Snapshot        map[string]any `json:"snapshot,omitempty"`
}

// RegisterCompensation appends a handler in activity-completion order
// (LIFO replay happens at read time, in ListCompensation).
func (s *Store) RegisterCompensation(ctx context.Context, instanceID string, entry CompensationEntry) error {
	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.rdb.RPush(ctx, compensationKey(instanceID), b).Err()
}

// ListCompensation returns registered handlers in reverse (LIFO) order, per
// compensation throw events replay handlers last-registered-first.
func (s *Store) ListCompensation(ctx context.Context, instanceID string) ([]CompensationEntry, error) {
	raw, err := s.rdb.LRange(ctx, compensationKey(instanceID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]CompensationEntry, len(raw))
	for i, r := range raw {
		if err := json.Unmarshal([]byte(r), &out[i]); err != nil {
			return nil, err
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// --- Multi-instance completion tracking ---

// miKey extends the per-instance key layout, scoped the same way as the
// other per-instance auxiliary keys: a hash tracking how many of a
// multi-instance activity's parallel children have completed. Completed
// children's tokens are removed, so the count needs its own home and is
// read fresh on every completion rather than cached.
func miKey(instanceID, activityID string) string {
	return "process:" + instanceID + ":mi:" + activityID
}

func (s *Store) InitMultiInstance(ctx context.Context, instanceID, activityID string, total int) error {
	return s.rdb.HSet(ctx, miKey(instanceID, activityID), "total", total, "completed", 0).Err()
}

// IncrMultiInstanceCompleted atomically bumps the completed counter and
// returns the new (completed, total) pair.
func (s *Store) IncrMultiInstanceCompleted(ctx context.Context, instanceID, activityID string) (completed, total int, err error) {
	key := miKey(instanceID, activityID)
	completed64, err := s.rdb.HIncrBy(ctx, key, "completed", 1).Result()
	if err != nil {
		return 0, 0, err
	}
	totalStr, err := s.rdb.HGet(ctx, key, "total").Result()
	if err != nil {
		return 0, 0, err
	}
	total, _ = strconv.Atoi(totalStr)
	return int(completed64), total, nil
}

func (s *Store) ClearMultiInstance(ctx context.Context, instanceID, activityID string) error {
	return s.rdb.Del(ctx, miKey(instanceID, activityID)).Err()
}

// --- Transaction context ---

// BeginTransaction records the active transaction subprocess for an
// instance under process:{instance}:txn. SET NX makes the
// at-most-one-active-transaction check atomic across replicas, the same
// way the instance lock works; ok is false when a transaction is already
// active. The key has no TTL — it lives until EndTransaction or instance
// cleanup, surviving restarts.
func (s *Store) BeginTransaction(ctx context.Context, instanceID, txnID string) (bool, error) {
	return s.rdb.SetNX(ctx, txnKey(instanceID), txnID, 0).Result()
}

// EndTransaction clears the active-transaction marker, reporting whether
// one was actually active.
func (s *Store) EndTransaction(ctx context.Context, instanceID string) (bool, error) {
	n, err := s.rdb.Del(ctx, txnKey(instanceID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ActiveTransaction returns the active transaction subprocess ID, or ""
// when none is active.
func (s *Store) ActiveTransaction(ctx context.Context, instanceID string) (string, error) {
	id, err := s.rdb.Get(ctx, txnKey(instanceID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return id, err
}

// --- Cleanup ---

// ClearInstance removes every fast-store key for an instance: tokens, vars,
// state snapshot, lock, transaction context, and compensation registry —
// instance completion and termination both end here.
func (s *Store) ClearInstance(ctx context.Context, instanceID string) error {
	keys := []string{
		tokensKey(instanceID),
		stateKey(instanceID),
		varsKey(instanceID),
		lockKey(instanceID),
		txnKey(instanceID),
		compensationKey(instanceID),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return err
	}
	return s.clearByPattern(ctx,
		"subscription:message:*:"+instanceID+":*",
		"subscription:signal:*:"+instanceID+":*",
		"process:"+instanceID+":mi:*",
	)
}

// clearByPattern SCANs for keys matching each glob pattern and deletes them.
// Subscription and multi-instance-tracking keys aren't addressable by
// instance ID alone (they're keyed by name/node, or by activity), so a
// direct DEL on a fixed key list (as used for the other fast-store keys)
// can't reach them; SCAN is the standard Redis idiom for bounded cleanup
// sweeps like this one.
func (s *Store) clearByPattern(ctx context.Context, patterns ...string) error {
	for _, pattern := range patterns {
		iter := s.rdb.Scan(ctx, 0, pattern, 100).Iterator()
		var batch []string
		for iter.Next(ctx) {
			batch = append(batch, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}
		if len(batch) > 0 {
			if err := s.rdb.Del(ctx, batch...).Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Raw exposes the underlying client for components (scheduler job store,
// subscriptions) that need Redis primitives this wrapper doesn't cover.
func (s *Store) Raw() *redis.Client { return s.rdb }
