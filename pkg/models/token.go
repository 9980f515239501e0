package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// TokenState is the runtime lifecycle state of a Token.
type TokenState string

const (
	TokenActive      TokenState = "ACTIVE"
	TokenWaiting     TokenState = "WAITING"
	TokenCompleted   TokenState = "COMPLETED"
	TokenCancelled   TokenState = "CANCELLED"
	TokenError       TokenState = "ERROR"
	TokenCompensation TokenState = "COMPENSATION"
)

// Token is the runtime execution quantum. Tokens live only in the fast store
// — this type is their JSON-serializable shape.
type Token struct {
	ID                uuid.UUID      `json:"id"`
	InstanceID        string         `json:"instance_id"`
	NodeID            string         `json:"node_id"`
	State             TokenState     `json:"state"`
	Data              map[string]any `json:"data"`
	ScopeID           string         `json:"scope_id,omitempty"`
	ParentInstanceID  string         `json:"parent_instance_id,omitempty"`
	ParentActivityID  string         `json:"parent_activity_id,omitempty"`
}

// NewToken creates an ACTIVE token with a fresh ID.
func NewToken(instanceID, nodeID string) *Token {
	return &Token{
		ID:         uuid.New(),
		InstanceID: instanceID,
		NodeID:     nodeID,
		State:      TokenActive,
		Data:       map[string]any{},
	}
}

// Clone returns a deep-enough copy for safe mutation under a fresh ID: the
// Data map is copied key by key (values are shared), and every other field
// is carried over unchanged.
func (t *Token) Clone() *Token {
	data := make(map[string]any, len(t.Data))
	for k, v := range t.Data {
		data[k] = v
	}
	return &Token{
		ID:               uuid.New(),
		InstanceID:       t.InstanceID,
		NodeID:           t.NodeID,
		State:            t.State,
		Data:             data,
		ScopeID:          t.ScopeID,
		ParentInstanceID: t.ParentInstanceID,
		ParentActivityID: t.ParentActivityID,
	}
}

// Marshal/Unmarshal round-trip the token through the fast store's ordered list.
func (t *Token) Marshal() ([]byte, error) { return json.Marshal(t) }

func UnmarshalToken(b []byte) (*Token, error) {
	var t Token
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ChildScope appends a segment to a scope path for subprocess entry or
// multi-instance expansion: "outer/inner".
func ChildScope(parent, segment string) string {
	if parent == "" {
		return segment
	}
	return parent + "/" + segment
}

// ParentScope strips the last segment of a scope path (subprocess exit).
func ParentScope(scope string) string {
	idx := strings.LastIndex(scope, "/")
	if idx < 0 {
		return ""
	}
	return scope[:idx]
}

// MultiInstanceSegment renders the scope segment for the i-th instance of a
// multi-instance activity: "{nodeId}_instance_{i}".
func MultiInstanceSegment(nodeID string, i int) string {
	return nodeID + "_instance_" + strconv.Itoa(i)
}

// ScopeChain walks a scope path from innermost to outermost (root last),
// used by variable resolution.
func ScopeChain(scope string) []string {
	if scope == "" {
		return []string{""}
	}
	segments := strings.Split(scope, "/")
	chain := make([]string, 0, len(segments)+1)
	for i := len(segments); i > 0; i-- {
		chain = append(chain, strings.Join(segments[:i], "/"))
	}
	chain = append(chain, "")
	return chain
}
