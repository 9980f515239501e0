package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/pythmata/pkg/config"
	"github.com/codeready-toolchain/pythmata/pkg/database"
	"github.com/codeready-toolchain/pythmata/pkg/executor"
	"github.com/codeready-toolchain/pythmata/pkg/faststore"
	"github.com/codeready-toolchain/pythmata/pkg/instance"
	"github.com/codeready-toolchain/pythmata/pkg/scheduler"
	"github.com/codeready-toolchain/pythmata/pkg/script"
	"github.com/codeready-toolchain/pythmata/pkg/servicetask"
	"github.com/codeready-toolchain/pythmata/pkg/token"
	"github.com/codeready-toolchain/pythmata/test/util"
)

const linearXML = `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <task id="Task_1"/>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Task_1"/>
    <sequenceFlow id="F_2" sourceRef="Task_1" targetRef="End_1"/>
  </process>
</definitions>`

func newTestServer(t *testing.T) *Server {
	t.Helper()

	entClient, db := util.SetupTestDatabase(t)
	dbClient := database.NewClientFromEnt(entClient, db)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	fast := faststore.New(rdb)

	tokens := token.NewManager(fast)
	instances := instance.NewManager(entClient, fast, tokens)
	scriptEnv, err := script.NewEnv()
	require.NoError(t, err)

	sched := scheduler.New(entClient, fast, tokens, instances, nil, scheduler.Config{
		ScanInterval:  time.Hour,
		PollInterval:  50 * time.Millisecond,
		LockTTL:       30 * time.Second,
		MaxIterations: 1000,
		WorkerCount:   2,
	}, slog.Default())
	sched.SetDispatcher(executor.New(tokens, fast, instances, scriptEnv, servicetask.NewRegistry(), sched, slog.Default()))

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	t.Cleanup(func() {
		cancel()
		sched.Stop()
	})

	cfg := config.DefaultConfig()
	return NewServer(cfg, dbClient, instances, sched, fast)
}

func deploy(t *testing.T, s *Server, defID, xml string) {
	t.Helper()
	_, err := s.dbClient.ProcessDefinition.Create().
		SetID(defID).
		SetName(defID).
		SetVersion(1).
		SetBpmnXML(xml).
		Save(context.Background())
	require.NoError(t, err)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestCreateInstance_RunsToCompletion(t *testing.T) {
	s := newTestServer(t)
	deploy(t, s, "def-1", linearXML)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/instances", CreateInstanceRequest{
		DefinitionID: "def-1",
		InstanceID:   "inst-api-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.Eventually(t, func() bool {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/instances/inst-api-1", nil)
		if rec.Code != http.StatusOK {
			return false
		}
		var inst map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &inst); err != nil {
			return false
		}
		return inst["status"] == "COMPLETED"
	}, 10*time.Second, 25*time.Millisecond)
}

func TestCreateInstance_UnknownDefinition(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/instances", CreateInstanceRequest{DefinitionID: "ghost"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "definition errors map to 400")
}

func TestCreateInstance_MissingDefinitionID(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/instances", CreateInstanceRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetInstance_NotFound(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/instances/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListInstances_StatusFilter(t *testing.T) {
	s := newTestServer(t)
	deploy(t, s, "def-1", linearXML)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/instances?status=BOGUS", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/instances?status=RUNNING", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSuspendResumeTransitions(t *testing.T) {
	s := newTestServer(t)
	deploy(t, s, "def-1", linearXML)

	// Create the row without running it so it stays RUNNING with a parked token.
	_, err := s.instances.CreateInstance(context.Background(), "inst-sr", "def-1", nil, "")
	require.NoError(t, err)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/instances/inst-sr/suspend", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Suspending twice is an invalid transition.
	rec = doJSON(t, s, http.MethodPost, "/api/v1/instances/inst-sr/suspend", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/instances/inst-sr/resume", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestValidateDefinitionEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/definitions/validate", ValidateDefinitionRequest{BpmnXML: linearXML})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ValidateDefinitionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/definitions/validate", ValidateDefinitionRequest{BpmnXML: ""})
	require.Equal(t, http.StatusOK, rec.Code, "validation failures are a result, not an HTTP error")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "EMPTY_XML", resp.Errors[0].Code)
}

func TestPublishEventValidation(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/messages", PublishEventRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/signals", PublishEventRequest{Name: "halt"})
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
