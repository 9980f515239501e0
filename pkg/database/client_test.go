package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient starts a dedicated PostgreSQL container and connects a
// Client to it (kept inline to avoid an import cycle with test/util).
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	client, err := NewClient(ctx, Config{
		Host:            host,
		Port:            port.Int(),
		User:            "test",
		Password:        "test",
		Database:        "test",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 15 * time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.EnsureSchema(ctx))
	return client
}

func TestClient_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()
	client := newTestClient(t)

	def, err := client.ProcessDefinition.Create().
		SetID("def-1").
		SetName("order-flow").
		SetVersion(1).
		SetBpmnXML("<definitions/>").
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "order-flow", def.Name)

	inst, err := client.ProcessInstance.Create().
		SetID("inst-1").
		SetDefinitionID("def-1").
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RUNNING", string(inst.Status), "instances are created RUNNING")

	got, err := client.ProcessInstance.Get(ctx, "inst-1")
	require.NoError(t, err)
	assert.Equal(t, "def-1", got.DefinitionID)
	assert.False(t, got.StartTime.IsZero())
}

func TestClient_Health(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	client := newTestClient(t)

	status, err := Health(context.Background(), client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.Positive(t, status.MaxOpenConns)
}
