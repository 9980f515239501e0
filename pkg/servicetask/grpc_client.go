package servicetask

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	servicetaskpb "github.com/codeready-toolchain/pythmata/proto/servicetaskpb"
)

// GRPCServiceTaskClient implements Task by delegating to an out-of-process
// worker over gRPC: dial once, reuse the stub, translate request/response
// at the boundary.
type GRPCServiceTaskClient struct {
	conn   *grpc.ClientConn
	client servicetaskpb.ServiceTaskServiceClient
}

// NewGRPCServiceTaskClient dials addr with plaintext transport — the worker
// is expected to run as a sidecar or on localhost.
func NewGRPCServiceTaskClient(addr string) (*GRPCServiceTaskClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create service task client for %s: %w", addr, err)
	}
	return &GRPCServiceTaskClient{
		conn:   conn,
		client: servicetaskpb.NewServiceTaskServiceClient(conn),
	}, nil
}

// Execute implements Task.
func (c *GRPCServiceTaskClient) Execute(ctx context.Context, taskCtx Context, properties map[string]string) (map[string]any, error) {
	varsJSON, err := MarshalVariables(taskCtx.Variables)
	if err != nil {
		return nil, fmt.Errorf("marshaling variables: %w", err)
	}

	resp, err := c.client.Execute(ctx, &servicetaskpb.ExecuteRequest{
		TaskName:      properties["task_name"],
		InstanceId:    taskCtx.InstanceID,
		TaskId:        taskCtx.TaskID,
		Properties:    properties,
		VariablesJson: varsJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC Execute call failed: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("service task failed: %s", resp.ErrorMessage)
	}
	return UnmarshalResult(resp.ResultJson)
}

// Close releases the gRPC connection.
func (c *GRPCServiceTaskClient) Close() error {
	return c.conn.Close()
}
