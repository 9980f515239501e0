// Package proto holds the .proto sources for the engine's out-of-process
// service-task RPC. Generated Go bindings land under servicetaskpb/.
package proto

//go:generate protoc --go_out=. --go_opt=module=github.com/codeready-toolchain/pythmata --go-grpc_out=. --go-grpc_opt=module=github.com/codeready-toolchain/pythmata servicetask/servicetask.proto
