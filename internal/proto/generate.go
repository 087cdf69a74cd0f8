// Package proto holds the generated railticket.v1 gRPC contract. The source
// lives in api/proto.
package proto

//go:generate protoc --proto_path=../../api/proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/railticket --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/railticket railticket/v1/user_service.proto
