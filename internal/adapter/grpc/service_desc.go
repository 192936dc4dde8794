package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ReportServiceName is the fully qualified gRPC service name
const ReportServiceName = "momoney.v1.ReportService"

const (
	getReportMethod         = "/" + ReportServiceName + "/GetReport"
	listBudgetsMethod       = "/" + ReportServiceName + "/ListBudgets"
	recordTransactionMethod = "/" + ReportServiceName + "/RecordTransaction"
)

// ReportServiceServer is the server API for the ReportService service.
// Payloads are well-known protobuf types, so no generated code is needed.
type ReportServiceServer interface {
	GetReport(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ListBudgets(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	RecordTransaction(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// ReportServiceDesc describes the ReportService for grpc.Server.RegisterService
var ReportServiceDesc = grpc.ServiceDesc{
	ServiceName: ReportServiceName,
	HandlerType: (*ReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetReport", Handler: getReportHandler},
		{MethodName: "ListBudgets", Handler: listBudgetsHandler},
		{MethodName: "RecordTransaction", Handler: recordTransactionHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "momoney/v1/report.proto",
}

// RegisterReportServiceServer registers srv on s
func RegisterReportServiceServer(s grpc.ServiceRegistrar, srv ReportServiceServer) {
	s.RegisterService(&ReportServiceDesc, srv)
}

func getReportHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).GetReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getReportMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).GetReport(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func listBudgetsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).ListBudgets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: listBudgetsMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).ListBudgets(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func recordTransactionHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).RecordTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: recordTransactionMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).RecordTransaction(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// ReportServiceClient is the client API for the ReportService service
type ReportServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewReportServiceClient creates a client on an existing connection
func NewReportServiceClient(cc grpc.ClientConnInterface) *ReportServiceClient {
	return &ReportServiceClient{cc: cc}
}

// GetReport fetches a freshly generated report
func (c *ReportServiceClient) GetReport(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, getReportMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ListBudgets fetches the budget rows with their live progress
func (c *ReportServiceClient) ListBudgets(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, listBudgetsMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RecordTransaction stores a transaction described by in
func (c *ReportServiceClient) RecordTransaction(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, recordTransactionMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
