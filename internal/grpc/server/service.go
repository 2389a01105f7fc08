package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Fully qualified names of the resume service and its methods
const (
	ResumeServiceName    = "resume.v1.ResumeService"
	GenerateFullMethod   = "/" + ResumeServiceName + "/Generate"
	RenderFullMethod     = "/" + ResumeServiceName + "/Render"
	resumeServiceProtoID = "resume/v1/resume.proto"
)

// ResumeServiceServer is the server API for the resume service. Payloads are
// google.protobuf.Struct messages carrying the same fields as the JSON API.
type ResumeServiceServer interface {
	Generate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Render(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterResumeServiceServer registers srv on s
func RegisterResumeServiceServer(s grpc.ServiceRegistrar, srv ResumeServiceServer) {
	s.RegisterService(&ResumeServiceDesc, srv)
}

func resumeGenerateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResumeServiceServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GenerateFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResumeServiceServer).Generate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func resumeRenderHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResumeServiceServer).Render(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RenderFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResumeServiceServer).Render(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// ResumeServiceDesc is the grpc.ServiceDesc for the resume service
var ResumeServiceDesc = grpc.ServiceDesc{
	ServiceName: ResumeServiceName,
	HandlerType: (*ResumeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Generate", Handler: resumeGenerateHandler},
		{MethodName: "Render", Handler: resumeRenderHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: resumeServiceProtoID,
}

// ResumeServiceClient is the client API for the resume service
type ResumeServiceClient interface {
	Generate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Render(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type resumeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewResumeServiceClient creates a client over an established connection
func NewResumeServiceClient(cc grpc.ClientConnInterface) ResumeServiceClient {
	return &resumeServiceClient{cc: cc}
}

func (c *resumeServiceClient) Generate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GenerateFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *resumeServiceClient) Render(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, RenderFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
