package grpc

import (
	"context"

	grpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the full name of portfolio grpc service.
const ServiceName = "portfolio.Portfolio"

const (
	enhanceMethod         = "/" + ServiceName + "/Enhance"
	enhanceBatchMethod    = "/" + ServiceName + "/EnhanceBatch"
	topRepositoriesMethod = "/" + ServiceName + "/TopRepositories"
)

// PortfolioServer is the server API for portfolio service.
// All methods take and return google.protobuf.Struct messages.
type PortfolioServer interface {
	Enhance(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EnhanceBatch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	TopRepositories(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterPortfolioServer registers srv in grpc server.
func RegisterPortfolioServer(s grpc.ServiceRegistrar, srv PortfolioServer) {
	s.RegisterService(&portfolioServiceDesc, srv)
}

var portfolioServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PortfolioServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Enhance",
			Handler: unaryHandler(enhanceMethod, func(s PortfolioServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return s.Enhance(ctx, in)
			}),
		},
		{
			MethodName: "EnhanceBatch",
			Handler: unaryHandler(enhanceBatchMethod, func(s PortfolioServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return s.EnhanceBatch(ctx, in)
			}),
		},
		{
			MethodName: "TopRepositories",
			Handler: unaryHandler(topRepositoriesMethod, func(s PortfolioServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return s.TopRepositories(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "portfolio.proto",
}

type unaryCall func(PortfolioServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryCall) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PortfolioServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(PortfolioServer), ctx, req.(*structpb.Struct))
		}

		return interceptor(ctx, in, info, handler)
	}
}
