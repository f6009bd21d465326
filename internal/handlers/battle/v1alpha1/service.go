package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgbattle.api.v1alpha1.BattleService"

// Full method names
const (
	BattleService_StartBattle_FullMethodName       = "/" + ServiceName + "/StartBattle"
	BattleService_PlayTurn_FullMethodName          = "/" + ServiceName + "/PlayTurn"
	BattleService_GetBattle_FullMethodName         = "/" + ServiceName + "/GetBattle"
	BattleService_ListSpecies_FullMethodName       = "/" + ServiceName + "/ListSpecies"
	BattleService_GetTypeAdvantages_FullMethodName = "/" + ServiceName + "/GetTypeAdvantages"
	BattleService_ListHistory_FullMethodName       = "/" + ServiceName + "/ListHistory"
)

// BattleServiceServer is the server API for BattleService
type BattleServiceServer interface {
	StartBattle(context.Context, *StartBattleRequest) (*StartBattleResponse, error)
	PlayTurn(context.Context, *PlayTurnRequest) (*PlayTurnResponse, error)
	GetBattle(context.Context, *GetBattleRequest) (*GetBattleResponse, error)
	ListSpecies(context.Context, *ListSpeciesRequest) (*ListSpeciesResponse, error)
	GetTypeAdvantages(context.Context, *GetTypeAdvantagesRequest) (*GetTypeAdvantagesResponse, error)
	ListHistory(context.Context, *ListHistoryRequest) (*ListHistoryResponse, error)
}

// UnimplementedBattleServiceServer returns Unimplemented for every method
type UnimplementedBattleServiceServer struct{}

func (UnimplementedBattleServiceServer) StartBattle(context.Context, *StartBattleRequest) (*StartBattleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartBattle not implemented")
}

func (UnimplementedBattleServiceServer) PlayTurn(context.Context, *PlayTurnRequest) (*PlayTurnResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PlayTurn not implemented")
}

func (UnimplementedBattleServiceServer) GetBattle(context.Context, *GetBattleRequest) (*GetBattleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBattle not implemented")
}

func (UnimplementedBattleServiceServer) ListSpecies(context.Context, *ListSpeciesRequest) (*ListSpeciesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSpecies not implemented")
}

func (UnimplementedBattleServiceServer) GetTypeAdvantages(context.Context, *GetTypeAdvantagesRequest) (*GetTypeAdvantagesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTypeAdvantages not implemented")
}

func (UnimplementedBattleServiceServer) ListHistory(context.Context, *ListHistoryRequest) (*ListHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListHistory not implemented")
}

// RegisterBattleServiceServer registers srv on s
func RegisterBattleServiceServer(s grpc.ServiceRegistrar, srv BattleServiceServer) {
	s.RegisterService(&BattleService_ServiceDesc, srv)
}

// unaryHandler adapts one typed method to grpc.MethodHandler. Requests and
// responses cross the wire as battle.proto messages; interceptors see the Go
// request.
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(BattleServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		wire, err := newWire[Req]()
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		if err := dec(wire); err != nil {
			return nil, err
		}
		in := new(Req)
		if err := fromWire(wire, in); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		handler := func(ctx context.Context, req any) (any, error) {
			out, err := call(srv.(BattleServiceServer), ctx, req.(*Req))
			if err != nil {
				return nil, err
			}
			msg, err := toWire(out)
			if err != nil {
				return nil, status.Error(codes.Internal, err.Error())
			}
			return msg, nil
		}
		if interceptor == nil {
			return handler(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, handler)
	}
}

// BattleService_ServiceDesc describes BattleService for grpc.ServiceRegistrar
var BattleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BattleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartBattle",
			Handler:    unaryHandler(BattleService_StartBattle_FullMethodName, BattleServiceServer.StartBattle),
		},
		{
			MethodName: "PlayTurn",
			Handler:    unaryHandler(BattleService_PlayTurn_FullMethodName, BattleServiceServer.PlayTurn),
		},
		{
			MethodName: "GetBattle",
			Handler:    unaryHandler(BattleService_GetBattle_FullMethodName, BattleServiceServer.GetBattle),
		},
		{
			MethodName: "ListSpecies",
			Handler:    unaryHandler(BattleService_ListSpecies_FullMethodName, BattleServiceServer.ListSpecies),
		},
		{
			MethodName: "GetTypeAdvantages",
			Handler:    unaryHandler(BattleService_GetTypeAdvantages_FullMethodName, BattleServiceServer.GetTypeAdvantages),
		},
		{
			MethodName: "ListHistory",
			Handler:    unaryHandler(BattleService_ListHistory_FullMethodName, BattleServiceServer.ListHistory),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: ProtoPath,
}

// BattleServiceClient is the client API for BattleService
type BattleServiceClient interface {
	StartBattle(ctx context.Context, in *StartBattleRequest, opts ...grpc.CallOption) (*StartBattleResponse, error)
	PlayTurn(ctx context.Context, in *PlayTurnRequest, opts ...grpc.CallOption) (*PlayTurnResponse, error)
	GetBattle(ctx context.Context, in *GetBattleRequest, opts ...grpc.CallOption) (*GetBattleResponse, error)
	ListSpecies(ctx context.Context, in *ListSpeciesRequest, opts ...grpc.CallOption) (*ListSpeciesResponse, error)
	GetTypeAdvantages(ctx context.Context, in *GetTypeAdvantagesRequest, opts ...grpc.CallOption) (*GetTypeAdvantagesResponse, error)
	ListHistory(ctx context.Context, in *ListHistoryRequest, opts ...grpc.CallOption) (*ListHistoryResponse, error)
}

type battleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBattleServiceClient creates a BattleService client
func NewBattleServiceClient(cc grpc.ClientConnInterface) BattleServiceClient {
	return &battleServiceClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	wireIn, err := toWire(in)
	if err != nil {
		return nil, err
	}
	wireOut, err := newWire[Resp]()
	if err != nil {
		return nil, err
	}
	if err := cc.Invoke(ctx, method, wireIn, wireOut, opts...); err != nil {
		return nil, err
	}

	out := new(Resp)
	if err := fromWire(wireOut, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *battleServiceClient) StartBattle(ctx context.Context, in *StartBattleRequest, opts ...grpc.CallOption) (*StartBattleResponse, error) {
	return invoke[StartBattleRequest, StartBattleResponse](ctx, c.cc, BattleService_StartBattle_FullMethodName, in, opts)
}

func (c *battleServiceClient) PlayTurn(ctx context.Context, in *PlayTurnRequest, opts ...grpc.CallOption) (*PlayTurnResponse, error) {
	return invoke[PlayTurnRequest, PlayTurnResponse](ctx, c.cc, BattleService_PlayTurn_FullMethodName, in, opts)
}

func (c *battleServiceClient) GetBattle(ctx context.Context, in *GetBattleRequest, opts ...grpc.CallOption) (*GetBattleResponse, error) {
	return invoke[GetBattleRequest, GetBattleResponse](ctx, c.cc, BattleService_GetBattle_FullMethodName, in, opts)
}

func (c *battleServiceClient) ListSpecies(ctx context.Context, in *ListSpeciesRequest, opts ...grpc.CallOption) (*ListSpeciesResponse, error) {
	return invoke[ListSpeciesRequest, ListSpeciesResponse](ctx, c.cc, BattleService_ListSpecies_FullMethodName, in, opts)
}

func (c *battleServiceClient) GetTypeAdvantages(ctx context.Context, in *GetTypeAdvantagesRequest, opts ...grpc.CallOption) (*GetTypeAdvantagesResponse, error) {
	return invoke[GetTypeAdvantagesRequest, GetTypeAdvantagesResponse](ctx, c.cc, BattleService_GetTypeAdvantages_FullMethodName, in, opts)
}

func (c *battleServiceClient) ListHistory(ctx context.Context, in *ListHistoryRequest, opts ...grpc.CallOption) (*ListHistoryResponse, error) {
	return invoke[ListHistoryRequest, ListHistoryResponse](ctx, c.cc, BattleService_ListHistory_FullMethodName, in, opts)
}
