package railway_service_api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/Domenick1991/railbooking/internal/service/stations"
	"github.com/Domenick1991/railbooking/internal/service/trains"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "railway.v1.RailwayService"

// RailwayServiceServer is the read and booking surface exposed over gRPC.
// Requests and responses are google.protobuf.Struct documents carrying the
// same JSON shapes as the REST API.
type RailwayServiceServer interface {
	ListTrains(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetTrain(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SearchTrains(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListStations(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetStation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CreateBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListBookingsByEmail(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CancelBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type Server struct {
	trains   trains.TrainUseCase
	stations stations.StationUseCase
	bookings booking.BookingUseCase
}

func NewServer(trains trains.TrainUseCase, stations stations.StationUseCase, bookings booking.BookingUseCase) *Server {
	return &Server{trains: trains, stations: stations, bookings: bookings}
}

// Register attaches the service to a gRPC server.
func Register(s *grpc.Server, srv RailwayServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func (s *Server) ListTrains(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	list, err := s.trains.List(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return listResponse(list)
}

func (s *Server) GetTrain(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	train, err := s.trains.GetByID(ctx, stringField(req, "id"))
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(train)
}

func (s *Server) SearchTrains(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var query domain.TrainSearch
	if err := fromStruct(req, &query); err != nil {
		return nil, err
	}
	list, err := s.trains.Search(ctx, query)
	if err != nil {
		return nil, toStatus(err)
	}
	return listResponse(list)
}

func (s *Server) ListStations(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var (
		list []domain.Station
		err  error
	)
	if city := stringField(req, "city"); city != "" {
		list, err = s.stations.SearchByCity(ctx, city)
	} else {
		list, err = s.stations.List(ctx)
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return listResponse(list)
}

func (s *Server) GetStation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var (
		station *domain.Station
		err     error
	)
	if code := stringField(req, "code"); code != "" {
		station, err = s.stations.GetByCode(ctx, code)
	} else {
		station, err = s.stations.GetByID(ctx, stringField(req, "id"))
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(station)
}

func (s *Server) CreateBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input booking.CreateBookingInput
	if err := fromStruct(req, &input); err != nil {
		return nil, err
	}
	created, err := s.bookings.CreateBooking(ctx, input)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(created)
}

func (s *Server) GetBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	b, err := s.bookings.GetByID(ctx, stringField(req, "id"))
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(b)
}

func (s *Server) ListBookingsByEmail(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	list, err := s.bookings.ListByEmail(ctx, stringField(req, "email"))
	if err != nil {
		return nil, toStatus(err)
	}
	return listResponse(list)
}

func (s *Server) CancelBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	b, err := s.bookings.CancelBooking(ctx, stringField(req, "id"))
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(b)
}

// toStatus maps domain errors onto gRPC codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientSeats):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func stringField(req *structpb.Struct, name string) string {
	if req == nil {
		return ""
	}
	return req.GetFields()[name].GetStringValue()
}

func fromStruct(req *structpb.Struct, dst interface{}) error {
	if req == nil {
		req = &structpb.Struct{}
	}
	raw, err := protojson.Marshal(req)
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "encode request: %v", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return nil
}

func toStruct(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}

func listResponse[T any](items []T) (*structpb.Struct, error) {
	if items == nil {
		items = []T{}
	}
	return toStruct(struct {
		Count int `json:"count"`
		Data  []T `json:"data"`
	}{Count: len(items), Data: items})
}

func unaryHandler(method string, call func(RailwayServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(RailwayServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fmt.Sprintf("/%s/%s", ServiceName, method),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(RailwayServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes RailwayService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RailwayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("ListTrains", RailwayServiceServer.ListTrains),
		unaryHandler("GetTrain", RailwayServiceServer.GetTrain),
		unaryHandler("SearchTrains", RailwayServiceServer.SearchTrains),
		unaryHandler("ListStations", RailwayServiceServer.ListStations),
		unaryHandler("GetStation", RailwayServiceServer.GetStation),
		unaryHandler("CreateBooking", RailwayServiceServer.CreateBooking),
		unaryHandler("GetBooking", RailwayServiceServer.GetBooking),
		unaryHandler("ListBookingsByEmail", RailwayServiceServer.ListBookingsByEmail),
		unaryHandler("CancelBooking", RailwayServiceServer.CancelBooking),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "railway.proto",
}

// Invoke calls method on conn. It is the client half of ServiceDesc.
func Invoke(ctx context.Context, conn grpc.ClientConnInterface, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := conn.Invoke(ctx, fmt.Sprintf("/%s/%s", ServiceName, method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
