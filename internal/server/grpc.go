package server

import (
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-cloud-vault/internal/config"
	myGRPC "github.com/MKhiriev/go-cloud-vault/internal/handler/grpc"
	"github.com/MKhiriev/go-cloud-vault/internal/logger"
)

type grpcServer struct {
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		logger.Err(err).Str("address", cfg.GRPCAddress).Msg("error creating gRPC listener")
		return nil, err
	}

	return &grpcServer{
		server:          handler.Init(),
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Msgf("gRPC server Serve: %v", err)
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.server.GracefulStop()
}
