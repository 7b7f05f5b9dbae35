package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-cloud-vault/internal/logger"
	"github.com/MKhiriev/go-cloud-vault/internal/store"
)

// ServiceName is the health-check service identifier exposed to
// orchestrators probing the blob server.
const ServiceName = "cloudvault.BlobService"

// Handler is the root gRPC transport handler.
//
// The gRPC surface currently exposes only the standard health service, which
// deployment tooling uses for liveness and readiness probes. The repository
// reference is kept so future blob RPCs can delegate to storage.
type Handler struct {
	repo store.BlobRepository

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided repository and logger.
func NewHandler(repo store.BlobRepository, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Init builds the gRPC server with the health service registered and
// serving.
func (h *Handler) Init() *grpc.Server {
	server := grpc.NewServer()

	healthServer := health.NewServer()
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(server, healthServer)

	return server
}
