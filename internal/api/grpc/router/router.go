package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/dtroode/gourmet-server/internal/api/grpc/middleware"
	"github.com/dtroode/gourmet-server/internal/logger"
)

// Router represents the gRPC router of the service. It exposes the standard
// health service so orchestrators can check the process over gRPC.
type Router struct {
	health *health.Server
	logger *logger.Logger
}

// New creates new gRPC Router instance serving the given health server.
func New(healthServer *health.Server, logger *logger.Logger) *Router {
	return &Router{health: healthServer, logger: logger}
}

// Register builds the gRPC server with request logging and panic recovery.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoveryOpt := recovery.WithRecoveryHandlerContext(r.recover)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			logging.HandleGRPCStream,
			recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	healthpb.RegisterHealthServer(s, r.health)
	reflection.Register(s)

	return s
}

func (r *Router) recover(ctx context.Context, p any) error {
	r.logger.Error("recovered from panic in gRPC handler", "panic", p)
	return status.Error(codes.Internal, "internal server error")
}
