package server

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"

	"resume-composer/internal/config"
	"resume-composer/internal/grpc/interceptors"
	"resume-composer/internal/logging"
	"resume-composer/pkg/models"
)

// ResumeService is the part of the generator the gRPC service depends on
type ResumeService interface {
	Generate(ctx context.Context, req models.GenerationRequest) (*models.RenderedDocument, error)
	Render(raw string, profile models.CandidateProfile, format models.ExportFormat) (*models.RenderedDocument, error)
}

// ProviderStatus reports whether AI generation is available
type ProviderStatus interface {
	IsHealthy(ctx context.Context) error
}

type Server struct {
	cfg      *config.Config
	service  ResumeService
	provider ProviderStatus
	logger   logging.Logger

	grpcServer *grpc.Server
	health     *health.Server
}

func NewServer(cfg *config.Config, service ResumeService, provider ProviderStatus) *Server {
	s := &Server{
		cfg:      cfg,
		service:  service,
		provider: provider,
		logger:   logging.GetGlobalLogger(),
		health:   health.NewServer(),
	}

	s.grpcServer = grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    30 * time.Second,
			Timeout: 5 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             5 * time.Second,
			PermitWithoutStream: true,
		}),
		grpc.MaxRecvMsgSize(maxRecvSize(cfg)),
		grpc.MaxSendMsgSize(32*1024*1024), // 32MB
		grpc.ChainUnaryInterceptor(
			interceptors.RecoveryInterceptor(),
			interceptors.LoggingInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			interceptors.StreamRecoveryInterceptor(),
			interceptors.StreamLoggingInterceptor(),
		),
	)

	RegisterResumeServiceServer(s.grpcServer, s)
	healthpb.RegisterHealthServer(s.grpcServer, s.health)
	s.RefreshHealth(context.Background())

	return s
}

// RefreshHealth publishes the provider state on the standard health service.
// The overall server stays SERVING because rendering never needs the provider.
func (s *Server) RefreshHealth(ctx context.Context) {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	state := healthpb.HealthCheckResponse_SERVING
	if s.provider == nil || s.provider.IsHealthy(ctx) != nil {
		state = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus(ResumeServiceName, state)
}

func (s *Server) Start(lis net.Listener) error {
	s.logger.Info("Starting gRPC server", map[string]interface{}{
		"address": lis.Addr().String(),
	})

	return s.grpcServer.Serve(lis)
}

func (s *Server) Stop() {
	s.logger.Info("Shutting down gRPC server...")
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}

func maxRecvSize(cfg *config.Config) int {
	if cfg.Generation.MaxRequestBytes <= 0 {
		return 4 * 1024 * 1024 // grpc default
	}
	return int(cfg.Generation.MaxRequestBytes)
}
