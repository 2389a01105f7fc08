package mux

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"resume-composer/internal/config"
	"resume-composer/internal/generator"
	"resume-composer/internal/grpc/server"
	"resume-composer/internal/llm/llmtest"
	"resume-composer/internal/logging"
)

func TestServesHTTPAndGRPCOnOnePort(t *testing.T) {
	cfg := config.Default()
	fake := llmtest.Succeed("EDUCATION\nBSc")
	gen := generator.New(fake, generator.WithLogger(logging.Nop()))

	httpMux := http.NewServeMux()
	httpMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	m := NewMultiplexer(cfg, server.NewServer(cfg, gen, fake), httpMux)
	m.Serve(lis)
	defer m.Stop()

	assert.True(t, m.IsHealthy())
	addr := m.GetAddress()

	resp, err := http.Get("http://" + addr + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	hc, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, hc.Status)
}
