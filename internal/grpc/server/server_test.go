package server

import (
	"context"
	"encoding/base64"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"resume-composer/internal/config"
	"resume-composer/internal/fallback"
	"resume-composer/internal/generator"
	"resume-composer/internal/llm"
	"resume-composer/internal/llm/llmtest"
	"resume-composer/internal/logging"
)

func startServer(t *testing.T, provider *llmtest.FakeProvider) ResumeServiceClient {
	t.Helper()

	gen := generator.New(provider,
		generator.WithLogger(logging.Nop()),
		generator.WithSynthesizer(&fallback.Synthesizer{Now: func() time.Time {
			return time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
		}}),
	)
	srv := NewServer(config.Default(), gen, provider)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Start(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewResumeServiceClient(conn)
}

func generatePayload(t *testing.T, format string) *structpb.Struct {
	t.Helper()
	in, err := structpb.NewStruct(map[string]interface{}{
		"profile": map[string]interface{}{
			"name":      "Alice Y Jones",
			"job_title": "Machine Learning Engineer",
		},
		"job_description":       "Build ranking systems.",
		"work_responsibilities": "Owned the training pipeline.",
		"export_format":         format,
	})
	require.NoError(t, err)
	return in
}

func TestGenerateHTML(t *testing.T) {
	client := startServer(t, llmtest.Succeed("PROFESSIONAL SUMMARY\nRanks things well."))

	out, err := client.Generate(context.Background(), generatePayload(t, "html"))

	require.NoError(t, err)
	fields := out.AsMap()
	assert.Equal(t, "html", fields["format"])
	assert.Equal(t, "utf-8", fields["content_encoding"])
	assert.Equal(t, false, fields["fallback"])
	assert.Contains(t, fields["content"], "Ranks things well.")
}

func TestGenerateFallbackDocx(t *testing.T) {
	client := startServer(t, llmtest.Fail(llm.KindRateLimited, errors.New("429")))

	out, err := client.Generate(context.Background(), generatePayload(t, "docx"))

	require.NoError(t, err)
	fields := out.AsMap()
	assert.Equal(t, true, fields["fallback"])
	assert.Equal(t, generator.MessageFallback, fields["message"])
	assert.Equal(t, "resume_Alice_Y_Jones.docx", fields["filename"])

	raw, err := base64.StdEncoding.DecodeString(fields["content"].(string))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "PK"))
}

func TestGenerateSchemaRejection(t *testing.T) {
	fake := llmtest.Succeed("x")
	client := startServer(t, fake)

	in, err := structpb.NewStruct(map[string]interface{}{"profile": map[string]interface{}{"name": "Al"}})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), in)

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, err.Error(), "job_description")
	assert.Empty(t, fake.Calls())
}

func TestGenerateAuthFailure(t *testing.T) {
	client := startServer(t, llmtest.Fail(llm.KindAuthFailed, errors.New("invalid_api_key")))

	_, err := client.Generate(context.Background(), generatePayload(t, "html"))

	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Equal(t, generator.MessageAuth, status.Convert(err).Message())
}

func TestRender(t *testing.T) {
	client := startServer(t, llmtest.Succeed("unused"))

	in, err := structpb.NewStruct(map[string]interface{}{
		"text":          "EDUCATION\nBSc Physics",
		"export_format": "html",
	})
	require.NoError(t, err)

	out, err := client.Render(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, out.AsMap()["content"], "BSc Physics")
}

func TestHealthService(t *testing.T) {
	fake := llmtest.Succeed("x")
	fake.HealthErr = errors.New("no key")

	gen := generator.New(fake, generator.WithLogger(logging.Nop()))
	srv := NewServer(config.Default(), gen, fake)

	resp, err := srv.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ResumeServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)

	resp, err = srv.health.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	fake.HealthErr = nil
	srv.RefreshHealth(context.Background())
	resp, err = srv.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ResumeServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

func TestSchemasCompile(t *testing.T) {
	for _, name := range []string{"generate_request.json", "render_request.json"} {
		_, err := loadSchema(name)
		assert.NoError(t, err, name)
	}
}
