package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"resume-composer/internal/exporter"
	"resume-composer/internal/generator"
	"resume-composer/pkg/models"
	"resume-composer/pkg/utils"
)

var (
	generateSchema = mustLoadSchema("generate_request.json")
	renderSchema   = mustLoadSchema("render_request.json")
)

// Generate implements the Generate gRPC method
func (s *Server) Generate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	requestID := utils.GenerateRequestID()

	var req models.GenerationRequest
	if err := decodePayload(in, generateSchema, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	s.logger.Info("gRPC resume generation request received", map[string]interface{}{
		"request_id":    requestID,
		"method":        "Generate",
		"export_format": string(req.ExportFormat.Normalize()),
	})

	doc, err := s.service.Generate(ctx, req)
	if err != nil {
		s.logger.Error("gRPC resume generation failed", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return nil, toStatus(err)
	}

	return encodeDocument(doc)
}

// Render implements the Render gRPC method
func (s *Server) Render(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req models.RenderRequest
	if err := decodePayload(in, renderSchema, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	doc, err := s.service.Render(req.Text, req.Profile, req.ExportFormat)
	if err != nil {
		return nil, toStatus(err)
	}

	return encodeDocument(doc)
}

// decodePayload validates the Struct against schema and decodes it into out via JSON
func decodePayload(in *structpb.Struct, schema *payloadSchema, out interface{}) error {
	m := in.AsMap()
	if err := schema.Validate(m); err != nil {
		return err
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// encodeDocument returns html as text and docx as base64 in "content"
func encodeDocument(doc *models.RenderedDocument) (*structpb.Struct, error) {
	content := string(doc.Content)
	encoding := "utf-8"
	if doc.Format == models.FormatDocx {
		content = base64.StdEncoding.EncodeToString(doc.Content)
		encoding = "base64"
	}

	out, err := structpb.NewStruct(map[string]interface{}{
		"format":           string(doc.Format),
		"content_type":     doc.ContentType,
		"filename":         doc.Filename,
		"fallback":         doc.Fallback,
		"message":          doc.Message,
		"content":          content,
		"content_encoding": encoding,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

// toStatus maps generator sentinels onto gRPC status codes
func toStatus(err error) error {
	switch {
	case errors.Is(err, generator.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, generator.ErrAuthentication):
		return status.Error(codes.FailedPrecondition, generator.MessageAuth)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "resume generation timed out")
	case errors.Is(err, exporter.ErrRender):
		return status.Error(codes.Internal, err.Error())
	case errors.Is(err, generator.ErrGeneration):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
