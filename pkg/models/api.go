package models

import "time"

// ErrorResponse is the JSON body of every failed HTTP request
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Detail    string    `json:"detail,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// RenderRequest asks for existing resume text to be rendered without an AI call
type RenderRequest struct {
	Text         string           `json:"text" yaml:"text" validate:"required"`
	Profile      CandidateProfile `json:"profile" yaml:"profile" validate:"-"`
	ExportFormat ExportFormat     `json:"export_format,omitempty" yaml:"export_format" validate:"omitempty,oneof=docx html DOCX HTML"`
}
