package server

import "context"

// Server exposes the summarizer over HTTP: an interactive form, a plain
// JSON endpoint, a docx export, a health check, and the deployment
// webhook.
type Server interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
