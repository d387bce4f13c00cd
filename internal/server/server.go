package server

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/summarizer"
)

// Start runs the HTTP server until it fails or is stopped
func (s *implServer) Start(ctx context.Context) error {
	s.logger.Info(ctx, "HTTP server listening on %s", s.cfg.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully
func (s *implServer) Stop(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

type indexData struct {
	URL      string
	Language string
	Summary  string
	Error    string
}

// handleIndex serves the interactive form and renders results inline
func (s *implServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := indexData{Language: "English"}

	if r.Method == http.MethodPost {
		data.URL = r.FormValue("url")
		data.Language = r.FormValue("language")

		summary, err := s.summarize(r.Context(), data.URL, data.Language)
		if err != nil {
			data.Error = userMessage(err)
		} else {
			data.Summary = summary
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		s.logger.Error(r.Context(), "Render index template: %v", err)
	}
}

// handleSummarize is the plain API endpoint: GET /summarize?url=&language=
func (s *implServer) handleSummarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary, err := s.summarize(r.Context(), r.URL.Query().Get("url"), r.URL.Query().Get("language"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"summary": summary})
}

// handleSummarizeDocx returns the summary as a downloadable docx file
func (s *implServer) handleSummarizeDocx(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary, err := s.summarize(r.Context(), r.URL.Query().Get("url"), r.URL.Query().Get("language"))
	if err != nil {
		writeError(w, err)
		return
	}

	tmpDir, err := os.MkdirTemp("", "summary-docx-*")
	if err != nil {
		http.Error(w, "could not export summary", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(tmpDir)

	docxPath := filepath.Join(tmpDir, "summary.docx")
	if err := summarizer.MarkdownToDocx("Video Summary", summary, docxPath); err != nil {
		s.logger.Error(r.Context(), "Docx export failed: %v", err)
		http.Error(w, "could not export summary", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", `attachment; filename="summary.docx"`)
	http.ServeFile(w, r, docxPath)
}

func (s *implServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "The app is properly running."})
}

// handleDeploymentWebhook verifies the HMAC signature of the payload
// and launches the configured deployment script detached.
func (s *implServer) handleDeploymentWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	signature := r.Header.Get("X-Hub-Signature-256")
	if signature == "" {
		http.Error(w, "Signature missing", http.StatusBadRequest)
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "could not read payload", http.StatusBadRequest)
		return
	}

	if s.cfg.DeploymentSecret == "" || s.cfg.DeploymentScript == "" {
		http.Error(w, "Automatic deployment not configured", http.StatusInternalServerError)
		return
	}

	mac := hmac.New(sha256.New, []byte(s.cfg.DeploymentSecret))
	mac.Write(payload)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		http.Error(w, "Invalid signature", http.StatusBadRequest)
		return
	}

	if err := s.executor.Start(s.cfg.DeploymentScript); err != nil {
		s.logger.Error(r.Context(), "Launch deployment script: %v", err)
		http.Error(w, "deployment failed to start", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Deployment triggered")
}

// summarize validates the request shape before handing off to the
// pipeline; URL and language errors never reach the expensive path.
func (s *implServer) summarize(ctx context.Context, videoURL, language string) (string, error) {
	if !validURL(videoURL) {
		return "", fmt.Errorf("%w: please enter a valid YouTube URL", pipeline.ErrInvalidInput)
	}
	return s.pipeline.Summarize(ctx, videoURL, language)
}

func validURL(videoURL string) bool {
	return strings.HasPrefix(videoURL, "https://www.youtube.com/") ||
		strings.HasPrefix(videoURL, "https://youtu.be/")
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, pipeline.ErrInvalidInput) {
		status = http.StatusBadRequest
	} else if errors.Is(err, pipeline.ErrAcquisition) || errors.Is(err, pipeline.ErrSummarization) {
		status = http.StatusBadGateway
	}
	http.Error(w, userMessage(err), status)
}

// userMessage maps pipeline failures onto a single message per stage
func userMessage(err error) string {
	switch {
	case errors.Is(err, pipeline.ErrInvalidInput):
		return "Invalid YouTube URL or unsupported language. Please check your input."
	case errors.Is(err, pipeline.ErrAcquisition):
		return "An error occurred while fetching or generating the transcript of the video."
	case errors.Is(err, pipeline.ErrSummarization):
		return "An error occurred while summarizing the transcript of the video."
	default:
		return "An unexpected error occurred."
	}
}
