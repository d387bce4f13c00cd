package server

import (
	"html/template"
	"net/http"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/config"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/logger"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/ytb-summarizer/pkg/executor"
)

type implServer struct {
	cfg      config.ServerConfig
	pipeline pipeline.Pipeline
	executor executor.Executor
	logger   logger.Logger
	tmpl     *template.Template
	httpSrv  *http.Server
}

// New creates a Server instance
func New(cfg config.ServerConfig, p pipeline.Pipeline, exec executor.Executor, log logger.Logger) Server {
	s := &implServer{
		cfg:      cfg,
		pipeline: p,
		executor: exec,
		logger:   log,
		tmpl:     template.Must(template.New("index").Parse(indexTemplate)),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/summarize", s.handleSummarize)
	mux.HandleFunc("/summarize/docx", s.handleSummarizeDocx)
	mux.HandleFunc("/health-check", s.handleHealthCheck)
	mux.HandleFunc("/deployment-webhook", s.handleDeploymentWebhook)

	s.httpSrv = &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	return s
}
