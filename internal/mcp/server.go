package mcp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ferndale/jobboard-mcp/internal/config"
	"github.com/ferndale/jobboard-mcp/internal/httpapi"
	"github.com/ferndale/jobboard-mcp/internal/mcp/tools"
	"github.com/ferndale/jobboard-mcp/pkg/logging"
)

// Server wraps an MCP SDK server with either an HTTP listener or a stdio
// transport, selected by config.
type Server struct {
	logger *logging.Logger
	config config.Config

	mcpServer *sdkmcp.Server
	srv       *http.Server
	started   atomic.Bool

	stdioCtx    context.Context
	stdioCancel context.CancelFunc
}

// NewServer constructs the MCP server and registers the job tools
func NewServer(log *logging.Logger, cfg config.Config, res Resources) (*Server, error) {
	impl := &sdkmcp.Implementation{
		Name:    "jobboard-mcp",
		Version: "1.0.0",
	}

	mcpServer := sdkmcp.NewServer(impl, nil)

	if err := tools.RegisterJobTools(mcpServer, res.JobService, log); err != nil {
		return nil, err
	}

	handler := sdkmcp.NewStreamableHTTPHandler(func(req *http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp/stream", handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/", httpapi.Handler(res.JobService, log))

	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	stdioCtx, stdioCancel := context.WithCancel(context.Background())

	return &Server{
		logger:      log,
		config:      cfg,
		mcpServer:   mcpServer,
		srv:         httpSrv,
		stdioCtx:    stdioCtx,
		stdioCancel: stdioCancel,
	}, nil
}

// Run starts the configured transport and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	if s.config.Transport == config.TransportStdio {
		s.logger.Info("MCP server serving on stdio")
		if err := s.mcpServer.Run(s.stdioCtx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	s.logger.Info("MCP HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for MCP server")

	if s.config.Transport == config.TransportStdio {
		s.stdioCancel()
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("MCP HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("MCP HTTP server shutdown complete")
	return nil
}
