// Package httpapi exposes the message boundary over HTTP and provides a
// client transport for it.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"formup/internal/application/port/input"
	"formup/internal/application/port/output"
	"formup/internal/application/service"
	"formup/internal/domain/entity"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
)

const (
	MessagesPath = "/v1/messages"
	HealthPath   = "/healthz"

	defaultResponseTimeout = 2 * time.Minute
	defaultShutdownTimeout = 5 * time.Second
	maxMessageBytes        = 1 << 20
)

type ServerConfig struct {
	Addr            string
	ResponseTimeout time.Duration
	ShutdownTimeout time.Duration
	AccessLog       bool
	AccessLogJSON   bool
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            "127.0.0.1:8787",
		ResponseTimeout: defaultResponseTimeout,
		ShutdownTimeout: defaultShutdownTimeout,
		AccessLog:       true,
	}
}

type errorBody struct {
	Error string `json:"error"`
}

type Server struct {
	receiver input.MessageReceiver
	logger   output.LoggerPort
	cfg      ServerConfig
	router   chi.Router
}

func NewServer(receiver input.MessageReceiver, logger output.LoggerPort, cfg ServerConfig) *Server {
	if cfg.ResponseTimeout <= 0 {
		cfg.ResponseTimeout = defaultResponseTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	s := &Server{
		receiver: receiver,
		logger:   logger,
		cfg:      cfg,
	}

	r := chi.NewRouter()
	if cfg.AccessLog {
		r.Use(httplog.RequestLogger(httplog.NewLogger("formup", httplog.Options{
			JSON:    cfg.AccessLogJSON,
			Concise: true,
		})))
	}
	r.Use(middleware.Recoverer)

	r.Get(HealthPath, s.handleHealth)
	r.Post(MessagesPath, s.handleMessage)

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.logger.Info("Message server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}

	s.logger.Info("Message server stopped")
	return nil
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var msg entity.Message
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageBytes))
	if err := dec.Decode(&msg); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed message: " + err.Error()})
		return
	}

	replies := make(chan entity.Response, 1)
	if !s.receiver.Handle(r.Context(), msg, func(resp entity.Response) { replies <- resp }) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: service.ErrNoReceiver.Error()})
		return
	}

	timer := time.NewTimer(s.cfg.ResponseTimeout)
	defer timer.Stop()

	select {
	case resp := <-replies:
		writeJSON(w, http.StatusOK, resp)
	case <-timer.C:
		s.logger.Warn("Timed out waiting for response", "type", msg.Type)
		writeJSON(w, http.StatusGatewayTimeout, errorBody{Error: "timed out waiting for response"})
	case <-r.Context().Done():
		s.logger.Debug("Client went away", "type", msg.Type)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
