package httpapi

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"formup/internal/application/service"
	"formup/internal/domain/entity"
	"formup/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type replyHandler struct {
	reply  string
	silent bool
}

func (h replyHandler) Type() entity.MessageType { return entity.MessageFillForm }

func (h replyHandler) Handle(ctx context.Context, msg entity.Message, respond func(entity.Response)) bool {
	if h.silent {
		return true
	}
	go respond(entity.Response{Data: h.reply})
	return true
}

func newTestServer(t *testing.T, h replyHandler, cfg ServerConfig) *httptest.Server {
	t.Helper()
	d := service.NewDispatcher(logger.NewNop())
	d.Register(h)
	server := httptest.NewServer(NewServer(d, logger.NewNop(), cfg).Handler())
	t.Cleanup(server.Close)
	return server
}

func post(t *testing.T, url, body string) (*http.Response, map[string]string) {
	t.Helper()
	resp, err := http.Post(url+MessagesPath, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestServer_Messages(t *testing.T) {
	server := newTestServer(t, replyHandler{reply: "Form filled successfully! Populated 1 out of 1 fields."}, DefaultServerConfig())

	tests := []struct {
		name   string
		body   string
		status int
		key    string
		want   string
	}{
		{"Fill form", `{"type":"FILL_FORM"}`, http.StatusOK, "data", "Form filled successfully! Populated 1 out of 1 fields."},
		{"Unknown type", `{"type":"PING"}`, http.StatusNotFound, "error", "no receiver for message type"},
		{"Malformed", `{"type":`, http.StatusBadRequest, "error", "malformed message: unexpected EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, out := post(t, server.URL, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.Equal(t, tt.want, out[tt.key])
		})
	}
}

func TestServer_ResponseTimeout(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.ResponseTimeout = 20 * time.Millisecond
	cfg.AccessLog = false
	server := newTestServer(t, replyHandler{silent: true}, cfg)

	resp, out := post(t, server.URL, `{"type":"FILL_FORM"}`)
	assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
	assert.Equal(t, "timed out waiting for response", out["error"])
}

func TestServer_Health(t *testing.T) {
	server := newTestServer(t, replyHandler{}, DefaultServerConfig())

	resp, err := http.Get(server.URL + HealthPath)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + MessagesPath)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	d := service.NewDispatcher(logger.NewNop())
	d.Register(replyHandler{reply: "ok"})

	cfg := DefaultServerConfig()
	cfg.AccessLog = false
	srv := NewServer(d, logger.NewNop(), cfg)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	httpClient := &http.Client{Transport: &http.Transport{}}
	client := NewClient(ln.Addr().String(), httpClient)
	resp, err := client.Send(context.Background(), entity.Message{Type: entity.MessageFillForm})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Data)
	httpClient.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
