package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"formup/internal/application/service"
	"formup/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	server := newTestServer(t, replyHandler{reply: "No form fields found"}, DefaultServerConfig())

	resp, err := NewClient(server.URL+"/", server.Client()).Send(context.Background(), entity.Message{Type: entity.MessageFillForm})
	require.NoError(t, err)
	assert.Equal(t, "No form fields found", resp.Data)
}

func TestClient_NoReceiver(t *testing.T) {
	server := newTestServer(t, replyHandler{}, DefaultServerConfig())

	_, err := NewClient(server.URL, server.Client()).Send(context.Background(), entity.Message{Type: "PING"})
	assert.ErrorIs(t, err, service.ErrNoReceiver)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "Error body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				fmt.Fprint(w, `{"error":"page crashed"}`)
			},
			want: "unexpected status 502: page crashed",
		},
		{
			name: "Plain body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: "unexpected status 500",
		},
		{
			name: "Bad JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `not json`)
			},
			want: "decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := NewClient(server.URL, server.Client()).Send(context.Background(), entity.Message{Type: entity.MessageFillForm})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewClient(url, nil).Send(context.Background(), entity.Message{Type: entity.MessageFillForm})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send message")
}

func TestNewClient_AddsScheme(t *testing.T) {
	c := NewClient("localhost:8787/", nil)
	assert.Equal(t, "http://localhost:8787", c.baseURL)
}
