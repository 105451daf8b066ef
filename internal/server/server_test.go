package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/grubdash/config"
)

func TestServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	srv := New(config.Defaults(), handler)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + ln.Addr().String())
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout):
		t.Fatal("server did not shut down")
	}
}

func TestNewAppliesTimeouts(t *testing.T) {
	cfg := config.Defaults()
	cfg.App.Port = "9090"
	srv := New(cfg, http.NotFoundHandler())

	assert.Equal(t, ":9090", srv.httpServer.Addr)
	assert.Equal(t, cfg.HTTP.ReadTimeout, srv.httpServer.ReadTimeout)
	assert.Equal(t, cfg.HTTP.WriteTimeout, srv.httpServer.WriteTimeout)
	assert.Equal(t, cfg.HTTP.IdleTimeout, srv.httpServer.IdleTimeout)
}
