package http

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shopapi/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer_Serve_GracefulShutdownReturnsNil(t *testing.T) {
	echoServer := echo.New()
	echoServer.HideBanner = true

	// Port 0 lets the OS pick a free port.
	srv := &httpServer{
		cfg:    &config.Config{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		server: echoServer,
	}

	served := make(chan error, 1)
	go func() {
		served <- srv.Serve(context.Background())
	}()

	// Wait until the listener is up before shutting down.
	require.Eventually(t, func() bool {
		return echoServer.ListenerAddr() != nil
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, srv.stop(context.Background()))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after shutdown")
	}
}
