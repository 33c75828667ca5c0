package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/config"
	"github.com/stretchr/testify/require"
)

func TestServer_RunStop(t *testing.T) {
	s := NewServer(config.HTTPServer{
		Host:         "127.0.0.1",
		Port:         "0",
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	}, http.NotFoundHandler())
	require.Equal(t, "127.0.0.1:0", s.srv.Addr)

	done := make(chan error, 1)
	go func() { done <- s.Run() }()

	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, <-done)
}
