package testutil

import (
	"context"
	"net/http"
	"sync/atomic"
)

// StubHTTPServer stands in for the server's listener. ListenAndServe returns
// ListenErr at once. Shutdown returns ShutdownErr, first waiting on Unblock or
// ctx when Unblock is set. Call counts may be read from any goroutine.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Unblock     chan struct{}

	listens   atomic.Int32
	shutdowns atomic.Int32
}

// ClosedHTTPServer behaves like a server that was stopped by Shutdown.
func ClosedHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{ListenErr: http.ErrServerClosed}
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.listens.Add(1)
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdowns.Add(1)
	if s.Unblock != nil {
		select {
		case <-s.Unblock:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NotFoundHandler()
	}
	return s.HandlerVal
}

func (s *StubHTTPServer) ListenCalls() int   { return int(s.listens.Load()) }
func (s *StubHTTPServer) ShutdownCalls() int { return int(s.shutdowns.Load()) }
