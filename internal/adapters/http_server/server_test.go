package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := New(Options{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRouteOf_UsesPattern(t *testing.T) {
	s := New(Options{})
	var got string
	s.mux.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		got = routeOf(r)
	})

	rr := httptest.NewRecorder()
	s.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/items/42", nil))

	if got != "/items/{id}" {
		t.Fatalf("route = %q", got)
	}
}
