package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/uilab/go-fast/framework/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Get(t *testing.T) {
	r := routing.New()
	r.Get("/elements", okHandler)

	rr := do(t, r, http.MethodGet, "/elements")
	if rr.Code != http.StatusOK {
		t.Errorf("GET /elements: got %d want 200", rr.Code)
	}
}

func TestRouter_Post(t *testing.T) {
	r := routing.New()
	r.Post("/elements", okHandler)

	rr := do(t, r, http.MethodPost, "/elements")
	if rr.Code != http.StatusOK {
		t.Errorf("POST /elements: got %d want 200", rr.Code)
	}
}

func TestRouter_Put(t *testing.T) {
	r := routing.New()
	r.Put("/elements/{tag}", okHandler)

	rr := do(t, r, http.MethodPut, "/elements/fast-button")
	if rr.Code != http.StatusOK {
		t.Errorf("PUT /elements/fast-button: got %d want 200", rr.Code)
	}
}

func TestRouter_Delete(t *testing.T) {
	r := routing.New()
	r.Delete("/elements/{tag}", okHandler)

	rr := do(t, r, http.MethodDelete, "/elements/fast-button")
	if rr.Code != http.StatusOK {
		t.Errorf("DELETE /elements/fast-button: got %d want 200", rr.Code)
	}
}

func TestRouter_Any(t *testing.T) {
	r := routing.New()
	r.Any("/ping", okHandler)

	for _, method := range []string{"GET", "POST", "PUT", "PATCH", "DELETE"} {
		rr := do(t, r, method, "/ping")
		if rr.Code != http.StatusOK {
			t.Errorf("ANY %s /ping: got %d want 200", method, rr.Code)
		}
	}
}

// ── 404 for unregistered routes ──────────────────────────────────────────────

func TestRouter_NotFound(t *testing.T) {
	r := routing.New()
	rr := do(t, r, http.MethodGet, "/not-registered")
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

// ── Route params ─────────────────────────────────────────────────────────────

func TestRouter_Param(t *testing.T) {
	r := routing.New()
	r.Get("/elements/{tag}", func(w http.ResponseWriter, req *http.Request) {
		tag := routing.Param(req, "tag")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(tag))
	})

	rr := do(t, r, http.MethodGet, "/elements/fast-card")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	if rr.Body.String() != "fast-card" {
		t.Errorf("got body %q want %q", rr.Body.String(), "fast-card")
	}
}

// ── Prefix / Group ───────────────────────────────────────────────────────────

func TestRouter_Prefix(t *testing.T) {
	r := routing.New()
	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Get("/elements", okHandler)
	})

	rr := do(t, r, http.MethodGet, "/api/v1/elements")
	if rr.Code != http.StatusOK {
		t.Errorf("GET /api/v1/elements: got %d want 200", rr.Code)
	}

	// Root must 404
	rr2 := do(t, r, http.MethodGet, "/elements")
	if rr2.Code != http.StatusNotFound {
		t.Errorf("GET /elements: expected 404, got %d", rr2.Code)
	}
}

func TestRouter_Group_Middleware(t *testing.T) {
	called := false
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	r := routing.New()
	r.Group(func(g *routing.Router) {
		g.Middleware(mw)
		g.Get("/protected", okHandler)
	})

	do(t, r, http.MethodGet, "/protected")
	if !called {
		t.Error("expected middleware to be called")
	}
}

// ── Handler() returns http.Handler ───────────────────────────────────────────

func TestRouter_HandlerInterface(t *testing.T) {
	r := routing.New()
	r.Get("/ping", okHandler)
	var _ http.Handler = r.Handler()
}
