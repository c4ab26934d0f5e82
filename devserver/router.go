package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// NewRouter serves the wasm bundle from cfg.StaticDir and routes /api to
// the upstream, the stub, or a 502 when neither is configured.
func NewRouter(cfg Config, logger *slog.Logger) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	switch {
	case cfg.APIUpstream != "":
		proxy, err := newAPIProxy(cfg.APIUpstream, logger)
		if err != nil {
			return nil, err
		}
		r.Handle("/api/*", proxy)
	case cfg.StubAuth:
		r.Mount("/api/auth", newStubAuth(logger).Routes())
	default:
		r.HandleFunc("/api/*", func(w http.ResponseWriter, r *http.Request) {
			respondMessage(w, r, http.StatusBadGateway, "Auth API is not configured")
		})
	}

	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	return r, nil
}

func newAPIProxy(upstream string, logger *slog.Logger) (http.Handler, error) {
	target, err := url.Parse(upstream)
	if err != nil {
		return nil, fmt.Errorf("parse api upstream: %w", err)
	}
	proxy := httputil.NewSingleHostReverseProxy(target)
	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		req.Host = target.Host
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Warn("api upstream unreachable", "path", r.URL.Path, "err", err)
		w.WriteHeader(http.StatusBadGateway)
	}
	return proxy, nil
}
