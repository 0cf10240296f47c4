package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalogapi/internal/catalog"
	"catalogapi/internal/config"
	"catalogapi/internal/httpx"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	store := catalog.NewStore(cfg.CatalogDir)
	snap := store.Reload()
	log.Printf("catalog loaded: entries=%d errors=%d dir=%s", len(snap.Entries), len(snap.Errors), cfg.CatalogDir)
	for _, msg := range snap.Errors {
		log.Printf("catalog load error: %s", msg)
	}

	handler := catalog.NewHTTPHandler(store, cfg.DefaultPageSize, cfg.MaxPageSize)

	router := http.NewServeMux()
	router.HandleFunc("GET /health", handler.Health)
	router.HandleFunc("GET /catalog", handler.List)
	router.HandleFunc("GET /catalog/filters", handler.Filters)
	router.HandleFunc("GET /catalog/{id}", handler.Get)

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	var h http.Handler = router
	h = rateLimit.Middleware(h)
	h = httpx.CORSMiddleware(cfg.CORSOrigins)(h)
	h = httpx.SecurityHeadersMiddleware(h)
	h = httpx.AccessLogMiddleware(h)
	h = httpx.RecoveryMiddleware(h)
	h = httpx.RequestIDMiddleware(h)

	// SIGHUP rebuilds the catalog off to the side and swaps it in; in-flight
	// requests keep the snapshot they started with.
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	go func() {
		for range reload {
			c := store.Reload()
			log.Printf("catalog reloaded: entries=%d errors=%d", len(c.Entries), len(c.Errors))
		}
	}()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
