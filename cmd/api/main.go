package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"screenhub.org/internal/config"
	"screenhub.org/internal/httpapi"
	"screenhub.org/internal/notify"
	"screenhub.org/internal/obs"
	"screenhub.org/internal/registry"
	"screenhub.org/internal/session"
	"screenhub.org/internal/store/pg"
)

var (
	version = "0.3.1"
	commit  = "dev"
)

func main() {
	obs.Init()
	obs.InitBuildInfo(version, commit)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	codec, err := session.NewCodec(cfg.SessionSecret, session.WithTTL(cfg.SessionTTL))
	if err != nil {
		log.Fatalf("session codec: %v", err)
	}

	// Backing stores: PostgreSQL when a DSN is configured, in-memory for dev.
	var (
		reg     registry.Store
		notes   notify.Store
		pgStore *pg.Store
		probe   httpapi.ReadyProbe
	)
	if cfg.PostgresDSN != "" {
		pgStore, err = pg.Open(cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		reg = pgStore
		notes = pgStore.Notifications()
		probe = httpapi.ReadyProbe{DB: pgStore.DB()}
	} else {
		log.Println("no SCREENHUB_PG_DSN set, using in-memory stores")
		reg = registry.NewInMemory()
		notes = notify.NewInMemory()
	}

	api := httpapi.New(probe, version, codec, reg, notes, notify.NewBroadcaster())
	api.SetCookieOptions(session.CookieOptions{Secure: cfg.SecureCookies()})
	api.SetRateLimit(cfg.RateBurst, cfg.RatePerSec)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting screenhub-api %s on %s (env=%s)", version, srv.Addr, cfg.Env)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	if pgStore != nil {
		_ = pgStore.Close()
	}
	log.Println("Stopped")
}
