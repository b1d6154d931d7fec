package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"GrowthBoard/internal/board"
	"GrowthBoard/internal/cache"
	"GrowthBoard/internal/config"
	"GrowthBoard/internal/provider"
	"GrowthBoard/internal/recorder"
	"GrowthBoard/internal/scheduler"
	"GrowthBoard/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] GrowthBoard starting...")

	// .env is optional; real env vars win inside config.Load anyway.
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] .env loaded")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher with memoization
	fetcher := provider.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	memo := cache.NewMemoFetcher(fetcher)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init render engine
	engine := board.NewEngine(memo, rec)

	// Init scheduler for the daily cache refresh
	sched := scheduler.NewScheduler(memo, engine)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if cfg.Schedule.WarmOnStart {
		log.Println("[INFO] warm_on_start enabled, pre-fetching default selection")
		go sched.WarmDefault()
	}

	// Init HTTP server
	srv, err := server.NewServer(cfg.Server.ListenAddr, engine)
	if err != nil {
		log.Fatalf("[FATAL] init server: %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] server shutdown: %v", err)
	}
	log.Println("[INFO] GrowthBoard stopped")
}
