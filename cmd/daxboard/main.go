package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"DaxBoard/internal/cache"
	"DaxBoard/internal/config"
	"DaxBoard/internal/dashboard"
	"DaxBoard/internal/provider"
	"DaxBoard/internal/server"
	"DaxBoard/internal/symbols"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] DaxBoard starting...")

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

	// Init fetcher
	var fetcher provider.Fetcher = provider.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init provider cache
	var store cache.Cache
	sc, err := cache.NewSQLiteCache(cfg.Cache.SQLitePath, time.Duration(cfg.Cache.TTLMinutes)*time.Minute)
	if err != nil {
		log.Printf("[WARN] init sqlite cache failed, using noop: %v", err)
		store = cache.NewNoopCache()
	} else {
		store = sc
		defer sc.Close()
	}
	fetcher = cache.NewCachingFetcher(fetcher, store)

	// Init symbol directory
	var directory *symbols.Directory
	if len(cfg.Symbols) > 0 {
		entries := make([]symbols.Entry, len(cfg.Symbols))
		for i, s := range cfg.Symbols {
			entries[i] = symbols.Entry{Name: s.Name, Ticker: s.Ticker}
		}
		directory = symbols.NewDirectory(entries)
	} else {
		directory = symbols.DefaultDAX()
	}
	log.Printf("[INFO] symbol directory: %d entries", len(directory.List()))

	// Init controller and server
	ctrl := dashboard.NewController(fetcher, directory)
	srv := server.New(cfg.Server.Listen, ctrl, directory)

	// Schedule cache purge
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(cfg.Cache.PurgeCron, func() {
		if err := store.Purge(); err != nil {
			log.Printf("[WARN] cache purge: %v", err)
		}
	}); err != nil {
		log.Fatalf("[FATAL] register purge task: %v", err)
	}
	c.Start()
	defer c.Stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] DaxBoard is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[WARN] server shutdown: %v", err)
	}
	log.Println("[INFO] DaxBoard stopped")
}
