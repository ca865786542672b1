package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"

	"github.com/ignite/caseflow/internal/api"
	"github.com/ignite/caseflow/internal/config"
	"github.com/ignite/caseflow/internal/emailcheck"
	"github.com/ignite/caseflow/internal/notify"
	"github.com/ignite/caseflow/internal/repository/postgres"
	"github.com/ignite/caseflow/internal/service/account"
	"github.com/ignite/caseflow/internal/service/intake"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from stale processes occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v", port, addr, err)
	}
	ln.Close()
	return nil
}

func main() {
	log.Println("[server] caseflow intake API starting")

	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("DATABASE_URL") != "" {
		log.Println("[config] DATABASE_URL env override active")
	}

	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}

	if cfg.Database.URL == "" {
		log.Fatal("database.url (or DATABASE_URL) is required")
	}
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancelPing()
		log.Fatalf("Cannot connect to database: %v", err)
	}
	cancelPing()
	log.Println("[server] database connection established")

	// Redis backs the domain liveness cache; the server runs without it.
	var redisClient *redis.Client
	var livenessCache *emailcheck.LivenessCache
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		livenessCache = emailcheck.NewLivenessCache(redisClient,
			time.Duration(cfg.Verification.CacheTTLMinutes)*time.Minute)
		log.Printf("[server] liveness cache enabled (redis %s)", cfg.Redis.Addr)
	}

	// Policy tables: built-ins plus operator extensions from config.
	tables := emailcheck.DefaultTables()
	tables.AddDisposableDomains(cfg.Verification.ExtraDisposableDomains...)
	tables.AddRoleAccounts(cfg.Verification.ExtraRoleAccounts...)
	for mistyped, canonical := range cfg.Verification.TypoFixes {
		tables.AddTypoFix(mistyped, canonical)
	}

	validator := emailcheck.New(emailcheck.Config{
		Tables:        tables,
		LookupTimeout: time.Duration(cfg.Verification.LookupTimeoutSeconds) * time.Second,
		Cache:         livenessCache,
	})

	intakeSvc := intake.NewService(postgres.NewCaseRepo(db), validator)
	accountSvc := account.NewService(postgres.NewAccountRepo(db), validator)

	var notifier api.Notifier
	if cfg.Notify.Enabled && cfg.Notify.FromAddress != "" {
		sender, err := notify.NewSender(context.Background(), cfg.Notify)
		if err != nil {
			log.Fatalf("Failed to initialize SES notifier: %v", err)
		}
		notifier = sender
		log.Printf("[server] confirmation emails enabled (from %s)", cfg.Notify.FromAddress)
	}

	handlers := api.NewHandlers(intakeSvc, accountSvc, validator, notifier)
	server := api.NewServer(cfg.Server, handlers, api.NewHealthChecker(db, redisClient))

	go func() {
		log.Printf("[server] listening on %s", server.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("[server] received %s, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[server] graceful shutdown failed: %v", err)
	}
	log.Println("[server] stopped")
}
