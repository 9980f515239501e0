// Pythmata process execution engine - interprets BPMN 2.0 process diagrams
// and drives instances to completion across failures, restarts, and
// concurrent activity.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codeready-toolchain/pythmata/pkg/api"
	"github.com/codeready-toolchain/pythmata/pkg/cleanup"
	"github.com/codeready-toolchain/pythmata/pkg/config"
	"github.com/codeready-toolchain/pythmata/pkg/database"
	"github.com/codeready-toolchain/pythmata/pkg/executor"
	"github.com/codeready-toolchain/pythmata/pkg/faststore"
	"github.com/codeready-toolchain/pythmata/pkg/instance"
	"github.com/codeready-toolchain/pythmata/pkg/scheduler"
	"github.com/codeready-toolchain/pythmata/pkg/script"
	"github.com/codeready-toolchain/pythmata/pkg/servicetask"
	"github.com/codeready-toolchain/pythmata/pkg/token"
	"github.com/codeready-toolchain/pythmata/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("Warning: Could not load %s file: %v", envPath, err)
		log.Printf("Continuing with existing environment variables...")
	} else {
		log.Printf("Loaded environment from %s", envPath)
	}

	log.Printf("Starting %s", version.Full())
	log.Printf("Config Directory: %s", *configDir)

	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		log.Fatalf("Failed to initialize configuration: %v", err)
	}

	// Durable store.
	dbClient, err := database.NewClient(ctx, database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			log.Printf("Error closing database client: %v", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Fast store.
	fast, err := faststore.Connect(ctx, cfg.Redis.URL, cfg.Redis.PoolSize)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer func() {
		if err := fast.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}()
	slog.Info("Connected to Redis fast store")

	// Engine components, leaves first.
	tokens := token.NewManager(fast)
	instances := instance.NewManager(dbClient.Client, fast, tokens)

	scriptEnv, err := script.NewEnv()
	if err != nil {
		log.Fatalf("Failed to build script sandbox: %v", err)
	}

	// The registry's population is the embedder's responsibility; an
	// out-of-process worker can be attached for a comma-separated list of
	// task names via SERVICE_TASK_GRPC_ADDR / SERVICE_TASK_NAMES.
	services := servicetask.NewRegistry()
	if addr := os.Getenv("SERVICE_TASK_GRPC_ADDR"); addr != "" {
		grpcClient, err := servicetask.NewGRPCServiceTaskClient(addr)
		if err != nil {
			log.Fatalf("Failed to connect service task worker: %v", err)
		}
		defer func() { _ = grpcClient.Close() }()
		for _, name := range strings.Split(os.Getenv("SERVICE_TASK_NAMES"), ",") {
			if name = strings.TrimSpace(name); name != "" {
				services.Register(name, grpcClient)
			}
		}
	}

	sched := scheduler.New(dbClient.Client, fast, tokens, instances, nil, scheduler.Config{
		ScanInterval:  cfg.Scheduler.ScanInterval,
		PollInterval:  cfg.Scheduler.PollInterval,
		LockTTL:       cfg.Scheduler.LockTTL,
		MaxIterations: cfg.Scheduler.MaxIterations,
		WorkerCount:   cfg.Scheduler.WorkerCount,
	}, slog.Default())

	dispatcher := executor.New(tokens, fast, instances, scriptEnv, services, sched, slog.Default())
	sched.SetDispatcher(dispatcher)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	sched.Start(runCtx)
	defer sched.Stop()
	slog.Info("Scheduler started", "workers", cfg.Scheduler.WorkerCount)

	cleaner := cleanup.NewService(cfg.Retention, dbClient.Client)
	cleaner.Start(runCtx)
	defer cleaner.Stop()

	server := api.NewServer(cfg, dbClient, instances, sched, fast)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("API server failed: %v", err)
		}
	case sig := <-sigCh:
		slog.Info("Shutting down", "signal", sig.String())
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during API shutdown: %v", err)
		}
	}
}
