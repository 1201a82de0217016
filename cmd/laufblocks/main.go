package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/laufblocks/laufblocks/pkg/analytics"
	"github.com/laufblocks/laufblocks/pkg/loader"
	mcpserver "github.com/laufblocks/laufblocks/pkg/mcp"
	"github.com/laufblocks/laufblocks/pkg/registry"
	"github.com/laufblocks/laufblocks/pkg/server"
	"github.com/laufblocks/laufblocks/pkg/store"
	"github.com/laufblocks/laufblocks/pkg/util"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch command := os.Args[1]; command {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "serve: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := runMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "mcp: %v\n", err)
			os.Exit(1)
		}
	case "scan":
		if err := runScan(); err != nil {
			fmt.Fprintf(os.Stderr, "scan: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("laufblocks %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// runServe starts the HTTP API over the seeded catalog, with the drift
// watcher running in the background.
func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := util.NewLogger(util.LoggerConfig{
		Level:  util.LogLevel(cfg.LogLevel),
		Format: util.LogFormat(cfg.LogFormat),
		Output: os.Stdout,
	})
	util.SetDefault(logger)

	reg := registry.New(registry.Seed()...)

	cache := loader.NewCache(loader.DefaultCacheSize, logger)
	defer cache.Close()
	l := loader.New(cfg.BlocksDir, loader.WithCache(cache), loader.WithLogger(logger))

	var svc *analytics.Service
	if cfg.DatabaseURL != "" {
		db, err := store.Connect(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := store.Migrate(db); err != nil {
			return err
		}
		st := store.New(db, logger)
		if err := st.SyncBlocks(context.Background(), reg.All()); err != nil {
			return err
		}
		svc = analytics.NewService(st, logger)
		logger.Info("analytics store connected")
	} else {
		svc = analytics.NewService(nil, logger)
		logger.Info("no DATABASE_URL set, analytics disabled")
	}

	if watcher, err := loader.NewWatcher(l, reg, logger); err != nil {
		logger.Warn("drift watcher unavailable", "error", err)
	} else if err := watcher.Start(); err != nil {
		logger.Warn("drift watcher failed to start", "error", err)
	} else {
		defer watcher.Stop()
	}

	srv := server.New(reg, l, svc, logger)
	logger.Info("server starting", "addr", cfg.Addr(), "blocks", len(reg.All()))
	return http.ListenAndServe(cfg.Addr(), srv.Router())
}

// runMCP serves the catalog to AI agents on stdin/stdout.
func runMCP() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs must not pollute the stdio transport.
	logger := util.NewLogger(util.LoggerConfig{
		Level:  util.LogLevel(cfg.LogLevel),
		Format: util.FormatJSON,
		Output: os.Stderr,
	})
	util.SetDefault(logger)

	reg := registry.New(registry.Seed()...)
	l := loader.New(cfg.BlocksDir, loader.WithLogger(logger))

	return mcpserver.NewServer(reg, l).ServeStdio()
}

// runScan reports drift between the registry and the block directory.
// Exits non-zero when drift exists so CI can gate on it.
func runScan() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reg := registry.New(registry.Seed()...)
	l := loader.New(cfg.BlocksDir)

	drift := l.CheckDrift(reg)
	if drift.Empty() {
		fmt.Printf("ok: %d blocks, no drift in %s\n", len(reg.All()), cfg.BlocksDir)
		return nil
	}

	for _, slug := range drift.Missing {
		fmt.Printf("missing: %s has no source file\n", slug)
	}
	for _, path := range drift.Untracked {
		fmt.Printf("untracked: %s has no registry entry\n", path)
	}
	os.Exit(1)
	return nil
}

func printUsage() {
	fmt.Println("Usage: laufblocks <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve      Start the HTTP API server")
	fmt.Println("  mcp        Start the MCP server on stdin/stdout")
	fmt.Println("  scan       Report drift between registry and block files")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
}
