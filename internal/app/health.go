package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/verborum/verborum/internal/cli"
	"github.com/verborum/verborum/internal/config"
	"github.com/verborum/verborum/internal/db"
)

func runHealth(args []string) int {
	fs := flag.NewFlagSet("health", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 10*time.Second, "Command timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: FAIL (%v)\n", err)
		return 1
	}
	fmt.Println("Config: OK")

	providers := 0
	for _, key := range []string{cfg.DeepLAPIKey, cfg.GeminiAPIKey, cfg.OpenAIAPIKey} {
		if key != "" {
			providers++
		}
	}
	fmt.Printf("Provider keys: %d configured\n", providers)

	if !cfg.HasDatabase() {
		fmt.Println("Database: not configured (history disabled)")
		return 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Database: FAIL (%v)\n", err)
		return 1
	}
	defer pool.Close()

	total, err := pool.CountTranslationRecords(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Database: FAIL (%v)\n", err)
		return 1
	}
	fmt.Printf("Database: OK (%d history records)\n", total)
	return 0
}
