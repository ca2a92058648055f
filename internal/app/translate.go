package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/verborum/verborum/internal/cli"
	"github.com/verborum/verborum/internal/config"
	"github.com/verborum/verborum/internal/translation"
)

func runTranslate(args []string) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 2*time.Minute, "Command timeout")
	source := fs.String("from", "", "Source language (ISO 639-1, empty for auto-detect)")
	target := fs.String("to", "", "Target language (ISO 639-1, for example: es, fr)")
	tone := fs.String("tone", "", "Tone of the translation (formal or informal)")
	retries := fs.Int("retries", 1, "Retries per provider before falling back")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "translate requires exactly one text argument")
		fmt.Fprintln(os.Stderr, "Usage: verborum translate --to es \"Hello world\"")
		return 2
	}

	text := strings.TrimSpace(fs.Arg(0))
	if text == "" {
		fmt.Fprintln(os.Stderr, "translate argument must not be empty")
		return 2
	}
	targetLang := strings.ToLower(strings.TrimSpace(*target))
	if targetLang == "" {
		fmt.Fprintln(os.Stderr, "--to is required and must be a language code")
		return 2
	}
	parsedTone, ok := translation.ParseTone(*tone)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown tone: %s (expected formal or informal)\n", *tone)
		return 2
	}
	if *retries < 0 {
		fmt.Fprintln(os.Stderr, "--retries must not be negative")
		return 2
	}

	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	creds := translation.Credentials{
		DeepLKey:  cfg.DeepLAPIKey,
		GeminiKey: cfg.GeminiAPIKey,
		OpenAIKey: cfg.OpenAIAPIKey,
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result := translation.SmartTranslate(ctx, translation.Request{
		Text:       text,
		SourceLang: strings.ToLower(strings.TrimSpace(*source)),
		TargetLang: targetLang,
		Tone:       parsedTone,
	}, creds, translation.Options{
		RetryCount:  *retries,
		GeminiModel: cfg.GeminiModel,
		OpenAIModel: cfg.OpenAIModel,
	})

	if !result.OK() {
		fmt.Fprintf(os.Stderr, "Translation failed: %s\n", result.Err)
		return 1
	}

	fmt.Println(result.Translation)
	fmt.Fprintf(os.Stderr, "(provider: %s)\n", result.Provider)
	return 0
}
