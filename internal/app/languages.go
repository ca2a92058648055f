package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/verborum/verborum/internal/translation"
)

func runLanguages(args []string) int {
	fs := flag.NewFlagSet("languages", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	for _, opt := range translation.LanguageOptions() {
		fmt.Printf("%-6s %s\n", opt.Code, opt.Label)
	}
	return 0
}
