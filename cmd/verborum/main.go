package main

import (
	"os"

	"github.com/verborum/verborum/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
