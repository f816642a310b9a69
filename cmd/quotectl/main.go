// Package main is the entry point for the quotectl admin CLI.
package main

import (
	"fmt"
	"os"

	"quotedesk/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
