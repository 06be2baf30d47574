// Package main is the entry point for hlcli, a thin front-end over the
// highlighter adapter registry: it resolves an adapter by name and renders
// source files the way the document converter would.
package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

func main() {
	loadEnvFiles()

	rootCmd := buildRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadEnvFiles loads .env from standard locations.
func loadEnvFiles() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		_ = godotenv.Load()
		return
	}

	// Try loading from ~/.config/highlighters/.env first
	configEnv := filepath.Join(homeDir, ".config", "highlighters", ".env")
	if _, err := os.Stat(configEnv); err == nil {
		_ = godotenv.Load(configEnv)
	}

	// Also load local .env (can override)
	_ = godotenv.Load()
}
