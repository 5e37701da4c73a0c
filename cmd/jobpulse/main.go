package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; deployments usually set real env vars.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
