package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jobpulse/internal/history"
	"jobpulse/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recently posted vacancies",
	Long:  "Opens an interactive browser over the local posted-jobs database, newest first. Requires the sqlite store.",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 200, "maximum number of entries to load")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if cfg.Store.Type != "sqlite" {
		fmt.Fprintln(os.Stderr, "history requires store.type \"sqlite\"")
		os.Exit(1)
	}

	sqlStore, err := store.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer sqlStore.Close()

	entries, err := sqlStore.Recent(historyLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load history: %v\n", err)
		os.Exit(1)
	}

	return history.Run(entries)
}
