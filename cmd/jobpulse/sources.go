package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List all configured sources",
	Long:  "Reads the config and prints a table of all configured job board sources.",
	RunE:  runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-15s %-10s %s\n", "Source", "Status", "Credentials")
	fmt.Println(strings.Repeat("─", 40))

	enabled, disabled := 0, 0
	for _, s := range cfg.Sources {
		status := "enabled"
		if !s.Enabled {
			status = "disabled"
			disabled++
		} else {
			enabled++
		}

		creds := "none required"
		switch s.Name {
		case "adzuna":
			creds = "missing app_id/app_key"
			if s.AppID != "" && s.AppKey != "" {
				creds = "app_id/app_key set"
			}
		case "superjob":
			creds = "missing api_key"
			if s.APIKey != "" {
				creds = "api_key set"
			}
		}
		fmt.Printf("%-15s %-10s %s\n", s.Name, status, creds)
	}

	fmt.Printf("\nTotal: %d sources (%d enabled, %d disabled)\n", len(cfg.Sources), enabled, disabled)
	return nil
}
