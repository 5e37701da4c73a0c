package main

import (
	"os"

	"github.com/spf13/cobra"

	"jobpulse/internal/publish"
)

var testsendCmd = &cobra.Command{
	Use:   "testsend",
	Short: "Send a test message to the channel",
	Long:  "Sends a formatted test vacancy to the configured Telegram channel to verify the token and channel id.",
	RunE:  runTestsend,
}

func init() {
	rootCmd.AddCommand(testsendCmd)
}

func runTestsend(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	publisher, err := setupPublisher(cfg, logger)
	if err != nil {
		logger.Error("failed to set up publisher", "error", err)
		os.Exit(1)
	}

	if err := publish.SendTestMessage(publisher); err != nil {
		logger.Error("test message failed", "error", err)
		os.Exit(1)
	}
	logger.Info("test message sent successfully")
	return nil
}
