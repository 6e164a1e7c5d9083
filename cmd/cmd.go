package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lisadascse72/Recipe-generator/pkg/logger"
)

const (
	AZURE_OPENAI_KEY           = "AZURE_OPENAI_KEY"
	AZURE_OPENAI_ENDPOINT      = "AZURE_OPENAI_ENDPOINT"
	AZURE_OPENAI_DEPLOYMENT_ID = "AZURE_OPENAI_DEPLOYMENT_ID"
)

// version is stamped at build time via -ldflags
var version = "dev"

var envFile string

var rootCmd = &cobra.Command{
	Use:     "chef",
	Short:   "AI chef that turns your preferences into meal recommendations",
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the chef version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func Execute() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "path to a .env file with configuration")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Errorf("command failed: %v", err)
		os.Exit(1)
	}
}
