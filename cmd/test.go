package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lisadascse72/Recipe-generator/pkg/ai"
	"github.com/lisadascse72/Recipe-generator/pkg/config"
)

var testCmd = &cobra.Command{
	Use:     "test-connection",
	Aliases: []string{"test"},
	Short:   "Test the Azure OpenAI connection",
	Long:    `The test command verifies the Azure OpenAI connection based on the environment variables set and prints a response.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}

		client, err := initLLMClient(cfg)
		if err != nil {
			return fmt.Errorf("error initializing Azure OpenAI client: %w", err)
		}
		if err := ai.TestConn(cmd.Context(), client); err != nil {
			return fmt.Errorf("error testing Azure OpenAI connection: %w", err)
		}

		return nil
	},
}
