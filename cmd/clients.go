package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/lisadascse72/Recipe-generator/pkg/ai"
	"github.com/lisadascse72/Recipe-generator/pkg/config"
)

// initLLMClient builds the Azure OpenAI client from the environment.
// config.Load has already pulled in the .env file by the time this runs.
func initLLMClient(cfg *config.Config) (*ai.AzOpenAIClient, error) {
	apiKey := os.Getenv(AZURE_OPENAI_KEY)
	endpoint := os.Getenv(AZURE_OPENAI_ENDPOINT)
	deploymentID := os.Getenv(AZURE_OPENAI_DEPLOYMENT_ID)

	var missingVars []string
	if apiKey == "" {
		missingVars = append(missingVars, AZURE_OPENAI_KEY)
	}
	if endpoint == "" {
		missingVars = append(missingVars, AZURE_OPENAI_ENDPOINT)
	}
	if deploymentID == "" {
		missingVars = append(missingVars, AZURE_OPENAI_DEPLOYMENT_ID)
	}

	if len(missingVars) > 0 {
		return nil, fmt.Errorf("missing environment variables: %s", strings.Join(missingVars, ", "))
	}

	client, err := ai.NewAzOpenAIClient(endpoint, apiKey, deploymentID, ai.GenerationParams{
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure OpenAI client: %w", err)
	}

	return client, nil
}
