package ai

import (
	"context"
	"fmt"

	"github.com/lisadascse72/Recipe-generator/pkg/errors"
	"github.com/lisadascse72/Recipe-generator/pkg/logger"
)

// TestConn verifies that the configured model answers a trivial prompt.
func TestConn(ctx context.Context, client LLMClient) error {
	content, tokenUsage, err := client.GetChatCompletion(ctx, "Hello! Tell me this is working in one short sentence.")
	if err != nil {
		return errors.New(errors.CodeNetworkError, "ai", fmt.Sprintf("failed to get chat completion: %v", err), err)
	}

	logger.Infof("Model %s connection test", client.Model())
	logger.Infof("Response: %s", content)
	logger.Infof("Total tokens used: %d, Prompt tokens: %d, Completion tokens: %d", tokenUsage.TotalTokens, tokenUsage.PromptTokens, tokenUsage.CompletionTokens)
	return nil
}
