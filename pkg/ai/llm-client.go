package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"

	cheferrors "github.com/lisadascse72/Recipe-generator/pkg/errors"
)

// TokenUsage tracks the token cost of completions made through a client
type TokenUsage struct {
	PromptTokens     int32
	CompletionTokens int32
	TotalTokens      int32
}

// GenerationParams controls how the model generates completions
type GenerationParams struct {
	Temperature float32
	MaxTokens   int32
}

// LLMClient is the interface the rest of the service uses to talk to a model
type LLMClient interface {
	// GetChatCompletion sends a prompt and returns the full completion text.
	GetChatCompletion(ctx context.Context, promptText string) (string, TokenUsage, error)
	// GetChatCompletionStream sends a prompt, consumes the streamed chunks
	// and returns them joined into a single string.
	GetChatCompletionStream(ctx context.Context, promptText string) (string, TokenUsage, error)
	// Model identifies the deployment answering the prompts.
	Model() string
}

type AzOpenAIClient struct {
	client       *azopenai.Client
	deploymentID string
	params       GenerationParams

	mu         sync.Mutex
	tokenUsage TokenUsage
}

var _ LLMClient = (*AzOpenAIClient)(nil)

// NewAzOpenAIClient creates and returns a new AzOpenAIClient using the provided credentials
// The deploymentID is stored and used for all subsequent API calls
func NewAzOpenAIClient(endpoint, apiKey, deploymentID string, params GenerationParams) (*AzOpenAIClient, error) {
	keyCredential := azcore.NewKeyCredential(apiKey)
	client, err := azopenai.NewClientWithKeyCredential(endpoint, keyCredential, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating Azure OpenAI client: %v", err)
	}
	return &AzOpenAIClient{
		client:       client,
		deploymentID: deploymentID,
		params:       params,
	}, nil
}

// Model returns the deployment ID answering the prompts
func (c *AzOpenAIClient) Model() string {
	return c.deploymentID
}

// GetChatCompletion sends a prompt to the LLM and returns the completion text.
func (c *AzOpenAIClient) GetChatCompletion(ctx context.Context, promptText string) (string, TokenUsage, error) {
	resp, err := c.client.GetChatCompletions(
		ctx,
		azopenai.ChatCompletionsOptions{
			DeploymentName: to.Ptr(c.deploymentID),
			Messages: []azopenai.ChatRequestMessageClassification{
				&azopenai.ChatRequestUserMessage{
					Content: azopenai.NewChatRequestUserMessageContent(promptText),
				},
			},
			Temperature: to.Ptr(c.params.Temperature),
			MaxTokens:   to.Ptr(c.params.MaxTokens),
		},
		nil,
	)

	if err != nil {
		return "", TokenUsage{}, cheferrors.New(cheferrors.CodeNetworkError, "ai", "chat completion request failed", err)
	}

	usage := c.IncrementTokenUsage(resp.Usage)

	if len(resp.Choices) > 0 && resp.Choices[0].Message != nil && resp.Choices[0].Message.Content != nil {
		return *resp.Choices[0].Message.Content, usage, nil
	}

	return "", usage, cheferrors.New(cheferrors.CodeEmptyCompletion, "ai", "no completion received from LLM", nil)
}

// GetChatCompletionStream makes a streaming call with the given prompt,
// collects the streamed chunks and joins them into a single string.
// Chunks with no text (for example blank parts from content filtering)
// are skipped rather than failing the whole response.
func (c *AzOpenAIClient) GetChatCompletionStream(ctx context.Context, promptText string) (string, TokenUsage, error) {
	resp, err := c.client.GetChatCompletionsStream(
		ctx,
		azopenai.ChatCompletionsStreamOptions{
			DeploymentName: to.Ptr(c.deploymentID),
			Messages: []azopenai.ChatRequestMessageClassification{
				&azopenai.ChatRequestUserMessage{
					Content: azopenai.NewChatRequestUserMessageContent(promptText),
				},
			},
			Temperature: to.Ptr(c.params.Temperature),
			MaxTokens:   to.Ptr(c.params.MaxTokens),
		},
		nil,
	)
	if err != nil {
		return "", TokenUsage{}, cheferrors.New(cheferrors.CodeNetworkError, "ai", "chat completion stream request failed", err)
	}
	defer resp.ChatCompletionsStream.Close()

	content, err := collectStreamedContent(resp.ChatCompletionsStream)
	if err != nil {
		return "", TokenUsage{}, cheferrors.New(cheferrors.CodeNetworkError, "ai", "reading chat completion stream", err)
	}
	if content == "" {
		return "", TokenUsage{}, cheferrors.New(cheferrors.CodeEmptyCompletion, "ai", "no completion received from LLM", nil)
	}

	// The streaming API does not report usage, so the per-call delta is zero.
	return content, TokenUsage{}, nil
}

// completionsStream is the part of the SDK's event reader the join loop needs.
type completionsStream interface {
	Read() (azopenai.ChatCompletions, error)
}

// collectStreamedContent drains the stream and joins the content deltas with
// a single space. Chunks with no text (for example blank parts from content
// filtering) are skipped rather than failing the whole response.
func collectStreamedContent(stream completionsStream) (string, error) {
	var parts []string
	for {
		chunk, err := stream.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		for _, choice := range chunk.Choices {
			if choice.Delta == nil || choice.Delta.Content == nil || *choice.Delta.Content == "" {
				continue
			}
			parts = append(parts, *choice.Delta.Content)
		}
	}

	return strings.Join(parts, " "), nil
}

// IncrementTokenUsage adds the usage of one completion to the running total
// and returns the delta it recorded
func (c *AzOpenAIClient) IncrementTokenUsage(usage *azopenai.CompletionsUsage) TokenUsage {
	if usage == nil {
		return TokenUsage{}
	}

	delta := TokenUsage{}
	if usage.PromptTokens != nil {
		delta.PromptTokens = *usage.PromptTokens
	}
	if usage.CompletionTokens != nil {
		delta.CompletionTokens = *usage.CompletionTokens
	}
	if usage.TotalTokens != nil {
		delta.TotalTokens = *usage.TotalTokens
	}

	c.mu.Lock()
	c.tokenUsage.PromptTokens += delta.PromptTokens
	c.tokenUsage.CompletionTokens += delta.CompletionTokens
	c.tokenUsage.TotalTokens += delta.TotalTokens
	c.mu.Unlock()

	return delta
}

// GetTokenUsage returns the tokens consumed since the client was created or reset
func (c *AzOpenAIClient) GetTokenUsage() TokenUsage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokenUsage
}

// ResetTokenUsage zeroes the running token counter
func (c *AzOpenAIClient) ResetTokenUsage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokenUsage = TokenUsage{}
}
