package ai

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
)

// fakeStream replays a fixed sequence of chunks, then EOF.
type fakeStream struct {
	chunks []azopenai.ChatCompletions
	err    error
	idx    int
}

func (f *fakeStream) Read() (azopenai.ChatCompletions, error) {
	if f.idx >= len(f.chunks) {
		if f.err != nil {
			return azopenai.ChatCompletions{}, f.err
		}
		return azopenai.ChatCompletions{}, io.EOF
	}
	chunk := f.chunks[f.idx]
	f.idx++
	return chunk, nil
}

func chunkWithDeltas(deltas ...*string) azopenai.ChatCompletions {
	var choices []azopenai.ChatChoice
	for _, d := range deltas {
		if d == nil {
			choices = append(choices, azopenai.ChatChoice{})
			continue
		}
		choices = append(choices, azopenai.ChatChoice{
			Delta: &azopenai.ChatResponseMessage{Content: d},
		})
	}
	return azopenai.ChatCompletions{Choices: choices}
}

func TestCollectStreamedContent(t *testing.T) {
	cases := []struct {
		name   string
		chunks []azopenai.ChatCompletions
		want   string
	}{
		{
			name:   "empty stream",
			chunks: nil,
			want:   "",
		},
		{
			name:   "single part",
			chunks: []azopenai.ChatCompletions{chunkWithDeltas(to.Ptr("Tacos"))},
			want:   "Tacos",
		},
		{
			name: "multiple parts joined with a space",
			chunks: []azopenai.ChatCompletions{
				chunkWithDeltas(to.Ptr("1. Tacos")),
				chunkWithDeltas(to.Ptr("al pastor")),
				chunkWithDeltas(to.Ptr("with salsa")),
			},
			want: "1. Tacos al pastor with salsa",
		},
		{
			name: "empty deltas are skipped",
			chunks: []azopenai.ChatCompletions{
				chunkWithDeltas(to.Ptr("first")),
				chunkWithDeltas(to.Ptr("")),
				chunkWithDeltas(nil),
				chunkWithDeltas(to.Ptr("second")),
			},
			want: "first second",
		},
		{
			name: "only blank parts",
			chunks: []azopenai.ChatCompletions{
				chunkWithDeltas(to.Ptr("")),
				chunkWithDeltas(nil),
			},
			want: "",
		},
		{
			name: "multiple choices in one chunk",
			chunks: []azopenai.ChatCompletions{
				chunkWithDeltas(to.Ptr("a"), to.Ptr(""), to.Ptr("b")),
			},
			want: "a b",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := collectStreamedContent(&fakeStream{chunks: tc.chunks})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCollectStreamedContentPropagatesReadErrors(t *testing.T) {
	stream := &fakeStream{
		chunks: []azopenai.ChatCompletions{chunkWithDeltas(to.Ptr("partial"))},
		err:    fmt.Errorf("connection reset"),
	}

	_, err := collectStreamedContent(stream)
	if err == nil {
		t.Fatal("Expected read error to propagate")
	}
	if err.Error() != "connection reset" {
		t.Errorf("Expected the underlying error, got %v", err)
	}
}

func TestGetChatCompletionStreamNeverReportsRunningTotal(t *testing.T) {
	client, err := NewAzOpenAIClient("https://example.openai.azure.com", "key", "deployment", GenerationParams{Temperature: 0.8, MaxTokens: 2048})
	if err != nil {
		t.Fatalf("Expected client construction to succeed, got %v", err)
	}

	// Simulate a prior non-stream call having bumped the running counter.
	client.IncrementTokenUsage(&azopenai.CompletionsUsage{
		PromptTokens:     to.Ptr(int32(100)),
		CompletionTokens: to.Ptr(int32(400)),
		TotalTokens:      to.Ptr(int32(500)),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, usage, err := client.GetChatCompletionStream(ctx, "prompt")
	if err == nil {
		t.Fatal("Expected error with cancelled context")
	}
	if usage != (TokenUsage{}) {
		t.Errorf("Expected zero per-call usage from the stream path, got %+v", usage)
	}
}
