package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

type EmbeddingClientInterface interface {
	EmbedText(ctx context.Context, text string) (pgvector.Vector, error)
}

// -------------- OpenAI ---------------

type OpenAIEmbeddingClient struct {
	client *openai.Client
}

func NewOpenAIEmbeddingClient(apiKey string) EmbeddingClientInterface {
	return &OpenAIEmbeddingClient{client: openai.NewClient(apiKey)}
}

func (c *OpenAIEmbeddingClient) EmbedText(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3, // 1536 dims, matches the vector column
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embedding: empty response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

// -------------- Gemini ---------------

// GeminiEmbeddingClient implements EmbeddingClientInterface using
// Google's Gemini embedding models. Its vector size differs from
// OpenAI's, so the embeddings table must be migrated when switching.
type GeminiEmbeddingClient struct {
	client *genai.Client
	model  string
}

func NewGeminiEmbeddingClient(apiKey, model string) (EmbeddingClientInterface, error) {
	if model == "" {
		model = "text-embedding-004"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbeddingClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiEmbeddingClient) EmbedText(ctx context.Context, text string) (pgvector.Vector, error) {
	em := c.client.EmbeddingModel(c.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("gemini embedding: %w", err)
	}
	if res.Embedding == nil {
		return pgvector.Vector{}, fmt.Errorf("gemini embedding: empty response")
	}
	return pgvector.NewVector(res.Embedding.Values), nil
}

// NewEmbeddingClientFromEnv picks an embedding backend from configured
// keys. OpenAI wins when both are present. Returns nil when neither key
// is set; callers must treat that as "similarity search disabled".
func NewEmbeddingClientFromEnv() EmbeddingClientInterface {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return NewOpenAIEmbeddingClient(key)
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		client, err := NewGeminiEmbeddingClient(key, "")
		if err == nil {
			return client
		}
	}
	return nil
}
