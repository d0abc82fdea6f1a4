package enhance

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaGenerator generates completions with a local ollama server.
type OllamaGenerator struct {
	llm *ollama.LLM
}

var _ Generator = &OllamaGenerator{}

// NewOllamaGenerator creates new OllamaGenerator instance.
func NewOllamaGenerator(serverURL string, model string, httpClient *http.Client) (*OllamaGenerator, error) {
	opts := []ollama.Option{
		ollama.WithModel(model),
		ollama.WithServerURL(serverURL),
	}
	if httpClient != nil {
		opts = append(opts, ollama.WithHTTPClient(httpClient))
	}

	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating ollama client: %w", err)
	}

	return &OllamaGenerator{llm: llm}, nil
}

// Generate implements Generator.
func (g *OllamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.llm.Call(ctx, prompt, llms.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("ollama call: %w", err)
	}

	return strings.TrimSpace(resp), nil
}
