package config

import (
	"fmt"

	"github.com/Asmiya135/AshaAI/pkg/llm"
)

// NewLLMClient builds the generative-language client selected by
// LLM_PROVIDER.
func (c *Config) NewLLMClient() (llm.Client, error) {
	switch c.LLMProvider {
	case "", ProviderGemini:
		if c.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required")
		}
		if c.LLMModel == "" {
			return llm.NewGeminiClient(c.GeminiAPIKey), nil
		}
		return llm.NewOpenAIClient(c.GeminiAPIKey, llm.GeminiBaseURL, c.LLMModel), nil

	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		model := c.LLMModel
		if model == "" {
			model = "gpt-4o-mini"
		}
		return llm.NewOpenAIClient(c.OpenAIAPIKey, c.LLMBaseURL, model), nil

	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
		}
		return llm.NewAnthropicClient(c.AnthropicAPIKey, c.LLMModel), nil
	}

	return nil, fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider)
}
