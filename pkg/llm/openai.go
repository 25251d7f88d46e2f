package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	// GeminiBaseURL is Gemini's OpenAI-compatible endpoint.
	GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	GeminiModel   = "gemini-2.0-flash"
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

// NewOpenAIClient talks to any OpenAI-compatible chat completions API. An
// empty baseURL means api.openai.com.
func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModel(model),
		modelName: model,
	}
}

func NewGeminiClient(apiKey string) *OpenAIClient {
	return NewOpenAIClient(apiKey, GeminiBaseURL, GeminiModel)
}

func (c *OpenAIClient) Name() string {
	return c.modelName
}

func (c *OpenAIClient) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", c.modelName)
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) SuggestJobs(ctx context.Context, resumeText string) ([]JobSuggestion, error) {
	return suggestJobs(ctx, c, resumeText)
}

func (c *OpenAIClient) GenerateCourse(ctx context.Context, input CourseInput) (*Course, error) {
	return generateCourse(ctx, c, input)
}

func (c *OpenAIClient) VideoKeyword(ctx context.Context, input KeywordInput) (string, error) {
	return videoKeyword(ctx, c, input)
}
