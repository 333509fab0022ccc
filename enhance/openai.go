package enhance

import (
	"context"
	"errors"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const instruction = "You are a helpful assistant that improves prompt wording without changing intent. " +
	"Given the resolved prompt below, rewrite it to be clear, concise, and effective for LLMs. " +
	"Return only the improved prompt."

// OpenAI asks an OpenAI-compatible chat completion endpoint to rewrite a
// prompt. Base URL and model are configurable so any compatible provider
// can serve the call.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, baseURL, model string) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg), model: model}
}

func (o *OpenAI) Enhance(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: "Resolved Prompt:\n\n" + prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	improved := strings.TrimSpace(resp.Choices[0].Message.Content)
	if improved == "" {
		return "", errors.New("completion returned an empty message")
	}
	return improved, nil
}
