package app

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// GenerateArticle asks the completion API for article body text on a topic.
// A single request carries one system-role message; the first choice comes
// back verbatim, with no retry and no sanitization of the returned text.
func (a *Automator) GenerateArticle(ctx context.Context, topic string) (string, error) {
	prompt := fmt.Sprintf("Write a detailed tech news article about %s. Include quotes and technical details.", topic)

	resp, err := a.openai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response missing choices")
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("completion response empty")
	}

	return content, nil
}
