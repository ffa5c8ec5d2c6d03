// internal/adapters/llm/openai.go
package llm

import (
	"context"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

// Completer wraps the OpenAI chat-completion API behind CompleterPort.
type Completer struct {
	client *openai.Client
	model  string
}

func NewCompleter(apiKey, model string) *Completer {
	return &Completer{client: openai.NewClient(apiKey), model: model}
}

func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
