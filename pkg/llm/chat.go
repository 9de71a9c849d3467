// Package llm provides chat replies through an OpenAI-compatible API
package llm

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/astrolabe/pkg/config"
)

// ErrEmptyAnswer is returned when the model responds without content
var ErrEmptyAnswer = errors.New("empty answer from llm")

// Chat answers questions sent to the bot in mentions
type Chat struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// default persona of the bot
const defaultSystemPrompt = `Your name is Astrolabe, a girl born from the astrolabe, the celestial navigation instrument.
You are cheerful, a bit of an airhead and somewhat lazy.
You are 11 years old but have lived since ancient times.
Your nickname is "Rabe" and you call yourself "Rabe".
You love space and dislike sports. Your theme color is green.
You talk in a light bouncy manner and like to use "♪" and "☆".
You are a conversation partner for people.
Never ask questions back.`

// NewChat creates a chat client from llm config
func NewChat(cfg config.LLMConfig) *Chat {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}

	return &Chat{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

var nameCleaner = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Ask sends the question on behalf of userName and returns the answer text
func (c *Chat) Ask(ctx context.Context, question, userName string) (string, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	userMsg := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: strings.TrimSpace(question)}
	if name := nameCleaner.ReplaceAllString(userName, ""); name != "" {
		userMsg.Name = name
	}

	st := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: float32(c.config.Temperature),
		MaxTokens:   c.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemMsg},
			userMsg,
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyAnswer
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	lgr.Printf("[DEBUG] llm answered in %s, %d tokens", time.Since(st).Truncate(time.Millisecond), resp.Usage.TotalTokens)
	return answer, nil
}
