package suggest

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	defaultOpenAIModel = openai.GPT4oMini

	// openaiCallTimeout bounds a single chat completion round trip.
	openaiCallTimeout = 15 * time.Second
)

// OpenAIProvider is the secondary remote suggestion source, called through
// the chat completion API with a single user message.
type OpenAIProvider struct {
	apiKey string
	model  string
	client *openai.Client
	log    *zap.Logger
}

// NewOpenAIProvider creates the provider. An empty apiKey leaves the
// provider unavailable; an empty model selects the default.
func NewOpenAIProvider(log *zap.Logger, apiKey, model string) *OpenAIProvider {
	if log == nil {
		log = zap.NewNop()
	}
	if model = strings.TrimSpace(model); model == "" {
		model = defaultOpenAIModel
	}
	p := &OpenAIProvider{
		apiKey: strings.TrimSpace(apiKey),
		model:  model,
		log:    log,
	}
	if p.apiKey != "" {
		p.client = openai.NewClient(p.apiKey)
	}
	return p
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return "openai" }

// Available reports whether an API key is configured.
func (p *OpenAIProvider) Available() bool { return p.apiKey != "" }

// Suggest implements Provider. Any failure is logged and absorbed into an
// empty result.
func (p *OpenAIProvider) Suggest(ctx context.Context, resumeText, jobText string) []string {
	if p.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, openaiCallTimeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: 0.2,
		MaxTokens:   400,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: buildPrompt(resumeText, jobText),
		}},
	})
	if err != nil {
		p.log.Debug("openai call failed", zap.Error(err))
		return nil
	}
	if len(resp.Choices) == 0 {
		return nil
	}

	return parseSuggestionList(resp.Choices[0].Message.Content)
}
