package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	defaultGeminiModel   = "text-bison-001"
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

	// geminiCallTimeout bounds a single generateText round trip.
	geminiCallTimeout = 15 * time.Second
)

// GeminiProvider asks the Google Generative Language API for suggestions
// over its legacy generateText REST surface. That API version carries the
// key as a query parameter and its response shape varies by version, so the
// provider speaks raw HTTP and probes the body instead of binding to an SDK
// struct.
type GeminiProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewGeminiProvider creates the provider. An empty apiKey leaves the
// provider unavailable; an empty model selects the default.
func NewGeminiProvider(log *zap.Logger, apiKey, model string) *GeminiProvider {
	if log == nil {
		log = zap.NewNop()
	}
	if model = strings.TrimSpace(model); model == "" {
		model = defaultGeminiModel
	}
	return &GeminiProvider{
		apiKey:  strings.TrimSpace(apiKey),
		model:   model,
		baseURL: defaultGeminiBaseURL,
		client:  &http.Client{Timeout: geminiCallTimeout},
		log:     log,
	}
}

// Name implements Provider.
func (p *GeminiProvider) Name() string { return "gemini" }

// Available reports whether an API key is configured.
func (p *GeminiProvider) Available() bool { return p.apiKey != "" }

type geminiRequest struct {
	Prompt          geminiPrompt `json:"prompt"`
	Temperature     float64      `json:"temperature"`
	MaxOutputTokens int          `json:"maxOutputTokens"`
}

type geminiPrompt struct {
	Text string `json:"text"`
}

// Suggest implements Provider. Any failure at any step is logged and
// absorbed into an empty result.
func (p *GeminiProvider) Suggest(ctx context.Context, resumeText, jobText string) []string {
	if !p.Available() {
		return nil
	}

	body, err := p.generateText(ctx, buildPrompt(resumeText, jobText))
	if err != nil {
		p.log.Debug("gemini call failed", zap.Error(err))
		return nil
	}

	return parseSuggestionList(extractGeminiText(body))
}

func (p *GeminiProvider) generateText(ctx context.Context, prompt string) ([]byte, error) {
	payload, err := json.Marshal(geminiRequest{
		Prompt:          geminiPrompt{Text: prompt},
		Temperature:     0.2,
		MaxOutputTokens: 512,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta2/models/%s:generateText?key=%s",
		p.baseURL, p.model, url.QueryEscape(p.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return body, nil
}

// geminiTextPaths lists the response fields that may carry the generated
// text, in probe order. The first populated field wins.
var geminiTextPaths = []string{
	"candidates.0.output",
	"candidates.0.content",
	"output.text",
	"output.content",
}

// extractGeminiText probes the known response shapes for the generated
// text. An output list has its content fragments joined by newlines. A valid
// JSON body of unknown shape is returned raw so the line-split parser still
// gets a chance; a body that is not JSON at all yields nothing.
func extractGeminiText(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}

	for _, path := range geminiTextPaths {
		if v := gjson.GetBytes(body, path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}

	if out := gjson.GetBytes(body, "output"); out.IsArray() {
		var pieces []string
		out.ForEach(func(_, item gjson.Result) bool {
			if c := item.Get("content"); c.Exists() {
				pieces = append(pieces, c.String())
			} else {
				pieces = append(pieces, item.String())
			}
			return true
		})
		if len(pieces) > 0 {
			return strings.Join(pieces, "\n")
		}
	}

	for _, path := range []string{"text", "content"} {
		if v := gjson.GetBytes(body, path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}

	return string(body)
}
