// Package suggest produces resume improvement suggestions from an ordered
// chain of providers.
//
// Each provider satisfies the same contract: produce suggestions from two
// texts, never fail. Remote providers absorb every failure mode (missing
// credential, network error, non-2xx status, timeout, unparseable body) and
// return an empty result so the chain can move on; the deterministic
// heuristic fallback at the end of the chain guarantees a non-empty outcome.
package suggest

import (
	"context"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	// maxPromptChars bounds each text embedded in a remote prompt to keep
	// request size and cost predictable.
	maxPromptChars = 4000
	// maxLineSuggestions caps suggestions recovered from line-split output.
	maxLineSuggestions = 7
)

// Provider is a single suggestion source.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string
	// Available reports whether the provider can be invoked at all,
	// typically credential presence. Absence is not an error condition.
	Available() bool
	// Suggest returns improvement suggestions, or an empty slice. It never
	// fails; all internal errors are absorbed.
	Suggest(ctx context.Context, resumeText, jobText string) []string
}

// Chain walks providers in priority order and stops at the first non-empty
// result. Providers that report themselves unavailable are skipped without
// being invoked. No retries: a failed provider call counts as "no
// suggestions from this provider".
type Chain struct {
	providers []Provider
	log       *zap.Logger
}

// NewChain creates a chain over the given providers, in order.
func NewChain(log *zap.Logger, providers ...Provider) *Chain {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chain{providers: providers, log: log}
}

// Suggest returns the first provider's non-empty suggestion list, or nil if
// every provider came up empty.
func (c *Chain) Suggest(ctx context.Context, resumeText, jobText string) []string {
	for _, p := range c.providers {
		if !p.Available() {
			c.log.Debug("suggestion provider skipped", zap.String("provider", p.Name()))
			continue
		}
		if out := p.Suggest(ctx, resumeText, jobText); len(out) > 0 {
			c.log.Debug("suggestions produced",
				zap.String("provider", p.Name()),
				zap.Int("count", len(out)))
			return out
		}
	}
	return nil
}

// buildPrompt embeds both texts, truncated to the prompt budget, and asks
// for exactly five concise bullet suggestions as a JSON array of strings.
// Both remote providers share this prompt.
func buildPrompt(resumeText, jobText string) string {
	return fmt.Sprintf("You are an expert career coach.\n"+
		"Given the resume text delimited by triple backticks and the job description delimited by triple backticks, "+
		"provide 5 concise suggestions to improve the resume for this job. Use short bullet points.\n\n"+
		"Resume:\n```\n%s\n```\n\n"+
		"Job:\n```\n%s\n```\n\n"+
		"Respond with a JSON array of strings only (for example: [\"point1\", \"point2\", ...]).",
		truncate(resumeText, maxPromptChars), truncate(jobText, maxPromptChars))
}

// truncate cuts s to at most limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
