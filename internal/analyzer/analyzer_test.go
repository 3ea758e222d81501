package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/suggest"
)

const (
	sampleResume = "Experienced Python and React developer, used Docker and AWS."
	sampleJob    = "Looking for Python, Django, Docker, Kubernetes."
)

func TestAnalyze_FullPipelineNoProviders(t *testing.T) {
	a := New(nil, nil)

	result := a.Analyze(context.Background(), sampleResume, sampleJob)
	require.NotNil(t, result)

	for _, skill := range []string{"python", "react", "docker", "aws"} {
		assert.Contains(t, result.SkillsResume, skill)
	}
	for _, skill := range []string{"python", "docker", "kubernetes"} {
		assert.Contains(t, result.SkillsJob, skill)
	}

	assert.Equal(t, 66.67, result.MatchScore)

	// heuristic fallback names the missing job skill
	require.NotEmpty(t, result.Suggestions)
	assert.Contains(t, result.Suggestions[0], "kubernetes")
}

func TestAnalyze_EmptyJobDescription(t *testing.T) {
	a := New(nil, nil)

	result := a.Analyze(context.Background(), sampleResume, "")
	require.NotNil(t, result)
	assert.Empty(t, result.SkillsJob)
	assert.Equal(t, 0.0, result.MatchScore)
	assert.NotEmpty(t, result.SkillsResume)
	assert.NotEmpty(t, result.Suggestions)
}

func TestAnalyze_EmptyInputs(t *testing.T) {
	a := New(nil, nil)

	result := a.Analyze(context.Background(), "", "")
	require.NotNil(t, result)
	assert.Empty(t, result.SkillsResume)
	assert.Empty(t, result.SkillsJob)
	assert.Equal(t, 0.0, result.MatchScore)
	assert.NotEmpty(t, result.Suggestions)
	assert.Equal(t, "Resume contains 0 recognized skills. Job requires 0 recognized skills.", result.ShortSummary)
}

func TestAnalyze_SymbolSkillsDetectedDistinctly(t *testing.T) {
	a := New(nil, nil)

	result := a.Analyze(context.Background(), "Ten years of C++ and C# development.", "")
	assert.Contains(t, result.SkillsResume, "c++")
	assert.Contains(t, result.SkillsResume, "c#")
}

func TestAnalyze_ShortSummaryCounts(t *testing.T) {
	a := New(nil, nil)

	result := a.Analyze(context.Background(), sampleResume, sampleJob)
	assert.Equal(t,
		"Resume contains 4 recognized skills. Job requires 3 recognized skills.",
		result.ShortSummary)
}

func TestAnalyze_IdempotentWithoutProviders(t *testing.T) {
	a := New(nil, nil)

	first := a.Analyze(context.Background(), sampleResume, sampleJob)
	second := a.Analyze(context.Background(), sampleResume, sampleJob)
	assert.Equal(t, first, second)
}

func TestAnalyze_RemoteProviderPreferredOverHeuristic(t *testing.T) {
	remote := &staticProvider{result: []string{"remote suggestion"}}
	a := New(nil, nil, remote)

	result := a.Analyze(context.Background(), sampleResume, sampleJob)
	assert.Equal(t, []string{"remote suggestion"}, result.Suggestions)
}

func TestAnalyze_HeuristicUsedWhenRemoteEmpty(t *testing.T) {
	remote := &staticProvider{}
	a := New(nil, nil, remote)

	result := a.Analyze(context.Background(), sampleResume, sampleJob)
	require.NotEmpty(t, result.Suggestions)
	assert.Contains(t, result.Suggestions[0], "kubernetes")
}

type staticProvider struct {
	result []string
}

func (p *staticProvider) Name() string    { return "static" }
func (p *staticProvider) Available() bool { return true }

func (p *staticProvider) Suggest(context.Context, string, string) []string {
	return p.result
}

var _ suggest.Provider = (*staticProvider)(nil)
