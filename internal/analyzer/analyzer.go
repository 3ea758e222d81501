// Package analyzer composes normalization, skill extraction, match scoring
// and the suggestion chain into one request/response cycle.
package analyzer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/suggest"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analyzer runs the analysis pipeline against a fixed taxonomy. The
// taxonomy is read-only shared state, so an Analyzer is safe for concurrent
// use; independent requests share nothing else.
type Analyzer struct {
	tax    *taxonomy.Taxonomy
	remote []suggest.Provider
	log    *zap.Logger
}

// New creates an Analyzer. remote lists the remote suggestion providers in
// priority order; the deterministic heuristic fallback is appended per
// analysis and never configured here. A nil taxonomy selects the default
// catalog.
func New(log *zap.Logger, tax *taxonomy.Taxonomy, remote ...suggest.Provider) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Analyzer{tax: tax, remote: remote, log: log}
}

// Analyze extracts skills from both texts, scores the overlap, runs the
// suggestion chain, and assembles the complete result. Missing inputs are
// the empty string and never an error; provider failures are absorbed inside
// the chain and never surface here.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) *types.AnalysisResult {
	skillsResume := skills.Extract(resumeText, a.tax)
	skillsJob := skills.Extract(jobText, a.tax)
	score := matching.Score(skillsResume, skillsJob)

	providers := make([]suggest.Provider, 0, len(a.remote)+1)
	providers = append(providers, a.remote...)
	providers = append(providers, suggest.NewHeuristicProvider(skillsResume, skillsJob))
	suggestions := suggest.NewChain(a.log, providers...).Suggest(ctx, resumeText, jobText)

	a.log.Debug("analysis complete",
		zap.Int("resume_skills", len(skillsResume)),
		zap.Int("job_skills", len(skillsJob)),
		zap.Float64("match_score", score),
		zap.Int("suggestions", len(suggestions)))

	return &types.AnalysisResult{
		SkillsResume: skillsResume,
		SkillsJob:    skillsJob,
		MatchScore:   score,
		Suggestions:  suggestions,
		ShortSummary: fmt.Sprintf("Resume contains %d recognized skills. Job requires %d recognized skills.",
			len(skillsResume), len(skillsJob)),
	}
}
