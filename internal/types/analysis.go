// Package types provides type definitions for structured data used
// throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AnalysisResult is the aggregate output of one resume/job analysis.
// It is constructed fresh per request and never partially populated.
type AnalysisResult struct {
	// SkillsResume lists the recognized skills found in the resume, sorted.
	SkillsResume []string `json:"skills_resume"`
	// SkillsJob lists the recognized skills found in the job description, sorted.
	SkillsJob []string `json:"skills_job"`
	// MatchScore is the percentage of job skills covered by the resume, two decimals.
	MatchScore float64 `json:"match_score"`
	// Suggestions holds improvement suggestions in relevance order.
	Suggestions []string `json:"suggestions"`
	// ShortSummary is a one-line textual summary of the skill counts.
	ShortSummary string `json:"short_summary"`
}
