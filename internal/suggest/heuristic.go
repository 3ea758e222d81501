package suggest

import (
	"context"
	"sort"
	"strings"
)

// HeuristicProvider is the deterministic, network-free fallback at the end
// of the chain. It is built from the skill sets already extracted for the
// analysis and always produces at least two suggestions.
type HeuristicProvider struct {
	resumeSkills []string
	jobSkills    []string
}

// NewHeuristicProvider builds the fallback from the extracted skill sets.
func NewHeuristicProvider(resumeSkills, jobSkills []string) *HeuristicProvider {
	return &HeuristicProvider{resumeSkills: resumeSkills, jobSkills: jobSkills}
}

// Name implements Provider.
func (p *HeuristicProvider) Name() string { return "heuristic" }

// Available implements Provider. The heuristic is always available.
func (p *HeuristicProvider) Available() bool { return true }

// Suggest implements Provider. The texts are ignored; the suggestions come
// from the skill-set difference plus fixed generic advice.
func (p *HeuristicProvider) Suggest(_ context.Context, _, _ string) []string {
	var suggestions []string

	if missing := missingSkills(p.resumeSkills, p.jobSkills); len(missing) > 0 {
		suggestions = append(suggestions, "Skills to add or highlight: "+strings.Join(missing, ", "))
	}

	suggestions = append(suggestions,
		"Quantify achievements (e.g., reduced latency by 30%, processed X records).",
		"Add a short 'Key Projects' section with tech stack and outcomes.",
	)

	for _, skill := range p.jobSkills {
		if skill == "machine learning" || skill == "nlp" {
			suggestions = append(suggestions,
				"Include datasets, model performance metrics (accuracy/F1), and deployment details.")
			break
		}
	}

	return suggestions
}

// missingSkills returns the job skills absent from the resume, sorted.
func missingSkills(resumeSkills, jobSkills []string) []string {
	have := make(map[string]struct{}, len(resumeSkills))
	for _, skill := range resumeSkills {
		have[skill] = struct{}{}
	}

	var missing []string
	for _, skill := range jobSkills {
		if _, ok := have[skill]; !ok {
			missing = append(missing, skill)
		}
	}
	sort.Strings(missing)
	return missing
}
