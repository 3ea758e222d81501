// Package matching computes the resume-to-job match score.
package matching

import "math"

// Score returns the percentage of job-required skills that also appear in
// the resume, rounded to two decimals. An empty job skill set scores 0.0 by
// convention rather than being an error: there is no denominator to divide
// by.
func Score(resumeSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 0.0
	}

	resume := make(map[string]struct{}, len(resumeSkills))
	for _, skill := range resumeSkills {
		resume[skill] = struct{}{}
	}

	job := make(map[string]struct{}, len(jobSkills))
	for _, skill := range jobSkills {
		job[skill] = struct{}{}
	}

	matched := 0
	for skill := range job {
		if _, ok := resume[skill]; ok {
			matched++
		}
	}

	return math.Round(float64(matched)/float64(len(job))*100*100) / 100
}
