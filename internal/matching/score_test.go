package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_EmptyJobSet(t *testing.T) {
	assert.Equal(t, 0.0, Score([]string{"python", "docker"}, nil))
	assert.Equal(t, 0.0, Score(nil, nil))
}

func TestScore_TwoOfThree(t *testing.T) {
	resume := []string{"aws", "docker", "python", "react"}
	job := []string{"docker", "kubernetes", "python"}
	assert.Equal(t, 66.67, Score(resume, job))
}

func TestScore_FullAndZeroOverlap(t *testing.T) {
	job := []string{"go", "sql"}
	assert.Equal(t, 100.0, Score([]string{"go", "sql", "aws"}, job))
	assert.Equal(t, 0.0, Score([]string{"python"}, job))
}

func TestScore_RoundsToTwoDecimals(t *testing.T) {
	// 1/3 -> 33.33, 2/7 -> 28.57
	assert.Equal(t, 33.33, Score([]string{"a"}, []string{"a", "b", "c"}))
	assert.Equal(t, 28.57, Score([]string{"a", "b"}, []string{"a", "b", "c", "d", "e", "f", "g"}))
}

func TestScore_MonotoneInOverlap(t *testing.T) {
	job := []string{"a", "b", "c", "d"}
	prev := -1.0
	resume := []string{}
	for _, skill := range job {
		resume = append(resume, skill)
		score := Score(resume, job)
		assert.Greater(t, score, prev)
		prev = score
	}
	assert.Equal(t, 100.0, prev)
}

func TestScore_IgnoresDuplicates(t *testing.T) {
	assert.Equal(t, 50.0, Score([]string{"a", "a"}, []string{"a", "a", "b"}))
}
