package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_NoDuplicatesAllLowerCase(t *testing.T) {
	tax := Default()
	require.NotZero(t, tax.Len())

	seen := make(map[string]bool)
	for _, name := range tax.Names() {
		assert.Equal(t, strings.ToLower(name), name)
		assert.False(t, seen[name], "duplicate skill %q", name)
		seen[name] = true
	}
}

func TestDefault_ContainsExpectedSkills(t *testing.T) {
	tax := Default()
	for _, name := range []string{"python", "c++", "c#", "spring boot", "machine learning", "kubernetes"} {
		assert.True(t, tax.Contains(name), "missing %q", name)
	}
	assert.False(t, tax.Contains("cobol"))
}

func TestNew_DedupAndNormalize(t *testing.T) {
	tax := New([]string{"Go", "go", "  Python ", "", "python"})
	assert.Equal(t, []string{"go", "python"}, tax.Names())
	assert.Equal(t, 2, tax.Len())
}

func TestNew_PreservesInsertionOrder(t *testing.T) {
	tax := New([]string{"zeta", "alpha", "mid"})
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, tax.Names())
}

func TestNames_ReturnsCopy(t *testing.T) {
	tax := New([]string{"go", "python"})
	names := tax.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"go", "python"}, tax.Names())
}
