package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	for _, key := range []string{"generate-bio", "generate-bio-with-role"} {
		prompt, err := Get(BioFile, key)
		require.NoError(t, err, key)
		assert.Contains(t, prompt, "{{.Skills}}")
	}

	prompt, err := Get(BioFile, "generate-bio")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Write a professional bio for a portfolio website")
}

func TestGet_Missing(t *testing.T) {
	_, err := Get("nonexistent.json", "generate-bio")
	assert.ErrorContains(t, err, "prompt file nonexistent.json not found")

	_, err = Get(BioFile, "nonexistent-key")
	assert.ErrorContains(t, err, "not found")
}

func TestFormat(t *testing.T) {
	out := Format("Skills: {{.Skills}}. Experience: {{.Experience}}. {{.Unknown}}", map[string]string{
		"Skills":     "Go, SQL",
		"Experience": "5 years",
	})
	assert.Equal(t, "Skills: Go, SQL. Experience: 5 years. {{.Unknown}}", out)
}

func TestFormat_ValueWithPlaceholderIsNotExpanded(t *testing.T) {
	out := Format("{{.A}} {{.B}}", map[string]string{"A": "{{.B}}", "B": "b"})
	assert.Equal(t, "{{.B}} b", out)
}
