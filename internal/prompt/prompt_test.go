package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildEmbedsPayloadVerbatim(t *testing.T) {
	payloads := []string{
		`{"type":"mcq","question_text":"What is a mutex?"}`,
		`{"type":"unknown","error":"timeout"}`,
		"not json at all",
		`weird {{"chars"}} %s 100%% "quoted" ` + "`backticks`",
		"",
	}
	for _, p := range payloads {
		out := Build(p)
		assert.Contains(t, out, p)
		assert.True(t, strings.HasPrefix(out, "You're an expert problem solver"))
		assert.Contains(t, out, "Here is the JSON:")
	}
}

func TestBuildSingleSubstitution(t *testing.T) {
	out := Build("MARKER")
	assert.Equal(t, 1, strings.Count(out, "MARKER"))
	// no leftover format verbs from the template
	assert.NotContains(t, out, "%!")
}
