package session

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parthsali/prompt-generator/internal/analyze"
)

// scriptedEngine returns its canned answers in call order.
type scriptedEngine struct {
	outs  []string
	errs  []error
	calls int
}

func (s *scriptedEngine) Name() string     { return "scripted" }
func (s *scriptedEngine) GetModel() string { return "scripted-1" }

func (s *scriptedEngine) Analyze(context.Context, []byte, string) (string, error) {
	i := s.calls
	s.calls++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	var out string
	if i < len(s.outs) {
		out = s.outs[i]
	}
	return out, err
}

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestProcessHappyPath(t *testing.T) {
	eng := &scriptedEngine{outs: []string{
		`{"type":"mcq","question_text":"Q1. Which scheduler is preemptive?","options":["FCFS","SJF","RR"]}`,
	}}
	s := newSession(t)

	res := s.Process(context.Background(), analyze.NewRequester(eng), Upload{Name: "q.png", Data: []byte("img")})

	assert.Equal(t, "Q1", res.Label)
	assert.Contains(t, res.Prompt, "Which scheduler is preemptive?")
	assert.Empty(t, res.Warnings)
}

func TestProcessLetterLabelFromRawText(t *testing.T) {
	eng := &scriptedEngine{outs: []string{
		`{"type":"unknown","raw_text":"a) Choose the correct option"}`,
	}}
	s := newSession(t)

	res := s.Process(context.Background(), analyze.NewRequester(eng), Upload{Name: "q.png", Data: []byte("img")})
	assert.Equal(t, "Qa)", res.Label)
}

func TestProcessQuestionNumberFallback(t *testing.T) {
	eng := &scriptedEngine{outs: []string{
		`{"type":"coding","question_text":"Implement an LRU cache","question_number":"3"}`,
	}}
	s := newSession(t)

	res := s.Process(context.Background(), analyze.NewRequester(eng), Upload{Name: "q.png", Data: []byte("img")})
	assert.Equal(t, "Q3", res.Label)
}

func TestProcessMalformedPayloadSkipsLabel(t *testing.T) {
	eng := &scriptedEngine{outs: []string{"Sorry, Q5 was unreadable"}}
	s := newSession(t)

	res := s.Process(context.Background(), analyze.NewRequester(eng), Upload{Name: "q.png", Data: []byte("img")})

	assert.Empty(t, res.Label)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "analysis payload rejected")
	// the prompt still embeds the rejected payload verbatim
	assert.Contains(t, res.Prompt, "Sorry, Q5 was unreadable")
}

func TestProcessAllIsolatesFailures(t *testing.T) {
	eng := &scriptedEngine{
		outs: []string{"", `{"type":"coding","question_text":"2. Reverse a string"}`},
		errs: []error{errors.New("timeout"), nil},
	}
	s := newSession(t)

	results := s.ProcessAll(context.Background(), analyze.NewRequester(eng), []Upload{
		{Name: "one.png", Data: []byte("a")},
		{Name: "two.png", Data: []byte("b")},
	})
	require.Len(t, results, 2)

	assert.Contains(t, results[0].Payload, "timeout")
	assert.Contains(t, results[0].Payload, "unknown")
	assert.Contains(t, results[0].Prompt, "timeout")
	assert.Empty(t, results[0].Label)

	assert.Equal(t, "Q2", results[1].Label)
	assert.Contains(t, results[1].Prompt, "Reverse a string")
}

func TestScratchFilesRemovedPerImage(t *testing.T) {
	eng := &scriptedEngine{outs: []string{`{"type":"unknown"}`}}
	s := newSession(t)

	s.Process(context.Background(), analyze.NewRequester(eng), Upload{Name: "q.png", Data: []byte("img")})

	entries, err := os.ReadDir(s.dir.Path())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCloseWarnsInsteadOfFailing(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	assert.Nil(t, s.Close())
	// second close of an already removed dir stays quiet
	assert.Nil(t, s.Close())
}
