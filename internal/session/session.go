// Package session drives the per-image pipeline: scratch storage, model
// analysis, label extraction, prompt building. Images are processed one at a
// time in upload order, and no failure on one image ever reaches the next.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/parthsali/prompt-generator/internal/analyze"
	"github.com/parthsali/prompt-generator/internal/prompt"
	"github.com/parthsali/prompt-generator/internal/qnum"
	"github.com/parthsali/prompt-generator/internal/scratch"
)

type Upload struct {
	Name string
	Data []byte
}

type Result struct {
	Name     string
	Label    string // "Q1" style, empty when nothing was found
	Payload  string // raw analysis payload, successful or synthetic
	Prompt   string
	Warnings []string
}

type Session struct {
	dir *scratch.Dir
}

func New() (*Session, error) {
	d, err := scratch.New()
	if err != nil {
		return nil, err
	}
	return &Session{dir: d}, nil
}

// Process runs one upload through the pipeline using the given requester.
func (s *Session) Process(ctx context.Context, req *analyze.Requester, up Upload) Result {
	res := Result{Name: up.Name}

	path, err := s.dir.Save(up.Name, up.Data)
	if err != nil {
		// no scratch file means nothing to analyze; surface it as a payload
		res.Payload = analyze.ErrorPayload(err)
		res.Prompt = prompt.Build(res.Payload)
		return res
	}

	res.Payload = req.AnalyzeFile(ctx, path)
	res.Label, res.Warnings = deriveLabel(res.Payload)
	res.Prompt = prompt.Build(res.Payload)

	if err := s.dir.Remove(path); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("could not remove scratch file: %v", err))
	}

	slog.Debug("processed upload",
		"name", up.Name,
		"engine", req.Engine().Name(),
		"label", res.Label,
	)
	return res
}

// ProcessAll handles uploads sequentially in the given order.
func (s *Session) ProcessAll(ctx context.Context, req *analyze.Requester, ups []Upload) []Result {
	results := make([]Result, 0, len(ups))
	for _, up := range ups {
		results = append(results, s.Process(ctx, req, up))
	}
	return results
}

// Close sweeps the scratch directory. Failures come back as warnings rather
// than errors: cleanup is best effort and never fatal.
func (s *Session) Close() []string {
	if err := s.dir.Close(); err != nil {
		return []string{fmt.Sprintf("could not clean up scratch directory: %v", err)}
	}
	return nil
}

// deriveLabel decodes the payload and scans its text for a question label.
// A payload that fails the schema is reported as a warning and yields no
// label; the prompt is still built from it unchanged.
func deriveLabel(payload string) (string, []string) {
	a, err := analyze.Decode(payload)
	if err != nil {
		return "", []string{fmt.Sprintf("analysis payload rejected: %v", err)}
	}
	if tok, ok := qnum.Extract(a.Text()); ok {
		return "Q" + tok, nil
	}
	// the instruction asks the model for question_number; trust it as a fallback
	if n := strings.TrimSpace(a.QuestionNumber); n != "" {
		if !strings.HasPrefix(strings.ToUpper(n), "Q") {
			n = "Q" + n
		}
		return n, nil
	}
	return "", nil
}
