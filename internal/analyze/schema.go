package analyze

import (
	"encoding/json"
	"fmt"
)

type QuestionType string

const (
	TypeMCQ     QuestionType = "mcq"
	TypeRunCode QuestionType = "run-code"
	TypeCoding  QuestionType = "coding"
	TypeUnknown QuestionType = "unknown"
)

// Analysis is the expected shape of the model's answer: a tagged variant over
// the four question types. Fields beyond the common set only matter for the
// type that requires them.
type Analysis struct {
	Type           QuestionType `json:"type"`
	Subject        string       `json:"subject,omitempty"`
	Language       string       `json:"language,omitempty"`
	QuestionNumber string       `json:"question_number,omitempty"`
	QuestionText   string       `json:"question_text,omitempty"`
	RawText        string       `json:"raw_text,omitempty"`

	Options           []string  `json:"options,omitempty"`
	Code              string    `json:"code,omitempty"`
	FunctionSignature string    `json:"function_signature,omitempty"`
	Constraints       []string  `json:"constraints,omitempty"`
	Examples          []Example `json:"examples,omitempty"`

	// Error is set on synthetic payloads produced when the external call fails.
	Error string `json:"error,omitempty"`
}

type Example struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// Text returns the best text to scan for a question label.
func (a *Analysis) Text() string {
	if a.QuestionText != "" {
		return a.QuestionText
	}
	return a.RawText
}

// SchemaError marks a payload that could not be decoded or that fails the
// per-type requirements. It is recoverable: callers skip label extraction
// and keep going with the raw payload.
type SchemaError struct {
	Reason string
	Cause  error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("analysis schema: %s: %v", e.Reason, e.Cause)
	}
	return "analysis schema: " + e.Reason
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// Decode parses a payload and validates it against the per-type requirements.
// Any failure comes back as a *SchemaError.
func Decode(payload string) (*Analysis, error) {
	var a Analysis
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		return nil, &SchemaError{Reason: "not valid JSON", Cause: err}
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Validate checks the tagged-variant requirements:
// mcq needs a question and at least two options, run-code needs the snippet,
// coding needs the statement. unknown accepts anything, including synthetic
// error payloads.
func (a *Analysis) Validate() error {
	switch a.Type {
	case TypeMCQ:
		if a.QuestionText == "" {
			return &SchemaError{Reason: "mcq without question_text"}
		}
		if len(a.Options) < 2 {
			return &SchemaError{Reason: fmt.Sprintf("mcq with %d options", len(a.Options))}
		}
	case TypeRunCode:
		if a.Code == "" {
			return &SchemaError{Reason: "run-code without code"}
		}
	case TypeCoding:
		if a.QuestionText == "" {
			return &SchemaError{Reason: "coding without question_text"}
		}
	case TypeUnknown:
	default:
		return &SchemaError{Reason: fmt.Sprintf("unrecognized type %q", a.Type)}
	}
	return nil
}

// ErrorPayload builds the synthetic analysis payload that stands in for a
// model answer when the external call fails.
func ErrorPayload(err error) string {
	b, _ := json.Marshal(map[string]string{
		"type":  string(TypeUnknown),
		"error": err.Error(),
	})
	return string(b)
}
