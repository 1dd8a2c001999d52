package analyze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		wantErr string
	}{
		{
			name:    "valid mcq",
			payload: `{"type":"mcq","question_text":"Pick one","options":["a","b","c"]}`,
		},
		{
			name:    "valid coding",
			payload: `{"type":"coding","question_text":"Reverse a linked list","language":"Java"}`,
		},
		{
			name:    "valid run-code",
			payload: `{"type":"run-code","code":"print(1//2)","question_text":"What is printed?"}`,
		},
		{
			name:    "unknown accepts anything",
			payload: `{"type":"unknown","raw_text":"blurry"}`,
		},
		{
			name:    "synthetic error payload",
			payload: `{"type":"unknown","error":"timeout"}`,
		},
		{
			name:    "not json",
			payload: "I could not read the image, sorry!",
			wantErr: "not valid JSON",
		},
		{
			name:    "mcq with one option",
			payload: `{"type":"mcq","question_text":"Pick","options":["a"]}`,
			wantErr: "1 options",
		},
		{
			name:    "mcq without question",
			payload: `{"type":"mcq","options":["a","b"]}`,
			wantErr: "without question_text",
		},
		{
			name:    "run-code without code",
			payload: `{"type":"run-code","question_text":"What is printed?"}`,
			wantErr: "without code",
		},
		{
			name:    "missing type",
			payload: `{"question_text":"Pick one"}`,
			wantErr: "unrecognized type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Decode(tc.payload)
			if tc.wantErr == "" {
				require.NoError(t, err)
				require.NotNil(t, a)
				return
			}
			require.Error(t, err)
			var se *SchemaError
			assert.True(t, errors.As(err, &se))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestAnalysisText(t *testing.T) {
	a := &Analysis{QuestionText: "q", RawText: "raw"}
	assert.Equal(t, "q", a.Text())
	a.QuestionText = ""
	assert.Equal(t, "raw", a.Text())
}

func TestErrorPayload(t *testing.T) {
	p := ErrorPayload(errors.New("timeout"))
	a, err := Decode(p)
	require.NoError(t, err)
	assert.Equal(t, TypeUnknown, a.Type)
	assert.Equal(t, "timeout", a.Error)
}
