package analyze

import (
	"context"
	"fmt"
	"os"

	"github.com/parthsali/prompt-generator/internal/util"
)

// Requester asks one engine to analyze images. It never fails past its own
// boundary: any error becomes a synthetic "unknown" payload so the prompt
// builder always has something to embed.
type Requester struct {
	eng Engine
}

func NewRequester(eng Engine) *Requester {
	return &Requester{eng: eng}
}

func (r *Requester) Engine() Engine { return r.eng }

// AnalyzeFile reads the image at path and analyzes it.
func (r *Requester) AnalyzeFile(ctx context.Context, path string) string {
	img, err := os.ReadFile(path)
	if err != nil {
		return ErrorPayload(fmt.Errorf("read image: %w", err))
	}
	return r.Analyze(ctx, img)
}

// Analyze sends the image to the engine and returns the analysis payload,
// successful or synthetic.
func (r *Requester) Analyze(ctx context.Context, image []byte) string {
	mime := util.SniffMimeHTTP(image)
	out, err := r.eng.Analyze(ctx, image, mime)
	if err != nil {
		return ErrorPayload(err)
	}
	return out
}
