// Package analyze turns an image of a technical question into an analysis
// payload: a JSON-shaped text blob produced by a multimodal model engine.
package analyze

import (
	"context"
	"fmt"
	"sync"
)

// Engine is one multimodal model provider. Analyze returns the model's raw
// text answer, expected (but not guaranteed) to be a single JSON object.
type Engine interface {
	Name() string
	GetModel() string
	Analyze(ctx context.Context, image []byte, mime string) (string, error)
}

// Engines holds the configured providers. Gemini is the default.
type Engines struct {
	Gemini Engine
	OpenAI Engine
}

func (e *Engines) GetEngine(name string) (Engine, error) {
	switch name {
	case "", "gemini":
		return e.Gemini, nil
	case "gpt", "openai":
		return e.OpenAI, nil
	}
	return nil, fmt.Errorf("unknown engine %q", name)
}

// Manager remembers a per-chat engine choice, falling back to the default.
type Manager struct {
	def Engine
	m   sync.Map // chatID -> Engine
}

func NewManager(defaultEngine Engine) *Manager {
	return &Manager{def: defaultEngine}
}

func (m *Manager) Get(chatID int64) Engine {
	if v, ok := m.m.Load(chatID); ok {
		return v.(Engine)
	}
	return m.def
}

func (m *Manager) Set(chatID int64, e Engine) {
	m.m.Store(chatID, e)
}
