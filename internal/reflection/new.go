package reflection

import (
	"context"

	"gitagpt/internal/model"
	"gitagpt/pkg/llmprovider"
	"gitagpt/pkg/log"
)

// PromptKind selects the prompt shape for generation.
type PromptKind string

const (
	// KindCasual is persona chat without emotion or verses
	KindCasual PromptKind = "casual"
	// KindEmotional is the full pipeline: emotion plus verses
	KindEmotional PromptKind = "emotional"
	// KindGuidance is verse-grounded guidance without emotion context
	KindGuidance PromptKind = "guidance"
)

// GenerateInput carries everything needed to produce a reflection.
type GenerateInput struct {
	UserInput string
	Mode      model.InteractionMode
	Kind      PromptKind
	Emotion   *model.Emotion  // nil for casual/guidance, or when detection failed
	Verses    []model.Verse   // empty for casual
	History   []model.Message // recent conversation context
}

// Result is the generation outcome.
type Result struct {
	Text         string
	UsedFallback bool // true when the template path produced the text
}

// ContentGenerator is the LLM dependency, satisfied by llmprovider.Manager.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Generator produces reflections via the LLM provider chain, degrading
// to a pure template when every provider fails.
type Generator struct {
	llm ContentGenerator
	l   log.Logger
}

// New creates a new Generator
func New(llm ContentGenerator, l log.Logger) *Generator {
	return &Generator{
		llm: llm,
		l:   l,
	}
}
