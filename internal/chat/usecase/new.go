package usecase

import (
	"context"

	"gitagpt/internal/classifier"
	"gitagpt/internal/conversation"
	"gitagpt/internal/emotion"
	"gitagpt/internal/reflection"
	"gitagpt/internal/verse"
	pkgLog "gitagpt/pkg/log"
)

// ReflectionGenerator is the generation collaborator. Satisfied by
// *reflection.Generator.
type ReflectionGenerator interface {
	Generate(ctx context.Context, input reflection.GenerateInput) reflection.Result
}

type implUseCase struct {
	l             pkgLog.Logger
	classifier    classifier.Classifier
	detector      emotion.Detector
	verses        verse.UseCase
	generator     ReflectionGenerator
	conversations conversation.UseCase
	topK          int
}

// New creates a new chat UseCase instance. All collaborators are
// injected; conversations may be nil to disable persistence.
func New(
	l pkgLog.Logger,
	cls classifier.Classifier,
	detector emotion.Detector,
	verses verse.UseCase,
	generator ReflectionGenerator,
	conversations conversation.UseCase,
	topK int,
) *implUseCase {
	return &implUseCase{
		l:             l,
		classifier:    cls,
		detector:      detector,
		verses:        verses,
		generator:     generator,
		conversations: conversations,
		topK:          topK,
	}
}
