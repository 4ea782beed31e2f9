package usecase

import (
	"gitagpt/internal/conversation/repository"
	pkgLog "gitagpt/pkg/log"
)

const (
	// ContextWindowMessages is the memory window used for prompt
	// context: five exchanges, each a user and an assistant turn.
	ContextWindowMessages = 10
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.ConversationRepository
}

// New creates a new conversation UseCase instance.
func New(l pkgLog.Logger, repo repository.ConversationRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
