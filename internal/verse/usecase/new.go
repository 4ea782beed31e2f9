package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"gitagpt/internal/model"
	"gitagpt/internal/verse/repository"
	pkgLog "gitagpt/pkg/log"
)

const (
	// DefaultTopK bounds search results when the caller does not specify
	DefaultTopK = 3

	verseCacheSize = 1024
	verseCacheTTL  = time.Hour
)

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.VerseRepository
	defaultTopK int

	// Verse content is static, so by-ID lookups are cached
	cache *expirable.LRU[string, model.Verse]
}

// New creates a new verse UseCase instance.
func New(l pkgLog.Logger, repo repository.VerseRepository, defaultTopK int) *implUseCase {
	if defaultTopK <= 0 {
		defaultTopK = DefaultTopK
	}
	return &implUseCase{
		l:           l,
		repo:        repo,
		defaultTopK: defaultTopK,
		cache:       expirable.NewLRU[string, model.Verse](verseCacheSize, nil, verseCacheTTL),
	}
}
