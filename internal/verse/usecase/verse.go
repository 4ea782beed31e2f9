package usecase

import (
	"context"
	"strings"

	"gitagpt/internal/model"
	"gitagpt/internal/verse"
	"gitagpt/internal/verse/repository"
)

// Search performs semantic search over the Gita verses.
func (uc *implUseCase) Search(ctx context.Context, input verse.SearchInput) (verse.SearchOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return verse.SearchOutput{}, verse.ErrEmptyQuery
	}

	topK := input.TopK
	if topK <= 0 {
		topK = uc.defaultTopK
	}

	verses, err := uc.repo.SearchVerses(ctx, repository.SearchVersesOptions{
		Query:   input.Query,
		Emotion: input.Emotion,
		TopK:    topK,
	})
	if err != nil {
		uc.l.Errorf(ctx, "verse usecase: search failed: %v", err)
		return verse.SearchOutput{}, err
	}

	return verse.SearchOutput{
		Verses: verses,
		Count:  len(verses),
	}, nil
}

// Get retrieves a single verse by ID, serving repeated lookups from the
// in-process cache.
func (uc *implUseCase) Get(ctx context.Context, id string) (model.Verse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Verse{}, verse.ErrNotFound
	}

	if cached, ok := uc.cache.Get(id); ok {
		return cached, nil
	}

	v, err := uc.repo.GetVerse(ctx, id)
	if err != nil {
		if err == repository.ErrVerseNotFound {
			return model.Verse{}, verse.ErrNotFound
		}
		uc.l.Errorf(ctx, "verse usecase: get %s failed: %v", id, err)
		return model.Verse{}, err
	}

	uc.cache.Add(id, v)
	return v, nil
}
