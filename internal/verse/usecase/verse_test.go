package usecase

import (
	"context"
	"errors"
	"testing"

	"gitagpt/internal/model"
	"gitagpt/internal/verse"
	"gitagpt/internal/verse/repository"
)

type mockRepo struct {
	searchResult []model.Verse
	searchErr    error
	getResult    model.Verse
	getErr       error

	searchCalls int
	getCalls    int
	lastOpt     repository.SearchVersesOptions
}

func (m *mockRepo) SearchVerses(ctx context.Context, opt repository.SearchVersesOptions) ([]model.Verse, error) {
	m.searchCalls++
	m.lastOpt = opt
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.searchResult, nil
}

func (m *mockRepo) GetVerse(ctx context.Context, id string) (model.Verse, error) {
	m.getCalls++
	if m.getErr != nil {
		return model.Verse{}, m.getErr
	}
	return m.getResult, nil
}

func (m *mockRepo) EnsureCollection(ctx context.Context, vectorSize int) error {
	return nil
}

func (m *mockRepo) IndexVerses(ctx context.Context, verses []model.Verse) error {
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestSearch(t *testing.T) {
	t.Run("Empty Query Rejected", func(t *testing.T) {
		uc := New(noopLogger{}, &mockRepo{}, 3)
		_, err := uc.Search(context.Background(), verse.SearchInput{Query: "   "})
		if err != verse.ErrEmptyQuery {
			t.Errorf("expected ErrEmptyQuery, got %v", err)
		}
	})

	t.Run("Default TopK Applied", func(t *testing.T) {
		repo := &mockRepo{searchResult: []model.Verse{{ID: "BG2.47"}}}
		uc := New(noopLogger{}, repo, 3)

		out, err := uc.Search(context.Background(), verse.SearchInput{Query: "duty"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.lastOpt.TopK != 3 {
			t.Errorf("expected default TopK 3, got %d", repo.lastOpt.TopK)
		}
		if out.Count != 1 {
			t.Errorf("expected count 1, got %d", out.Count)
		}
	})

	t.Run("Emotion Passed Through", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(noopLogger{}, repo, 3)

		_, err := uc.Search(context.Background(), verse.SearchInput{
			Query:   "anxious",
			Emotion: "nervousness",
			TopK:    5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.lastOpt.Emotion != "nervousness" || repo.lastOpt.TopK != 5 {
			t.Errorf("unexpected options: %+v", repo.lastOpt)
		}
	})

	t.Run("Repository Error Propagates", func(t *testing.T) {
		repo := &mockRepo{searchErr: errors.New("qdrant down")}
		uc := New(noopLogger{}, repo, 3)

		_, err := uc.Search(context.Background(), verse.SearchInput{Query: "duty"})
		if err == nil {
			t.Fatal("expected error to propagate")
		}
	})
}

func TestGet(t *testing.T) {
	t.Run("Cache Hit Skips Repository", func(t *testing.T) {
		repo := &mockRepo{getResult: model.Verse{ID: "BG2.47", Chapter: 2, Verse: 47}}
		uc := New(noopLogger{}, repo, 3)

		for i := 0; i < 3; i++ {
			v, err := uc.Get(context.Background(), "BG2.47")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.ID != "BG2.47" {
				t.Errorf("unexpected verse: %+v", v)
			}
		}

		if repo.getCalls != 1 {
			t.Errorf("expected 1 repository call, got %d", repo.getCalls)
		}
	})

	t.Run("Not Found Mapped", func(t *testing.T) {
		repo := &mockRepo{getErr: repository.ErrVerseNotFound}
		uc := New(noopLogger{}, repo, 3)

		_, err := uc.Get(context.Background(), "BG99.99")
		if err != verse.ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Empty ID Rejected", func(t *testing.T) {
		uc := New(noopLogger{}, &mockRepo{}, 3)
		_, err := uc.Get(context.Background(), "  ")
		if err != verse.ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Failed Lookup Not Cached", func(t *testing.T) {
		repo := &mockRepo{getErr: errors.New("qdrant down")}
		uc := New(noopLogger{}, repo, 3)

		uc.Get(context.Background(), "BG2.47")
		uc.Get(context.Background(), "BG2.47")

		if repo.getCalls != 2 {
			t.Errorf("expected 2 repository calls, got %d", repo.getCalls)
		}
	})
}
