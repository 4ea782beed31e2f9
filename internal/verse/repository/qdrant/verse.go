package qdrant

import (
	"context"
	"fmt"
	"strings"

	"gitagpt/internal/model"
	"gitagpt/internal/verse/repository"
	pkgLog "gitagpt/pkg/log"
	pkgQdrant "gitagpt/pkg/qdrant"
	"gitagpt/pkg/voyage"
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	l              pkgLog.Logger
}

// New creates a new Qdrant verse repository.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, l pkgLog.Logger) repository.VerseRepository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		l:              l,
	}
}

// SearchVerses performs semantic search over the verse collection.
// When an emotion label is provided the query is expanded with that
// emotion's theme keywords before embedding, biasing retrieval toward
// verses addressing the emotional state.
func (r *implRepository) SearchVerses(ctx context.Context, opt repository.SearchVersesOptions) ([]model.Verse, error) {
	query := opt.Query
	if themes, ok := emotionThemes[opt.Emotion]; ok {
		query = fmt.Sprintf("%s %s", query, strings.Join(themes, " "))
	}

	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "qdrant repository: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	searchReq := pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       opt.TopK,
		WithPayload: true,
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, searchReq)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	verses := make([]model.Verse, 0, len(resp.Result))
	for _, scored := range resp.Result {
		v, ok := verseFromPayload(scored.Payload)
		if !ok {
			r.l.Errorf(ctx, "qdrant repository: malformed payload for point %v: %+v", scored.ID, scored.Payload)
			continue
		}
		v.Similarity = scored.Score
		verses = append(verses, v)
	}

	r.l.Infof(ctx, "qdrant repository: found %d verses for query %q (emotion %q)", len(verses), opt.Query, opt.Emotion)
	return verses, nil
}

// GetVerse retrieves a single verse by its ID (e.g. "BG2.47").
func (r *implRepository) GetVerse(ctx context.Context, id string) (model.Verse, error) {
	req := pkgQdrant.GetPointsRequest{
		IDs:         []interface{}{verseIDToPointID(id)},
		WithPayload: true,
	}

	resp, err := r.client.GetPoints(ctx, r.collectionName, req)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to get verse %s: %v", id, err)
		return model.Verse{}, fmt.Errorf("failed to get verse: %w", err)
	}

	for _, point := range resp.Result {
		if v, ok := verseFromPayload(point.Payload); ok && v.ID == id {
			return v, nil
		}
	}

	return model.Verse{}, repository.ErrVerseNotFound
}

// EnsureCollection creates the verse collection if needed. Qdrant
// returns a conflict for an existing collection, which is treated as
// success.
func (r *implRepository) EnsureCollection(ctx context.Context, vectorSize int) error {
	err := r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: r.collectionName,
		Vectors: pkgQdrant.VectorConfig{
			Size:     vectorSize,
			Distance: "Cosine",
		},
	})
	if err != nil {
		if strings.Contains(err.Error(), "409") {
			return nil
		}
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

// IndexVerses embeds and upserts verses into the collection. The
// embedding document is the shloka concatenated with its English
// meaning, matching what search queries are compared against.
func (r *implRepository) IndexVerses(ctx context.Context, verses []model.Verse) error {
	if len(verses) == 0 {
		return nil
	}

	texts := make([]string, 0, len(verses))
	for _, v := range verses {
		texts = append(texts, fmt.Sprintf("%s %s", v.Shloka, v.EngMeaning))
	}

	vectors, err := r.embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}
	if len(vectors) != len(verses) {
		return fmt.Errorf("embedding count mismatch: %d vectors for %d verses", len(vectors), len(verses))
	}

	points := make([]pkgQdrant.Point, 0, len(verses))
	for i, v := range verses {
		points = append(points, pkgQdrant.Point{
			ID:     verseIDToPointID(v.ID),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				"id":              v.ID,
				"chapter":         v.Chapter,
				"verse":           v.Verse,
				"shloka":          v.Shloka,
				"transliteration": v.Transliteration,
				"eng_meaning":     v.EngMeaning,
				"hin_meaning":     v.HinMeaning,
			},
		})
	}

	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: indexed %d verses", len(points))
	return nil
}

// verseFromPayload maps a Qdrant payload to a model.Verse. The verse ID
// is stored in the payload since Qdrant point IDs must be UUID or uint64.
func verseFromPayload(payload map[string]interface{}) (model.Verse, bool) {
	id, ok := payload["id"].(string)
	if !ok || id == "" {
		return model.Verse{}, false
	}

	v := model.Verse{ID: id}
	if chapter, ok := payload["chapter"].(float64); ok {
		v.Chapter = int(chapter)
	}
	if verseNum, ok := payload["verse"].(float64); ok {
		v.Verse = int(verseNum)
	}
	v.Shloka, _ = payload["shloka"].(string)
	v.Transliteration, _ = payload["transliteration"].(string)
	v.EngMeaning, _ = payload["eng_meaning"].(string)
	v.HinMeaning, _ = payload["hin_meaning"].(string)

	return v, true
}
