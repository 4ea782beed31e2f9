package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gitagpt/config"
	"gitagpt/internal/model"
	qdrantRepo "gitagpt/internal/verse/repository/qdrant"
	"gitagpt/pkg/log"
	pkgQdrant "gitagpt/pkg/qdrant"
	"gitagpt/pkg/voyage"
)

// Voyage accepts up to 128 inputs per request
const batchSize = 64

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/seed-verses/main.go <path/to/verses.csv>")
		fmt.Println("Example: go run scripts/seed-verses/main.go data/Bhagwad_Gita.csv")
		os.Exit(1)
	}
	csvPath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "debug",
		ColorEnabled: true,
	})

	ctx := context.Background()

	verses, err := loadVerses(csvPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load verses from %s: %v", csvPath, err)
	}
	logger.Infof(ctx, "Loaded %d verses from %s", len(verses), csvPath)

	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}
	if cfg.Voyage.Model != "" {
		embedder = embedder.WithModel(cfg.Voyage.Model)
	}
	embedder = embedder.WithInputType("document")

	repo := qdrantRepo.New(qdrantClient, embedder, cfg.Qdrant.CollectionName, logger)

	if err := repo.EnsureCollection(ctx, cfg.Qdrant.VectorSize); err != nil {
		logger.Fatalf(ctx, "Failed to ensure collection %s: %v", cfg.Qdrant.CollectionName, err)
	}

	successCount := 0
	for start := 0; start < len(verses); start += batchSize {
		end := start + batchSize
		if end > len(verses) {
			end = len(verses)
		}
		batch := verses[start:end]

		if err := repo.IndexVerses(ctx, batch); err != nil {
			logger.Errorf(ctx, "Failed to index batch %d-%d: %v", start, end, err)
			continue
		}
		successCount += len(batch)
		logger.Infof(ctx, "Indexed %d/%d verses", successCount, len(verses))
	}

	logger.Infof(ctx, "Seeding complete! %d/%d verses indexed into %s.",
		successCount, len(verses), cfg.Qdrant.CollectionName)
}

// loadVerses reads the Gita CSV. Columns are resolved by header name so
// column order does not matter.
func loadVerses(path string) ([]model.Verse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"ID", "Chapter", "Verse", "Shloka", "EngMeaning"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	var verses []model.Verse
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		chapter, _ := strconv.Atoi(field(record, "Chapter"))
		verseNum, _ := strconv.Atoi(field(record, "Verse"))

		verses = append(verses, model.Verse{
			ID:              field(record, "ID"),
			Chapter:         chapter,
			Verse:           verseNum,
			Shloka:          field(record, "Shloka"),
			Transliteration: field(record, "Transliteration"),
			EngMeaning:      field(record, "EngMeaning"),
			HinMeaning:      field(record, "HinMeaning"),
		})
	}

	return verses, nil
}
