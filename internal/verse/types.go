package verse

import "gitagpt/internal/model"

// SearchInput is the input for semantic verse search.
type SearchInput struct {
	Query   string // Natural language query
	Emotion string // Detected emotion label for theme biasing (optional)
	TopK    int    // Max results (default from config)
}

// SearchOutput is the result of semantic verse search.
type SearchOutput struct {
	Verses []model.Verse `json:"verses"`
	Count  int           `json:"count"`
}
