package repository

// SearchVersesOptions holds the parameters for semantic verse search.
type SearchVersesOptions struct {
	Query   string // Natural language query
	Emotion string // Emotion label used to bias the query (optional)
	TopK    int    // Max results
}
