package voyage

import (
	"context"
)

// IVoyage defines the interface for Voyage AI text embeddings.
// Implementations must be safe for concurrent use; the verse
// repository shares one client across requests.
type IVoyage interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
