package interfaces

import (
	"context"
	"paint_quote/internal/domain/entities"
)

// IRatesRepository abstracts persistence of the single current Rates document.
// Get returns nil when no rates have been published yet.

type IRatesRepository interface {
	Get(ctx context.Context) (*entities.Rates, error)
	Put(ctx context.Context, r entities.Rates) (entities.Rates, error)
}
