package interfaces

import (
	"context"
	"paint_quote/internal/domain/entities"
)

// IRatesSource fetches the published rates for the client-side RateStore.
type IRatesSource interface {
	FetchRates(ctx context.Context) (entities.Rates, error)
}
