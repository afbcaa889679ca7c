package interfaces

import (
	"context"
	"paint_quote/internal/domain/entities"
)

// IQuotationRepository abstracts the remote collection of quotations.
//
// Implementations:
//   - the DynamoDB repository behind the HTTP API
//   - the HTTP client used by the quotation lifecycle
//
// Update and Delete return entities.ErrQuotationNotFound for an unknown id; deleting
// the same id twice is a not-found, never a silent success.

type IQuotationRepository interface {
	List(ctx context.Context) ([]entities.Quotation, error)
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	Update(ctx context.Context, id string, q entities.Quotation) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
}
