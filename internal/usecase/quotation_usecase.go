package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"paint_quote/internal/domain/entities"
	"paint_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuotationID = errors.New("invalid quotation id")
	ErrNegativeAmount     = errors.New("cost amounts must not be negative")
)

// IQuotationUseCase exposes the quotation collection served by the HTTP API.
//
// The store owns identity and time:
//   - Create assigns the id and timestamp
//   - Update is a full replacement that keeps the id and refreshes the timestamp

type IQuotationUseCase interface {
	List(ctx context.Context) ([]entities.Quotation, error)
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	Update(ctx context.Context, id string, q entities.Quotation) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
}

type QuotationUseCase struct {
	repo interfaces.IQuotationRepository
	now  func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, now: time.Now}
}

func (u *QuotationUseCase) List(ctx context.Context) ([]entities.Quotation, error) {
	quotations, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(quotations, func(i, j int) bool {
		return quotations[i].Timestamp.After(quotations[j].Timestamp)
	})
	return quotations, nil
}

func (u *QuotationUseCase) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	if err := validateQuotation(q); err != nil {
		return entities.Quotation{}, err
	}
	q.ID = uuid.NewString()
	q.Timestamp = u.now().UTC()
	return u.repo.Create(ctx, q)
}

func (u *QuotationUseCase) Update(ctx context.Context, id string, q entities.Quotation) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	if err := validateQuotation(q); err != nil {
		return entities.Quotation{}, err
	}
	q.ID = id
	q.Timestamp = u.now().UTC()
	return u.repo.Update(ctx, id, q)
}

func (u *QuotationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuotationID
	}
	return u.repo.Delete(ctx, id)
}

func validateQuotation(q entities.Quotation) error {
	if err := validateInput(q.Input().Normalize()); err != nil {
		return err
	}
	b := q.CostBreakdown
	if b.PaintMaterialCost < 0 || b.LabourCost < 0 || b.TransportCost < 0 || b.MiscellaneousCost < 0 || b.GrandTotal < 0 {
		return fmt.Errorf("%w: %w", entities.ErrValidation, ErrNegativeAmount)
	}
	return nil
}
