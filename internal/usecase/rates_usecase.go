package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"paint_quote/internal/domain/entities"
	"paint_quote/internal/usecase/interfaces"
)

var (
	ErrRatesNotConfigured = errors.New("rates not configured")
	ErrInvalidRates       = errors.New("invalid rates")
)

// IRatesUseCase serves and replaces the published rate set.
type IRatesUseCase interface {
	Get(ctx context.Context) (entities.Rates, error)
	Replace(ctx context.Context, r entities.Rates) (entities.Rates, error)
}

type RatesUseCase struct {
	repo interfaces.IRatesRepository
}

var _ IRatesUseCase = (*RatesUseCase)(nil)

func NewRatesUseCase(repo interfaces.IRatesRepository) *RatesUseCase {
	return &RatesUseCase{repo: repo}
}

func (u *RatesUseCase) Get(ctx context.Context) (entities.Rates, error) {
	r, err := u.repo.Get(ctx)
	if err != nil {
		return entities.Rates{}, err
	}
	if r == nil {
		return entities.Rates{}, ErrRatesNotConfigured
	}
	return *r, nil
}

// Replace swaps the whole rate set. Partial updates are not supported.
func (u *RatesUseCase) Replace(ctx context.Context, r entities.Rates) (entities.Rates, error) {
	if err := r.Validate(); err != nil {
		log.Printf("[rates][usecase] replace rejected err=%v", err)
		return entities.Rates{}, fmt.Errorf("%w: %w", ErrInvalidRates, err)
	}
	saved, err := u.repo.Put(ctx, r)
	if err != nil {
		log.Printf("[rates][usecase] replace failed err=%v", err)
		return entities.Rates{}, err
	}
	log.Printf("[rates][usecase] replace success categories=%d", len(saved.PaintCategoryCostPerSqm))
	return saved, nil
}
