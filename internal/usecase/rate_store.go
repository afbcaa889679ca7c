package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"paint_quote/internal/domain/entities"
	"paint_quote/internal/usecase/interfaces"
)

// RateStore holds the currently loaded rates and gates pricing until they are usable.
//
// Load replaces the stored value atomically. A failed load keeps whatever was stored
// before, so a bad reload never takes down a working rate set.
type RateStore struct {
	source interfaces.IRatesSource

	mu        sync.RWMutex
	rates     *entities.Rates
	observers []func(ready bool)
}

func NewRateStore(source interfaces.IRatesSource) *RateStore {
	return &RateStore{source: source}
}

// Load fetches rates from the source. Transport failures and rate sets that are not
// ready both report entities.ErrRatesUnavailable.
func (s *RateStore) Load(ctx context.Context) error {
	log.Printf("[rates][store] load start")
	fetched, err := s.source.FetchRates(ctx)
	if err != nil {
		log.Printf("[rates][store] load failed err=%v", err)
		return fmt.Errorf("%w: %w", entities.ErrRatesUnavailable, err)
	}
	if err := fetched.Validate(); err != nil {
		log.Printf("[rates][store] rejected incomplete rates err=%v", err)
		return fmt.Errorf("%w: %w", entities.ErrRatesUnavailable, err)
	}

	stored := fetched.Clone()
	s.mu.Lock()
	wasReady := s.readyLocked()
	s.rates = &stored
	observers := append([]func(bool){}, s.observers...)
	s.mu.Unlock()

	log.Printf("[rates][store] load success categories=%d coats=%d", len(stored.PaintCategoryCostPerSqm), len(stored.CoatMultiplier))
	if !wasReady {
		for _, fn := range observers {
			fn(true)
		}
	}
	return nil
}

// IsReady reports whether a usable rate set is loaded.
func (s *RateStore) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readyLocked()
}

// Current returns a copy of the loaded rates.
func (s *RateStore) Current() (entities.Rates, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.readyLocked() {
		return entities.Rates{}, entities.ErrRatesUnavailable
	}
	return s.rates.Clone(), nil
}

// OnReadyChange registers fn to be called when readiness flips. fn is called
// immediately with the current readiness so late subscribers start in sync.
func (s *RateStore) OnReadyChange(fn func(ready bool)) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	ready := s.readyLocked()
	s.mu.Unlock()
	fn(ready)
}

func (s *RateStore) readyLocked() bool {
	return s.rates != nil && s.rates.IsReady()
}
