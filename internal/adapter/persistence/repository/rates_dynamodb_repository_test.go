package repository

import (
	"context"
	"testing"
	"time"

	"paint_quote/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func sampleRates() entities.Rates {
	return entities.Rates{
		PaintCategoryCostPerSqm: map[string]float64{"standard": 500, "premium": 820.5},
		CoatMultiplier:          map[string]float64{"1": 0.6, "2": 1.0, "3": 1.45},
		LabourRatePerSqm:        150,
		TransportRate:           1000,
		OverheadPercentage:      0.1,
	}
}

func TestRatesDynamoRepository_GetAbsent(t *testing.T) {
	repo := NewRatesDynamoRepository(newFakeDynamo(), "")
	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil rates, got %+v", got)
	}
}

func TestRatesDynamoRepository_PutThenGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewRatesDynamoRepository(ddb, "rates-test")
	fixed := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	if _, err := repo.Put(context.Background(), sampleRates()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item, ok := ddb.items[currentRatesID]
	if !ok {
		t.Fatalf("expected item stored under %q", currentRatesID)
	}
	if v, ok := item["updated_at"].(*types.AttributeValueMemberS); !ok || v.Value != formatTime(fixed) {
		t.Fatalf("unexpected updated_at: %#v", item["updated_at"])
	}

	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.PaintCategoryCostPerSqm["premium"] != 820.5 || got.CoatMultiplier["3"] != 1.45 {
		t.Fatalf("unexpected rates: %+v", got)
	}
	if !got.IsReady() {
		t.Fatalf("stored rates must be ready")
	}
}

func TestRatesDynamoRepository_PutReplaces(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewRatesDynamoRepository(ddb, "")
	if _, err := repo.Put(context.Background(), sampleRates()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next := sampleRates()
	next.TransportRate = 2500
	next.CoatMultiplier = nil
	if _, err := repo.Put(context.Background(), next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ddb.items) != 1 {
		t.Fatalf("expected a single rates item, got %d", len(ddb.items))
	}
	got, _ := repo.Get(context.Background())
	if got.TransportRate != 2500 {
		t.Fatalf("expected replaced transport rate, got %v", got.TransportRate)
	}
	if got.CoatMultiplier == nil || len(got.CoatMultiplier) != 0 {
		t.Fatalf("expected empty coat multipliers, got %#v", got.CoatMultiplier)
	}
}
