package repository

import (
	"context"
	"time"

	"paint_quote/internal/domain/entities"
	"paint_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultRatesTableName = "rates"
	currentRatesID        = "current"
)

type ratesItem struct {
	ID                      string             `dynamodbav:"id"`
	PaintCategoryCostPerSqm map[string]float64 `dynamodbav:"paint_category_costs_per_sqm"`
	CoatMultiplier          map[string]float64 `dynamodbav:"coat_multipliers"`
	LabourRatePerSqm        float64            `dynamodbav:"labour_rate_per_sqm"`
	TransportRate           float64            `dynamodbav:"transport_rate"`
	OverheadPercentage      float64            `dynamodbav:"overhead_percentage"`
	UpdatedAt               string             `dynamodbav:"updated_at"`
}

// RatesDynamoRepository keeps the published rate set as a single item.
//
// Table requirements:
//   - PK: id (string); the rate set lives under id "current"

type RatesDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IRatesRepository = (*RatesDynamoRepository)(nil)

func NewRatesDynamoRepository(ddb dynamoAPI, tableName string) *RatesDynamoRepository {
	if tableName == "" {
		tableName = DefaultRatesTableName
	}
	return &RatesDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *RatesDynamoRepository) Get(ctx context.Context) (*entities.Rates, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: currentRatesID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it ratesItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	rates := fromRatesItem(it)
	return &rates, nil
}

// Put replaces the stored rate set unconditionally.
func (r *RatesDynamoRepository) Put(ctx context.Context, rates entities.Rates) (entities.Rates, error) {
	it := toRatesItem(rates)
	it.UpdatedAt = formatTime(r.now())
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Rates{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Rates{}, err
	}
	return rates, nil
}

func toRatesItem(r entities.Rates) ratesItem {
	coats := r.CoatMultiplier
	if coats == nil {
		coats = map[string]float64{}
	}
	return ratesItem{
		ID:                      currentRatesID,
		PaintCategoryCostPerSqm: r.PaintCategoryCostPerSqm,
		CoatMultiplier:          coats,
		LabourRatePerSqm:        r.LabourRatePerSqm,
		TransportRate:           r.TransportRate,
		OverheadPercentage:      r.OverheadPercentage,
	}
}

func fromRatesItem(it ratesItem) entities.Rates {
	coats := it.CoatMultiplier
	if coats == nil {
		// an empty map attribute is a configured "no multipliers" set, not a missing one
		coats = map[string]float64{}
	}
	return entities.Rates{
		PaintCategoryCostPerSqm: it.PaintCategoryCostPerSqm,
		CoatMultiplier:          coats,
		LabourRatePerSqm:        it.LabourRatePerSqm,
		TransportRate:           it.TransportRate,
		OverheadPercentage:      it.OverheadPercentage,
	}
}
