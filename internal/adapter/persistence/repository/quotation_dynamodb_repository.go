package repository

import (
	"context"
	"errors"

	"paint_quote/internal/domain/entities"
	"paint_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultQuotationsTableName = "quotations"

type quotationItem struct {
	ID                 string `dynamodbav:"id"`
	FullName           string `dynamodbav:"full_name"`
	Email              string `dynamodbav:"email"`
	Phone              string `dynamodbav:"phone"`
	Area               string `dynamodbav:"area"`
	Coats              string `dynamodbav:"coats"`
	CoatsKey           string `dynamodbav:"coats_key,omitempty"`
	PaintType          string `dynamodbav:"paint_type"`
	PaintCategory      string `dynamodbav:"paint_category"`
	PaintCategoryKey   string `dynamodbav:"paint_category_key,omitempty"`
	PaintMaterialCost  string `dynamodbav:"paint_material_cost"`
	LabourCost         string `dynamodbav:"labour_cost"`
	TransportCost      string `dynamodbav:"transport_cost"`
	MiscellaneousCost  string `dynamodbav:"miscellaneous_cost"`
	GrandTotal         string `dynamodbav:"grand_total"`
	OverheadPercentage string `dynamodbav:"overhead_percentage"`
	Timestamp          string `dynamodbav:"timestamp"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Amounts are stored as decimal strings so a round trip never loses precision.
// Update and Delete are conditional on the item existing, which is how a missing id
// surfaces as entities.ErrQuotationNotFound.

type QuotationDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb dynamoAPI, tableName string) *QuotationDynamoRepository {
	if tableName == "" {
		tableName = DefaultQuotationsTableName
	}
	return &QuotationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuotationDynamoRepository) List(ctx context.Context) ([]entities.Quotation, error) {
	out := []entities.Quotation{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []quotationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromQuotationItem(it))
		}
	}
	return out, nil
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

// Update replaces the whole item for id.
func (r *QuotationDynamoRepository) Update(ctx context.Context, id string, q entities.Quotation) (entities.Quotation, error) {
	q.ID = id
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Quotation{}, entities.ErrQuotationNotFound
		}
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.ErrQuotationNotFound
		}
		return err
	}
	return nil
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func toQuotationItem(q entities.Quotation) quotationItem {
	return quotationItem{
		ID:                 q.ID,
		FullName:           q.FullName,
		Email:              q.Email,
		Phone:              q.Phone,
		Area:               floatToString(q.Area),
		Coats:              q.Coats,
		CoatsKey:           q.CoatsKey,
		PaintType:          q.PaintType,
		PaintCategory:      q.PaintCategory,
		PaintCategoryKey:   q.PaintCategoryKey,
		PaintMaterialCost:  floatToString(q.PaintMaterialCost),
		LabourCost:         floatToString(q.LabourCost),
		TransportCost:      floatToString(q.TransportCost),
		MiscellaneousCost:  floatToString(q.MiscellaneousCost),
		GrandTotal:         floatToString(q.GrandTotal),
		OverheadPercentage: floatToString(q.OverheadPercentage),
		Timestamp:          formatTime(q.Timestamp),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	return entities.Quotation{
		ID:               it.ID,
		FullName:         it.FullName,
		Email:            it.Email,
		Phone:            it.Phone,
		Area:             stringToFloat(it.Area),
		Coats:            it.Coats,
		CoatsKey:         it.CoatsKey,
		PaintType:        it.PaintType,
		PaintCategory:    it.PaintCategory,
		PaintCategoryKey: it.PaintCategoryKey,
		CostBreakdown: entities.CostBreakdown{
			PaintMaterialCost: stringToFloat(it.PaintMaterialCost),
			LabourCost:        stringToFloat(it.LabourCost),
			TransportCost:     stringToFloat(it.TransportCost),
			MiscellaneousCost: stringToFloat(it.MiscellaneousCost),
			GrandTotal:        stringToFloat(it.GrandTotal),
		},
		OverheadPercentage: stringToFloat(it.OverheadPercentage),
		Timestamp:          parseTime(it.Timestamp),
	}
}
