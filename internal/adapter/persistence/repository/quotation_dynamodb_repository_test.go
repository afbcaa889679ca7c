package repository

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"paint_quote/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table keyed by the "id" string attribute.
// It understands the two condition expressions the repositories send.
type fakeDynamo struct {
	items    map[string]map[string]types.AttributeValue
	pageSize int
	err      error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func itemID(item map[string]types.AttributeValue) string {
	if v, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) checkCondition(expr *string, id string) error {
	if expr == nil {
		return nil
	}
	_, exists := f.items[id]
	switch aws.ToString(expr) {
	case "attribute_not_exists(#id)":
		if exists {
			return &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	case "attribute_exists(#id)":
		if !exists {
			return &types.ConditionalCheckFailedException{Message: aws.String("missing")}
		}
	}
	return nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := itemID(in.Item)
	if err := f.checkCondition(in.ConditionExpression, id); err != nil {
		return nil, err
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[itemID(in.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := itemID(in.Key)
	if err := f.checkCondition(in.ConditionExpression, id); err != nil {
		return nil, err
	}
	delete(f.items, id)
	return &dynamodb.DeleteItemOutput{}, nil
}

// Scan pages by pageSize using the id as the last evaluated key.
func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := 0
	if in.ExclusiveStartKey != nil {
		last := itemID(in.ExclusiveStartKey)
		for i, id := range ids {
			if id == last {
				start = i + 1
				break
			}
		}
	}
	end := len(ids)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}

	out := &dynamodb.ScanOutput{}
	for _, id := range ids[start:end] {
		out.Items = append(out.Items, f.items[id])
	}
	if end < len(ids) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: ids[end-1]},
		}
	}
	return out, nil
}

func sampleQuotation(id string) entities.Quotation {
	return entities.Quotation{
		ID:               id,
		FullName:         "Jane Wanjiru",
		Email:            "jane@example.com",
		Phone:            "0712345678",
		Area:             20,
		Coats:            "Two coats",
		CoatsKey:         "2",
		PaintType:        "Interior",
		PaintCategory:    "Standard",
		PaintCategoryKey: "standard",
		CostBreakdown: entities.CostBreakdown{
			PaintMaterialCost: 10000,
			LabourCost:        3000,
			TransportCost:     1000,
			MiscellaneousCost: 1400,
			GrandTotal:        15400,
		},
		OverheadPercentage: 10,
		Timestamp:          time.Date(2026, 3, 4, 5, 6, 7, 890, time.UTC),
	}
}

func TestQuotationItemMapping(t *testing.T) {
	q := sampleQuotation("q-1")
	q.LabourCost = 1234.5678901234
	got := fromQuotationItem(toQuotationItem(q))
	if !got.Timestamp.Equal(q.Timestamp) {
		t.Fatalf("timestamp mismatch: want %v got %v", q.Timestamp, got.Timestamp)
	}
	got.Timestamp = q.Timestamp
	if got != q {
		t.Fatalf("mapping lost data:\nwant %+v\ngot  %+v", q, got)
	}
}

func TestQuotationDynamoRepository_CreateAndList(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.pageSize = 2
	repo := NewQuotationDynamoRepository(ddb, "")
	if repo.tableName != DefaultQuotationsTableName {
		t.Fatalf("expected default table name, got %q", repo.tableName)
	}

	empty, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", empty)
	}

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		if _, err := repo.Create(context.Background(), sampleQuotation(id)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("expected all pages to be read, got %d items", len(list))
	}
	if list[0].GrandTotal != 15400 || list[0].Coats != "Two coats" {
		t.Fatalf("unexpected item: %+v", list[0])
	}
}

func TestQuotationDynamoRepository_CreateDuplicate(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewQuotationDynamoRepository(ddb, "quotations-test")
	if _, err := repo.Create(context.Background(), sampleQuotation("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := repo.Create(context.Background(), sampleQuotation("a"))
	if !isConditionFailed(err) {
		t.Fatalf("expected conditional failure, got %v", err)
	}
}

func TestQuotationDynamoRepository_Update(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewQuotationDynamoRepository(ddb, "")

	_, err := repo.Update(context.Background(), "missing", sampleQuotation(""))
	if !errors.Is(err, entities.ErrQuotationNotFound) {
		t.Fatalf("expected ErrQuotationNotFound, got %v", err)
	}

	if _, err := repo.Create(context.Background(), sampleQuotation("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	changed := sampleQuotation("ignored")
	changed.FullName = "John Kamau"
	res, err := repo.Update(context.Background(), "a", changed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != "a" {
		t.Fatalf("expected id a, got %q", res.ID)
	}

	list, _ := repo.List(context.Background())
	if len(list) != 1 || list[0].FullName != "John Kamau" {
		t.Fatalf("expected replaced item, got %+v", list)
	}
}

func TestQuotationDynamoRepository_Delete(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewQuotationDynamoRepository(ddb, "")
	if _, err := repo.Create(context.Background(), sampleQuotation("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.Delete(context.Background(), "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(context.Background(), "a"); !errors.Is(err, entities.ErrQuotationNotFound) {
		t.Fatalf("expected ErrQuotationNotFound, got %v", err)
	}
}

func TestQuotationDynamoRepository_BackendError(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.err = errors.New("throttled")
	repo := NewQuotationDynamoRepository(ddb, "")

	if _, err := repo.List(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if err := repo.Delete(context.Background(), "a"); err == nil || errors.Is(err, entities.ErrQuotationNotFound) {
		t.Fatalf("expected raw backend error, got %v", err)
	}
}
