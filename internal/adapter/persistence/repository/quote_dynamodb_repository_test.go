package repository

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"quotedesk/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeQuoteTable is an in-memory table that honors the two condition
// expressions the repository issues and pages Scan one item at a time.
type fakeQuoteTable struct {
	items   map[string]map[string]types.AttributeValue
	scanErr error
	scans   int
}

func newFakeQuoteTable() *fakeQuoteTable {
	return &fakeQuoteTable{items: map[string]map[string]types.AttributeValue{}}
}

func itemID(item map[string]types.AttributeValue) string {
	if v, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeQuoteTable) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	id := itemID(in.Item)
	_, exists := f.items[id]
	switch aws.ToString(in.ConditionExpression) {
	case "attribute_not_exists(#id)":
		if exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	case "attribute_exists(#id)":
		if !exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeQuoteTable) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[itemID(in.Key)]}, nil
}

func (f *fakeQuoteTable) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scans++
	if f.scanErr != nil {
		return nil, f.scanErr
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
			}
		}
	}
	out := &dynamodb.ScanOutput{}
	if start < len(ids) {
		out.Items = []map[string]types.AttributeValue{f.items[ids[start]]}
		if start+1 < len(ids) {
			out.LastEvaluatedKey = map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: ids[start]},
			}
		}
	}
	return out, nil
}

func TestQuoteDynamoRepository_AppendAndLoadAll(t *testing.T) {
	table := newFakeQuoteTable()
	repo := newQuoteDynamoRepository(table, "quotes-test")
	ctx := context.Background()

	for _, id := range []string{"QUOTE_1", "QUOTE_2", "QUOTE_3"} {
		if _, err := repo.Append(ctx, testQuote(id)); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	quotes, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(quotes) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(quotes))
	}
	if table.scans < 3 {
		t.Fatalf("expected paginated scan, got %d calls", table.scans)
	}

	want := testQuote("QUOTE_2")
	got := quotes[1]
	if got.ID != want.ID || got.Contact != want.Contact || got.Location != want.Location ||
		got.Space != want.Space || got.Schedule != want.Schedule || got.Status != want.Status ||
		!got.CreatedAt.Equal(want.CreatedAt) || !got.SubmittedAt.Equal(want.SubmittedAt) || got.UpdatedAt != nil {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestQuoteDynamoRepository_AppendDuplicateID(t *testing.T) {
	repo := newQuoteDynamoRepository(newFakeQuoteTable(), "quotes-test")
	ctx := context.Background()

	if _, err := repo.Append(ctx, testQuote("QUOTE_1")); err != nil {
		t.Fatalf("append: %v", err)
	}
	_, err := repo.Append(ctx, testQuote("QUOTE_1"))
	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		t.Fatalf("expected conditional check failure, got %v", err)
	}
}

func TestQuoteDynamoRepository_LoadAllEmptyAndError(t *testing.T) {
	table := newFakeQuoteTable()
	repo := newQuoteDynamoRepository(table, "quotes-test")

	quotes, err := repo.LoadAll(context.Background())
	if err != nil || quotes == nil || len(quotes) != 0 {
		t.Fatalf("expected empty collection, got %v, %v", quotes, err)
	}

	table.scanErr = errors.New("throttled")
	if _, err := repo.LoadAll(context.Background()); err == nil {
		t.Fatalf("expected scan error")
	}
}

func TestQuoteDynamoRepository_Update(t *testing.T) {
	table := newFakeQuoteTable()
	repo := newQuoteDynamoRepository(table, "quotes-test")
	ctx := context.Background()
	_, _ = repo.Append(ctx, testQuote("QUOTE_1"))

	t.Run("not found", func(t *testing.T) {
		got, err := repo.Update(ctx, "QUOTE_missing", func(q *entities.Quote) {})
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero quote, got %+v, %v", got, err)
		}
	})

	t.Run("status change", func(t *testing.T) {
		now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
		got, err := repo.Update(ctx, "QUOTE_1", func(q *entities.Quote) {
			q.Status = entities.QuoteStatusContacted
			q.UpdatedAt = &now
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.Status != entities.QuoteStatusContacted || got.UpdatedAt == nil || !got.UpdatedAt.Equal(now) {
			t.Fatalf("unexpected result %+v", got)
		}

		all, _ := repo.LoadAll(ctx)
		if all[0].Status != entities.QuoteStatusContacted || all[0].UpdatedAt == nil {
			t.Fatalf("expected persisted status, got %+v", all[0])
		}
	})
}

func TestQuoteItemConversion_LegacyStatus(t *testing.T) {
	q := fromQuoteItem(quoteItem{ID: "QUOTE_1", Status: "pending", CreatedAt: "not-a-time"})
	if q.Status != entities.QuoteStatusNew {
		t.Fatalf("expected pending to map to new, got %q", q.Status)
	}
	if !q.CreatedAt.IsZero() {
		t.Fatalf("expected zero createdAt for unparseable value")
	}

	it := toQuoteItem(entities.Quote{ID: "QUOTE_2", ServiceType: entities.ServiceTypePartner})
	if it.UpdatedAt != "" || it.ServiceType != "partner" {
		t.Fatalf("unexpected item %+v", it)
	}
}
