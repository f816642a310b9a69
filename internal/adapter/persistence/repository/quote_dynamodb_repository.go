package repository

import (
	"context"
	"errors"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

// quoteDynamoAPI is the subset of *dynamodb.Client the repository calls.
type quoteDynamoAPI interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type quoteContactItem struct {
	Name  string `dynamodbav:"name"`
	Phone string `dynamodbav:"phone"`
	Email string `dynamodbav:"email"`
}

type quoteLocationItem struct {
	Address       string `dynamodbav:"address"`
	DetailAddress string `dynamodbav:"detail_address"`
	Floor         string `dynamodbav:"floor"`
}

type quoteSpaceItem struct {
	Type  string `dynamodbav:"type"`
	Size  string `dynamodbav:"size"`
	Rooms string `dynamodbav:"rooms"`
}

type quoteScheduleItem struct {
	PreferredDate string `dynamodbav:"preferred_date"`
	PreferredTime string `dynamodbav:"preferred_time"`
	Urgency       string `dynamodbav:"urgency"`
}

type quoteItem struct {
	ID             string            `dynamodbav:"id"`
	ServiceType    string            `dynamodbav:"service_type"`
	CleaningType   string            `dynamodbav:"cleaning_type"`
	Contact        quoteContactItem  `dynamodbav:"contact"`
	Location       quoteLocationItem `dynamodbav:"location"`
	Space          quoteSpaceItem    `dynamodbav:"space"`
	Schedule       quoteScheduleItem `dynamodbav:"schedule"`
	AdditionalInfo string            `dynamodbav:"additional_info"`
	Status         string            `dynamodbav:"status"`
	CreatedAt      string            `dynamodbav:"created_at"`
	SubmittedAt    string            `dynamodbav:"submitted_at"`
	UpdatedAt      string            `dynamodbav:"updated_at,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// LoadAll is a full Scan; the table is expected to stay small (one row per lead).
type QuoteDynamoRepository struct {
	ddb       quoteDynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	return newQuoteDynamoRepository(ddb, tableName)
}

func newQuoteDynamoRepository(ddb quoteDynamoAPI, tableName string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("QUOTES_TABLE", defaultQuotesTableName)
	}
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) LoadAll(ctx context.Context) ([]entities.Quote, error) {
	quotes := []entities.Quote{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotes = append(quotes, fromQuoteItem(it))
		}
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) Append(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := r.put(ctx, q, "attribute_not_exists(#id)"); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

// Update returns a zero Quote and nil error when id is absent.
func (r *QuoteDynamoRepository) Update(ctx context.Context, id string, mutate func(*entities.Quote)) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	q := fromQuoteItem(it)
	createdAt := q.CreatedAt
	mutate(&q)
	q.ID = id
	q.CreatedAt = createdAt

	if err := r.put(ctx, q, "attribute_exists(#id)"); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) put(ctx context.Context, q entities.Quote, condition string) error {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:           q.ID,
		ServiceType:  string(q.ServiceType),
		CleaningType: q.CleaningType,
		Contact: quoteContactItem{
			Name:  q.Contact.Name,
			Phone: q.Contact.Phone,
			Email: q.Contact.Email,
		},
		Location: quoteLocationItem{
			Address:       q.Location.Address,
			DetailAddress: q.Location.DetailAddress,
			Floor:         q.Location.Floor,
		},
		Space: quoteSpaceItem{
			Type:  q.Space.Type,
			Size:  q.Space.Size,
			Rooms: q.Space.Rooms,
		},
		Schedule: quoteScheduleItem{
			PreferredDate: q.Schedule.PreferredDate,
			PreferredTime: q.Schedule.PreferredTime,
			Urgency:       q.Schedule.Urgency,
		},
		AdditionalInfo: q.AdditionalInfo,
		Status:         string(q.Status),
		CreatedAt:      q.CreatedAt.UTC().Format(time.RFC3339Nano),
		SubmittedAt:    q.SubmittedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.UpdatedAt != nil {
		it.UpdatedAt = q.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	submittedAt, _ := time.Parse(time.RFC3339Nano, it.SubmittedAt)
	status, ok := entities.ParseQuoteStatus(it.Status)
	if !ok {
		status = entities.QuoteStatus(it.Status)
	}
	q := entities.Quote{
		ID:           it.ID,
		ServiceType:  entities.ServiceType(it.ServiceType),
		CleaningType: it.CleaningType,
		Contact: entities.QuoteContact{
			Name:  it.Contact.Name,
			Phone: it.Contact.Phone,
			Email: it.Contact.Email,
		},
		Location: entities.QuoteLocation{
			Address:       it.Location.Address,
			DetailAddress: it.Location.DetailAddress,
			Floor:         it.Location.Floor,
		},
		Space: entities.QuoteSpace{
			Type:  it.Space.Type,
			Size:  it.Space.Size,
			Rooms: it.Space.Rooms,
		},
		Schedule: entities.QuoteSchedule{
			PreferredDate: it.Schedule.PreferredDate,
			PreferredTime: it.Schedule.PreferredTime,
			Urgency:       it.Schedule.Urgency,
		},
		AdditionalInfo: it.AdditionalInfo,
		Status:         status,
		CreatedAt:      createdAt,
		SubmittedAt:    submittedAt,
	}
	if it.UpdatedAt != "" {
		if updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt); err == nil {
			q.UpdatedAt = &updatedAt
		}
	}
	return q
}
