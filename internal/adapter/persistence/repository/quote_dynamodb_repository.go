package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/pricing"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesClientIDIndex    = "client_id-index"
)

// quoteRecord is the DynamoDB shape of a Quote. Items, terms and totals are
// stored as JSON strings: they are written and read as one snapshot and never
// queried field-by-field.
type quoteRecord struct {
	ID        string `dynamodbav:"id"`
	ClientID  string `dynamodbav:"client_id"`
	Status    string `dynamodbav:"status"`
	Items     string `dynamodbav:"items"`
	Terms     string `dynamodbav:"terms"`
	Totals    string `dynamodbav:"totals"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteRecord(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteRecord(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
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

	var rec quoteRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteRecord(rec), nil
}

func (r *QuoteDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec quoteRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteRecord(rec))
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var rec quoteRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteRecord(rec), nil
}

func toQuoteRecord(q entities.Quote) quoteRecord {
	return quoteRecord{
		ID:        q.ID,
		ClientID:  q.ClientID,
		Status:    string(q.Status),
		Items:     marshalJSONString(q.Items),
		Terms:     marshalJSONString(q.Terms),
		Totals:    marshalJSONString(q.Totals),
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteRecord(rec quoteRecord) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)

	// A malformed item list degrades to an empty selection instead of failing
	// the whole read; terms/totals degrade to zero values the same way.
	var items []pricing.LineItem
	if rec.Items != "" {
		if err := json.Unmarshal([]byte(rec.Items), &items); err != nil {
			log.Printf("[quote][repo] malformed items json id=%s err=%v", rec.ID, err)
			items = nil
		}
	}
	var terms pricing.BudgetTerms
	if rec.Terms != "" {
		_ = json.Unmarshal([]byte(rec.Terms), &terms)
	}
	var totals pricing.BudgetTotals
	if rec.Totals != "" {
		_ = json.Unmarshal([]byte(rec.Totals), &totals)
	}

	return entities.Quote{
		ID:        rec.ID,
		ClientID:  rec.ClientID,
		Status:    entities.QuoteStatus(rec.Status),
		Items:     items,
		Terms:     terms,
		Totals:    totals,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
