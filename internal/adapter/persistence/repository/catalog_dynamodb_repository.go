package repository

import (
	"context"
	"time"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "catalog_items"

type catalogRecord struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	Category  string  `dynamodbav:"category"`
	UnitRate  float64 `dynamodbav:"unit_rate"`
	LaborRate float64 `dynamodbav:"labor_rate"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at"`
}

// CatalogDynamoRepository persists CatalogItem entities in DynamoDB. The
// catalog is small (tens of entries), so List is a full table scan.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) List(ctx context.Context) ([]entities.CatalogItem, error) {
	items := make([]entities.CatalogItem, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var rec catalogRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			items = append(items, fromCatalogRecord(rec))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *CatalogDynamoRepository) Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	av, err := attributevalue.MarshalMap(toCatalogRecord(item))
	if err != nil {
		return entities.CatalogItem{}, err
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
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func toCatalogRecord(item entities.CatalogItem) catalogRecord {
	return catalogRecord{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		UnitRate:  item.UnitRate,
		LaborRate: item.LaborRate,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: item.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCatalogRecord(rec catalogRecord) entities.CatalogItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	return entities.CatalogItem{
		ID:        rec.ID,
		Name:      rec.Name,
		Category:  rec.Category,
		UnitRate:  rec.UnitRate,
		LaborRate: rec.LaborRate,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
