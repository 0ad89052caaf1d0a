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

const (
	defaultChargesTableName = "charges"
	chargesQuoteIDIndex     = "quote_id-index"
)

type boletoChargeRecord struct {
	ID                 string                 `dynamodbav:"id"`
	QuoteID            string                 `dynamodbav:"quote_id"`
	Amount             float64                `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// BoletoChargeDynamoRepository persists BoletoCharge entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)

type BoletoChargeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBoletoChargeRepository = (*BoletoChargeDynamoRepository)(nil)

func NewBoletoChargeDynamoRepository(ddb *dynamodb.Client) *BoletoChargeDynamoRepository {
	return &BoletoChargeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHARGES_TABLE", defaultChargesTableName),
	}
}

func (r *BoletoChargeDynamoRepository) Create(ctx context.Context, c entities.BoletoCharge) (entities.BoletoCharge, error) {
	av, err := attributevalue.MarshalMap(toBoletoChargeRecord(c))
	if err != nil {
		return entities.BoletoCharge{}, err
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
		return entities.BoletoCharge{}, err
	}
	return c, nil
}

func (r *BoletoChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.BoletoCharge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BoletoCharge{}, err
	}
	if len(out.Item) == 0 {
		return entities.BoletoCharge{}, nil
	}

	var rec boletoChargeRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.BoletoCharge{}, err
	}
	return fromBoletoChargeRecord(rec), nil
}

func (r *BoletoChargeDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.BoletoCharge, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chargesQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	charges := make([]entities.BoletoCharge, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec boletoChargeRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		charges = append(charges, fromBoletoChargeRecord(rec))
	}
	return charges, nil
}

func toBoletoChargeRecord(c entities.BoletoCharge) boletoChargeRecord {
	return boletoChargeRecord{
		ID:                 c.ID,
		QuoteID:            c.QuoteID,
		Amount:             c.Amount,
		Date:               c.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(c.Status),
		ProviderPayload:    c.ProviderPayload,
		ProviderPayloadRaw: string(c.ProviderPayloadRaw),
	}
}

func fromBoletoChargeRecord(rec boletoChargeRecord) entities.BoletoCharge {
	dt, _ := time.Parse(time.RFC3339Nano, rec.Date)
	return entities.BoletoCharge{
		ID:                 rec.ID,
		QuoteID:            rec.QuoteID,
		Amount:             rec.Amount,
		Date:               dt,
		Status:             entities.ChargeStatus(rec.Status),
		ProviderPayload:    rec.ProviderPayload,
		ProviderPayloadRaw: []byte(rec.ProviderPayloadRaw),
	}
}
