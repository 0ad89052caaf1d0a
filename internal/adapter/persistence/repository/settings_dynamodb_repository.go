package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "pricing_settings"
	settingsRecordID         = "pricing"
)

type settingsRecord struct {
	ID                     string  `dynamodbav:"id"`
	RatePerKm              float64 `dynamodbav:"rate_per_km"`
	BoletoFee              float64 `dynamodbav:"boleto_fee"`
	MonthlyInterestPercent float64 `dynamodbav:"monthly_interest_percent"`
	ServiceTaxPercent      float64 `dynamodbav:"service_tax_percent"`
	MaterialTaxPercent     float64 `dynamodbav:"material_tax_percent"`
	VisitDiscountTiers     string  `dynamodbav:"visit_discount_tiers"`
	UpdatedAt              string  `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository stores the single pricing-settings record under a
// fixed key. Get falls back to built-in defaults when the record is absent,
// so a fresh environment prices with sane values before the back office ever
// saves anything.

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

// DefaultPricingSettings are the values used before the record exists.
func DefaultPricingSettings() entities.PricingSettings {
	return entities.PricingSettings{
		RatePerKm:              1.5,
		BoletoFee:              4.0,
		MonthlyInterestPercent: 2.0,
		ServiceTaxPercent:      11.0,
		MaterialTaxPercent:     12.7,
		VisitDiscountTiers: map[int]float64{
			2: 5.0,
			4: 8.0,
			6: 12.0,
		},
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.PricingSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: settingsRecordID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricingSettings{}, err
	}
	if len(out.Item) == 0 {
		return DefaultPricingSettings(), nil
	}

	var rec settingsRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.PricingSettings{}, err
	}
	return fromSettingsRecord(rec), nil
}

func (r *SettingsDynamoRepository) Put(ctx context.Context, s entities.PricingSettings) (entities.PricingSettings, error) {
	s.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toSettingsRecord(s))
	if err != nil {
		return entities.PricingSettings{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PricingSettings{}, err
	}
	return s, nil
}

func toSettingsRecord(s entities.PricingSettings) settingsRecord {
	return settingsRecord{
		ID:                     settingsRecordID,
		RatePerKm:              s.RatePerKm,
		BoletoFee:              s.BoletoFee,
		MonthlyInterestPercent: s.MonthlyInterestPercent,
		ServiceTaxPercent:      s.ServiceTaxPercent,
		MaterialTaxPercent:     s.MaterialTaxPercent,
		VisitDiscountTiers:     marshalJSONString(s.VisitDiscountTiers),
		UpdatedAt:              s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSettingsRecord(rec settingsRecord) entities.PricingSettings {
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)

	var tiers map[int]float64
	if rec.VisitDiscountTiers != "" {
		_ = json.Unmarshal([]byte(rec.VisitDiscountTiers), &tiers)
	}

	return entities.PricingSettings{
		RatePerKm:              rec.RatePerKm,
		BoletoFee:              rec.BoletoFee,
		MonthlyInterestPercent: rec.MonthlyInterestPercent,
		ServiceTaxPercent:      rec.ServiceTaxPercent,
		MaterialTaxPercent:     rec.MaterialTaxPercent,
		VisitDiscountTiers:     tiers,
		UpdatedAt:              updatedAt,
	}
}
