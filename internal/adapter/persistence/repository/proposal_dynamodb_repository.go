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
	defaultProposalsTableName = "proposals"
	proposalsClientIDIndex    = "client_id-index"
)

type proposalRecord struct {
	ID        string `dynamodbav:"id"`
	ClientID  string `dynamodbav:"client_id"`
	Status    string `dynamodbav:"status"`
	Items     string `dynamodbav:"items"`
	Terms     string `dynamodbav:"terms"`
	Totals    string `dynamodbav:"totals"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB. Same table
// layout as quotes: PK id plus a client_id-index GSI.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalRecord(p))
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) Save(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalRecord(p))
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var rec proposalRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalRecord(rec), nil
}

func (r *ProposalDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Proposal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	proposals := make([]entities.Proposal, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec proposalRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		proposals = append(proposals, fromProposalRecord(rec))
	}
	return proposals, nil
}

func (r *ProposalDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
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
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}

	var rec proposalRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalRecord(rec), nil
}

func toProposalRecord(p entities.Proposal) proposalRecord {
	return proposalRecord{
		ID:        p.ID,
		ClientID:  p.ClientID,
		Status:    string(p.Status),
		Items:     marshalJSONString(p.Items),
		Terms:     marshalJSONString(p.Terms),
		Totals:    marshalJSONString(p.Totals),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProposalRecord(rec proposalRecord) entities.Proposal {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)

	var items []pricing.LineItem
	if rec.Items != "" {
		if err := json.Unmarshal([]byte(rec.Items), &items); err != nil {
			log.Printf("[proposal][repo] malformed items json id=%s err=%v", rec.ID, err)
			items = nil
		}
	}
	var terms pricing.ProposalTerms
	if rec.Terms != "" {
		_ = json.Unmarshal([]byte(rec.Terms), &terms)
	}
	var totals pricing.ProposalTotals
	if rec.Totals != "" {
		_ = json.Unmarshal([]byte(rec.Totals), &totals)
	}

	return entities.Proposal{
		ID:        rec.ID,
		ClientID:  rec.ClientID,
		Status:    entities.ProposalStatus(rec.Status),
		Items:     items,
		Terms:     terms,
		Totals:    totals,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
