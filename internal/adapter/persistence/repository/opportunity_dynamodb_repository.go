package repository

import (
	"context"
	"errors"
	"time"

	"studioops/internal/domain/entities"
	"studioops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOpportunitiesTableName = "opportunities"

type opportunityItem struct {
	ID           string `dynamodbav:"id"`
	BookingID    string `dynamodbav:"booking_id,omitempty"`
	ContactName  string `dynamodbav:"contact_name"`
	ContactEmail string `dynamodbav:"contact_email"`
	ContactPhone string `dynamodbav:"contact_phone,omitempty"`
	Stage        string `dynamodbav:"stage"`
	Deleted      bool   `dynamodbav:"deleted"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// OpportunityDynamoRepository persists Opportunity entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)
//
// FindByBookingID filters deleted rows after the index query, which keeps
// the at-most-one-live-opportunity rule enforceable without a sparse index.

type OpportunityDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOpportunityRepository = (*OpportunityDynamoRepository)(nil)

func NewOpportunityDynamoRepository(ddb *dynamodb.Client) *OpportunityDynamoRepository {
	return &OpportunityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OPPORTUNITIES_TABLE", defaultOpportunitiesTableName),
	}
}

func (r *OpportunityDynamoRepository) Create(ctx context.Context, o entities.Opportunity) (entities.Opportunity, error) {
	it := toOpportunityItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Opportunity{}, err
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
		return entities.Opportunity{}, err
	}
	return o, nil
}

func (r *OpportunityDynamoRepository) GetByID(ctx context.Context, id string) (entities.Opportunity, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Opportunity{}, err
	}
	if len(out.Item) == 0 {
		return entities.Opportunity{}, nil
	}

	var it opportunityItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Opportunity{}, err
	}
	if it.Deleted {
		return entities.Opportunity{}, nil
	}
	return fromOpportunityItem(it), nil
}

func (r *OpportunityDynamoRepository) FindByBookingID(ctx context.Context, bookingID string) (entities.Opportunity, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return entities.Opportunity{}, err
	}

	for _, raw := range out.Items {
		var it opportunityItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Opportunity{}, err
		}
		if !it.Deleted {
			return fromOpportunityItem(it), nil
		}
	}
	return entities.Opportunity{}, nil
}

func (r *OpportunityDynamoRepository) UpdateStage(ctx context.Context, id string, stage entities.OpportunityStage) (entities.Opportunity, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #stage = :stage, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":stage":      &types.AttributeValueMemberS{Value: string(stage)},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#stage":      "stage",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Opportunity{}, nil
		}
		return entities.Opportunity{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Opportunity{}, nil
	}
	var it opportunityItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Opportunity{}, err
	}
	return fromOpportunityItem(it), nil
}

func toOpportunityItem(o entities.Opportunity) opportunityItem {
	return opportunityItem{
		ID:           o.ID,
		BookingID:    o.BookingID,
		ContactName:  o.ContactName,
		ContactEmail: o.ContactEmail,
		ContactPhone: o.ContactPhone,
		Stage:        string(o.Stage),
		Deleted:      o.Deleted,
		CreatedAt:    timeToString(o.CreatedAt),
		UpdatedAt:    timeToString(o.UpdatedAt),
	}
}

func fromOpportunityItem(it opportunityItem) entities.Opportunity {
	return entities.Opportunity{
		ID:           it.ID,
		BookingID:    it.BookingID,
		ContactName:  it.ContactName,
		ContactEmail: it.ContactEmail,
		ContactPhone: it.ContactPhone,
		Stage:        entities.OpportunityStage(it.Stage),
		Deleted:      it.Deleted,
		CreatedAt:    stringToTime(it.CreatedAt),
		UpdatedAt:    stringToTime(it.UpdatedAt),
	}
}
