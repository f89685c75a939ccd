package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"studioops/internal/domain/entities"
	"studioops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientAccountsTableName = "client_accounts"

type clientAccountItem struct {
	ID             string `dynamodbav:"id"`
	UserID         string `dynamodbav:"user_id"`
	ProjectID      string `dynamodbav:"project_id,omitempty"`
	BookingID      string `dynamodbav:"booking_id,omitempty"`
	Status         string `dynamodbav:"status"`
	StorageUsedGB  string `dynamodbav:"storage_used_gb"`
	StorageLimitGB string `dynamodbav:"storage_limit_gb"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// ClientAccountDynamoRepository persists ClientAccount entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)

type ClientAccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientAccountRepository = (*ClientAccountDynamoRepository)(nil)

func NewClientAccountDynamoRepository(ddb *dynamodb.Client) *ClientAccountDynamoRepository {
	return &ClientAccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENT_ACCOUNTS_TABLE", defaultClientAccountsTableName),
	}
}

func (r *ClientAccountDynamoRepository) Create(ctx context.Context, a entities.ClientAccount) (entities.ClientAccount, error) {
	it := toClientAccountItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ClientAccount{}, err
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
		return entities.ClientAccount{}, err
	}
	return a, nil
}

func (r *ClientAccountDynamoRepository) GetByID(ctx context.Context, id string) (entities.ClientAccount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClientAccount{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClientAccount{}, nil
	}

	var it clientAccountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClientAccount{}, err
	}
	return fromClientAccountItem(it), nil
}

func (r *ClientAccountDynamoRepository) FindByBookingID(ctx context.Context, bookingID string) (entities.ClientAccount, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ClientAccount{}, err
	}
	if len(out.Items) == 0 {
		return entities.ClientAccount{}, nil
	}

	var it clientAccountItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ClientAccount{}, err
	}
	return fromClientAccountItem(it), nil
}

func (r *ClientAccountDynamoRepository) UpdateStorageUsed(ctx context.Context, id string, usedGB float64) (entities.ClientAccount, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #storage_used_gb = :storage_used_gb, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":storage_used_gb": &types.AttributeValueMemberS{Value: floatToString(usedGB)},
			":updated_at":      &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#storage_used_gb": "storage_used_gb",
			"#updated_at":      "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ClientAccount{}, nil
		}
		return entities.ClientAccount{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ClientAccount{}, nil
	}
	var it clientAccountItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ClientAccount{}, err
	}
	return fromClientAccountItem(it), nil
}

func toClientAccountItem(a entities.ClientAccount) clientAccountItem {
	return clientAccountItem{
		ID:             a.ID,
		UserID:         a.UserID,
		ProjectID:      a.ProjectID,
		BookingID:      a.BookingID,
		Status:         string(a.Status),
		StorageUsedGB:  floatToString(a.StorageUsedGB),
		StorageLimitGB: floatToString(a.StorageLimitGB),
		CreatedAt:      timeToString(a.CreatedAt),
		UpdatedAt:      timeToString(a.UpdatedAt),
	}
}

func fromClientAccountItem(it clientAccountItem) entities.ClientAccount {
	usedGB, _ := strconv.ParseFloat(it.StorageUsedGB, 64)
	limitGB, _ := strconv.ParseFloat(it.StorageLimitGB, 64)
	return entities.ClientAccount{
		ID:             it.ID,
		UserID:         it.UserID,
		ProjectID:      it.ProjectID,
		BookingID:      it.BookingID,
		Status:         entities.ClientAccountStatus(it.Status),
		StorageUsedGB:  usedGB,
		StorageLimitGB: limitGB,
		CreatedAt:      stringToTime(it.CreatedAt),
		UpdatedAt:      stringToTime(it.UpdatedAt),
	}
}
