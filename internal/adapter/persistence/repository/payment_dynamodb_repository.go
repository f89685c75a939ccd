package repository

import (
	"context"
	"errors"
	"strconv"

	"studioops/internal/domain/entities"
	"studioops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "payments"

type paymentItem struct {
	ID        string `dynamodbav:"id"`
	BookingID string `dynamodbav:"booking_id"`
	Amount    string `dynamodbav:"amount"`
	Type      string `dynamodbav:"payment_type"`
	Status    string `dynamodbav:"status"`
	DueDate   string `dynamodbav:"due_date,omitempty"`
	PaidAt    string `dynamodbav:"paid_at,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists the append-only payments ledger in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string, the provider payment id)
//   - GSI: booking_id-index (PK: booking_id)
//
// Create is conditional on the id not existing; a duplicate webhook delivery
// returns the zero value with a nil error. There is intentionally no update
// or delete path.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByBookingID(ctx context.Context, bookingID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:        p.ID,
		BookingID: p.BookingID,
		Amount:    floatToString(p.Amount),
		Type:      string(p.Type),
		Status:    string(p.Status),
		DueDate:   timePtrToString(p.DueDate),
		PaidAt:    timePtrToString(p.PaidAt),
		CreatedAt: timeToString(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Payment{
		ID:        it.ID,
		BookingID: it.BookingID,
		Amount:    amount,
		Type:      entities.PaymentType(it.Type),
		Status:    entities.PaymentStatus(it.Status),
		DueDate:   stringToTimePtr(it.DueDate),
		PaidAt:    stringToTimePtr(it.PaidAt),
		CreatedAt: stringToTime(it.CreatedAt),
	}
}
