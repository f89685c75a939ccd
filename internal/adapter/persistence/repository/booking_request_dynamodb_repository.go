package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"studioops/internal/domain/entities"
	"studioops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBookingRequestsTableName = "booking_requests"

type bookingRequestItem struct {
	ID                 string  `dynamodbav:"id"`
	ContactName        string  `dynamodbav:"contact_name"`
	ContactEmail       string  `dynamodbav:"contact_email"`
	ContactPhone       string  `dynamodbav:"contact_phone,omitempty"`
	EventType          string  `dynamodbav:"event_type,omitempty"`
	RequestedPrice     string  `dynamodbav:"requested_price"`
	DepositAmount      string  `dynamodbav:"deposit_amount,omitempty"`
	Status             string  `dynamodbav:"status"`
	CounterPrice       *string `dynamodbav:"counter_price,omitempty"`
	ApprovedPrice      *string `dynamodbav:"approved_price,omitempty"`
	Notes              string  `dynamodbav:"notes,omitempty"`
	ApprovalToken      string  `dynamodbav:"approval_token,omitempty"`
	ApprovedAt         string  `dynamodbav:"approved_at,omitempty"`
	ArchivedAt         string  `dynamodbav:"archived_at,omitempty"`
	ArchivedBy         string  `dynamodbav:"archived_by,omitempty"`
	DeletedPermanently bool    `dynamodbav:"deleted_permanently"`
	Checkpoint         string  `dynamodbav:"checkpoint,omitempty"`
	EventDate          string  `dynamodbav:"event_date,omitempty"`
	CreatedAt          string  `dynamodbav:"created_at"`
	UpdatedAt          string  `dynamodbav:"updated_at"`
}

// BookingRequestDynamoRepository persists BookingRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status changes go through UpdateStatus, which conditions the write on the
// status the caller read; a lost race surfaces as interfaces.ErrStaleWrite
// so the use case re-reads instead of overwriting a concurrent decision.
// Deleted rows stay in the table for audit and are filtered out of every
// read path here.

type BookingRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRequestRepository = (*BookingRequestDynamoRepository)(nil)

func NewBookingRequestDynamoRepository(ddb *dynamodb.Client) *BookingRequestDynamoRepository {
	return &BookingRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKING_REQUESTS_TABLE", defaultBookingRequestsTableName),
	}
}

func (r *BookingRequestDynamoRepository) Create(ctx context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
	it := toBookingRequestItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BookingRequest{}, err
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
		return entities.BookingRequest{}, err
	}
	return b, nil
}

func (r *BookingRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.BookingRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BookingRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.BookingRequest{}, nil
	}

	var it bookingRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BookingRequest{}, err
	}
	if it.DeletedPermanently {
		return entities.BookingRequest{}, nil
	}
	return fromBookingRequestItem(it), nil
}

func (r *BookingRequestDynamoRepository) ListActive(ctx context.Context) ([]entities.BookingRequest, error) {
	return r.scan(ctx,
		"#deleted = :false AND attribute_not_exists(#archived_at)",
		map[string]string{"#deleted": "deleted_permanently", "#archived_at": "archived_at"},
	)
}

func (r *BookingRequestDynamoRepository) ListArchived(ctx context.Context) ([]entities.BookingRequest, error) {
	return r.scan(ctx,
		"#deleted = :false AND attribute_exists(#archived_at)",
		map[string]string{"#deleted": "deleted_permanently", "#archived_at": "archived_at"},
	)
}

func (r *BookingRequestDynamoRepository) scan(ctx context.Context, filter string, names map[string]string) ([]entities.BookingRequest, error) {
	var items []entities.BookingRequest
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                aws.String(r.tableName),
			FilterExpression:         aws.String(filter),
			ExpressionAttributeNames: names,
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":false": &types.AttributeValueMemberBOOL{Value: false},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it bookingRequestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromBookingRequestItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *BookingRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, fromStatus entities.BookingStatus, change entities.BookingStatusChange) (entities.BookingRequest, error) {
	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":      &types.AttributeValueMemberS{Value: string(change.Status)},
		":updated_at":  &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		":from_status": &types.AttributeValueMemberS{Value: string(fromStatus)},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}

	if change.ApprovedPrice != nil {
		expr += ", #approved_price = :approved_price"
		vals[":approved_price"] = &types.AttributeValueMemberS{Value: floatToString(*change.ApprovedPrice)}
		names["#approved_price"] = "approved_price"
	}
	if change.CounterPrice != nil {
		expr += ", #counter_price = :counter_price"
		vals[":counter_price"] = &types.AttributeValueMemberS{Value: floatToString(*change.CounterPrice)}
		names["#counter_price"] = "counter_price"
	}
	if change.ApprovedAt != nil {
		expr += ", #approved_at = :approved_at"
		vals[":approved_at"] = &types.AttributeValueMemberS{Value: timeToString(*change.ApprovedAt)}
		names["#approved_at"] = "approved_at"
	}
	if change.ApprovalToken != "" {
		expr += ", #approval_token = :approval_token"
		vals[":approval_token"] = &types.AttributeValueMemberS{Value: change.ApprovalToken}
		names["#approval_token"] = "approval_token"
	}
	if change.Notes != "" {
		expr += ", #notes = :notes"
		vals[":notes"] = &types.AttributeValueMemberS{Value: change.Notes}
		names["#notes"] = "notes"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from_status"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BookingRequest{}, fmt.Errorf("%w: booking_id=%s expected_status=%s", interfaces.ErrStaleWrite, id, fromStatus)
		}
		return entities.BookingRequest{}, err
	}
	return unmarshalBookingAttributes(out.Attributes)
}

func (r *BookingRequestDynamoRepository) SetArchived(ctx context.Context, id string, archivedAt *time.Time, archivedBy string) (entities.BookingRequest, error) {
	var expr string
	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
	}
	names := map[string]string{
		"#archived_at": "archived_at",
		"#archived_by": "archived_by",
		"#updated_at":  "updated_at",
	}
	if archivedAt != nil {
		expr = "SET #archived_at = :archived_at, #archived_by = :archived_by, #updated_at = :updated_at"
		vals[":archived_at"] = &types.AttributeValueMemberS{Value: timeToString(*archivedAt)}
		vals[":archived_by"] = &types.AttributeValueMemberS{Value: archivedBy}
	} else {
		expr = "SET #updated_at = :updated_at REMOVE #archived_at, #archived_by"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BookingRequest{}, nil
		}
		return entities.BookingRequest{}, err
	}
	return unmarshalBookingAttributes(out.Attributes)
}

func (r *BookingRequestDynamoRepository) SetCheckpoint(ctx context.Context, id, checkpoint string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #checkpoint = :checkpoint, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":checkpoint": &types.AttributeValueMemberS{Value: checkpoint},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#checkpoint": "checkpoint",
			"#updated_at": "updated_at",
		},
	})
	return err
}

func (r *BookingRequestDynamoRepository) MarkDeleted(ctx context.Context, id string) (entities.BookingRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #deleted = :true, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#deleted":    "deleted_permanently",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BookingRequest{}, nil
		}
		return entities.BookingRequest{}, err
	}
	return unmarshalBookingAttributes(out.Attributes)
}

func unmarshalBookingAttributes(attrs map[string]types.AttributeValue) (entities.BookingRequest, error) {
	if len(attrs) == 0 {
		return entities.BookingRequest{}, nil
	}
	var it bookingRequestItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.BookingRequest{}, err
	}
	return fromBookingRequestItem(it), nil
}

func toBookingRequestItem(b entities.BookingRequest) bookingRequestItem {
	it := bookingRequestItem{
		ID:                 b.ID,
		ContactName:        b.ContactName,
		ContactEmail:       b.ContactEmail,
		ContactPhone:       b.ContactPhone,
		EventType:          b.EventType,
		RequestedPrice:     floatToString(b.RequestedPrice),
		Status:             string(b.Status),
		Notes:              b.Notes,
		ApprovalToken:      b.ApprovalToken,
		ApprovedAt:         timePtrToString(b.ApprovedAt),
		ArchivedAt:         timePtrToString(b.ArchivedAt),
		ArchivedBy:         b.ArchivedBy,
		DeletedPermanently: b.DeletedPermanently,
		Checkpoint:         b.Checkpoint,
		EventDate:          timePtrToString(b.EventDate),
		CreatedAt:          timeToString(b.CreatedAt),
		UpdatedAt:          timeToString(b.UpdatedAt),
	}
	if b.DepositAmount > 0 {
		it.DepositAmount = floatToString(b.DepositAmount)
	}
	if b.CounterPrice != nil {
		s := floatToString(*b.CounterPrice)
		it.CounterPrice = &s
	}
	if b.ApprovedPrice != nil {
		s := floatToString(*b.ApprovedPrice)
		it.ApprovedPrice = &s
	}
	return it
}

func fromBookingRequestItem(it bookingRequestItem) entities.BookingRequest {
	requestedPrice, _ := strconv.ParseFloat(it.RequestedPrice, 64)
	depositAmount, _ := strconv.ParseFloat(it.DepositAmount, 64)
	b := entities.BookingRequest{
		ID:                 it.ID,
		ContactName:        it.ContactName,
		ContactEmail:       it.ContactEmail,
		ContactPhone:       it.ContactPhone,
		EventType:          it.EventType,
		RequestedPrice:     requestedPrice,
		DepositAmount:      depositAmount,
		Status:             entities.BookingStatus(it.Status),
		Notes:              it.Notes,
		ApprovalToken:      it.ApprovalToken,
		ApprovedAt:         stringToTimePtr(it.ApprovedAt),
		ArchivedAt:         stringToTimePtr(it.ArchivedAt),
		ArchivedBy:         it.ArchivedBy,
		DeletedPermanently: it.DeletedPermanently,
		Checkpoint:         it.Checkpoint,
		EventDate:          stringToTimePtr(it.EventDate),
		CreatedAt:          stringToTime(it.CreatedAt),
		UpdatedAt:          stringToTime(it.UpdatedAt),
	}
	if it.CounterPrice != nil {
		v, _ := strconv.ParseFloat(*it.CounterPrice, 64)
		b.CounterPrice = &v
	}
	if it.ApprovedPrice != nil {
		v, _ := strconv.ParseFloat(*it.ApprovedPrice, 64)
		b.ApprovedPrice = &v
	}
	return b
}
