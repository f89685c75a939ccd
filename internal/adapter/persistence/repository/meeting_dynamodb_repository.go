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

const defaultMeetingsTableName = "meetings"

type meetingItem struct {
	ID                string `dynamodbav:"id"`
	ScheduledAt       string `dynamodbav:"scheduled_at"`
	BookingID         string `dynamodbav:"booking_id,omitempty"`
	OpportunityID     string `dynamodbav:"opportunity_id,omitempty"`
	ProjectID         string `dynamodbav:"project_id,omitempty"`
	ClientID          string `dynamodbav:"client_id,omitempty"`
	Outcome           string `dynamodbav:"meeting_outcome,omitempty"`
	OutcomeConsumedAt string `dynamodbav:"outcome_consumed_at,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// MeetingDynamoRepository persists Meeting entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// ConsumeOutcome writes the outcome and the consumed-at marker in one
// conditional update on the marker's absence; the loser of a concurrent
// consume gets the zero value back and treats the trigger as spent.

type MeetingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMeetingRepository = (*MeetingDynamoRepository)(nil)

func NewMeetingDynamoRepository(ddb *dynamodb.Client) *MeetingDynamoRepository {
	return &MeetingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MEETINGS_TABLE", defaultMeetingsTableName),
	}
}

func (r *MeetingDynamoRepository) Create(ctx context.Context, meeting entities.Meeting) (entities.Meeting, error) {
	it := toMeetingItem(meeting)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Meeting{}, err
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
		return entities.Meeting{}, err
	}
	return meeting, nil
}

func (r *MeetingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Meeting, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Meeting{}, err
	}
	if len(out.Item) == 0 {
		return entities.Meeting{}, nil
	}

	var it meetingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Meeting{}, err
	}
	return fromMeetingItem(it), nil
}

func (r *MeetingDynamoRepository) ConsumeOutcome(ctx context.Context, id string, outcome entities.MeetingOutcome, at time.Time) (entities.Meeting, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#consumed_at)"),
		UpdateExpression:    aws.String("SET #outcome = :outcome, #consumed_at = :consumed_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":outcome":     &types.AttributeValueMemberS{Value: string(outcome)},
			":consumed_at": &types.AttributeValueMemberS{Value: timeToString(at)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#outcome":     "meeting_outcome",
			"#consumed_at": "outcome_consumed_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Meeting{}, nil
		}
		return entities.Meeting{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Meeting{}, nil
	}
	var it meetingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Meeting{}, err
	}
	return fromMeetingItem(it), nil
}

func toMeetingItem(m entities.Meeting) meetingItem {
	return meetingItem{
		ID:                m.ID,
		ScheduledAt:       timeToString(m.ScheduledAt),
		BookingID:         m.BookingID,
		OpportunityID:     m.OpportunityID,
		ProjectID:         m.ProjectID,
		ClientID:          m.ClientID,
		Outcome:           string(m.Outcome),
		OutcomeConsumedAt: timePtrToString(m.OutcomeConsumedAt),
		CreatedAt:         timeToString(m.CreatedAt),
	}
}

func fromMeetingItem(it meetingItem) entities.Meeting {
	return entities.Meeting{
		ID:                it.ID,
		ScheduledAt:       stringToTime(it.ScheduledAt),
		BookingID:         it.BookingID,
		OpportunityID:     it.OpportunityID,
		ProjectID:         it.ProjectID,
		ClientID:          it.ClientID,
		Outcome:           entities.MeetingOutcome(it.Outcome),
		OutcomeConsumedAt: stringToTimePtr(it.OutcomeConsumedAt),
		CreatedAt:         stringToTime(it.CreatedAt),
	}
}
