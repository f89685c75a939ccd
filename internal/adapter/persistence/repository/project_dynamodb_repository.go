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

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	ProjectType   string `dynamodbav:"project_type,omitempty"`
	Status        string `dynamodbav:"status"`
	BookingID     string `dynamodbav:"booking_id,omitempty"`
	OpportunityID string `dynamodbav:"opportunity_id,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)
//
// ClearBookingRef removes the booking_id attribute, which also drops the row
// out of the index. Clearing an already-cleared row succeeds, so the
// integrity guard can re-run after a partial failure.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	it := toProjectItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) ListByBookingID(ctx context.Context, bookingID string) ([]entities.Project, error) {
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

	items := make([]entities.Project, 0, len(out.Items))
	for _, raw := range out.Items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProjectItem(it))
	}
	return items, nil
}

func (r *ProjectDynamoRepository) ClearBookingRef(ctx context.Context, projectID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: projectID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #updated_at = :updated_at REMOVE #booking_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#booking_id": "booking_id",
			"#updated_at": "updated_at",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Row already gone; nothing left to detach.
			return nil
		}
		return err
	}
	return nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:            p.ID,
		Name:          p.Name,
		ProjectType:   p.ProjectType,
		Status:        string(p.Status),
		BookingID:     p.BookingID,
		OpportunityID: p.OpportunityID,
		CreatedAt:     timeToString(p.CreatedAt),
		UpdatedAt:     timeToString(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:            it.ID,
		Name:          it.Name,
		ProjectType:   it.ProjectType,
		Status:        entities.ProjectStatus(it.Status),
		BookingID:     it.BookingID,
		OpportunityID: it.OpportunityID,
		CreatedAt:     stringToTime(it.CreatedAt),
		UpdatedAt:     stringToTime(it.UpdatedAt),
	}
}
