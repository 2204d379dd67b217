package repository

import (
	"context"
	"errors"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTasksTableName               = "tasks"
	defaultSequenceEnrollmentsTableName = "sequence_enrollments"
	defaultAIActionsTableName           = "ai_actions"
)

type taskItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Priority    string `dynamodbav:"priority"`
	Owner       string `dynamodbav:"owner,omitempty"`
	QuoteID     string `dynamodbav:"quote_id,omitempty"`
	Status      string `dynamodbav:"status"`
	DueAt       string `dynamodbav:"due_at,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type sequenceEnrollmentItem struct {
	ID            string `dynamodbav:"id"`
	Sequence      string `dynamodbav:"sequence"`
	CustomerEmail string `dynamodbav:"customer_email"`
	QuoteID       string `dynamodbav:"quote_id,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
}

type aiActionItem struct {
	ID          string `dynamodbav:"id"`
	ActionType  string `dynamodbav:"action_type"`
	Status      string `dynamodbav:"status"`
	SourceAgent string `dynamodbav:"source_agent"`
	DraftID     string `dynamodbav:"draft_id,omitempty"`
	Summary     string `dynamodbav:"summary,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at,omitempty"`
}

// FollowUpDynamoRepository writes owner tasks and sequence enrollments.
//
// Table requirements (both tables):
//   - PK: id (string)
type FollowUpDynamoRepository struct {
	ddb             dynamoAPI
	tasksTable      string
	enrollmentTable string
}

var _ interfaces.IFollowUpRepository = (*FollowUpDynamoRepository)(nil)

func NewFollowUpDynamoRepository(ddb *dynamodb.Client, tasksTable, enrollmentTable string) *FollowUpDynamoRepository {
	return newFollowUpDynamoRepository(ddb, tasksTable, enrollmentTable)
}

func newFollowUpDynamoRepository(ddb dynamoAPI, tasksTable, enrollmentTable string) *FollowUpDynamoRepository {
	return &FollowUpDynamoRepository{
		ddb:             ddb,
		tasksTable:      tableOrDefault(tasksTable, defaultTasksTableName),
		enrollmentTable: tableOrDefault(enrollmentTable, defaultSequenceEnrollmentsTableName),
	}
}

func (r *FollowUpDynamoRepository) CreateTask(ctx context.Context, t entities.Task) (entities.Task, error) {
	err := putNew(ctx, r.ddb, r.tasksTable, taskItem{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Owner:       t.Owner,
		QuoteID:     t.QuoteID,
		Status:      t.Status,
		DueAt:       formatTime(t.DueAt),
		CreatedAt:   formatTime(t.CreatedAt),
	})
	if err != nil {
		return entities.Task{}, err
	}
	return t, nil
}

func (r *FollowUpDynamoRepository) EnrollSequence(ctx context.Context, e entities.SequenceEnrollment) error {
	return putNew(ctx, r.ddb, r.enrollmentTable, sequenceEnrollmentItem{
		ID:            e.ID,
		Sequence:      e.Sequence,
		CustomerEmail: e.CustomerEmail,
		QuoteID:       e.QuoteID,
		Status:        e.Status,
		CreatedAt:     formatTime(e.CreatedAt),
	})
}

// AIActionDynamoRepository records agent intents.
//
// Table requirements:
//   - PK: id (string); the id equals the draft id it was created for.
type AIActionDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IAIActionRepository = (*AIActionDynamoRepository)(nil)

func NewAIActionDynamoRepository(ddb *dynamodb.Client, tableName string) *AIActionDynamoRepository {
	return newAIActionDynamoRepository(ddb, tableName)
}

func newAIActionDynamoRepository(ddb dynamoAPI, tableName string) *AIActionDynamoRepository {
	return &AIActionDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultAIActionsTableName)}
}

func (r *AIActionDynamoRepository) Create(ctx context.Context, a entities.AIAction) error {
	return putNew(ctx, r.ddb, r.tableName, aiActionItem{
		ID:          a.ID,
		ActionType:  a.ActionType,
		Status:      string(a.Status),
		SourceAgent: a.SourceAgent,
		DraftID:     a.DraftID,
		Summary:     a.Summary,
		CreatedAt:   formatTime(a.CreatedAt),
	})
}

// UpdateStatus ignores unknown ids.
func (r *AIActionDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.AIActionStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

// putNew inserts item unless an item with the same id exists.
func putNew(ctx context.Context, ddb dynamoAPI, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}
