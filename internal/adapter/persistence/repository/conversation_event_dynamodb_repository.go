package repository

import (
	"context"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConversationEventsTableName = "conversation_events"
	eventsConversationIDIndex          = "conversation_id-index"
)

type conversationEventItem struct {
	ID             string                 `dynamodbav:"id"`
	ConversationID string                 `dynamodbav:"conversation_id"`
	EventType      string                 `dynamodbav:"event_type"`
	Actor          string                 `dynamodbav:"actor,omitempty"`
	Payload        map[string]interface{} `dynamodbav:"payload,omitempty"`
	CreatedAt      string                 `dynamodbav:"created_at"`
}

// ConversationEventDynamoRepository is the append-only audit log.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: conversation_id-index (PK: conversation_id, SK: created_at)
type ConversationEventDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IConversationEventRepository = (*ConversationEventDynamoRepository)(nil)

func NewConversationEventDynamoRepository(ddb *dynamodb.Client, tableName string) *ConversationEventDynamoRepository {
	return newConversationEventDynamoRepository(ddb, tableName)
}

func newConversationEventDynamoRepository(ddb dynamoAPI, tableName string) *ConversationEventDynamoRepository {
	return &ConversationEventDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultConversationEventsTableName)}
}

func (r *ConversationEventDynamoRepository) Append(ctx context.Context, e entities.ConversationEvent) error {
	return putNew(ctx, r.ddb, r.tableName, conversationEventItem{
		ID:             e.ID,
		ConversationID: e.ConversationID,
		EventType:      string(e.Type),
		Actor:          e.Actor,
		Payload:        e.Payload,
		CreatedAt:      formatTime(e.CreatedAt),
	})
}

// ListByConversationID pages through the index, oldest first.
func (r *ConversationEventDynamoRepository) ListByConversationID(ctx context.Context, conversationID string) ([]entities.ConversationEvent, error) {
	var (
		events []entities.ConversationEvent
		start  map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(eventsConversationIDIndex),
			KeyConditionExpression: aws.String("conversation_id = :cid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": &types.AttributeValueMemberS{Value: conversationID},
			},
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it conversationEventItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			events = append(events, entities.ConversationEvent{
				ID:             it.ID,
				ConversationID: it.ConversationID,
				Type:           entities.EventType(it.EventType),
				Actor:          it.Actor,
				Payload:        it.Payload,
				CreatedAt:      parseTime(it.CreatedAt),
			})
		}
		if len(out.LastEvaluatedKey) == 0 {
			return events, nil
		}
		start = out.LastEvaluatedKey
	}
}
