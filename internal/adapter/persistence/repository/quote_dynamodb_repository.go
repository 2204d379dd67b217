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

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID          string `dynamodbav:"id"`
	QuoteNumber string `dynamodbav:"quote_number"`
	PricedItem
	Status               string `dynamodbav:"status"`
	EmailSent            bool   `dynamodbav:"email_sent"`
	Source               string `dynamodbav:"source,omitempty"`
	AIGenerated          bool   `dynamodbav:"ai_generated"`
	SourceConversationID string `dynamodbav:"source_conversation_id,omitempty"`
	SourceDraftID        string `dynamodbav:"source_draft_id,omitempty"`
	OrganizationID       string `dynamodbav:"organization_id,omitempty"`
	CreatedBy            string `dynamodbav:"created_by,omitempty"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type QuoteDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	return newQuoteDynamoRepository(ddb, tableName)
}

func newQuoteDynamoRepository(ddb dynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultQuotesTableName)}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// UpdateStatus returns a zero-value quote when id does not exist.
func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, emailSent bool) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #email_sent = :email_sent, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":email_sent": &types.AttributeValueMemberBOOL{Value: emailSent},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#email_sent": "email_sent",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:                   q.ID,
		QuoteNumber:          q.QuoteNumber,
		PricedItem:           toPricedItem(q.Customer, q.Vehicle, q.Pricing),
		Status:               string(q.Status),
		EmailSent:            q.EmailSent,
		Source:               q.Source,
		AIGenerated:          q.AIGenerated,
		SourceConversationID: q.SourceConversationID,
		SourceDraftID:        q.SourceDraftID,
		OrganizationID:       q.OrganizationID,
		CreatedBy:            q.CreatedBy,
		CreatedAt:            formatTime(q.CreatedAt),
		UpdatedAt:            formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	c, v, p := it.parts()
	return entities.Quote{
		ID:                   it.ID,
		QuoteNumber:          it.QuoteNumber,
		Customer:             c,
		Vehicle:              v,
		Pricing:              p,
		Status:               entities.QuoteStatus(it.Status),
		EmailSent:            it.EmailSent,
		Source:               it.Source,
		AIGenerated:          it.AIGenerated,
		SourceConversationID: it.SourceConversationID,
		SourceDraftID:        it.SourceDraftID,
		OrganizationID:       it.OrganizationID,
		CreatedBy:            it.CreatedBy,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}
