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

const defaultQuoteDraftsTableName = "quote_drafts"

type quoteDraftItem struct {
	ID          string  `dynamodbav:"id"`
	SourceAgent string  `dynamodbav:"source_agent"`
	Confidence  float64 `dynamodbav:"confidence"`
	PricedItem
	OriginalMessage string `dynamodbav:"original_message,omitempty"`
	Source          string `dynamodbav:"source,omitempty"`
	ConversationID  string `dynamodbav:"conversation_id,omitempty"`
	OrganizationID  string `dynamodbav:"organization_id,omitempty"`
	Status          string `dynamodbav:"status"`
	ApprovedBy      string `dynamodbav:"approved_by,omitempty"`
	QuoteID         string `dynamodbav:"quote_id,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// QuoteDraftDynamoRepository persists QuoteDraft entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status changes are conditional on the current status so two approvers
// cannot both move the same draft out of "draft".
type QuoteDraftDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IQuoteDraftRepository = (*QuoteDraftDynamoRepository)(nil)

func NewQuoteDraftDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDraftDynamoRepository {
	return newQuoteDraftDynamoRepository(ddb, tableName)
}

func newQuoteDraftDynamoRepository(ddb dynamoAPI, tableName string) *QuoteDraftDynamoRepository {
	return &QuoteDraftDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultQuoteDraftsTableName)}
}

func (r *QuoteDraftDynamoRepository) Create(ctx context.Context, d entities.QuoteDraft) (entities.QuoteDraft, error) {
	av, err := attributevalue.MarshalMap(toQuoteDraftItem(d))
	if err != nil {
		return entities.QuoteDraft{}, err
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
		return entities.QuoteDraft{}, err
	}
	return d, nil
}

func (r *QuoteDraftDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteDraft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteDraft{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteDraft{}, nil
	}

	var it quoteDraftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteDraft{}, err
	}
	return fromQuoteDraftItem(it), nil
}

func (r *QuoteDraftDynamoRepository) Transition(ctx context.Context, id string, t interfaces.DraftTransition) (entities.QuoteDraft, error) {
	expr := "SET #status = :to, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(t.From)},
		":to":         &types.AttributeValueMemberS{Value: string(t.To)},
		":updated_at": &types.AttributeValueMemberS{Value: nowString()},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if t.ApprovedBy != "" {
		expr += ", #approved_by = :approved_by"
		values[":approved_by"] = &types.AttributeValueMemberS{Value: t.ApprovedBy}
		names["#approved_by"] = "approved_by"
	}
	if t.QuoteID != "" {
		expr += ", #quote_id = :quote_id"
		values[":quote_id"] = &types.AttributeValueMemberS{Value: t.QuoteID}
		names["#quote_id"] = "quote_id"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteDraft{}, nil
		}
		return entities.QuoteDraft{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.QuoteDraft{}, nil
	}
	var it quoteDraftItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QuoteDraft{}, err
	}
	return fromQuoteDraftItem(it), nil
}

func toQuoteDraftItem(d entities.QuoteDraft) quoteDraftItem {
	return quoteDraftItem{
		ID:              d.ID,
		SourceAgent:     d.SourceAgent,
		Confidence:      d.Confidence,
		PricedItem:      toPricedItem(d.Customer, d.Vehicle, d.Pricing),
		OriginalMessage: d.OriginalMessage,
		Source:          d.Source,
		ConversationID:  d.ConversationID,
		OrganizationID:  d.OrganizationID,
		Status:          string(d.Status),
		ApprovedBy:      d.ApprovedBy,
		QuoteID:         d.QuoteID,
		CreatedAt:       formatTime(d.CreatedAt),
		UpdatedAt:       formatTime(d.UpdatedAt),
	}
}

func fromQuoteDraftItem(it quoteDraftItem) entities.QuoteDraft {
	c, v, p := it.parts()
	return entities.QuoteDraft{
		ID:              it.ID,
		SourceAgent:     it.SourceAgent,
		Confidence:      it.Confidence,
		Customer:        c,
		Vehicle:         v,
		Pricing:         p,
		OriginalMessage: it.OriginalMessage,
		Source:          it.Source,
		ConversationID:  it.ConversationID,
		OrganizationID:  it.OrganizationID,
		Status:          entities.DraftStatus(it.Status),
		ApprovedBy:      it.ApprovedBy,
		QuoteID:         it.QuoteID,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
