package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func sampleQuote() entities.Quote {
	now := time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)
	return entities.Quote{
		ID:          "q-1",
		QuoteNumber: "WPW-ABC-1234",
		Customer:    entities.Customer{Name: "Sam", Email: "sam@example.com"},
		Vehicle:     entities.Vehicle{Year: 2020, Make: "Ford", Model: "F150"},
		Pricing: entities.Pricing{
			ProductType: "avery", ProductID: "sku-1105", ProductName: "Avery MPI 1105 Printed Wrap", Sqft: 300,
			SqftSource: entities.SizeSourceExact, SizeMatchedKey: "Ford F150",
			PricePerSqft: 5.27, MaterialCost: 1581, TotalPrice: 1581,
		},
		Status:               entities.QuoteStatusApproved,
		Source:               "chat",
		SourceConversationID: "conv-1",
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func TestQuoteDynamoRepository_Create(t *testing.T) {
	fake := &fakeDynamo{}
	repo := newQuoteDynamoRepository(fake, "")

	if _, err := repo.Create(context.Background(), sampleQuote()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	in := fake.puts[0]
	if aws.ToString(in.TableName) != "quotes" || aws.ToString(in.ConditionExpression) != "attribute_not_exists(#id)" {
		t.Fatalf("unexpected put %+v", in)
	}
	if v, ok := in.Item["labor_cost"].(*types.AttributeValueMemberN); !ok || v.Value != "0" {
		t.Fatalf("labor_cost must be stored as literal 0, got %#v", in.Item["labor_cost"])
	}
	if v, ok := in.Item["customer_email"].(*types.AttributeValueMemberS); !ok || v.Value != "sam@example.com" {
		t.Fatalf("customer fields must be flattened, got %#v", in.Item["customer_email"])
	}
	if v, ok := in.Item["size_matched_key"].(*types.AttributeValueMemberS); !ok || v.Value != "Ford F150" {
		t.Fatalf("size provenance must be stored, got %#v", in.Item["size_matched_key"])
	}
	if _, ok := in.Item["size_category"]; ok {
		t.Fatalf("empty size_category should be omitted")
	}
	if _, ok := in.Item["source_draft_id"]; ok {
		t.Fatalf("empty optional attributes should be omitted")
	}
}

func TestQuoteDynamoRepository_CreateError(t *testing.T) {
	repo := newQuoteDynamoRepository(&fakeDynamo{putErr: errors.New("throttled")}, "quotes_dev")
	if _, err := repo.Create(context.Background(), sampleQuote()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestQuoteDynamoRepository_GetByID(t *testing.T) {
	t.Run("not found is zero value", func(t *testing.T) {
		repo := newQuoteDynamoRepository(&fakeDynamo{}, "")
		q, err := repo.GetByID(context.Background(), "missing")
		if err != nil || q.ID != "" {
			t.Fatalf("unexpected %+v err=%v", q, err)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		want := sampleQuote()
		av, err := attributevalue.MarshalMap(toQuoteItem(want))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		fake := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: av}}
		got, err := newQuoteDynamoRepository(fake, "").GetByID(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID != want.ID || got.Customer != want.Customer || got.Vehicle != want.Vehicle || got.Pricing != want.Pricing {
			t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) || got.Status != want.Status {
			t.Fatalf("round trip mismatch on status/time: %+v", got)
		}
		if !aws.ToBool(fake.gets[0].ConsistentRead) {
			t.Fatalf("expected consistent read")
		}
	})
}

func TestQuoteDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("missing quote", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
		q, err := newQuoteDynamoRepository(fake, "").UpdateStatus(context.Background(), "q-1", entities.QuoteStatusSent, true)
		if err != nil || q.ID != "" {
			t.Fatalf("unexpected %+v err=%v", q, err)
		}
	})

	t.Run("sets status and email flag", func(t *testing.T) {
		updated := sampleQuote()
		updated.Status, updated.EmailSent = entities.QuoteStatusSent, true
		av, _ := attributevalue.MarshalMap(toQuoteItem(updated))
		fake := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: av}}

		q, err := newQuoteDynamoRepository(fake, "").UpdateStatus(context.Background(), "q-1", entities.QuoteStatusSent, true)
		if err != nil || q.Status != entities.QuoteStatusSent || !q.EmailSent {
			t.Fatalf("unexpected %+v err=%v", q, err)
		}
		in := fake.updates[0]
		if !strings.Contains(aws.ToString(in.UpdateExpression), "#email_sent = :email_sent") {
			t.Fatalf("unexpected update %q", aws.ToString(in.UpdateExpression))
		}
		if v := in.ExpressionAttributeValues[":email_sent"].(*types.AttributeValueMemberBOOL); !v.Value {
			t.Fatalf("email_sent must be true")
		}
	})
}

func TestQuoteDraftDynamoRepository_Transition(t *testing.T) {
	t.Run("conditional on current status", func(t *testing.T) {
		d := entities.QuoteDraft{ID: "d-1", Status: entities.DraftStatusApproved, ApprovedBy: "ops_desk", QuoteID: "q-1"}
		av, _ := attributevalue.MarshalMap(toQuoteDraftItem(d))
		fake := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: av}}
		repo := newQuoteDraftDynamoRepository(fake, "")

		got, err := repo.Transition(context.Background(), "d-1", interfaces.DraftTransition{
			From: entities.DraftStatusDraft, To: entities.DraftStatusApproved, ApprovedBy: "ops_desk", QuoteID: "q-1",
		})
		if err != nil || got.Status != entities.DraftStatusApproved || got.QuoteID != "q-1" {
			t.Fatalf("unexpected %+v err=%v", got, err)
		}
		in := fake.updates[0]
		if aws.ToString(in.ConditionExpression) != "attribute_exists(#id) AND #status = :from" {
			t.Fatalf("unexpected condition %q", aws.ToString(in.ConditionExpression))
		}
		if from := in.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS); from.Value != "draft" {
			t.Fatalf("unexpected :from %q", from.Value)
		}
		for _, k := range []string{":approved_by", ":quote_id"} {
			if _, ok := in.ExpressionAttributeValues[k]; !ok {
				t.Fatalf("missing %s", k)
			}
		}
	})

	t.Run("lost race returns zero value", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
		got, err := newQuoteDraftDynamoRepository(fake, "").Transition(context.Background(), "d-1", interfaces.DraftTransition{
			From: entities.DraftStatusDraft, To: entities.DraftStatusRejected,
		})
		if err != nil || got.ID != "" {
			t.Fatalf("unexpected %+v err=%v", got, err)
		}
		if _, ok := fake.updates[0].ExpressionAttributeValues[":quote_id"]; ok {
			t.Fatalf("quote_id must not be set when empty")
		}
	})

	t.Run("other errors surface", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: errors.New("boom")}
		if _, err := newQuoteDraftDynamoRepository(fake, "").Transition(context.Background(), "d-1", interfaces.DraftTransition{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
