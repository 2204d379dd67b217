package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

var quoteNumberPattern = regexp.MustCompile(`^WPW-\w+-\w+$`)

func f150Command(email string) CreateQuoteCommand {
	return CreateQuoteCommand{
		QuoteInput: QuoteInput{
			Customer:    entities.Customer{Name: "Test", Email: email},
			Vehicle:     entities.Vehicle{Year: 2020, Make: "Ford", Model: "F150"},
			ProductType: "avery",
		},
		ConversationID: "conv-1",
	}
}

func TestNewQuoteNumber(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := NewQuoteNumber(now)
	b := NewQuoteNumber(now)
	if !quoteNumberPattern.MatchString(a) {
		t.Fatalf("unexpected quote number %q", a)
	}
	if !strings.HasPrefix(a, "WPW-") || len(strings.Split(a, "-")[2]) != 4 {
		t.Fatalf("unexpected quote number shape %q", a)
	}
	if a[:len(a)-4] != b[:len(b)-4] {
		t.Fatalf("time part should match for the same instant: %q vs %q", a, b)
	}
}

func TestQuoteUseCase_CreateFromChat(t *testing.T) {
	t.Run("missing customer email", func(t *testing.T) {
		h := newQuoteHarness(t)
		uc, _ := h.useCases(t)

		_, err := uc.CreateFromChat(context.Background(), f150Command("   "))
		if !errors.Is(err, ErrMissingCustomerEmail) {
			t.Fatalf("expected ErrMissingCustomerEmail, got %v", err)
		}
		if len(h.recorded) != 0 {
			t.Fatalf("expected no side effects, got events %v", h.eventTypes())
		}
	})

	t.Run("f150 priced, persisted and emailed", func(t *testing.T) {
		h := newQuoteHarness(t)
		uc, _ := h.useCases(t)

		var stored entities.Quote
		h.quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				stored = q
				return q, nil
			},
		)
		h.mailer.EXPECT().Send(gomock.Any(), gomock.AssignableToTypeOf(interfaces.EmailMessage{})).DoAndReturn(
			func(_ context.Context, m interfaces.EmailMessage) (string, error) {
				if m.To != "test@example.com" || !strings.Contains(m.HTML, stored.QuoteNumber) {
					t.Fatalf("unexpected message: to=%q subject=%q", m.To, m.Subject)
				}
				return "msg-1", nil
			},
		)
		h.quotes.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.QuoteStatusSent, true).DoAndReturn(
			func(_ context.Context, id string, s entities.QuoteStatus, sent bool) (entities.Quote, error) {
				if id != stored.ID {
					t.Fatalf("status update for wrong quote %q", id)
				}
				stored.Status, stored.EmailSent = s, sent
				return stored, nil
			},
		)

		res, err := uc.CreateFromChat(context.Background(), f150Command("test@example.com"))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		p := stored.Pricing
		if p.Sqft != 300 || p.SqftSource != entities.SizeSourceExact || p.NeedsReview {
			t.Fatalf("unexpected size: %+v", p)
		}
		if p.PricePerSqft != 5.27 || p.MaterialCost != 1581 || p.TotalPrice != 1581 {
			t.Fatalf("unexpected price: %+v", p)
		}
		if p.LaborCost != 0 || p.Margin != 0 {
			t.Fatalf("labor and margin must be zero: %+v", p)
		}
		if stored.Status != entities.QuoteStatusSent || stored.SourceConversationID != "conv-1" || stored.Source != "chat" {
			t.Fatalf("unexpected quote: %+v", stored)
		}
		if !quoteNumberPattern.MatchString(res.Quote.QuoteNumber) {
			t.Fatalf("unexpected quote number %q", res.Quote.QuoteNumber)
		}
		if !res.EmailSent || res.Quote.Status != entities.QuoteStatusSent || res.Downgraded() {
			t.Fatalf("unexpected result: %+v", res)
		}

		types := h.eventTypes()
		drafted, sent := indexOfEvent(types, entities.EventQuoteDrafted), indexOfEvent(types, entities.EventEmailSent)
		if indexOfEvent(types, entities.EventQuoteCreated) < 0 || drafted < 0 || sent < 0 {
			t.Fatalf("missing events: %v", types)
		}
		if drafted > sent {
			t.Fatalf("quote_drafted must precede email_sent: %v", types)
		}
		for _, e := range h.recorded {
			if e.ConversationID != "conv-1" {
				t.Fatalf("event %s logged under %q", e.Type, e.ConversationID)
			}
		}
		if len(h.tasks) != 1 || h.tasks[0].Priority != entities.TaskPriorityNormal {
			t.Fatalf("expected one normal task, got %+v", h.tasks)
		}
	})

	t.Run("mail failure keeps the quote", func(t *testing.T) {
		h := newQuoteHarness(t)
		uc, _ := h.useCases(t)

		h.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoQuote)
		h.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("ses down"))

		res, err := uc.CreateFromChat(context.Background(), f150Command("test@example.com"))
		if err != nil {
			t.Fatalf("email failure must not fail creation: %v", err)
		}
		if res.EmailSent || res.Quote.Status != entities.QuoteStatusApproved {
			t.Fatalf("unexpected result: %+v", res)
		}
		if !h.hasEvent(entities.EventEmailFailed) || h.hasEvent(entities.EventEmailSent) {
			t.Fatalf("unexpected events: %v", h.eventTypes())
		}
	})

	t.Run("placeholder email never sends", func(t *testing.T) {
		h := newQuoteHarness(t)
		uc, _ := h.useCases(t)

		h.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoQuote)

		res, err := uc.CreateFromChat(context.Background(), f150Command("lead-123@capture.local"))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.EmailSent || res.Quote.EmailSent {
			t.Fatalf("expected email_sent=false")
		}
		if !strings.Contains(res.Message, "no deliverable address") {
			t.Fatalf("unexpected message %q", res.Message)
		}
	})

	t.Run("send_email false skips mail", func(t *testing.T) {
		h := newQuoteHarness(t)
		uc, _ := h.useCases(t)
		no := false
		cmd := f150Command("test@example.com")
		cmd.SendEmail = &no

		h.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoQuote)

		res, err := uc.CreateFromChat(context.Background(), cmd)
		if err != nil || res.EmailSent {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("insert failure is surfaced", func(t *testing.T) {
		h := newQuoteHarness(t)
		uc, _ := h.useCases(t)

		h.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("throttled"))

		_, err := uc.CreateFromChat(context.Background(), f150Command("test@example.com"))
		if !errors.Is(err, ErrQuotePersistence) || !strings.Contains(err.Error(), "throttled") {
			t.Fatalf("expected ErrQuotePersistence, got %v", err)
		}
		if len(h.recorded) != 0 {
			t.Fatalf("no events expected after failed insert, got %v", h.eventTypes())
		}
	})

	t.Run("commercial vehicle flags review", func(t *testing.T) {
		h := newQuoteHarness(t)
		uc, _ := h.useCases(t)
		cmd := f150Command("fleet@example.com")
		cmd.Vehicle = entities.Vehicle{Year: 2022, Make: "Chevrolet", Model: "Silverado 4500"}
		no := false
		cmd.SendEmail = &no

		h.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoQuote)

		res, err := uc.CreateFromChat(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		p := res.Quote.Pricing
		if p.SqftSource != entities.SizeSourceCommercialFallback || p.Sqft != 300 || !p.NeedsReview {
			t.Fatalf("unexpected pricing %+v", p)
		}
		if p.SizeCategory != "hd_truck" {
			t.Fatalf("expected hd_truck category, got %q", p.SizeCategory)
		}
		if !strings.Contains(res.Message, "manual review") || !strings.Contains(res.Message, "commercial_fallback/hd_truck") {
			t.Fatalf("message should flag review with its basis: %q", res.Message)
		}
		var created *entities.ConversationEvent
		for i := range h.recorded {
			if h.recorded[i].Type == entities.EventQuoteCreated {
				created = &h.recorded[i]
			}
		}
		if created == nil || created.Payload["size_category"] != "hd_truck" {
			t.Fatalf("quote_created should carry the size category, got %+v", created)
		}
		if !h.hasEvent(entities.EventEscalationSent) {
			t.Fatalf("expected escalation event, got %v", h.eventTypes())
		}
	})

	t.Run("agent without scope gets a draft", func(t *testing.T) {
		h := newQuoteHarness(t)
		uc, _ := h.useCases(t)
		cmd := f150Command("test@example.com")
		cmd.AgentID = "website_chat"

		h.drafts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoDraft)
		h.aiActions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.CreateFromChat(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Downgraded() || res.Gate == nil || !res.Gate.ConvertToPending || res.Gate.Proceed {
			t.Fatalf("expected downgrade, got %+v", res)
		}
		if res.Draft.SourceAgent != "website_chat" || res.Draft.Status != entities.DraftStatusDraft {
			t.Fatalf("unexpected draft %+v", res.Draft)
		}
	})

	t.Run("user prefix on agent id grants nothing", func(t *testing.T) {
		h := newQuoteHarness(t)
		uc, _ := h.useCases(t)
		cmd := f150Command("test@example.com")
		cmd.AgentID = "user:42"

		h.drafts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoDraft)
		h.aiActions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.CreateFromChat(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Downgraded() || res.Gate.Scope != entities.ScopeNone {
			t.Fatalf("expected downgrade to draft, got %+v", res)
		}
	})

	t.Run("ops desk creates directly", func(t *testing.T) {
		h := newQuoteHarness(t)
		uc, _ := h.useCases(t)
		cmd := f150Command("test@example.com")
		cmd.AgentID = "ops_desk"
		no := false
		cmd.SendEmail = &no

		h.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoQuote)

		res, err := uc.CreateFromChat(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Downgraded() || !res.Quote.AIGenerated || res.Quote.CreatedBy != "ops_desk" {
			t.Fatalf("unexpected result %+v", res)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		h := newQuoteHarness(t)
		uc, _ := h.useCases(t)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		h := newQuoteHarness(t)
		uc, _ := h.useCases(t)
		h.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)
		if _, err := uc.GetByID(context.Background(), "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		h := newQuoteHarness(t)
		uc, _ := h.useCases(t)
		h.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)
		q, err := uc.GetByID(context.Background(), " q-1 ")
		if err != nil || q.ID != "q-1" {
			t.Fatalf("unexpected %+v err=%v", q, err)
		}
	})
}

func TestQuoteUseCase_QuickQuote(t *testing.T) {
	h := newQuoteHarness(t)
	uc, _ := h.useCases(t)

	p, err := uc.QuickQuote(context.Background(), QuoteInput{
		Vehicle:     entities.Vehicle{Make: "Ford", Model: "F-150", Year: 2010},
		ProductType: "3M contour",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Sqft != 290 || p.PricePerSqft != 6.92 || p.MaterialCost != 2006.8 {
		t.Fatalf("unexpected pricing %+v", p)
	}
}

func TestQuoter_ProductPriceOverride(t *testing.T) {
	q := newTestQuoter(t)
	p := q.Price(QuoteInput{
		Vehicle:      entities.Vehicle{Make: "Toyota", Model: "Camry"},
		ProductID:    " sku-chrome-01 ",
		ProductName:  "Custom Chrome",
		ProductPrice: 10,
	})
	if p.PricePerSqft != 10 || p.MaterialCost != 2000 || p.ProductName != "Custom Chrome" {
		t.Fatalf("unexpected pricing %+v", p)
	}
	if p.ProductID != "sku-chrome-01" {
		t.Fatalf("expected product id kept, got %q", p.ProductID)
	}
	if p.SqftSource != entities.SizeSourceExact || p.SizeMatchedKey == "" || p.SizeBasis() != "exact/"+p.SizeMatchedKey {
		t.Fatalf("expected exact match provenance, got %+v", p)
	}
}
