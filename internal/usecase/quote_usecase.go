package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/domain/gate"
	"wrapcommand/internal/infrastructure/metrics"
	"wrapcommand/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const quoteNumberAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewQuoteNumber returns WPW-<base36 millis>-<4 random chars>.
func NewQuoteNumber(now time.Time) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		copy(b, uuid.New().NodeID())
	}
	suffix := make([]byte, len(b))
	for i, v := range b {
		suffix[i] = quoteNumberAlphabet[int(v)%len(quoteNumberAlphabet)]
	}
	return "WPW-" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)) + "-" + string(suffix)
}

// CreateQuoteCommand is the create-quote-from-chat input after boundary
// validation.
type CreateQuoteCommand struct {
	QuoteInput
	ConversationID string
	OrganizationID string
	Source         string
	// AgentID, when set, is gate-checked for create_quote. An agent without
	// quote scope gets a draft instead of a quote.
	AgentID string
	// SendEmail defaults to true.
	SendEmail *bool
}

func (c CreateQuoteCommand) sendEmail() bool {
	return c.SendEmail == nil || *c.SendEmail
}

// CreateQuoteResult is either a created quote or, when the gate downgraded
// the request, a draft.
type CreateQuoteResult struct {
	Quote     entities.Quote
	Draft     *entities.QuoteDraft
	Gate      *entities.GateResult
	EmailSent bool
	EmailTo   string
	Message   string
}

// Downgraded reports whether the request produced a draft.
func (r CreateQuoteResult) Downgraded() bool { return r.Draft != nil }

//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/quote_usecase_mock.go -package=mocks

// IQuoteUseCase exposes quote creation and lookup.
type IQuoteUseCase interface {
	CreateFromChat(ctx context.Context, cmd CreateQuoteCommand) (CreateQuoteResult, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	QuickQuote(ctx context.Context, in QuoteInput) (entities.Pricing, error)
}

// QuoteDeps groups the collaborators of the quote flows.
type QuoteDeps struct {
	Quotes    interfaces.IQuoteRepository
	Events    interfaces.IConversationEventRepository
	Quoter    *Quoter
	Gate      *gate.Gate
	Notifier  *NotificationService
	FollowUps *FollowUpService
	Log       *zap.Logger
}

type QuoteUseCase struct {
	quotes    interfaces.IQuoteRepository
	events    *eventLog
	quoter    *Quoter
	gate      *gate.Gate
	notifier  *NotificationService
	followUps *FollowUpService
	drafts    IQuoteDraftUseCase
	log       *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase wires the direct quote flow. drafts receives requests the
// gate downgrades.
func NewQuoteUseCase(deps QuoteDeps, drafts IQuoteDraftUseCase) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:    deps.Quotes,
		events:    newEventLog(deps.Events, deps.Log),
		quoter:    deps.Quoter,
		gate:      deps.Gate,
		notifier:  deps.Notifier,
		followUps: deps.FollowUps,
		drafts:    drafts,
		log:       deps.Log,
	}
}

func (u *QuoteUseCase) CreateFromChat(ctx context.Context, cmd CreateQuoteCommand) (CreateQuoteResult, error) {
	cmd.Customer.Email = strings.TrimSpace(cmd.Customer.Email)
	if cmd.Customer.Email == "" {
		return CreateQuoteResult{}, ErrMissingCustomerEmail
	}
	source := strings.TrimSpace(cmd.Source)
	if source == "" {
		source = "chat"
	}

	actor := strings.TrimSpace(cmd.AgentID)
	if actor != "" {
		res := u.gate.Check(actor, entities.ActionCreateQuote)
		recordGate(res)
		if !res.Proceed {
			return u.downgrade(ctx, cmd, source, res)
		}
	}

	p := u.quoter.Price(cmd.QuoteInput)
	now := time.Now().UTC()
	q := entities.Quote{
		ID:                   uuid.NewString(),
		QuoteNumber:          NewQuoteNumber(now),
		Customer:             cmd.Customer,
		Vehicle:              cmd.Vehicle,
		Pricing:              p,
		Status:               entities.QuoteStatusApproved,
		Source:               source,
		AIGenerated:          actor != "",
		SourceConversationID: strings.TrimSpace(cmd.ConversationID),
		OrganizationID:       strings.TrimSpace(cmd.OrganizationID),
		CreatedBy:            actor,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		u.log.Error("[quote][usecase] insert failed", zap.String("quote_number", q.QuoteNumber), zap.Error(err))
		return CreateQuoteResult{}, fmt.Errorf("%w: %v", ErrQuotePersistence, err)
	}
	metrics.QuotesCreated.WithLabelValues("chat").Inc()

	return finishQuote(ctx, u.events, u.notifier, u.followUps, created, created.SourceConversationID, actorOrSystem(actor), cmd.sendEmail()), nil
}

// finishQuote runs the audit, notification and follow-up steps shared by
// direct quotes and promoted drafts. Nothing here can fail the caller.
func finishQuote(ctx context.Context, events *eventLog, notifier *NotificationService, followUps *FollowUpService, q entities.Quote, conversationID, actor string, sendEmail bool) CreateQuoteResult {
	convKey := conversationKey(conversationID, "quote", q.ID)
	events.record(ctx, convKey, actor, entities.QuoteCreatedPayload{
		QuoteID:        q.ID,
		QuoteNumber:    q.QuoteNumber,
		MaterialCost:   q.Pricing.MaterialCost,
		Sqft:           q.Pricing.Sqft,
		SqftSource:     q.Pricing.SqftSource,
		SizeCategory:   q.Pricing.SizeCategory,
		SizeMatchedKey: q.Pricing.SizeMatchedKey,
		NeedsReview:    q.Pricing.NeedsReview,
	})
	events.record(ctx, convKey, actor, entities.QuoteDraftedPayload{
		QuoteID:     q.ID,
		QuoteNumber: q.QuoteNumber,
		Vehicle:     q.Vehicle.Description(),
		ProductName: q.Pricing.ProductName,
	})

	res := CreateQuoteResult{Quote: q, EmailTo: q.Customer.Email}
	if sendEmail && notifier != nil {
		n := notifier.NotifyQuote(ctx, q, conversationID, actor)
		res.EmailSent = n.EmailSent
		res.Quote.Status = n.Status
		res.Quote.EmailSent = n.EmailSent
	}
	if followUps != nil {
		followUps.Schedule(ctx, res.Quote, conversationID, actor)
	}
	res.Message = quoteMessage(res.Quote, res.EmailSent)
	return res
}

func (u *QuoteUseCase) downgrade(ctx context.Context, cmd CreateQuoteCommand, source string, res entities.GateResult) (CreateQuoteResult, error) {
	u.log.Info("[quote][usecase] agent lacks quote scope, creating draft",
		zap.String("agent_id", res.Actor), zap.String("scope", string(res.Scope)))
	d, err := u.drafts.CreateDraft(ctx, CreateDraftCommand{
		QuoteInput:     cmd.QuoteInput,
		SourceAgent:    res.Actor,
		Confidence:     1,
		Source:         source,
		ConversationID: cmd.ConversationID,
		OrganizationID: cmd.OrganizationID,
	})
	if err != nil {
		return CreateQuoteResult{}, err
	}
	return CreateQuoteResult{
		Draft:   &d.Draft,
		Gate:    &res,
		Message: d.Message,
	}, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// QuickQuote prices a vehicle without persisting anything.
func (u *QuoteUseCase) QuickQuote(_ context.Context, in QuoteInput) (entities.Pricing, error) {
	p := u.quoter.Price(in)
	return p, nil
}

func quoteMessage(q entities.Quote, emailSent bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quote %s created for %s: %.0f sq ft of %s, $%.2f.",
		q.QuoteNumber, q.Vehicle.Description(), q.Pricing.Sqft, q.Pricing.ProductName, q.Pricing.MaterialCost)
	switch {
	case emailSent:
		fmt.Fprintf(&b, " Emailed to %s.", q.Customer.Email)
	case !IsDeliverableEmail(q.Customer.Email):
		b.WriteString(" Email not sent: no deliverable address.")
	default:
		b.WriteString(" Email not sent.")
	}
	if q.Pricing.NeedsReview {
		fmt.Fprintf(&b, " Vehicle size estimated (%s); manual review required before production.", q.Pricing.SizeBasis())
	}
	return b.String()
}

func recordGate(res entities.GateResult) {
	metrics.GateDecisions.WithLabelValues(res.Action, string(res.Scope), strconv.FormatBool(res.Proceed)).Inc()
}

func actorOrSystem(actor string) string {
	if actor == "" {
		return "system"
	}
	return actor
}
