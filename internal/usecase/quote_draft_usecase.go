package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/domain/gate"
	"wrapcommand/internal/infrastructure/metrics"
	"wrapcommand/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateDraftCommand is the create-quote-draft input after boundary
// validation.
type CreateDraftCommand struct {
	QuoteInput
	SourceAgent     string
	Confidence      float64
	OriginalMessage string
	Source          string
	ConversationID  string
	OrganizationID  string
}

type CreateDraftResult struct {
	Draft   entities.QuoteDraft
	Gate    entities.GateResult
	Message string
}

// ExecuteDraftCommand names the draft and who is approving it. A user id
// takes precedence over an agent id.
type ExecuteDraftCommand struct {
	DraftID          string
	ApprovingAgent   string
	ApprovedByUserID string
}

// authorize gates the approver. Only ApprovedByUserID is treated as a human
// operator; ApprovingAgent is always looked up as an agent.
func (c ExecuteDraftCommand) authorize(g *gate.Gate) entities.GateResult {
	if strings.TrimSpace(c.ApprovedByUserID) != "" {
		return g.CheckUser(c.ApprovedByUserID, entities.ActionExecuteQuote)
	}
	return g.Check(strings.TrimSpace(c.ApprovingAgent), entities.ActionExecuteQuote)
}

type ExecuteDraftResult struct {
	Quote     entities.Quote
	Draft     entities.QuoteDraft
	Status    entities.QuoteStatus
	EmailSent bool
	EmailTo   string
	Message   string
}

type RejectDraftCommand struct {
	DraftID          string
	RejectingAgent   string
	RejectedByUserID string
	Reason           string
}

func (c RejectDraftCommand) authorize(g *gate.Gate) entities.GateResult {
	if strings.TrimSpace(c.RejectedByUserID) != "" {
		return g.CheckUser(c.RejectedByUserID, entities.ActionExecuteQuote)
	}
	return g.Check(strings.TrimSpace(c.RejectingAgent), entities.ActionExecuteQuote)
}

//go:generate mockgen -source=quote_draft_usecase.go -destination=../adapter/http/handlers/mocks/quote_draft_usecase_mock.go -package=mocks

// IQuoteDraftUseCase exposes the draft and approval flow.
type IQuoteDraftUseCase interface {
	CreateDraft(ctx context.Context, cmd CreateDraftCommand) (CreateDraftResult, error)
	ExecuteDraft(ctx context.Context, cmd ExecuteDraftCommand) (ExecuteDraftResult, error)
	RejectDraft(ctx context.Context, cmd RejectDraftCommand) (entities.QuoteDraft, error)
	GetByID(ctx context.Context, id string) (entities.QuoteDraft, error)
}

// DraftDeps adds the draft-only collaborators to QuoteDeps.
type DraftDeps struct {
	QuoteDeps
	Drafts    interfaces.IQuoteDraftRepository
	AIActions interfaces.IAIActionRepository
	Locker    interfaces.IExecutionLocker
}

type QuoteDraftUseCase struct {
	drafts    interfaces.IQuoteDraftRepository
	quotes    interfaces.IQuoteRepository
	aiActions interfaces.IAIActionRepository
	locker    interfaces.IExecutionLocker
	events    *eventLog
	quoter    *Quoter
	gate      *gate.Gate
	notifier  *NotificationService
	followUps *FollowUpService
	log       *zap.Logger
}

var _ IQuoteDraftUseCase = (*QuoteDraftUseCase)(nil)

func NewQuoteDraftUseCase(deps DraftDeps) *QuoteDraftUseCase {
	return &QuoteDraftUseCase{
		drafts:    deps.Drafts,
		quotes:    deps.Quotes,
		aiActions: deps.AIActions,
		locker:    deps.Locker,
		events:    newEventLog(deps.Events, deps.Log),
		quoter:    deps.Quoter,
		gate:      deps.Gate,
		notifier:  deps.Notifier,
		followUps: deps.FollowUps,
		log:       deps.Log,
	}
}

func (u *QuoteDraftUseCase) CreateDraft(ctx context.Context, cmd CreateDraftCommand) (CreateDraftResult, error) {
	agent := strings.TrimSpace(cmd.SourceAgent)
	if agent == "" {
		return CreateDraftResult{}, ErrInvalidSourceAgent
	}
	cmd.Customer.Email = strings.TrimSpace(cmd.Customer.Email)
	if cmd.Customer.Email == "" {
		return CreateDraftResult{}, ErrMissingCustomerEmail
	}
	if cmd.Confidence < 0 || cmd.Confidence > 1 {
		return CreateDraftResult{}, ErrInvalidConfidence
	}

	gateRes := u.gate.Check(agent, entities.ActionExecuteQuote)
	recordGate(gateRes)

	p := u.quoter.Price(cmd.QuoteInput)
	now := time.Now().UTC()
	d := entities.QuoteDraft{
		ID:              uuid.NewString(),
		SourceAgent:     agent,
		Confidence:      cmd.Confidence,
		Customer:        cmd.Customer,
		Vehicle:         cmd.Vehicle,
		Pricing:         p,
		OriginalMessage: cmd.OriginalMessage,
		Source:          strings.TrimSpace(cmd.Source),
		ConversationID:  strings.TrimSpace(cmd.ConversationID),
		OrganizationID:  strings.TrimSpace(cmd.OrganizationID),
		Status:          entities.DraftStatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.drafts.Create(ctx, d)
	if err != nil {
		u.log.Error("[quote_draft][usecase] insert failed", zap.String("source_agent", agent), zap.Error(err))
		return CreateDraftResult{}, fmt.Errorf("%w: %v", ErrDraftPersistence, err)
	}
	metrics.DraftsCreated.WithLabelValues(string(gateRes.Scope)).Inc()

	if u.aiActions != nil {
		err := u.aiActions.Create(ctx, entities.AIAction{
			ID:          created.ID,
			ActionType:  entities.ActionCreateQuote,
			Status:      entities.AIActionStatusPending,
			SourceAgent: agent,
			DraftID:     created.ID,
			Summary:     fmt.Sprintf("Quote for %s: %s, $%.2f", created.Vehicle.Description(), created.Pricing.ProductName, created.Pricing.MaterialCost),
			CreatedAt:   now,
		})
		if err != nil {
			metrics.BestEffortFailures.WithLabelValues("ai_action").Inc()
			u.log.Warn("[quote_draft][usecase] ai action insert failed", zap.String("draft_id", created.ID), zap.Error(err))
		}
	}

	u.events.record(ctx, conversationKey(created.ConversationID, "draft", created.ID), agent, entities.DraftCreatedPayload{
		DraftID:      created.ID,
		SourceAgent:  agent,
		Confidence:   created.Confidence,
		MaterialCost: created.Pricing.MaterialCost,
		Gate:         gateRes,
	})

	msg := fmt.Sprintf("Draft quote for %s created at $%.2f and queued for approval.",
		created.Vehicle.Description(), created.Pricing.MaterialCost)
	if created.Pricing.NeedsReview {
		msg += fmt.Sprintf(" Vehicle size estimated (%s); manual review required.", created.Pricing.SizeBasis())
	}
	return CreateDraftResult{Draft: created, Gate: gateRes, Message: msg}, nil
}

func (u *QuoteDraftUseCase) ExecuteDraft(ctx context.Context, cmd ExecuteDraftCommand) (ExecuteDraftResult, error) {
	draftID := strings.TrimSpace(cmd.DraftID)
	if draftID == "" {
		return ExecuteDraftResult{}, ErrInvalidDraftID
	}
	gateRes := cmd.authorize(u.gate)
	actor := gateRes.Actor
	recordGate(gateRes)
	if !gateRes.Proceed {
		u.events.record(ctx, conversationKey("", "draft", draftID), actorOrSystem(actor), entities.ExecutionBlockedPayload{
			DraftID: draftID,
			Gate:    gateRes,
		})
		u.log.Info("[quote_draft][usecase] execution blocked",
			zap.String("draft_id", draftID), zap.String("actor", actor), zap.String("scope", string(gateRes.Scope)))
		return ExecuteDraftResult{}, &GateBlockedError{Result: gateRes}
	}

	d, err := u.loadPending(ctx, draftID)
	if err != nil {
		return ExecuteDraftResult{}, err
	}

	release, err := u.lock(ctx, draftID)
	if err != nil {
		return ExecuteDraftResult{}, err
	}
	defer release()

	now := time.Now().UTC()
	q := entities.Quote{
		ID:                   uuid.NewString(),
		QuoteNumber:          NewQuoteNumber(now),
		Customer:             d.Customer,
		Vehicle:              d.Vehicle,
		Pricing:              d.Pricing,
		Status:               entities.QuoteStatusApproved,
		Source:               draftSource(d),
		AIGenerated:          true,
		SourceConversationID: d.ConversationID,
		SourceDraftID:        d.ID,
		OrganizationID:       d.OrganizationID,
		CreatedBy:            actor,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		u.log.Error("[quote_draft][usecase] quote insert failed", zap.String("draft_id", d.ID), zap.Error(err))
		return ExecuteDraftResult{}, fmt.Errorf("%w: %v", ErrQuotePersistence, err)
	}
	metrics.QuotesCreated.WithLabelValues("draft").Inc()

	approved, err := u.drafts.Transition(ctx, d.ID, interfaces.DraftTransition{
		From:       entities.DraftStatusDraft,
		To:         entities.DraftStatusApproved,
		ApprovedBy: actor,
		QuoteID:    created.ID,
	})
	if err != nil || approved.ID == "" {
		// Someone else moved the draft between our read and this write; the
		// quote we just created must not be mailed.
		if _, uerr := u.quotes.UpdateStatus(ctx, created.ID, entities.QuoteStatusFailed, false); uerr != nil {
			u.log.Error("[quote_draft][usecase] orphan quote status update failed", zap.String("quote_id", created.ID), zap.Error(uerr))
		}
		if err != nil {
			return ExecuteDraftResult{}, err
		}
		return ExecuteDraftResult{}, ErrDraftAlreadyProcessed
	}

	u.markAIAction(ctx, d.ID, entities.AIActionStatusApproved)
	u.events.record(ctx, conversationKey(d.ConversationID, "draft", d.ID), actor, entities.DraftApprovedPayload{
		DraftID:     d.ID,
		QuoteID:     created.ID,
		QuoteNumber: created.QuoteNumber,
		ApprovedBy:  actor,
	})

	fin := finishQuote(ctx, u.events, u.notifier, u.followUps, created, d.ConversationID, actor, true)

	if fin.EmailSent {
		sent, err := u.drafts.Transition(ctx, d.ID, interfaces.DraftTransition{
			From: entities.DraftStatusApproved,
			To:   entities.DraftStatusSent,
		})
		if err != nil {
			metrics.BestEffortFailures.WithLabelValues("draft_status").Inc()
			u.log.Warn("[quote_draft][usecase] draft sent transition failed", zap.String("draft_id", d.ID), zap.Error(err))
		} else if sent.ID != "" {
			approved = sent
		}
	}

	return ExecuteDraftResult{
		Quote:     fin.Quote,
		Draft:     approved,
		Status:    fin.Quote.Status,
		EmailSent: fin.EmailSent,
		EmailTo:   fin.EmailTo,
		Message:   fin.Message,
	}, nil
}

func (u *QuoteDraftUseCase) RejectDraft(ctx context.Context, cmd RejectDraftCommand) (entities.QuoteDraft, error) {
	draftID := strings.TrimSpace(cmd.DraftID)
	if draftID == "" {
		return entities.QuoteDraft{}, ErrInvalidDraftID
	}
	gateRes := cmd.authorize(u.gate)
	actor := gateRes.Actor
	recordGate(gateRes)
	if !gateRes.Proceed {
		u.events.record(ctx, conversationKey("", "draft", draftID), actorOrSystem(actor), entities.ExecutionBlockedPayload{
			DraftID: draftID,
			Gate:    gateRes,
		})
		return entities.QuoteDraft{}, &GateBlockedError{Result: gateRes}
	}

	d, err := u.loadPending(ctx, draftID)
	if err != nil {
		return entities.QuoteDraft{}, err
	}

	rejected, err := u.drafts.Transition(ctx, d.ID, interfaces.DraftTransition{
		From:       entities.DraftStatusDraft,
		To:         entities.DraftStatusRejected,
		ApprovedBy: actor,
	})
	if err != nil {
		return entities.QuoteDraft{}, err
	}
	if rejected.ID == "" {
		return entities.QuoteDraft{}, ErrDraftAlreadyProcessed
	}

	u.markAIAction(ctx, d.ID, entities.AIActionStatusRejected)
	u.events.record(ctx, conversationKey(d.ConversationID, "draft", d.ID), actor, entities.DraftRejectedPayload{
		DraftID:    d.ID,
		RejectedBy: actor,
		Reason:     strings.TrimSpace(cmd.Reason),
	})
	return rejected, nil
}

func (u *QuoteDraftUseCase) GetByID(ctx context.Context, id string) (entities.QuoteDraft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteDraft{}, ErrInvalidDraftID
	}
	d, err := u.drafts.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteDraft{}, err
	}
	if d.ID == "" {
		return entities.QuoteDraft{}, ErrDraftNotFound
	}
	return d, nil
}

func (u *QuoteDraftUseCase) loadPending(ctx context.Context, id string) (entities.QuoteDraft, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteDraft{}, err
	}
	if d.Processed() {
		return entities.QuoteDraft{}, ErrDraftAlreadyProcessed
	}
	return d, nil
}

// lock takes the per-draft execution lock. A lock backend error does not
// block execution; the conditional draft transition still guards it.
func (u *QuoteDraftUseCase) lock(ctx context.Context, draftID string) (func(), error) {
	if u.locker == nil {
		return func() {}, nil
	}
	token, ok, err := u.locker.Acquire(ctx, draftID)
	if err != nil {
		u.log.Warn("[quote_draft][usecase] execution lock unavailable", zap.String("draft_id", draftID), zap.Error(err))
		return func() {}, nil
	}
	if !ok {
		return nil, ErrDraftExecutionInFlight
	}
	return func() {
		if err := u.locker.Release(context.WithoutCancel(ctx), draftID, token); err != nil {
			u.log.Warn("[quote_draft][usecase] execution lock release failed", zap.String("draft_id", draftID), zap.Error(err))
		}
	}, nil
}

func (u *QuoteDraftUseCase) markAIAction(ctx context.Context, draftID string, status entities.AIActionStatus) {
	if u.aiActions == nil {
		return
	}
	if err := u.aiActions.UpdateStatus(ctx, draftID, status); err != nil {
		metrics.BestEffortFailures.WithLabelValues("ai_action").Inc()
		u.log.Warn("[quote_draft][usecase] ai action update failed", zap.String("draft_id", draftID), zap.Error(err))
	}
}

func draftSource(d entities.QuoteDraft) string {
	if d.Source != "" {
		return d.Source
	}
	return "quote_draft"
}
