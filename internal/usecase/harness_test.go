package usecase

import (
	"context"
	"testing"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/domain/gate"
	"wrapcommand/internal/domain/pricing"
	mock_interfaces "wrapcommand/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// quoteHarness wires both quote use cases over gomock repositories. Events
// and follow-up writes are accepted and captured; everything else must be
// expected by the test.
type quoteHarness struct {
	quotes    *mock_interfaces.MockIQuoteRepository
	drafts    *mock_interfaces.MockIQuoteDraftRepository
	events    *mock_interfaces.MockIConversationEventRepository
	followUps *mock_interfaces.MockIFollowUpRepository
	aiActions *mock_interfaces.MockIAIActionRepository
	mailer    *mock_interfaces.MockIMailer
	locker    *mock_interfaces.MockIExecutionLocker

	recorded []entities.ConversationEvent
	tasks    []entities.Task
}

func newQuoteHarness(t *testing.T) *quoteHarness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &quoteHarness{
		quotes:    mock_interfaces.NewMockIQuoteRepository(ctrl),
		drafts:    mock_interfaces.NewMockIQuoteDraftRepository(ctrl),
		events:    mock_interfaces.NewMockIConversationEventRepository(ctrl),
		followUps: mock_interfaces.NewMockIFollowUpRepository(ctrl),
		aiActions: mock_interfaces.NewMockIAIActionRepository(ctrl),
		mailer:    mock_interfaces.NewMockIMailer(ctrl),
		locker:    mock_interfaces.NewMockIExecutionLocker(ctrl),
	}
	h.events.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.ConversationEvent) error {
			h.recorded = append(h.recorded, e)
			return nil
		},
	).AnyTimes()
	h.followUps.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task entities.Task) (entities.Task, error) {
			h.tasks = append(h.tasks, task)
			return task, nil
		},
	).AnyTimes()
	h.followUps.EXPECT().EnrollSequence(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return h
}

func newTestQuoter(t *testing.T) *Quoter {
	t.Helper()
	table, err := pricing.DefaultVehicleTable()
	if err != nil {
		t.Fatalf("load vehicle table: %v", err)
	}
	return NewQuoter(pricing.NewResolver(table), pricing.NewCalculator(pricing.DefaultPriceTable()), pricing.DefaultVolumeTiers())
}

func (h *quoteHarness) deps(t *testing.T) DraftDeps {
	log := zap.NewNop()
	return DraftDeps{
		QuoteDeps: QuoteDeps{
			Quotes:    h.quotes,
			Events:    h.events,
			Quoter:    newTestQuoter(t),
			Gate:      gate.New(gate.DefaultPolicy()),
			Notifier:  NewNotificationService(h.mailer, h.quotes, h.events, pricing.DefaultVolumeTiers(), log),
			FollowUps: NewFollowUpService(h.followUps, h.events, DefaultFollowUpPolicy(), log),
			Log:       log,
		},
		Drafts:    h.drafts,
		AIActions: h.aiActions,
		Locker:    h.locker,
	}
}

func (h *quoteHarness) useCases(t *testing.T) (*QuoteUseCase, *QuoteDraftUseCase) {
	d := h.deps(t)
	drafts := NewQuoteDraftUseCase(d)
	return NewQuoteUseCase(d.QuoteDeps, drafts), drafts
}

func (h *quoteHarness) eventTypes() []entities.EventType {
	out := make([]entities.EventType, 0, len(h.recorded))
	for _, e := range h.recorded {
		out = append(out, e.Type)
	}
	return out
}

func (h *quoteHarness) hasEvent(t entities.EventType) bool {
	for _, e := range h.recorded {
		if e.Type == t {
			return true
		}
	}
	return false
}

func indexOfEvent(types []entities.EventType, t entities.EventType) int {
	for i, v := range types {
		if v == t {
			return i
		}
	}
	return -1
}

// echoQuote returns whatever the use case asked to persist.
func echoQuote(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil }

func echoDraft(_ context.Context, d entities.QuoteDraft) (entities.QuoteDraft, error) { return d, nil }
