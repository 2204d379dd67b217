package usecase

import (
	"context"
	"fmt"
	"time"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/infrastructure/metrics"
	"wrapcommand/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FollowUpPolicy configures the work queued after a quote exists.
type FollowUpPolicy struct {
	Owner           string
	HighThreshold   float64
	UrgentThreshold float64
	Sequence        string
}

func DefaultFollowUpPolicy() FollowUpPolicy {
	return FollowUpPolicy{
		Owner:           "sales",
		HighThreshold:   2000,
		UrgentThreshold: 5000,
		Sequence:        "quote_followup",
	}
}

// PriorityFor escalates by quoted total. Thresholds are exclusive.
func (p FollowUpPolicy) PriorityFor(total float64) entities.TaskPriority {
	switch {
	case total > p.UrgentThreshold:
		return entities.TaskPriorityUrgent
	case total > p.HighThreshold:
		return entities.TaskPriorityHigh
	default:
		return entities.TaskPriorityNormal
	}
}

func dueIn(p entities.TaskPriority) time.Duration {
	switch p {
	case entities.TaskPriorityUrgent:
		return 4 * time.Hour
	case entities.TaskPriorityHigh:
		return 24 * time.Hour
	default:
		return 48 * time.Hour
	}
}

// FollowUpService creates the owner task, flags estimated sizes for review
// and enrolls the customer in the follow-up sequence. Every step is
// best-effort.
type FollowUpService struct {
	repo   interfaces.IFollowUpRepository
	events *eventLog
	policy FollowUpPolicy
	log    *zap.Logger
}

func NewFollowUpService(repo interfaces.IFollowUpRepository, events interfaces.IConversationEventRepository, policy FollowUpPolicy, log *zap.Logger) *FollowUpService {
	return &FollowUpService{
		repo:   repo,
		events: newEventLog(events, log),
		policy: policy,
		log:    log,
	}
}

func (f *FollowUpService) Schedule(ctx context.Context, q entities.Quote, conversationID, actor string) {
	if f == nil || f.repo == nil {
		return
	}
	convKey := conversationKey(conversationID, "quote", q.ID)
	now := time.Now().UTC()
	priority := f.policy.PriorityFor(q.Pricing.TotalPrice)

	desc := fmt.Sprintf("%s for %s, %s, $%.2f (%s).",
		q.Pricing.ProductName, q.Vehicle.Description(), q.Customer.Email, q.Pricing.TotalPrice, q.Status)
	if q.Pricing.NeedsReview {
		desc += fmt.Sprintf(" Vehicle size estimated at %.0f sq ft (%s); confirm before production.", q.Pricing.Sqft, q.Pricing.SqftSource)
	}

	task, err := f.repo.CreateTask(ctx, entities.Task{
		ID:          uuid.NewString(),
		Title:       "Follow up on quote " + q.QuoteNumber,
		Description: desc,
		Priority:    priority,
		Owner:       f.policy.Owner,
		QuoteID:     q.ID,
		Status:      "open",
		DueAt:       now.Add(dueIn(priority)),
		CreatedAt:   now,
	})
	if err != nil {
		metrics.BestEffortFailures.WithLabelValues("follow_up_task").Inc()
		f.log.Warn("[follow_up][usecase] task creation failed", zap.String("quote_id", q.ID), zap.Error(err))
	} else {
		f.events.record(ctx, convKey, actor, entities.TaskCreatedPayload{
			TaskID:   task.ID,
			QuoteID:  q.ID,
			Priority: task.Priority,
		})
	}

	if q.Pricing.NeedsReview {
		f.events.record(ctx, convKey, actor, entities.EscalationSentPayload{
			QuoteID: q.ID,
			TaskID:  task.ID,
			Reason:  fmt.Sprintf("vehicle size resolved by %s; manual review required", q.Pricing.SizeBasis()),
		})
	}

	if !IsDeliverableEmail(q.Customer.Email) || f.policy.Sequence == "" {
		return
	}
	err = f.repo.EnrollSequence(ctx, entities.SequenceEnrollment{
		ID:            uuid.NewString(),
		Sequence:      f.policy.Sequence,
		CustomerEmail: q.Customer.Email,
		QuoteID:       q.ID,
		Status:        "active",
		CreatedAt:     now,
	})
	if err != nil {
		metrics.BestEffortFailures.WithLabelValues("sequence_enrollment").Inc()
		f.log.Warn("[follow_up][usecase] sequence enrollment failed", zap.String("quote_id", q.ID), zap.Error(err))
	}
}
