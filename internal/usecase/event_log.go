package usecase

import (
	"context"
	"strings"
	"time"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/infrastructure/metrics"
	"wrapcommand/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// eventLog appends audit events. Append failures are logged, never returned:
// an audit write must not undo a quote that already exists.
type eventLog struct {
	repo interfaces.IConversationEventRepository
	log  *zap.Logger
}

func newEventLog(repo interfaces.IConversationEventRepository, log *zap.Logger) *eventLog {
	return &eventLog{repo: repo, log: log}
}

func (l *eventLog) record(ctx context.Context, conversationID, actor string, p entities.EventPayload) {
	if l == nil || l.repo == nil {
		return
	}
	e := entities.NewConversationEvent(conversationID, actor, p)
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	if err := l.repo.Append(ctx, e); err != nil {
		metrics.BestEffortFailures.WithLabelValues("conversation_event").Inc()
		l.log.Warn("[event][usecase] append failed",
			zap.String("conversation_id", e.ConversationID),
			zap.String("event_type", string(e.Type)),
			zap.Error(err))
	}
}

// conversationKey falls back to a per-record key when the flow did not start
// in a conversation, so every event still has a partition to live in.
func conversationKey(conversationID, kind, id string) string {
	if v := strings.TrimSpace(conversationID); v != "" {
		return v
	}
	return kind + ":" + id
}
