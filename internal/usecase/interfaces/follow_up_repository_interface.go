package interfaces

import (
	"context"

	"wrapcommand/internal/domain/entities"
)

//go:generate mockgen -source=follow_up_repository_interface.go -destination=mocks/follow_up_repository_mock.go -package=mock_interfaces

// IFollowUpRepository persists the best-effort work queued after a quote:
// owner tasks and email sequence enrollments.
type IFollowUpRepository interface {
	CreateTask(ctx context.Context, t entities.Task) (entities.Task, error)
	EnrollSequence(ctx context.Context, e entities.SequenceEnrollment) error
}

// IAIActionRepository records agent intents awaiting approval.
type IAIActionRepository interface {
	Create(ctx context.Context, a entities.AIAction) error
	UpdateStatus(ctx context.Context, id string, status entities.AIActionStatus) error
}
