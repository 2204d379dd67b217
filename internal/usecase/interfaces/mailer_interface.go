package interfaces

import "context"

//go:generate mockgen -source=mailer_interface.go -destination=mocks/mailer_mock.go -package=mock_interfaces

// EmailMessage is a rendered transactional email.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// IMailer abstracts the transactional mail provider (SES).
type IMailer interface {
	Send(ctx context.Context, msg EmailMessage) (messageID string, err error)
}

// IExecutionLocker guards a single-shot operation against concurrent callers.
// Acquire reports false when someone else holds the key. Release only frees
// the key while it is still held under token.
type IExecutionLocker interface {
	Acquire(ctx context.Context, key string) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string) error
}
