package mail

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wrapcommand/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

var ErrMissingSender = errors.New("missing MAIL_FROM")
var ErrMailerNotConfigured = errors.New("mailer not configured")
var ErrInvalidRecipient = errors.New("invalid recipient")

// sesAPI is the slice of the SES client the mailer uses.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESMailer sends quote emails through Amazon SES. In mock mode it logs and
// returns a synthetic message id without calling AWS.
type SESMailer struct {
	client   sesAPI
	from     string
	replyTo  string
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IMailer = (*SESMailer)(nil)

func NewSESMailer(client *ses.Client, from, replyTo string, mockMode bool, log *zap.Logger) (*SESMailer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if mockMode {
		log.Info("[mail][ses] mock mode enabled")
		return &SESMailer{from: from, replyTo: replyTo, mockMode: true, log: log}, nil
	}
	if strings.TrimSpace(from) == "" {
		return nil, ErrMissingSender
	}
	if client == nil {
		return nil, ErrMailerNotConfigured
	}
	return newSESMailer(client, from, replyTo, log), nil
}

func newSESMailer(client sesAPI, from, replyTo string, log *zap.Logger) *SESMailer {
	return &SESMailer{client: client, from: from, replyTo: replyTo, log: log}
}

func (m *SESMailer) Send(ctx context.Context, msg interfaces.EmailMessage) (string, error) {
	to := strings.TrimSpace(msg.To)
	if !strings.Contains(to, "@") {
		return "", ErrInvalidRecipient
	}

	if m != nil && m.mockMode {
		id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		m.log.Info("[mail][ses] mock send", zap.String("to", to), zap.String("subject", msg.Subject), zap.String("message_id", id))
		return id, nil
	}
	if m == nil || m.client == nil {
		return "", ErrMailerNotConfigured
	}

	input := &ses.SendEmailInput{
		Source:      aws.String(m.from),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
			},
		},
	}
	if msg.Text != "" {
		input.Message.Body.Text = &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")}
	}
	if m.replyTo != "" {
		input.ReplyToAddresses = []string{m.replyTo}
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		m.log.Warn("[mail][ses] send failed", zap.String("to", to), zap.Error(err))
		return "", fmt.Errorf("ses send email: %w", err)
	}
	id := aws.ToString(out.MessageId)
	m.log.Info("[mail][ses] send success", zap.String("to", to), zap.String("message_id", id))
	return id, nil
}
