package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"hash/fnv"
	"html/template"
	"strings"
	"unicode/utf8"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/domain/pricing"
	"wrapcommand/internal/infrastructure/metrics"
	"wrapcommand/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// emailBodyPreviewLen bounds the body stored on email_sent events.
const emailBodyPreviewLen = 500

// placeholderDomains are sentinel hosts used for leads whose real address is
// not known yet.
var placeholderDomains = []string{"capture.local", "placeholder.wpw", "noemail.invalid"}

//go:embed templates/quote_email.html
var quoteEmailHTML string

var quoteEmailTemplate = template.Must(template.New("quote_email").Parse(quoteEmailHTML))

// Upsell is an offer block appended to quote emails.
type Upsell struct {
	Title string
	Body  string
}

// UpsellOffers alternate between quotes; the choice is a function of the
// quote id.
var UpsellOffers = [2]Upsell{
	{
		Title: "Add window perf",
		Body:  "Finish the look with printed Window Perf 50/50 on the rear and side glass. Visible from outside, see-through from inside.",
	},
	{
		Title: "Protect your wrap",
		Body:  "Add a gloss or matte overlaminate to guard against UV fade and scratches and make cleanup easier.",
	},
}

// ChooseUpsell returns the same offer for the same quote id.
func ChooseUpsell(quoteID string) Upsell {
	h := fnv.New32a()
	_, _ = h.Write([]byte(quoteID))
	return UpsellOffers[h.Sum32()%uint32(len(UpsellOffers))]
}

// IsDeliverableEmail reports whether addr is a real recipient. Empty
// addresses and placeholder domains are not.
func IsDeliverableEmail(addr string) bool {
	addr = strings.ToLower(strings.TrimSpace(addr))
	at := strings.LastIndex(addr, "@")
	if at <= 0 || at == len(addr)-1 {
		return false
	}
	host := addr[at+1:]
	if strings.HasPrefix(host, "capture.") {
		return false
	}
	for _, d := range placeholderDomains {
		if host == d {
			return false
		}
	}
	return true
}

// NotifyResult is what happened to the quote email.
type NotifyResult struct {
	EmailSent bool
	Skipped   bool
	Status    entities.QuoteStatus
	Recipient string
	Error     string
}

type quoteEmailData struct {
	QuoteNumber  string
	CustomerName string
	Vehicle      string
	ProductName  string
	Sqft         float64
	PricePerSqft float64
	Total        float64
	NeedsReview  bool
	Upsell       Upsell
	Tiers        []pricing.VolumeTier
}

// NotificationService renders and sends the quote email and records the
// outcome. It never fails the caller.
type NotificationService struct {
	mailer interfaces.IMailer
	quotes interfaces.IQuoteRepository
	events *eventLog
	tiers  []pricing.VolumeTier
	log    *zap.Logger
}

func NewNotificationService(mailer interfaces.IMailer, quotes interfaces.IQuoteRepository, events interfaces.IConversationEventRepository, tiers []pricing.VolumeTier, log *zap.Logger) *NotificationService {
	return &NotificationService{
		mailer: mailer,
		quotes: quotes,
		events: newEventLog(events, log),
		tiers:  tiers,
		log:    log,
	}
}

// RenderQuoteEmail builds subject, HTML and plain-text bodies for q.
func (n *NotificationService) RenderQuoteEmail(q entities.Quote) (interfaces.EmailMessage, error) {
	name := strings.TrimSpace(q.Customer.Name)
	if name == "" {
		name = "there"
	}
	data := quoteEmailData{
		QuoteNumber:  q.QuoteNumber,
		CustomerName: name,
		Vehicle:      q.Vehicle.Description(),
		ProductName:  q.Pricing.ProductName,
		Sqft:         q.Pricing.Sqft,
		PricePerSqft: q.Pricing.PricePerSqft,
		Total:        q.Pricing.TotalPrice,
		NeedsReview:  q.Pricing.NeedsReview,
		Upsell:       ChooseUpsell(q.ID),
		Tiers:        n.tiers,
	}

	var buf bytes.Buffer
	if err := quoteEmailTemplate.Execute(&buf, data); err != nil {
		return interfaces.EmailMessage{}, fmt.Errorf("render quote email: %w", err)
	}

	text := fmt.Sprintf("Quote %s\n%s\n%s: %.0f sq ft at $%.2f/sq ft\nTotal: $%.2f\n\n%s: %s\n",
		q.QuoteNumber, data.Vehicle, data.ProductName, data.Sqft, data.PricePerSqft, data.Total,
		data.Upsell.Title, data.Upsell.Body)

	return interfaces.EmailMessage{
		To:      strings.TrimSpace(q.Customer.Email),
		Subject: fmt.Sprintf("Your WePrintWraps quote %s", q.QuoteNumber),
		HTML:    buf.String(),
		Text:    text,
	}, nil
}

// NotifyQuote emails q to its customer when the address is deliverable and
// moves the quote to sent on success. Failures leave the status untouched.
func (n *NotificationService) NotifyQuote(ctx context.Context, q entities.Quote, conversationID, actor string) NotifyResult {
	res := NotifyResult{Status: q.Status, Recipient: strings.TrimSpace(q.Customer.Email)}
	convKey := conversationKey(conversationID, "quote", q.ID)

	if !IsDeliverableEmail(res.Recipient) {
		res.Skipped = true
		n.log.Info("[notification][usecase] email skipped, no deliverable address",
			zap.String("quote_id", q.ID), zap.String("recipient", res.Recipient))
		return res
	}

	msg, err := n.RenderQuoteEmail(q)
	if err == nil {
		var messageID string
		messageID, err = n.mailer.Send(ctx, msg)
		if err == nil {
			return n.markSent(ctx, q, msg, messageID, convKey, actor, res)
		}
	}

	metrics.EmailsFailed.Inc()
	res.Error = err.Error()
	n.log.Warn("[notification][usecase] quote email failed",
		zap.String("quote_id", q.ID), zap.String("recipient", res.Recipient), zap.Error(err))
	n.events.record(ctx, convKey, actor, entities.EmailFailedPayload{
		QuoteID:   q.ID,
		Recipient: res.Recipient,
		Error:     res.Error,
	})
	return res
}

func (n *NotificationService) markSent(ctx context.Context, q entities.Quote, msg interfaces.EmailMessage, messageID, convKey, actor string, res NotifyResult) NotifyResult {
	metrics.EmailsSent.Inc()
	res.EmailSent = true
	res.Status = entities.QuoteStatusSent

	if _, err := n.quotes.UpdateStatus(ctx, q.ID, entities.QuoteStatusSent, true); err != nil {
		metrics.BestEffortFailures.WithLabelValues("quote_status").Inc()
		n.log.Error("[notification][usecase] email sent but status update failed",
			zap.String("quote_id", q.ID), zap.Error(err))
	}

	n.events.record(ctx, convKey, actor, entities.EmailSentPayload{
		QuoteID:   q.ID,
		Recipient: msg.To,
		Subject:   msg.Subject,
		Body:      truncate(msg.HTML, emailBodyPreviewLen),
		MessageID: messageID,
	})
	n.log.Info("[notification][usecase] quote email sent",
		zap.String("quote_id", q.ID), zap.String("message_id", messageID))
	return res
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
