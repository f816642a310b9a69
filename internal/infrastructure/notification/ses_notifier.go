package notification

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/infrastructure/config"
	"quotedesk/internal/infrastructure/logging"
	"quotedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingAdminEmail     = errors.New("missing ADMIN_EMAIL")
	ErrMissingSender         = errors.New("missing NOTIFY_FROM")
	ErrNotifierNotConfigured = errors.New("ses notifier not configured")
)

// sesAPI is the subset of *sesv2.Client used for sending.
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESNotifier emails the site admin about new quotes through AWS SES.
// In mock mode nothing leaves the process; the rendered message is logged.
type SESNotifier struct {
	client   sesAPI
	from     string
	admin    string
	renderer *TemplateRenderer
	mockMode bool
	now      func() time.Time
}

var _ interfaces.INotificationGateway = (*SESNotifier)(nil)

// NewSESNotifier requires an admin address and a sender. client may be nil
// when mock mode is enabled.
func NewSESNotifier(client *sesv2.Client, cfg config.NotifyConfig) (*SESNotifier, error) {
	var api sesAPI
	if client != nil {
		api = client
	}
	return newSESNotifier(api, cfg)
}

func newSESNotifier(client sesAPI, cfg config.NotifyConfig) (*SESNotifier, error) {
	admin := strings.TrimSpace(cfg.AdminEmail)
	from := strings.TrimSpace(cfg.From)
	if admin == "" {
		logging.L().Warn("[quote][notify] missing ADMIN_EMAIL")
		return nil, ErrMissingAdminEmail
	}
	if from == "" {
		logging.L().Warn("[quote][notify] missing NOTIFY_FROM")
		return nil, ErrMissingSender
	}

	n := &SESNotifier{
		client:   client,
		from:     from,
		admin:    admin,
		renderer: NewTemplateRenderer(cfg.SiteURL),
		mockMode: isNotificationMockEnabled(cfg.Mock),
		now:      time.Now,
	}
	if n.mockMode {
		logging.L().Info("[quote][notify] mock mode enabled")
	} else if client == nil {
		return nil, ErrNotifierNotConfigured
	}
	return n, nil
}

func (n *SESNotifier) NotifyQuote(ctx context.Context, q entities.Quote) error {
	msg, err := n.renderer.RenderQuote(q)
	if err != nil {
		return err
	}
	return n.send(ctx, msg, q.Contact.Email, q.ID)
}

func (n *SESNotifier) SendTest(ctx context.Context) error {
	msg, err := n.renderer.RenderTest(n.now())
	if err != nil {
		return err
	}
	return n.send(ctx, msg, "", "test")
}

func (n *SESNotifier) send(ctx context.Context, msg Rendered, replyTo, ref string) error {
	fields := logrus.Fields{
		"ref":     ref,
		"to":      logging.RedactEmail(n.admin),
		"subject": msg.Subject,
	}

	if n.mockMode {
		fields["text_len"] = len(msg.Text)
		fields["html_len"] = len(msg.HTML)
		logging.L().WithFields(fields).Info("[quote][notify] mock send")
		return nil
	}
	if n.client == nil {
		return ErrNotifierNotConfigured
	}

	body := &types.Body{
		Text: &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")},
	}
	if msg.HTML != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")}
	}
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.from),
		Destination:      &types.Destination{ToAddresses: []string{n.admin}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body:    body,
			},
		},
	}
	if replyTo = strings.TrimSpace(replyTo); replyTo != "" {
		input.ReplyToAddresses = []string{replyTo}
	}

	out, err := n.client.SendEmail(ctx, input)
	if err != nil {
		fields["err"] = err
		logging.L().WithFields(fields).Error("[quote][notify] ses send failed")
		return err
	}
	fields["message_id"] = aws.ToString(out.MessageId)
	logging.L().WithFields(fields).Info("[quote][notify] ses send success")
	return nil
}

func isNotificationMockEnabled(configured bool) bool {
	if configured {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFICATION_MOCK"))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
