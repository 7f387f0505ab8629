package impl

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type emailTemplate struct {
	subject string
	body    *template.Template
}

var emailTemplates = map[entity.EventType]emailTemplate{
	entity.EventOrderPlaced: {
		subject: "We received your order",
		body: template.Must(template.New("order_placed").Parse(
			`<p>Hi {{.Name}},</p><p>Thanks for your order <strong>{{.Data.order_id}}</strong>. ` +
				`Your total is {{.Currency}} {{.Data.total}}. Complete payment to confirm it.</p>`)),
	},
	entity.EventOrderStatusChanged: {
		subject: "Your order was updated",
		body: template.Must(template.New("order_status_changed").Parse(
			`<p>Hi {{.Name}},</p><p>Order <strong>{{.Data.order_id}}</strong> is now <strong>{{.Data.status}}</strong>.</p>`)),
	},
	entity.EventPaymentSucceeded: {
		subject: "Payment received",
		body: template.Must(template.New("payment_succeeded").Parse(
			`<p>Hi {{.Name}},</p><p>We received {{.Currency}} {{.Data.amount}} for order ` +
				`<strong>{{.Data.order_id}}</strong> (reference {{.Data.reference}}).</p>`)),
	},
	entity.EventPaymentFailed: {
		subject: "Payment failed",
		body: template.Must(template.New("payment_failed").Parse(
			`<p>Hi {{.Name}},</p><p>Your payment {{.Data.reference}} did not go through. ` +
				`Your order is still waiting and you can try again.</p>`)),
	},
	entity.EventUserTierUpgraded: {
		subject: "You are now a regular customer",
		body: template.Must(template.New("user_tier_upgraded").Parse(
			`<p>Hi {{.Name}},</p><p>You have spent {{.Currency}} {{.Data.total_spent}} with us. ` +
				`Thank you for being a regular!</p>`)),
	},
}

type notificationService struct {
	sender   service.EmailSender
	currency string
	logger   *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Sender service.EmailSender
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		sender:   params.Sender,
		currency: platformCurrency(params.Config),
		logger:   params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleEvent renders and sends the email for event. Send errors are returned
// unchanged so callers can tell rejected messages from retryable failures.
func (srv *notificationService) HandleEvent(ctx context.Context, event *entity.DomainEvent) error {
	logger := srv.log(ctx).With(slog.String("eventID", event.ID.String()), slog.String("eventType", string(event.Type)))

	tmpl, ok := emailTemplates[event.Type]
	if !ok {
		logger.Debug("No email for event type")

		return nil
	}
	if event.Recipient == "" {
		logger.Warn("Event has no recipient, skipping email")

		return nil
	}

	name := event.RecipientName
	if name == "" {
		name = "there"
	}

	var body bytes.Buffer
	err := tmpl.body.Execute(&body, map[string]any{
		"Name":     name,
		"Currency": srv.currency,
		"Data":     event.Data,
	})
	if err != nil {
		return errors.Wrap(err, "failed to render email")
	}

	msg := &service.EmailMessage{
		To:      event.Recipient,
		Subject: tmpl.subject,
		HTML:    body.String(),
	}
	if err := srv.sender.Send(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to send %s email", event.Type)
	}

	logger.Info("Notification email sent", slog.String("subject", msg.Subject))

	return nil
}

func platformCurrency(cfg *config.Config) string {
	if cfg == nil || cfg.Platform == nil || cfg.Platform.Currency == "" {
		return "NGN"
	}

	return cfg.Platform.Currency
}
