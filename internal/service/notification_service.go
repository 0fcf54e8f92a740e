package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/class-marketplace/internal/config"
	"github.com/spec-kit/class-marketplace/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventCheckoutCompleted, n.handleCheckoutCompleted)
	n.dispatcher.Subscribe(events.EventClassCreated, n.handleClassCreated)
	n.dispatcher.Subscribe(events.EventUserPromoted, n.handleUserPromoted)
}

func (n *NotificationService) handleCheckoutCompleted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.CheckoutCompletedPayload)
	if ok && payload.Partial {
		// Payment committed but cart cleanup incomplete; an operator
		// has to follow up, so make it visible.
		n.logger.Warn("CheckoutCompleted with partial reconciliation",
			zap.String("payment_id", payload.PaymentID),
			zap.String("payer_email", payload.PayerEmail),
			zap.Int64("removed_count", payload.RemovedCount),
			zap.Strings("cart_item_ids", payload.CartItemIDs))
	} else {
		n.logger.Info("CheckoutCompleted", zap.String("actor", event.Actor), zap.Any("payload", event.Payload))
	}
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleClassCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ClassCreated", zap.String("actor", event.Actor), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleUserPromoted(ctx context.Context, event events.Event) error {
	n.logger.Info("UserPromoted", zap.String("actor", event.Actor), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
