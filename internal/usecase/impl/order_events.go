package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

const eventPublishTimeout = 5 * time.Second

// publishOrderEvent emits an order event after the owning transaction committed.
// Failures are logged and never surface to the caller.
func publishOrderEvent(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	eventType string,
	order *entity.Order,
	previous entity.OrderStatus,
) {
	if publisher == nil {
		return
	}

	event := &service.OrderEvent{
		Type:           eventType,
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:        order.ID.String(),
		OrderNumber:    order.OrderNumber,
		UserID:         order.UserID.String(),
		Status:         string(order.Status),
		PreviousStatus: string(previous),
		PaymentStatus:  string(order.PaymentStatus),
		Total:          order.Total.StringFixed(2),
		OccurredAt:     time.Now().UTC(),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	if err := publisher.PublishOrderEvent(publishCtx, event); err != nil {
		logger.Warn("Failed to publish order event",
			slog.String("type", eventType),
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)

		return
	}
	logger.Debug("Order event published", slog.String("type", eventType), slog.Any("orderID", order.ID))
}
