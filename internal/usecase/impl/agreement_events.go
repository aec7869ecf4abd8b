package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bvs/internal/delivery/context"
	"bvs/internal/domain/service"
)

// publishAgreementEvent stamps the request ID and time onto the event and hands it to the publisher.
// The mutation has already been committed, so a failed publish is only logged.
func publishAgreementEvent(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, event *service.AgreementEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := publisher.PublishAgreementEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish agreement event",
			slog.String("eventType", string(event.EventType)),
			slog.String("agreementID", event.AgreementID),
			slog.Any("error", err),
		)
	}
}
