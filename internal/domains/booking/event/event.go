package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	TypeCreated = "booking.created"
	TypeUpdated = "booking.updated"
	TypeDeleted = "booking.deleted"

	headerEventType = "event_type"
)

// Event is the payload written to the booking events topic.
type Event struct {
	ID         string              `json:"id"`
	Type       string              `json:"type"`
	OccurredAt time.Time           `json:"occurred_at"`
	Booking    dto.BookingResponse `json:"booking"`
}

type Publisher interface {
	Publish(ctx context.Context, eventType string, booking dto.BookingResponse) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// Publish is a no-op while KAFKA_ENABLE is false. Messages are keyed by room id so the
// events of one room stay ordered on a single partition.
func (p *publisherImpl) Publish(ctx context.Context, eventType string, booking dto.BookingResponse) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !p.cfg.Kafka.Enable {
		return nil
	}

	scope.SetAttribute(headerEventType, eventType)

	message := kafka.Message{
		Key: booking.Room.ID,
		Value: Event{
			ID:         uuid.NewString(),
			Type:       eventType,
			OccurredAt: timezone.Now(),
			Booking:    booking,
		},
		Headers: map[string]string{headerEventType: eventType},
	}

	if err = p.client.SendMessages(ctx, p.cfg.Kafka.Topic.BookingEvents, message); err != nil {
		log.Error().Err(err).Str("event", eventType).Str("booking", booking.ID).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}
