package event_test

import (
	"context"
	"encoding/json"
	"errors"
	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/event"
	"hotel/internal/domains/booking/model/dto"
	roomDto "hotel/internal/domains/room/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Enable = enable
	cfg.Kafka.Topic.BookingEvents = "hotel.booking.events"

	return cfg
}

func booking() dto.BookingResponse {
	return dto.BookingResponse{
		ID:        "booking-1",
		Room:      roomDto.RoomDetail{ID: "room-1", Number: "101"},
		EntryDate: "2025-08-01",
		ExitDate:  "2025-08-05",
	}
}

func TestPublisher_Publish(t *testing.T) {
	tests := []struct {
		name      string
		enable    bool
		setupMock func(client *kafkaMocks.MockClient)
		wantErr   bool
	}{
		{
			name:      "disabled",
			enable:    false,
			setupMock: func(_ *kafkaMocks.MockClient) {},
		},
		{
			name:   "keyed by room",
			enable: true,
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().
					SendMessages(gomock.Any(), "hotel.booking.events", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
						assert.Len(t, messages, 1)
						assert.Equal(t, "room-1", messages[0].Key)
						assert.Equal(t, event.TypeCreated, messages[0].Headers["event_type"])

						msg, err := messages[0].ToKafkaMessage("hotel.booking.events")
						assert.NoError(t, err)

						var payload event.Event
						assert.NoError(t, json.Unmarshal(msg.Value, &payload))
						assert.Equal(t, event.TypeCreated, payload.Type)
						assert.NotEmpty(t, payload.ID)
						assert.Equal(t, "booking-1", payload.Booking.ID)
						assert.Equal(t, "2025-08-01", payload.Booking.EntryDate)

						return nil
					})
			},
		},
		{
			name:   "broker failure",
			enable: true,
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := kafkaMocks.NewMockClient(ctrl)
			tt.setupMock(client)

			publisher := event.New(client, newConfig(tt.enable), mocks.NewOtel())

			err := publisher.Publish(context.Background(), event.TypeCreated, booking())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
