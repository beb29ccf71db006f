package service_test

import (
	"context"
	"hotel/config"
	"hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMemoryService(t *testing.T) (*roomMocks.MockRoom, *bookingMocks.MockBooking, *cacheMocks.Memory, service.Room) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := roomMocks.NewMockRoom(ctrl)
	bookingRepo := bookingMocks.NewMockBooking(ctrl)
	memory := cacheMocks.NewMemory()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return repo, bookingRepo, memory, service.New(repo, bookingRepo, cfg, memory, cache.NewFence(), mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))
}

func TestRoomService_GetAfterDelete(t *testing.T) {
	repo, bookingRepo, memory, svc := newMemoryService(t)

	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room101(), nil),
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil),
	)
	bookingRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := svc.Get(context.Background(), "room-1")
	require.NoError(t, err)
	require.True(t, memory.Has("room:get:room-1"))

	require.NoError(t, svc.Delete(userContext(), "room-1"))

	_, err = svc.Get(context.Background(), "room-1")

	assert.True(t, failure.HasCode(err, http.StatusNotFound))
}

func TestRoomService_GetAfterUpdate(t *testing.T) {
	repo, _, memory, svc := newMemoryService(t)

	renumbered := room101()
	renumbered.Number = "102"
	renumbered.RoomType = model.RoomTypeDeluxe
	renumbered.PricePerNight = 200

	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room101(), nil).Times(2),
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil),
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(renumbered, nil),
	)

	before, err := svc.Get(context.Background(), "room-1")
	require.NoError(t, err)
	require.Equal(t, "101", before.Number)

	_, err = svc.Update(userContext(), dto.UpdateRoomRequest{Number: "102", RoomType: "DELUXE", PricePerNight: price(200)}, "room-1")
	require.NoError(t, err)
	assert.False(t, memory.Has("room:get:room-1"))

	after, err := svc.Get(context.Background(), "room-1")

	assert.NoError(t, err)
	assert.Equal(t, "102", after.Number)
	assert.Equal(t, "DELUXE", after.RoomType.Name)
	assert.Equal(t, dto.Price(200), after.PricePerNight)
}

func TestRoomService_CreateClearsListCaches(t *testing.T) {
	repo, _, memory, svc := newMemoryService(t)

	ctx := context.Background()
	for _, key := range []string{"room:gets:1:10", "room:count:1:10", "booking:get:booking-1"} {
		require.NoError(t, memory.Save(ctx, key, 1, 60))
	}

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Create(userContext(), dto.CreateRoomRequest{Number: "304", RoomType: "DELUXE", PricePerNight: price(150)})
	require.NoError(t, err)

	assert.False(t, memory.Has("room:gets:1:10"))
	assert.False(t, memory.Has("room:count:1:10"))
	assert.True(t, memory.Has("booking:get:booking-1"))
}
