package service_test

import (
	"context"
	"hotel/config"
	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	userMocks "hotel/internal/domains/user/mocks"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/service"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupWithMemory(t *testing.T) (*userMocks.MockUser, *bookingMocks.MockBooking, *cacheMocks.Memory, service.User) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	memory := cacheMocks.NewMemory()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return mockRepo, mockBookingRepo, memory, service.New(mockRepo, mockBookingRepo, cfg, memory, cache.NewFence(), mocks.NewOtel())
}

func TestUserService_GetAfterDelete(t *testing.T) {
	repo, bookingRepo, memory, svc := setupWithMemory(t)

	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingUser(), nil),
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil),
	)
	bookingRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.True(t, memory.Has("user:get:user-1"))

	require.NoError(t, svc.Delete(context.Background(), "user-1"))

	_, err = svc.Get(context.Background(), "user-1")

	assert.True(t, failure.HasCode(err, http.StatusNotFound))
}

func TestUserService_GetAfterUpdate(t *testing.T) {
	repo, _, memory, svc := setupWithMemory(t)

	renamed := existingUser()
	renamed.LastName = "Souza"
	renamed.Email = "ana.souza@example.com"

	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingUser(), nil).Times(2),
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil),
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(renamed, nil),
	)

	before, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "Ana Lima", before.FullName)

	_, err = svc.Update(context.Background(), dto.UpdateUserRequest{
		FirstName:   "Ana",
		LastName:    "Souza",
		Address:     "Rua das Flores 10",
		Email:       "ana.souza@example.com",
		PhoneNumber: "+55 11 5555-0000",
	}, "user-1")
	require.NoError(t, err)
	assert.False(t, memory.Has("user:get:user-1"))

	after, err := svc.Get(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "Ana Souza", after.FullName)
	assert.Equal(t, "ana.souza@example.com", after.Email)
}

func TestUserService_CreateThenList(t *testing.T) {
	repo, _, _, svc := setupWithMemory(t)

	created := existingUser()

	gomock.InOrder(
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil),
		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil),
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil),
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil),
		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.User{created}, nil),
	)

	empty, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Equal(t, 0, empty.TotalData)

	_, err = svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	listed, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, listed.TotalData)
	assert.Len(t, listed.Users, 1)
}
