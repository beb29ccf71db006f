package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/event"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	userModel "hotel/internal/domains/user/model"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	msgBookingNotFound  = "booking not found"
	msgRoomNotFound     = "room not found"
	msgUserNotFound     = "user not found"
	msgRoomNotAvailable = "room is not available for the selected dates"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByRoom(ctx context.Context, roomID string, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	IsAvailable(ctx context.Context, roomID string, period model.Period, excludeBookingID string) (bool, error)
	CheckAvailability(ctx context.Context, roomID string, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	roomRepo   roomRepo.Room
	userRepo   userRepo.User
	transactor gRepo.Transactor
	publisher  event.Publisher
	cfg        *config.Config
	cache      cache.RedisCache
	fence      *cache.Fence
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	userRepo userRepo.User,
	transactor gRepo.Transactor,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	fence *cache.Fence,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		userRepo:   userRepo,
		transactor: transactor,
		publisher:  publisher,
		cfg:        cfg,
		cache:      cache,
		fence:      fence,
		otel:       otel,
	}
}

// Create books a room for a user. The room row stays locked from the availability check
// until the insert commits, so two concurrent requests for the same room are serialized.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	period, err := req.Period()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	var booking model.Booking

	err = s.transactor.WithTransaction(ctx, func(sqltx *sqlx.Tx) error {
		room, err := s.roomRepo.LockTx(ctx, sqltx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
		}

		user, err := s.userRepo.GetTx(ctx, sqltx, shared.FilterByID(req.UserID, userModel.FieldID, userModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		if user.ID == constant.Empty {
			return failure.NotFound(msgUserNotFound) // nolint:wrapcheck
		}

		available, err := s.isAvailableTx(ctx, sqltx, room.ID, period, constant.Empty)
		if err != nil {
			return err
		}

		if !available {
			return failure.Conflict(msgRoomNotAvailable) // nolint:wrapcheck
		}

		booking = req.ToModel(period, actor)
		booking.AttachRoom(room)
		booking.AttachUser(user)

		return s.repo.InsertTx(ctx, sqltx, booking) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("room", req.RoomID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	s.afterWrite(ctx, event.TypeCreated, res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheKeyBookingGets, req, filter)
	generation := s.fence.Generation()

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.saveCache(ctx, cacheKey, res, generation)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheKeyBookingCount, req, filter)
	generation := s.fence.Generation()

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	s.saveCache(ctx, cacheKey, res, generation)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CacheKeyBookingGet, id)
	generation := s.fence.Generation()

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	res.FromModel(booking)

	s.saveCache(ctx, cacheKey, res, generation)

	return res, nil
}

// GetByRoom lists the bookings of one room ordered by entry date unless another order is requested.
func (s *serviceImpl) GetByRoom(ctx context.Context, roomID string, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureRoomExists(ctx, roomID); err != nil {
		return res, err
	}

	if req.SortBy == constant.Empty {
		req.SortBy = model.FieldEntryDate
		req.SortDir = gDto.SortDirAsc
	}

	filter := shared.FilterByID(roomID, model.FieldRoomID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheKeyRoomBookings, req, filter)
	generation := s.fence.Generation()

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room bookings")

		return res, fmt.Errorf("failed to count room bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room bookings")

		return res, fmt.Errorf("failed to get room bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.saveCache(ctx, cacheKey, res, generation)

	return res, nil
}

// Update moves a booking to the requested room and period. The booking keeps its user.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var booking model.Booking

	err = s.transactor.WithTransaction(ctx, func(sqltx *sqlx.Tx) error {
		filter := shared.FilterByID(id, model.FieldID, model.TableName)

		current, err := s.repo.LockTx(ctx, sqltx, filter)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
		}

		period, err := req.Period()
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		room, err := s.roomRepo.LockTx(ctx, sqltx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
		}

		available, err := s.isAvailableTx(ctx, sqltx, room.ID, period, current.ID)
		if err != nil {
			return err
		}

		if !available {
			return failure.Conflict(msgRoomNotAvailable) // nolint:wrapcheck
		}

		booking = current
		booking.AttachRoom(room)
		booking.EntryDate = period.EntryDate
		booking.ExitDate = period.ExitDate
		booking.ModifiedAt = timezone.Now()
		booking.ModifiedBy = actor

		return s.repo.UpdateTx(ctx, sqltx, map[string]any{ //nolint:wrapcheck
			model.FieldRoomID:        booking.RoomID,
			model.FieldEntryDate:     booking.EntryDate,
			model.FieldExitDate:      booking.ExitDate,
			constant.FieldModifiedAt: booking.ModifiedAt,
			constant.FieldModifiedBy: booking.ModifiedBy,
		}, filter)
	})
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	res.FromModel(booking)

	s.afterWrite(ctx, event.TypeUpdated, res)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	s.afterWrite(ctx, event.TypeDeleted, res)

	return nil
}

func (s *serviceImpl) ensureRoomExists(ctx context.Context, roomID string) error {
	exist, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any, generation uint64) {
	if _, err := s.fence.Save(ctx, s.cache, key, value, s.cfg.Cache.TTL, generation); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save bookings to cache")
	}
}

// afterWrite drops every cached booking view before returning, then publishes the
// lifecycle event in the background.
func (s *serviceImpl) afterWrite(ctx context.Context, eventType string, res dto.BookingResponse) {
	c := context.WithoutCancel(ctx)

	s.fence.Invalidate(func() {
		if err := s.cache.Delete(c, shared.BuildCacheKey(constant.CacheKeyBookingGet, res.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, constant.CacheKeyBookingGets)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyBookingCount)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyRoomBookings)
	})

	go func() {
		if err := s.publisher.Publish(c, eventType, res); err != nil {
			logger.FromContext(c).Error().Err(err).Str("event", eventType).Str("booking_id", res.ID).Msg("failed to publish booking event")
		}
	}()
}
