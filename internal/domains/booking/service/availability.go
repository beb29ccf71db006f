package service

import (
	"context"
	"fmt"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// IsAvailable reports whether roomID has no booking overlapping period, ignoring
// excludeBookingID. It does not check that the room exists.
func (s *serviceImpl) IsAvailable(ctx context.Context, roomID string, period model.Period, excludeBookingID string) (available bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.FindOverlapping(ctx, roomID, period)
	if err != nil {
		log.Error().Err(err).Str("room", roomID).Msg("failed to check room availability")

		return false, fmt.Errorf("failed to check room availability: %w", err)
	}

	return len(conflicting(bookings, period, excludeBookingID)) == 0, nil
}

func (s *serviceImpl) isAvailableTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, period model.Period, excludeBookingID string) (bool, error) {
	bookings, err := s.repo.FindOverlappingTx(ctx, sqltx, roomID, period)
	if err != nil {
		return false, fmt.Errorf("failed to check room availability: %w", err)
	}

	return len(conflicting(bookings, period, excludeBookingID)) == 0, nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, roomID string, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	period, err := req.Period()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.ensureRoomExists(ctx, roomID); err != nil {
		return res, err
	}

	available, err := s.IsAvailable(ctx, roomID, period, req.ExcludeBookingID)
	if err != nil {
		return res, err
	}

	return dto.AvailabilityResponse{
		RoomID:    roomID,
		EntryDate: period.EntryDate.String(),
		ExitDate:  period.ExitDate.String(),
		Available: available,
	}, nil
}

// conflicting keeps the bookings that really overlap period, other than excludeBookingID.
func conflicting(bookings []model.Booking, period model.Period, excludeBookingID string) []model.Booking {
	var result []model.Booking

	for _, booking := range bookings {
		if excludeBookingID != constant.Empty && booking.ID == excludeBookingID {
			continue
		}

		if booking.Period().Overlaps(period) {
			result = append(result, booking)
		}
	}

	return result
}
