package dto

import (
	"hotel/internal/domains/booking/model"
	roomDto "hotel/internal/domains/room/model/dto"
	userDto "hotel/internal/domains/user/model/dto"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"net/http"

	"github.com/google/uuid"
)

const (
	queryEntryDate        = "entry_date"
	queryExitDate         = "exit_date"
	queryExcludeBookingID = "exclude_booking_id"
)

type CreateBookingRequest struct {
	RoomID    string `json:"room_id"    validate:"required,max=64"`
	UserID    string `json:"user_id"    validate:"required,max=64"`
	EntryDate string `json:"entry_date" validate:"required,dateonly"`
	ExitDate  string `json:"exit_date"  validate:"required,dateonly"`
}

func (c *CreateBookingRequest) Period() (model.Period, error) {
	return model.NewPeriod(c.EntryDate, c.ExitDate)
}

func (c *CreateBookingRequest) ToModel(period model.Period, user string) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:        uuid.NewString(),
		RoomID:    c.RoomID,
		UserID:    c.UserID,
		EntryDate: period.EntryDate,
		ExitDate:  period.ExitDate,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateBookingRequest moves a booking to another room or period. The guest cannot be changed.
type UpdateBookingRequest struct {
	RoomID    string `json:"room_id"    validate:"required,max=64"`
	EntryDate string `json:"entry_date" validate:"required,dateonly"`
	ExitDate  string `json:"exit_date"  validate:"required,dateonly"`
}

func (u *UpdateBookingRequest) Period() (model.Period, error) {
	return model.NewPeriod(u.EntryDate, u.ExitDate)
}

type AvailabilityRequest struct {
	EntryDate        string `json:"entry_date"         validate:"required,dateonly"`
	ExitDate         string `json:"exit_date"          validate:"required,dateonly"`
	ExcludeBookingID string `json:"exclude_booking_id" validate:"omitempty,max=64"`
}

func (a *AvailabilityRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	a.EntryDate = query.Get(queryEntryDate)
	a.ExitDate = query.Get(queryExitDate)
	a.ExcludeBookingID = query.Get(queryExcludeBookingID)
}

func (a *AvailabilityRequest) Period() (model.Period, error) {
	return model.NewPeriod(a.EntryDate, a.ExitDate)
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	EntryDate string `json:"entry_date"`
	ExitDate  string `json:"exit_date"`
	Available bool   `json:"available"`
}

type BookingResponse struct {
	ID        string             `json:"id"`
	Room      roomDto.RoomDetail `json:"room"`
	User      userDto.UserDetail `json:"user"`
	EntryDate string             `json:"entry_date"`
	ExitDate  string             `json:"exit_date"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Room.FromModel(model.Room())
	r.User.FromModel(model.User())
	r.EntryDate = model.EntryDate.String()
	r.ExitDate = model.ExitDate.String()
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
