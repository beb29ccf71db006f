package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"mime/multipart"
	"strconv"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number        string   `json:"number"          validate:"required,max=255"`
	RoomType      string   `json:"room_type"       validate:"required,oneof=STANDARD DELUXE"`
	PricePerNight *float64 `json:"price_per_night" validate:"required,gte=0"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	now := timezone.Now()

	return model.Room{
		ID:            uuid.NewString(),
		Number:        c.Number,
		RoomType:      model.RoomType(c.RoomType),
		PricePerNight: *c.PricePerNight,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateRoomRequest replaces every mutable field of a room.
type UpdateRoomRequest struct {
	Number        string   `db:"number"          json:"number"          validate:"required,max=255"`
	RoomType      string   `db:"room_type"       json:"room_type"       validate:"required,oneof=STANDARD DELUXE"`
	PricePerNight *float64 `db:"price_per_night" json:"price_per_night" validate:"required,gte=0"`
}

// Apply returns room with the request's fields and the modification audit applied.
func (u *UpdateRoomRequest) Apply(room model.Room, user string) model.Room {
	room.Number = u.Number
	room.RoomType = model.RoomType(u.RoomType)
	room.PricePerNight = *u.PricePerNight
	room.ModifiedAt = timezone.Now()
	room.ModifiedBy = user

	return room
}

type UploadRoomImageRequest struct {
	Image     *multipart.FileHeader `validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
}

// Price is a nightly rate. It is encoded as a JSON number with two decimals.
type Price float64

func (p Price) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(p), 'f', 2, 64), nil
}

type RoomTypeResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RoomDetail is the room as embedded in other resources.
type RoomDetail struct {
	ID            string           `json:"id"`
	Number        string           `json:"number"`
	RoomType      RoomTypeResponse `json:"room_type"`
	PricePerNight Price            `json:"price_per_night"`
	Image         string           `json:"image,omitempty"`
}

func (r *RoomDetail) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.RoomType = RoomTypeResponse{
		Name:        string(model.RoomType),
		Description: model.RoomType.Description(),
	}
	r.PricePerNight = Price(model.PricePerNight)
	r.Image = model.Image
}

type RoomResponse struct {
	RoomDetail
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.RoomDetail.FromModel(model)
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
