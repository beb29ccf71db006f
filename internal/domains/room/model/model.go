package model

import "hotel/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldNumber        = "number"
	FieldRoomType      = "room_type"
	FieldPricePerNight = "price_per_night"
	FieldImage         = "image"
)

type RoomType string

const (
	RoomTypeStandard RoomType = "STANDARD"
	RoomTypeDeluxe   RoomType = "DELUXE"
)

var roomTypeDescriptions = map[RoomType]string{
	RoomTypeStandard: "Room with all the basic needs.",
	RoomTypeDeluxe:   "Room with beautiful views and service VIP",
}

func (t RoomType) Valid() bool {
	_, ok := roomTypeDescriptions[t]

	return ok
}

func (t RoomType) Description() string {
	return roomTypeDescriptions[t]
}

type Room struct {
	ID            string   `db:"id"`
	Number        string   `db:"number"`
	RoomType      RoomType `db:"room_type"`
	PricePerNight float64  `db:"price_per_night"`
	Image         string   `db:"image"`
	model.Metadata
}
