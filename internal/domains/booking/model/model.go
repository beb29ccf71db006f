package model

import (
	roomModel "hotel/internal/domains/room/model"
	userModel "hotel/internal/domains/user/model"
	"hotel/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldUserID    = "user_id"
	FieldEntryDate = "entry_date"
	FieldExitDate  = "exit_date"
)

// Booking is a bookings row joined with the room and the user it references.
type Booking struct {
	ID        string `db:"id"`
	RoomID    string `db:"room_id"`
	UserID    string `db:"user_id"`
	EntryDate Date   `db:"entry_date"`
	ExitDate  Date   `db:"exit_date"`

	RoomNumber        string             `column:"number"          db:"room_number"          table:"rooms"`
	RoomType          roomModel.RoomType `column:"room_type"       db:"room_type"            table:"rooms"`
	RoomPricePerNight float64            `column:"price_per_night" db:"room_price_per_night" table:"rooms"`
	RoomImage         string             `column:"image"           db:"room_image"           table:"rooms"`

	UserFirstName   string `column:"first_name"   db:"user_first_name"   table:"users"`
	UserLastName    string `column:"last_name"    db:"user_last_name"    table:"users"`
	UserEmail       string `column:"email"        db:"user_email"        table:"users"`
	UserAddress     string `column:"address"      db:"user_address"      table:"users"`
	UserPhoneNumber string `column:"phone_number" db:"user_phone_number" table:"users"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = bookings.room_id JOIN users ON users.id = bookings.user_id"
}

func (b Booking) Period() Period {
	return Period{EntryDate: b.EntryDate, ExitDate: b.ExitDate}
}

func (b *Booking) AttachRoom(room roomModel.Room) {
	b.RoomID = room.ID
	b.RoomNumber = room.Number
	b.RoomType = room.RoomType
	b.RoomPricePerNight = room.PricePerNight
	b.RoomImage = room.Image
}

func (b *Booking) AttachUser(user userModel.User) {
	b.UserID = user.ID
	b.UserFirstName = user.FirstName
	b.UserLastName = user.LastName
	b.UserEmail = user.Email
	b.UserAddress = user.Address
	b.UserPhoneNumber = user.PhoneNumber
}

func (b Booking) Room() roomModel.Room {
	return roomModel.Room{
		ID:            b.RoomID,
		Number:        b.RoomNumber,
		RoomType:      b.RoomType,
		PricePerNight: b.RoomPricePerNight,
		Image:         b.RoomImage,
	}
}

func (b Booking) User() userModel.User {
	return userModel.User{
		ID:          b.UserID,
		FirstName:   b.UserFirstName,
		LastName:    b.UserLastName,
		Email:       b.UserEmail,
		Address:     b.UserAddress,
		PhoneNumber: b.UserPhoneNumber,
	}
}
