package model

import "hotel/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID          = "id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldAddress     = "address"
	FieldPhoneNumber = "phone_number"
)

type User struct {
	ID          string `db:"id"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	Email       string `db:"email"`
	Address     string `db:"address"`
	PhoneNumber string `db:"phone_number"`
	model.Metadata
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
