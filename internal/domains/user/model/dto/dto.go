package dto

import (
	"hotel/internal/domains/user/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	FirstName   string `json:"first_name"   validate:"required,max=100"`
	LastName    string `json:"last_name"    validate:"required,max=100"`
	Address     string `json:"address"      validate:"required,max=255"`
	Email       string `json:"email"        validate:"required,email,max=255"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
}

func (r *CreateUserRequest) ToModel(username string) model.User {
	now := timezone.Now()

	return model.User{
		ID:          uuid.NewString(),
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       NormalizeEmail(r.Email),
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

// UpdateUserRequest replaces all five user fields.
type UpdateUserRequest struct {
	FirstName   string `json:"first_name"   validate:"required,max=100"`
	LastName    string `json:"last_name"    validate:"required,max=100"`
	Address     string `json:"address"      validate:"required,max=255"`
	Email       string `json:"email"        validate:"required,email,max=255"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
}

func (r *UpdateUserRequest) Apply(user model.User, username string) model.User {
	user.FirstName = r.FirstName
	user.LastName = r.LastName
	user.Address = r.Address
	user.Email = NormalizeEmail(r.Email)
	user.PhoneNumber = r.PhoneNumber
	user.ModifiedAt = timezone.Now()
	user.ModifiedBy = username

	return user
}

// NormalizeEmail lowercases and trims an address so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserDetail is the user as embedded in other resources.
type UserDetail struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

func (r *UserDetail) FromModel(model model.User) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.FullName = model.FullName()
	r.Email = model.Email
	r.Address = model.Address
	r.PhoneNumber = model.PhoneNumber
}

type UserResponse struct {
	UserDetail
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.UserDetail.FromModel(model)
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
