package dto_test

import (
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequest_ToModel(t *testing.T) {
	req := dto.CreateUserRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Address:     "1 Analytical St",
		Email:       "  Ada@Example.COM ",
		PhoneNumber: "555-0100",
	}

	user := req.ToModel("staff-1")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "staff-1", user.CreatedBy)
	assert.Equal(t, "staff-1", user.ModifiedBy)
	assert.Equal(t, user.CreatedAt, user.ModifiedAt)
}

func TestUpdateUserRequest_Apply(t *testing.T) {
	current := model.User{ID: "user-1", FirstName: "Old", Email: "old@example.com"}
	current.CreatedBy = "creator"

	req := dto.UpdateUserRequest{
		FirstName:   "Grace",
		LastName:    "Hopper",
		Address:     "2 Compiler Rd",
		Email:       "Grace@Example.com",
		PhoneNumber: "555-0101",
	}

	updated := req.Apply(current, "staff-2")

	assert.Equal(t, "user-1", updated.ID)
	assert.Equal(t, "Grace", updated.FirstName)
	assert.Equal(t, "grace@example.com", updated.Email)
	assert.Equal(t, "creator", updated.CreatedBy)
	assert.Equal(t, "staff-2", updated.ModifiedBy)
	assert.False(t, updated.ModifiedAt.IsZero())
}

func TestGetUsersResponse_FromModels(t *testing.T) {
	users := []model.User{
		{ID: "user-1", FirstName: "Ada", LastName: "Lovelace"},
		{ID: "user-2", FirstName: "Grace", LastName: "Hopper"},
	}

	var res dto.GetUsersResponse
	res.FromModels(users, 5, 2)

	assert.Equal(t, 5, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Len(t, res.Users, 2)
	assert.Equal(t, "Ada Lovelace", res.Users[0].FullName)
}
