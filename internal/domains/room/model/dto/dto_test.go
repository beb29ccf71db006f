package dto_test

import (
	"encoding/json"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRoomRequest_ToModel(t *testing.T) {
	price := 120.5
	req := dto.CreateRoomRequest{Number: "101", RoomType: "DELUXE", PricePerNight: &price}

	room := req.ToModel("staff-1")

	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "101", room.Number)
	assert.Equal(t, model.RoomTypeDeluxe, room.RoomType)
	assert.InDelta(t, 120.5, room.PricePerNight, 0.001)
	assert.Equal(t, "staff-1", room.CreatedBy)
}

func TestUpdateRoomRequest_Apply(t *testing.T) {
	price := 0.0
	current := model.Room{ID: "room-1", Number: "101", RoomType: model.RoomTypeDeluxe, PricePerNight: 200, Image: "https://cdn/room/a.png"}

	req := dto.UpdateRoomRequest{Number: "102", RoomType: "STANDARD", PricePerNight: &price}

	updated := req.Apply(current, "staff-2")

	assert.Equal(t, "room-1", updated.ID)
	assert.Equal(t, "102", updated.Number)
	assert.Equal(t, model.RoomTypeStandard, updated.RoomType)
	assert.Zero(t, updated.PricePerNight)
	assert.Equal(t, "https://cdn/room/a.png", updated.Image)
	assert.Equal(t, "staff-2", updated.ModifiedBy)
}

func TestRoomDetail_FromModel(t *testing.T) {
	tests := []struct {
		name        string
		roomType    model.RoomType
		description string
	}{
		{name: "standard", roomType: model.RoomTypeStandard, description: "Room with all the basic needs."},
		{name: "deluxe", roomType: model.RoomTypeDeluxe, description: "Room with beautiful views and service VIP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var detail dto.RoomDetail
			detail.FromModel(model.Room{ID: "room-1", Number: "101", RoomType: tt.roomType, PricePerNight: 80})

			assert.Equal(t, string(tt.roomType), detail.RoomType.Name)
			assert.Equal(t, tt.description, detail.RoomType.Description)
		})
	}
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	var res dto.GetRoomsResponse
	res.FromModels([]model.Room{{ID: "room-1"}}, 1, 0)

	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Rooms, 1)
}

func TestRoomResponse_PriceHasTwoDecimals(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected string
	}{
		{name: "whole", price: 150, expected: `"price_per_night":150.00`},
		{name: "fraction", price: 99.5, expected: `"price_per_night":99.50`},
		{name: "free", price: 0, expected: `"price_per_night":0.00`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res dto.RoomResponse
			res.FromModel(model.Room{ID: "room-1", Number: "304", RoomType: model.RoomTypeDeluxe, PricePerNight: tt.price})

			body, err := json.Marshal(res)

			assert.NoError(t, err)
			assert.Contains(t, string(body), tt.expected)

			var decoded dto.RoomResponse
			assert.NoError(t, json.Unmarshal(body, &decoded))
			assert.Equal(t, dto.Price(tt.price), decoded.PricePerNight)
		})
	}
}
