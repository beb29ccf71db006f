package room_test

import (
	"bytes"
	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	bookingDto "hotel/internal/domains/booking/model/dto"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/handlers/room"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*roomMocks.MockRoomService, *bookingMocks.MockBookingService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := roomMocks.NewMockRoomService(ctrl)
	mockBookingService := bookingMocks.NewMockBookingService(ctrl)

	handler := room.New(mockService, mockBookingService, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, mockBookingService, router
}

func TestHandler_CreateRoom(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *roomMocks.MockRoomService)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"number":"101","room_type":"STANDARD","price_per_night":100}`,
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.RoomResponse{RoomDetail: dto.RoomDetail{ID: "room-1", Number: "101"}}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown room type",
			body:       `{"number":"101","room_type":"SUITE","price_per_night":100}`,
			setupMock:  func(_ *roomMocks.MockRoomService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing price",
			body:       `{"number":"101","room_type":"STANDARD"}`,
			setupMock:  func(_ *roomMocks.MockRoomService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate number",
			body: `{"number":"101","room_type":"DELUXE","price_per_night":0}`,
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.RoomResponse{}, failure.Conflict("room number already exists"))
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, _, router := newRouter(t)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/rooms", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "/rooms/room-1", rec.Header().Get(constant.RequestHeaderLocation))
			}
		})
	}
}

func TestHandler_GetRooms(t *testing.T) {
	mockService, _, router := newRouter(t)

	mockService.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Any()).
		Return(dto.GetRoomsResponse{Rooms: []dto.RoomResponse{{}}, TotalData: 1, TotalPage: 1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/rooms?room_type=DELUXE", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_page":1`)
}

func TestHandler_UpdateRoom(t *testing.T) {
	mockService, _, router := newRouter(t)

	mockService.EXPECT().Update(gomock.Any(), gomock.Any(), "room-1").
		Return(dto.RoomResponse{}, failure.NotFound("room not found"))

	body := `{"number":"102","room_type":"DELUXE","price_per_night":200}`
	req := httptest.NewRequest(http.MethodPut, "/rooms/room-1", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "room not found")
}

func TestHandler_DeleteRoom(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "has bookings", err: failure.Conflict("room has bookings"), wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, _, router := newRouter(t)
			mockService.EXPECT().Delete(gomock.Any(), "room-1").Return(tt.err)

			req := httptest.NewRequest(http.MethodDelete, "/rooms/room-1", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_GetRoomBookings(t *testing.T) {
	_, mockBookingService, router := newRouter(t)

	mockBookingService.EXPECT().GetByRoom(gomock.Any(), "room-1", gDto.QueryParams{Limit: 20}).
		Return(bookingDto.GetBookingsResponse{TotalData: 2, TotalPage: 1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/rooms/room-1/bookings?limit=20", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_data":2`)
}

func TestHandler_GetRoomAvailability(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMock  func(svc *bookingMocks.MockBookingService)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "available",
			query: "?entry_date=2025-08-06&exit_date=2025-08-10",
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					CheckAvailability(gomock.Any(), "room-1", bookingDto.AvailabilityRequest{EntryDate: "2025-08-06", ExitDate: "2025-08-10"}).
					Return(bookingDto.AvailabilityResponse{RoomID: "room-1", EntryDate: "2025-08-06", ExitDate: "2025-08-10", Available: true}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"available":true`,
		},
		{
			name:       "missing exit date",
			query:      "?entry_date=2025-08-06",
			setupMock:  func(_ *bookingMocks.MockBookingService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "exit_date",
		},
		{
			name:  "exit before entry",
			query: "?entry_date=2025-08-10&exit_date=2025-08-06",
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().CheckAvailability(gomock.Any(), "room-1", gomock.Any()).
					Return(bookingDto.AvailabilityResponse{}, failure.BadRequestFromString("exit date must be after entry date"))
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockBookingService, router := newRouter(t)
			tt.setupMock(mockBookingService)

			req := httptest.NewRequest(http.MethodGet, "/rooms/room-1/availability"+tt.query, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func imageRequest(t *testing.T, contentType string, size int) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="room.png"`)
	header.Set(constant.RequestHeaderContentType, contentType)

	part, err := writer.CreatePart(header)
	assert.NoError(t, err)

	_, err = part.Write(bytes.Repeat([]byte{0x1}, size))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/rooms/room-1/image", body)
	req.Header.Set(constant.RequestHeaderContentType, writer.FormDataContentType())

	return req
}

func TestHandler_UploadRoomImage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int
		setupMock   func(svc *roomMocks.MockRoomService)
		wantStatus  int
	}{
		{
			name:        "uploaded",
			contentType: "image/png",
			size:        512,
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().UploadImage(gomock.Any(), gomock.Any(), "room-1").
					Return(dto.RoomResponse{RoomDetail: dto.RoomDetail{ID: "room-1", Image: "https://cdn.example.com/room/a.png"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "unsupported type",
			contentType: "application/pdf",
			size:        512,
			setupMock:   func(_ *roomMocks.MockRoomService) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "too large",
			contentType: "image/jpeg",
			size:        2 << 20,
			setupMock:   func(_ *roomMocks.MockRoomService) {},
			wantStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, _, router := newRouter(t)
			tt.setupMock(mockService)

			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, imageRequest(t, tt.contentType, tt.size))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_UploadRoomImage_NotMultipart(t *testing.T) {
	_, _, router := newRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/rooms/room-1/image", strings.NewReader(`{}`))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
