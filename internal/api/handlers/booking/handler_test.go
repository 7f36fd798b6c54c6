package booking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rufomartins/talent-nexus-notifier/internal/api/dto"
	"github.com/rufomartins/talent-nexus-notifier/internal/availability"
	mocks "github.com/rufomartins/talent-nexus-notifier/internal/mocks/api/handlers/booking"
	"github.com/rufomartins/talent-nexus-notifier/internal/model"
	bookingsvc "github.com/rufomartins/talent-nexus-notifier/internal/service/booking"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockbookingService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockbookingService(ctrl)
	handler := NewHandler(mockService, validator.New())
	return handler, mockService
}

func postJSON(t *testing.T, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

func TestHandler_Check_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	talentID := uuid.New()
	reqBody := dto.CheckAvailabilityRequest{
		TalentID:  talentID.String(),
		StartDate: "2024-03-01",
		EndDate:   "2024-03-10",
	}

	c, w := postJSON(t, "/bookings/check", reqBody)

	rng, _ := availability.ParseRange(reqBody.StartDate, reqBody.EndDate)

	mockService.EXPECT().
		CheckAvailability(gomock.Any(), talentID, rng).
		Return(bookingsvc.AvailabilityResult{IsAvailable: true}, nil)

	handler.Check(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Check_MalformedDate(t *testing.T) {
	handler, _ := setupHandler(t)

	reqBody := dto.CheckAvailabilityRequest{
		TalentID:  uuid.New().String(),
		StartDate: "03/01/2024",
		EndDate:   "2024-03-10",
	}

	c, w := postJSON(t, "/bookings/check", reqBody)

	handler.Check(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	talentID := uuid.New()
	bookingID := uuid.New()
	reqBody := dto.CreateBookingRequest{
		TalentID:  talentID.String(),
		StartDate: "2024-03-01",
		EndDate:   "2024-03-10",
	}

	c, w := postJSON(t, "/bookings", reqBody)

	mockService.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any(), false).
		Return(bookingID, nil, nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_ConflictReturns409WithConflicts(t *testing.T) {
	handler, mockService := setupHandler(t)

	talentID := uuid.New()
	reqBody := dto.CreateBookingRequest{
		TalentID:  talentID.String(),
		StartDate: "2024-03-05",
		EndDate:   "2024-03-12",
	}

	conflicts := []model.Booking{{
		ID:        uuid.New(),
		TalentID:  talentID,
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:    model.BookingStatusConfirmed,
	}}

	c, w := postJSON(t, "/bookings", reqBody)

	mockService.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any(), false).
		Return(uuid.Nil, conflicts, bookingsvc.ErrBookingConflict)

	handler.Create(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), conflicts[0].ID.String())
}

func TestHandler_Create_OverrideProceeds(t *testing.T) {
	handler, mockService := setupHandler(t)

	talentID := uuid.New()
	bookingID := uuid.New()
	reqBody := dto.CreateBookingRequest{
		TalentID:  talentID.String(),
		StartDate: "2024-03-05",
		EndDate:   "2024-03-12",
		Override:  true,
	}

	c, w := postJSON(t, "/bookings", reqBody)

	mockService.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any(), true).
		Return(bookingID, nil, nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_EndBeforeStart(t *testing.T) {
	handler, _ := setupHandler(t)

	reqBody := dto.CreateBookingRequest{
		TalentID:  uuid.New().String(),
		StartDate: "2024-03-10",
		EndDate:   "2024-03-01",
	}

	c, w := postJSON(t, "/bookings", reqBody)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
