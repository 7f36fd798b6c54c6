package notification

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/rufomartins/talent-nexus-notifier/internal/config"
	mocks "github.com/rufomartins/talent-nexus-notifier/internal/mocks/api/handlers/notification"
	"github.com/rufomartins/talent-nexus-notifier/internal/model"
	notifrepo "github.com/rufomartins/talent-nexus-notifier/internal/repository/notification"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotificationService, *mocks.MocksubscriptionBroker, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocknotificationService(ctrl)
	mockBroker := mocks.NewMocksubscriptionBroker(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{Attempts: 1}}
	handler := NewHandler(mockService, mockBroker, cfg)
	return handler, mockService, mockBroker, cfg
}

func TestHandler_ListPending_Success(t *testing.T) {
	handler, mockService, _, _ := setupHandler(t)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/notifications/"+userID.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "userID", Value: userID.String()}}

	mockService.EXPECT().
		ListPending(gomock.Any(), userID).
		Return([]model.Notification{{ID: uuid.New(), UserID: userID, Title: "Assignment due soon"}}, nil)

	handler.ListPending(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "Assignment due soon")
}

func TestHandler_ListPending_InvalidUserID(t *testing.T) {
	handler, _, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/notifications/not-a-uuid", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "userID", Value: "not-a-uuid"}}

	handler.ListPending(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_MarkRead_Success(t *testing.T) {
	handler, mockService, _, cfg := setupHandler(t)

	userID := uuid.New()
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/notifications/"+userID.String()+"/read/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{
		{Key: "userID", Value: userID.String()},
		{Key: "id", Value: id.String()},
	}

	mockService.EXPECT().
		MarkRead(gomock.Any(), cfg.Retry, id).
		Return(nil)

	handler.MarkRead(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_MarkRead_NotFound(t *testing.T) {
	handler, mockService, _, cfg := setupHandler(t)

	id := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/notifications/u/read/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		MarkRead(gomock.Any(), cfg.Retry, id).
		Return(notifrepo.ErrRecordNotFound)

	handler.MarkRead(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_MarkRead_InvalidTransition(t *testing.T) {
	handler, mockService, _, cfg := setupHandler(t)

	id := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/notifications/u/read/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		MarkRead(gomock.Any(), cfg.Retry, id).
		Return(notifrepo.ErrInvalidTransition)

	handler.MarkRead(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}
