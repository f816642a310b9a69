package handlers

import (
	"errors"
	"net/http"
	"testing"

	"quotedesk/internal/adapter/http/handlers/mocks"
	"quotedesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newNotificationRouter(h *NotificationHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/notifications/test", h.SendTest)
	return r
}

func TestNotificationHandler_SendTest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("plain test mail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newNotificationRouter(NewNotificationHandler(uc))

		uc.EXPECT().SendTestNotification(gomock.Any(), "test").Return(nil)

		w := doJSON(r, http.MethodPost, "/v1/notifications/test", `{"type":"test"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty body sends the sample quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newNotificationRouter(NewNotificationHandler(uc))

		uc.EXPECT().SendTestNotification(gomock.Any(), "").Return(nil)

		w := doJSON(r, http.MethodPost, "/v1/notifications/test", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newNotificationRouter(NewNotificationHandler(uc))

		uc.EXPECT().SendTestNotification(gomock.Any(), "test").Return(usecase.ErrNotificationDisabled)

		w := doJSON(r, http.MethodPost, "/v1/notifications/test", `{"type":"test"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newNotificationRouter(NewNotificationHandler(uc))

		uc.EXPECT().SendTestNotification(gomock.Any(), "quote").Return(errors.New("MessageRejected"))

		w := doJSON(r, http.MethodPost, "/v1/notifications/test", `{"type":"quote"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "notification_failed" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}
