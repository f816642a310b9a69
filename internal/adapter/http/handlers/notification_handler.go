package handlers

import (
	"errors"
	"net/http"

	request "quotedesk/internal/adapter/http/dto/request"
	response "quotedesk/internal/adapter/http/dto/response"
	"quotedesk/internal/usecase"
	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler lets an operator check the email setup.
type NotificationHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewNotificationHandler(uc usecase.IQuoteUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// SendTest godoc
// @Summary      Send a test notification to the admin address
// @Description  type "test" sends a plain test mail; anything else sends a sample new-quote mail.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        payload  body      request.TestNotificationRequest  false  "Notification kind"
// @Success      200      {object}  response.MessageResponse
// @Failure      502      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /notifications/test [post]
func (h *NotificationHandler) SendTest(c *gin.Context) {
	var payload request.TestNotificationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := mapQuoteError(usecase.NewInvalidBodyError())
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	if err := h.usecase.SendTestNotification(c.Request.Context(), payload.Type); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{OK: true, Message: "테스트 이메일이 발송되었습니다."})
}

func mapNotificationError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrNotificationDisabled) {
		return mapQuoteError(err)
	}
	return pkg.NewDomainError("notification_failed", "이메일 발송에 실패했습니다.", err, http.StatusBadGateway)
}
