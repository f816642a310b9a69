package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	request "quotedesk/internal/adapter/http/dto/request"
	response "quotedesk/internal/adapter/http/dto/response"
	"quotedesk/internal/adapter/export"
	"quotedesk/internal/infrastructure/logging"
	"quotedesk/internal/usecase"
	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	genericFailureMessage = "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
)

var (
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("invalid_request_body", "상태 값이 필요합니다.", http.StatusBadRequest)
	errUnsupportedFormat    = pkg.NewDomainErrorSimple("unsupported_format", "지원하지 않는 형식입니다. (json, csv, xlsx)", http.StatusBadRequest)
)

// QuoteHandler serves public intake and the admin quote endpoints.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	csv     *export.CSVExporter
	xlsx    *export.XLSXExporter
	now     func() time.Time
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{
		usecase: uc,
		csv:     export.NewCSVExporter(),
		xlsx:    export.NewXLSXExporter(),
		now:     time.Now,
	}
}

// CreateQuote godoc
// @Summary      Submit a quote request
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.QuoteSubmitRequest  true  "Quote request"
// @Success      201      {object}  response.SubmitResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      429      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapQuoteError(usecase.NewInvalidBodyError())
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.Submit(c.Request.Context(), payload.ToSubmission())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubmitted(quote))
}

// ListQuotes godoc
// @Summary      List quotes in admin order, or export them
// @Tags         quotes
// @Produce      json
// @Produce      text/csv
// @Param        format       query  string  false  "json (default), csv or xlsx"
// @Param        search       query  string  false  "name, phone, address or request text"
// @Param        serviceType  query  string  false  "direct, partner or all"
// @Param        status       query  string  false  "status or all"
// @Success      200  {object}  response.QuoteListResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", FormatJSON)))
	if format != FormatJSON && format != FormatCSV && format != FormatXLSX {
		c.JSON(errUnsupportedFormat.HTTPStatus, errUnsupportedFormat.ToHTTPError())
		return
	}

	filter := usecase.QuoteFilter{
		Search:      c.Query("search"),
		ServiceType: c.Query("serviceType"),
		Status:      c.Query("status"),
	}
	quotes, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	switch format {
	case FormatCSV:
		c.Header("Content-Disposition", attachment(h.exportName(FormatCSV)))
		c.Data(http.StatusOK, contentTypeCSV, h.csv.Export(quotes))
		return
	case FormatXLSX:
		data, err := h.xlsx.Export(quotes)
		if err != nil {
			appErr := mapQuoteError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Header("Content-Disposition", attachment(h.exportName(FormatXLSX)))
		c.Data(http.StatusOK, contentTypeXLSX, data)
		return
	}

	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.QuoteListResponse{
		OK:     true,
		Quotes: response.FromQuotes(quotes),
		Stats:  stats,
	})
}

// GetStats godoc
// @Summary      Dashboard counters over every stored quote
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  response.StatsResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /quotes/stats [get]
func (h *QuoteHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.StatsResponse{OK: true, Stats: stats})
}

// GetQuote godoc
// @Summary      Get one quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.QuoteResponse{OK: true, Quote: response.FromQuote(quote)})
}

// UpdateQuoteStatus godoc
// @Summary      Change a quote's status
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Quote ID"
// @Param        payload  body      request.StatusUpdateRequest  true  "New status"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /quotes/{id} [patch]
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.QuoteResponse{OK: true, Quote: response.FromQuote(quote)})
}

func (h *QuoteHandler) exportName(ext string) string {
	return "quotes_" + h.now().Format("2006-01-02") + "." + ext
}

func attachment(filename string) string {
	return `attachment; filename="` + filename + `"`
}

func mapQuoteError(err error) *pkg.AppError {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		appErr := pkg.NewDomainErrorSimple(ve.Code, ve.Message, http.StatusBadRequest)
		if len(ve.Fields) > 0 {
			appErr = appErr.WithFields(ve.Fields...)
		}
		return appErr
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("invalid_status", "유효하지 않은 상태 값입니다.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("invalid_quote_id", "견적 요청 ID가 필요합니다.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("quote_not_found", "견적 요청을 찾을 수 없습니다.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotificationDisabled):
		return pkg.NewDomainErrorSimple("notification_disabled", "이메일 알림이 설정되지 않았습니다.", http.StatusServiceUnavailable)
	default:
		logging.L().WithFields(logrus.Fields{"err": err}).Error("[quote][http] internal error")
		return pkg.NewDomainError("internal_error", genericFailureMessage, err, http.StatusInternalServerError)
	}
}
