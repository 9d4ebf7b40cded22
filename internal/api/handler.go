package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/spendview/internal/analytics"
	"github.com/avolkov/spendview/internal/domain/dto"
	"github.com/avolkov/spendview/internal/service"
)

// Handler provides HTTP handlers for the three views.
//
// Responsibilities:
//   - Validate incoming query parameters
//   - Call the view service
//   - Translate results into response DTOs with appropriate status codes
//
// A failed query always returns an ErrorResponse body; an empty-but-valid
// result returns 200 with an empty list. The two are never conflated.
type Handler struct {
	views service.Views
}

// NewHandler constructs a Handler around the view service.
func NewHandler(views service.Views) *Handler {
	return &Handler{views: views}
}

// GetHome handles GET /api/v1/home requests.
//
// GetHome godoc
// @Summary      Home-page report
// @Description  Greeting, per-card month-to-date aggregates, top-5 operations, currency rates and stock prices for the given reference instant
// @Tags         views
// @Produce      json
// @Param        date  query     string  false  "Reference instant in YYYY-MM-DD HH:MM:SS (default: now)"  example(2020-12-20 00:00:00)
// @Success      200   {object}  models.HomeReport       "Success"
// @Failure      400   {object}  dto.ErrorResponse       "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/home [get]
func (h *Handler) GetHome(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))

	report, err := h.views.Home(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidTimestamp) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid date format, expected YYYY-MM-DD HH:MM:SS", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build home report", err))
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetSearch handles GET /api/v1/search requests.
//
// GetSearch godoc
// @Summary      Keyword search
// @Description  Returns all operations whose category or description contains the keyword (case-insensitive); the whole table is searched, no time window applies
// @Tags         views
// @Produce      json
// @Param        q  query     string  true  "Search keyword"  example(аптека)
// @Success      200  {array}   dto.OperationResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse      "Bad Request"
// @Router       /api/v1/search [get]
func (h *Handler) GetSearch(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("q"))
	if keyword == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("q is required", nil))
		return
	}

	c.JSON(http.StatusOK, dto.FromOperations(h.views.Search(keyword)))
}

// GetSpending handles GET /api/v1/spending requests.
//
// GetSpending godoc
// @Summary      Category spending report
// @Description  Returns the operations in the given category within the trailing three-month window ending at the reference instant
// @Tags         views
// @Produce      json
// @Param        category  query     string  true   "Exact category name (case-sensitive)"  example(Супермаркеты)
// @Param        date      query     string  false  "Reference instant in YYYY-MM-DD HH:MM:SS (default: now)"  example(2020-05-20 12:55:32)
// @Success      200  {array}   dto.OperationResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/spending [get]
func (h *Handler) GetSpending(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("category is required", nil))
		return
	}
	date := strings.TrimSpace(c.Query("date"))

	ops, err := h.views.SpendingByCategory(category, date)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidTimestamp) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid date format, expected YYYY-MM-DD HH:MM:SS", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build spending report", err))
		return
	}

	c.JSON(http.StatusOK, dto.FromOperations(ops))
}
