package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperr "scorekeeper/internal/errors"
	"scorekeeper/internal/model"
	"scorekeeper/internal/service"
)

var recordRequiredFields = []string{"username", "score"}

// RecordHandler handles leaderboard endpoints.
type RecordHandler struct {
	recordService service.RecordService
}

// NewRecordHandler creates a new record handler.
func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// Create godoc
// @Summary Submit a new game record
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body map[string]interface{} true "Record payload: username, score, optional time/date"
// @Success 201 {object} model.Record
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} errors.QueryFailureResponse
// @Router /records [post]
func (h *RecordHandler) Create(c echo.Context) error {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	for _, field := range recordRequiredFields {
		if _, ok := payload[field]; !ok {
			return c.String(http.StatusBadRequest, fmt.Sprintf("Missing %s in request body", field))
		}
	}

	username, ok := payload["username"].(string)
	if !ok {
		return c.String(http.StatusBadRequest, "Invalid username in request body")
	}
	score, ok := payload["score"].(float64)
	if !ok {
		return c.String(http.StatusBadRequest, "Invalid score in request body")
	}

	record := &model.Record{
		Username: username,
		Score:    score,
	}
	if t, ok := payload["time"].(float64); ok {
		record.Time = &t
	}
	record.Date = parseDate(payload["date"])

	if err := h.recordService.Create(c.Request().Context(), record); err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, apperr.NewQueryFailureResponse())
	}

	return c.JSON(http.StatusCreated, record)
}

// TopScores godoc
// @Summary Top scores, best first
// @Tags records
// @Produce json
// @Success 200 {array} model.Record
// @Failure 500 {object} errors.QueryFailureResponse
// @Router /records/best [get]
func (h *RecordHandler) TopScores(c echo.Context) error {
	records, err := h.recordService.TopScores(c.Request().Context())
	return h.respond(c, records, err)
}

// BestTimes godoc
// @Summary Best times, fastest first
// @Tags records
// @Produce json
// @Success 200 {array} model.Record
// @Failure 500 {object} errors.QueryFailureResponse
// @Router /records/times [get]
func (h *RecordHandler) BestTimes(c echo.Context) error {
	records, err := h.recordService.BestTimes(c.Request().Context())
	return h.respond(c, records, err)
}

// Latest godoc
// @Summary Most recent records
// @Tags records
// @Produce json
// @Success 200 {array} model.Record
// @Failure 500 {object} errors.QueryFailureResponse
// @Router /records/latest [get]
func (h *RecordHandler) Latest(c echo.Context) error {
	records, err := h.recordService.Latest(c.Request().Context())
	return h.respond(c, records, err)
}

// UserHistory godoc
// @Summary One user's records, most recent first
// @Tags records
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} model.Record
// @Failure 500 {object} errors.QueryFailureResponse
// @Router /records/date/{username} [get]
func (h *RecordHandler) UserHistory(c echo.Context) error {
	records, err := h.recordService.UserHistory(c.Request().Context(), c.Param("username"))
	return h.respond(c, records, err)
}

func (h *RecordHandler) respond(c echo.Context, records []model.Record, err error) error {
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, apperr.NewQueryFailureResponse())
	}
	if records == nil {
		records = []model.Record{}
	}
	return c.JSON(http.StatusOK, records)
}

// parseDate accepts an RFC3339 string or milliseconds since epoch (what a JS
// client sends). Anything else yields the zero time, which the service
// replaces with the submission time.
func parseDate(v interface{}) time.Time {
	switch d := v.(type) {
	case string:
		if parsed, err := time.Parse(time.RFC3339, d); err == nil {
			return parsed
		}
	case float64:
		return time.UnixMilli(int64(d))
	}
	return time.Time{}
}
