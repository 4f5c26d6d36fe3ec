package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scorekeeper/internal/model"
)

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) Create(ctx context.Context, record *model.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordService) TopScores(ctx context.Context) ([]model.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockRecordService) BestTimes(ctx context.Context) ([]model.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockRecordService) Latest(ctx context.Context) ([]model.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockRecordService) UserHistory(ctx context.Context, username string) ([]model.Record, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func TestRecordHandlerCreateMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing username",
			body: `{"score": 100}`,
			want: "Missing username in request body",
		},
		{
			name: "missing score",
			body: `{"username": "maria"}`,
			want: "Missing score in request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRecordHandler(new(MockRecordService))
			c, rec := postJSON(echo.New(), "/api/records", tt.body)

			require.NoError(t, h.Create(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestRecordHandlerCreateCreated(t *testing.T) {
	mockService := new(MockRecordService)
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Record) bool {
		return r.Username == "maria" && r.Score == 420 &&
			r.Time != nil && *r.Time == 12.5 &&
			r.Date.Equal(time.UnixMilli(1700000000000))
	})).Return(nil)

	h := NewRecordHandler(mockService)
	c, rec := postJSON(echo.New(), "/api/records",
		`{"username":"maria","score":420,"time":12.5,"date":1700000000000}`)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	mockService.AssertExpectations(t)
}

func TestRecordHandlerCreateStoreFailure(t *testing.T) {
	mockService := new(MockRecordService)
	mockService.On("Create", mock.Anything, mock.Anything).Return(errors.New("deadlock"))

	h := NewRecordHandler(mockService)
	c, rec := postJSON(echo.New(), "/api/records", `{"username":"maria","score":420}`)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Something went wrong"}`, rec.Body.String())
}

func TestRecordHandlerReadsReturnRecords(t *testing.T) {
	mockService := new(MockRecordService)
	records := []model.Record{{Username: "maria", Score: 420}}
	mockService.On("TopScores", mock.Anything).Return(records, nil)

	h := NewRecordHandler(mockService)
	req := httptest.NewRequest(http.MethodGet, "/api/records/best", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.TopScores(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"maria"`)
}

func TestRecordHandlerReadsEmptyAsArray(t *testing.T) {
	mockService := new(MockRecordService)
	mockService.On("Latest", mock.Anything).Return(nil, nil)

	h := NewRecordHandler(mockService)
	req := httptest.NewRequest(http.MethodGet, "/api/records/latest", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.Latest(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRecordHandlerUserHistoryPassesUsername(t *testing.T) {
	mockService := new(MockRecordService)
	mockService.On("UserHistory", mock.Anything, "maria").Return([]model.Record{}, nil)

	h := NewRecordHandler(mockService)
	req := httptest.NewRequest(http.MethodGet, "/api/records/date/maria", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("maria")

	require.NoError(t, h.UserHistory(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestRecordHandlerQueryFailure(t *testing.T) {
	mockService := new(MockRecordService)
	mockService.On("BestTimes", mock.Anything).Return(nil, errors.New("timeout"))

	h := NewRecordHandler(mockService)
	req := httptest.NewRequest(http.MethodGet, "/api/records/times", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.BestTimes(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Something went wrong"}`, rec.Body.String())
}

func TestParseDate(t *testing.T) {
	rfc := parseDate("2023-11-14T22:13:20Z")
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), rfc)

	millis := parseDate(float64(1700000000000))
	assert.True(t, millis.Equal(time.UnixMilli(1700000000000)))

	assert.True(t, parseDate(nil).IsZero())
	assert.True(t, parseDate("not a date").IsZero())
}
