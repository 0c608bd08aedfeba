package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinebooking/internal/domain"
	"cinebooking/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) ListMovies(ctx context.Context) ([]domain.MovieInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MovieInfo), args.Error(1)
}

func (m *MockCatalogUseCase) ListPremieres(ctx context.Context) ([]domain.MovieInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MovieInfo), args.Error(1)
}

func (m *MockCatalogUseCase) GetMovieByID(ctx context.Context, id int64) (*domain.MovieInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovieInfo), args.Error(1)
}

func (m *MockCatalogUseCase) ListCinemasByCity(ctx context.Context, cityID int64) ([]domain.Cinema, error) {
	args := m.Called(ctx, cityID)
	return args.Get(0).([]domain.Cinema), args.Error(1)
}

func (m *MockCatalogUseCase) GetCinemaByID(ctx context.Context, id int64) (*domain.Cinema, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cinema), args.Error(1)
}

func (m *MockCatalogUseCase) GetSchedulesByMovie(ctx context.Context, cityID, movieID int64) ([]domain.CinemaSchedule, error) {
	args := m.Called(ctx, cityID, movieID)
	return args.Get(0).([]domain.CinemaSchedule), args.Error(1)
}

func TestCatalogHandler_listMovies(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewCatalogHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/movies", nil)

	mockService.On("ListMovies", c.Request.Context()).
		Return([]domain.MovieInfo{{ID: 1, Title: "Dune", Format: "IMAX", ReleaseDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}}, nil)

	handler.listMovies(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []movieResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	assert.Equal(t, "Dune", response[0].Title)
	assert.Equal(t, "2024-03-01", response[0].ReleaseDate)
}

func TestCatalogHandler_getMovie_badID(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewCatalogHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	c.Request = httptest.NewRequest("GET", "/movies/abc", nil)

	handler.getMovie(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetMovieByID", mock.Anything, mock.Anything)
}

func TestCatalogHandler_getMovie_notFound(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewCatalogHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "404"}}
	c.Request = httptest.NewRequest("GET", "/movies/404", nil)

	mockService.On("GetMovieByID", c.Request.Context(), int64(404)).Return(nil, repository.ErrNotFound)

	handler.getMovie(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_listCinemas(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewCatalogHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/cinemas?cityId=5", nil)

	mockService.On("ListCinemasByCity", c.Request.Context(), int64(5)).
		Return([]domain.Cinema{{ID: 1, CityID: 5, Name: "Plaza Central"}}, nil)

	handler.listCinemas(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []cinemaResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	assert.Equal(t, "Plaza Central", response[0].Name)
}

func TestCatalogHandler_getSchedules(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewCatalogHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "5"}, {Key: "movieId", Value: "7"}}
	c.Request = httptest.NewRequest("GET", "/cinemas/5/7", nil)

	showtime := time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)
	mockService.On("GetSchedulesByMovie", c.Request.Context(), int64(5), int64(7)).
		Return([]domain.CinemaSchedule{{CinemaName: "Plaza Central", Room: "Room 1", Times: []time.Time{showtime}}}, nil)

	handler.getSchedules(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []scheduleResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	assert.Equal(t, []string{"2024-05-01T19:00:00Z"}, response[0].Times)
}
