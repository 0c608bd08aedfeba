package api

import (
	"net/http"
	"strconv"
	"time"

	"cinebooking/internal/domain"
	"cinebooking/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service catalog.CatalogUseCase
}

type movieResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Format      string `json:"format"`
	ReleaseDate string `json:"releaseDate"`
}

type cinemaResponse struct {
	ID     int64  `json:"id"`
	CityID int64  `json:"cityId"`
	Name   string `json:"name"`
}

type scheduleResponse struct {
	Cinema string   `json:"cinema"`
	Room   string   `json:"room"`
	Times  []string `json:"times"`
}

func NewCatalogHandler(service catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/movies", h.listMovies)
	router.GET("/movies/premieres", h.listPremieres)
	router.GET("/movies/:id", h.getMovie)
	router.GET("/cinemas", h.listCinemas)
	router.GET("/cinemas/:id", h.getCinema)
	router.GET("/cinemas/:id/:movieId", h.getSchedules)
}

func (h *CatalogHandler) listMovies(c *gin.Context) {
	movies, err := h.service.ListMovies(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMovieResponses(movies))
}

func (h *CatalogHandler) listPremieres(c *gin.Context) {
	movies, err := h.service.ListPremieres(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMovieResponses(movies))
}

func (h *CatalogHandler) getMovie(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "movie id must be numeric"})
		return
	}

	movie, err := h.service.GetMovieByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMovieResponse(*movie))
}

func (h *CatalogHandler) listCinemas(c *gin.Context) {
	cityID, err := strconv.ParseInt(c.Query("cityId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cityId query parameter must be numeric"})
		return
	}

	cinemas, err := h.service.ListCinemasByCity(c.Request.Context(), cityID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]cinemaResponse, 0, len(cinemas))
	for _, cn := range cinemas {
		out = append(out, cinemaResponse{ID: cn.ID, CityID: cn.CityID, Name: cn.Name})
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) getCinema(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cinema id must be numeric"})
		return
	}

	cinema, err := h.service.GetCinemaByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cinemaResponse{ID: cinema.ID, CityID: cinema.CityID, Name: cinema.Name})
}

// getSchedules keys on (city, movie); the first path segment is a city id
// here, not a cinema id.
func (h *CatalogHandler) getSchedules(c *gin.Context) {
	cityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city id must be numeric"})
		return
	}
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "movie id must be numeric"})
		return
	}

	schedules, err := h.service.GetSchedulesByMovie(c.Request.Context(), cityID, movieID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]scheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		times := make([]string, 0, len(s.Times))
		for _, t := range s.Times {
			times = append(times, t.Format(time.RFC3339))
		}
		out = append(out, scheduleResponse{Cinema: s.CinemaName, Room: s.Room, Times: times})
	}
	c.JSON(http.StatusOK, out)
}

func toMovieResponses(movies []domain.MovieInfo) []movieResponse {
	out := make([]movieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResponse(m))
	}
	return out
}

func toMovieResponse(m domain.MovieInfo) movieResponse {
	return movieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Format:      m.Format,
		ReleaseDate: m.ReleaseDate.Format("2006-01-02"),
	}
}
