package api

import (
	"net/http"
	"time"

	"cinebooking/internal/domain"
	"cinebooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type placeBookingRequest struct {
	User    domain.User           `json:"user"`
	Booking domain.BookingRequest `json:"booking"`
}

type ticketCinema struct {
	Name  string   `json:"name"`
	Room  string   `json:"room"`
	Seats []string `json:"seats"`
}

type ticketMovie struct {
	Title    string `json:"title"`
	Format   string `json:"format"`
	Schedule string `json:"schedule"`
}

type ticketResponse struct {
	OrderID     string       `json:"orderId"`
	Description string       `json:"description"`
	City        string       `json:"city"`
	UserType    string       `json:"userType"`
	TotalAmount float64      `json:"totalAmount"`
	Cinema      ticketCinema `json:"cinema"`
	Movie       ticketMovie  `json:"movie"`
	CreatedAt   string       `json:"createdAt"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/booking", h.place)
	router.GET("/booking/verify/:orderId", h.verify)
}

func (h *BookingHandler) place(c *gin.Context) {
	var req placeBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.service.PlaceBooking(c.Request.Context(), req.User, req.Booking)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func (h *BookingHandler) verify(c *gin.Context) {
	ticket, err := h.service.GetOrderByID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func toTicketResponse(t *domain.TicketRecord) ticketResponse {
	return ticketResponse{
		OrderID:     t.OrderID,
		Description: t.Description,
		City:        t.City,
		UserType:    string(t.UserType),
		TotalAmount: t.TotalAmount,
		Cinema: ticketCinema{
			Name:  t.CinemaName,
			Room:  t.CinemaRoom,
			Seats: t.Seats,
		},
		Movie: ticketMovie{
			Title:    t.MovieTitle,
			Format:   t.MovieFormat,
			Schedule: t.Schedule,
		},
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}
