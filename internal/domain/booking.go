package domain

import "time"

type UserType string

const (
	UserTypeLoyal  UserType = "loyal"
	UserTypeNormal UserType = "normal"
)

type CreditCard struct {
	Number   string `json:"number" validate:"required,credit_card"`
	CVC      string `json:"cvc" validate:"required,len=3"`
	ExpMonth int    `json:"exp_month" validate:"required,min=1,max=12"`
	ExpYear  int    `json:"exp_year" validate:"required,min=2000"`
}

type User struct {
	Name       string     `json:"name" validate:"required"`
	LastName   string     `json:"lastName" validate:"required"`
	Email      string     `json:"email" validate:"required,email"`
	Membership bool       `json:"membership"`
	CreditCard CreditCard `json:"creditCard" validate:"required"`
}

func (u User) FullName() string {
	return u.Name + " " + u.LastName
}

type Movie struct {
	Title  string `json:"title" validate:"required"`
	Format string `json:"format" validate:"required"`
}

type BookingRequest struct {
	City        string   `json:"city" validate:"required"`
	Cinema      string   `json:"cinema" validate:"required"`
	CinemaRoom  string   `json:"cinemaRoom" validate:"required"`
	Movie       Movie    `json:"movie" validate:"required"`
	Schedule    string   `json:"schedule" validate:"required"`
	Seats       []string `json:"seats" validate:"required,min=1,unique,dive,required"`
	TotalAmount float64  `json:"totalAmount" validate:"required,gt=0"`
}

type BookingRecord struct {
	ID          int64
	City        string
	UserType    UserType
	TotalAmount float64
	CinemaName  string
	CinemaRoom  string
	Seats       []string
	MovieTitle  string
	MovieFormat string
	Schedule    string
	CreatedAt   time.Time
}

// NewBookingRecord projects a validated request onto the persisted shape.
// The record is append-only: nothing mutates it after the insert.
func NewBookingRecord(user User, booking BookingRequest) *BookingRecord {
	userType := UserTypeNormal
	if user.Membership {
		userType = UserTypeLoyal
	}
	return &BookingRecord{
		City:        booking.City,
		UserType:    userType,
		TotalAmount: booking.TotalAmount,
		CinemaName:  booking.Cinema,
		CinemaRoom:  booking.CinemaRoom,
		Seats:       booking.Seats,
		MovieTitle:  booking.Movie.Title,
		MovieFormat: booking.Movie.Format,
		Schedule:    booking.Schedule,
	}
}

type TicketRecord struct {
	ID          int64
	OrderID     string
	Description string
	City        string
	UserType    UserType
	TotalAmount float64
	CinemaName  string
	CinemaRoom  string
	Seats       []string
	MovieTitle  string
	MovieFormat string
	Schedule    string
	CreatedAt   time.Time
}

// NewTicketRecord derives the ticket from a stored booking and the charge that
// paid for it. The charge id becomes the permanent order id.
func NewTicketRecord(booking *BookingRecord, receipt *ChargeReceipt, description string) *TicketRecord {
	return &TicketRecord{
		OrderID:     receipt.ID,
		Description: description,
		City:        booking.City,
		UserType:    booking.UserType,
		TotalAmount: booking.TotalAmount,
		CinemaName:  booking.CinemaName,
		CinemaRoom:  booking.CinemaRoom,
		Seats:       booking.Seats,
		MovieTitle:  booking.MovieTitle,
		MovieFormat: booking.MovieFormat,
		Schedule:    booking.Schedule,
	}
}

type NotificationPayload struct {
	Ticket   TicketRecord `json:"ticket" validate:"required"`
	UserName string       `json:"userName" validate:"required"`
	Email    string       `json:"email" validate:"required,email"`
}
