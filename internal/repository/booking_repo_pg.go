package repository

import (
	"context"
	"errors"

	"cinebooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingStore interface {
	InsertBooking(ctx context.Context, booking *domain.BookingRecord) (*domain.BookingRecord, error)
	InsertTicket(ctx context.Context, ticket *domain.TicketRecord) (*domain.TicketRecord, error)
	FindBookingByID(ctx context.Context, id int64) (*domain.BookingRecord, error)
	FindTicketByOrderID(ctx context.Context, orderID string) (*domain.TicketRecord, error)
}

type PGBookingStore struct {
	db *pgxpool.Pool
}

func NewBookingStore(db *pgxpool.Pool) BookingStore {
	return &PGBookingStore{db: db}
}

func (r *PGBookingStore) InsertBooking(ctx context.Context, booking *domain.BookingRecord) (*domain.BookingRecord, error) {
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (city, user_type, total_amount, cinema_name, cinema_room, seats, movie_title, movie_format, schedule)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		booking.City, booking.UserType, booking.TotalAmount, booking.CinemaName, booking.CinemaRoom,
		booking.Seats, booking.MovieTitle, booking.MovieFormat, booking.Schedule).
		Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return booking, nil
}

func (r *PGBookingStore) InsertTicket(ctx context.Context, ticket *domain.TicketRecord) (*domain.TicketRecord, error) {
	err := r.db.QueryRow(ctx, `INSERT INTO tickets (order_id, description, city, user_type, total_amount, cinema_name, cinema_room, seats, movie_title, movie_format, schedule)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		ticket.OrderID, ticket.Description, ticket.City, ticket.UserType, ticket.TotalAmount,
		ticket.CinemaName, ticket.CinemaRoom, ticket.Seats, ticket.MovieTitle, ticket.MovieFormat, ticket.Schedule).
		Scan(&ticket.ID, &ticket.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return ticket, nil
}

func (r *PGBookingStore) FindBookingByID(ctx context.Context, id int64) (*domain.BookingRecord, error) {
	row := r.db.QueryRow(ctx, `SELECT id, city, user_type, total_amount, cinema_name, cinema_room, seats, movie_title, movie_format, schedule, created_at FROM bookings WHERE id=$1`, id)
	var b domain.BookingRecord
	if err := row.Scan(&b.ID, &b.City, &b.UserType, &b.TotalAmount, &b.CinemaName, &b.CinemaRoom, &b.Seats, &b.MovieTitle, &b.MovieFormat, &b.Schedule, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingStore) FindTicketByOrderID(ctx context.Context, orderID string) (*domain.TicketRecord, error) {
	row := r.db.QueryRow(ctx, `SELECT id, order_id, description, city, user_type, total_amount, cinema_name, cinema_room, seats, movie_title, movie_format, schedule, created_at FROM tickets WHERE order_id=$1`, orderID)
	var t domain.TicketRecord
	if err := row.Scan(&t.ID, &t.OrderID, &t.Description, &t.City, &t.UserType, &t.TotalAmount, &t.CinemaName, &t.CinemaRoom, &t.Seats, &t.MovieTitle, &t.MovieFormat, &t.Schedule, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// mapWriteError surfaces a unique-violation on the (cinema, room, schedule,
// seat) index as a seat conflict the caller can report to the user.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrSeatConflict
	}
	return err
}

var _ BookingStore = (*PGBookingStore)(nil)
