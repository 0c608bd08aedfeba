package repository

import (
	"context"
	"errors"
	"time"

	"cinebooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository interface {
	ListMovies(ctx context.Context) ([]domain.MovieInfo, error)
	ListPremieres(ctx context.Context) ([]domain.MovieInfo, error)
	GetMovieByID(ctx context.Context, id int64) (*domain.MovieInfo, error)
	ListCinemasByCity(ctx context.Context, cityID int64) ([]domain.Cinema, error)
	GetCinemaByID(ctx context.Context, id int64) (*domain.Cinema, error)
	GetSchedulesByMovie(ctx context.Context, cityID, movieID int64) ([]domain.CinemaSchedule, error)
}

type PGCatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) CatalogRepository {
	return &PGCatalogRepository{db: db}
}

func (r *PGCatalogRepository) ListMovies(ctx context.Context) ([]domain.MovieInfo, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, format, release_date FROM movies ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMovies(rows)
}

func (r *PGCatalogRepository) ListPremieres(ctx context.Context) ([]domain.MovieInfo, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, format, release_date FROM movies
		WHERE release_date >= now() - interval '60 days' AND release_date <= now()
		ORDER BY release_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMovies(rows)
}

func (r *PGCatalogRepository) GetMovieByID(ctx context.Context, id int64) (*domain.MovieInfo, error) {
	row := r.db.QueryRow(ctx, `SELECT id, title, format, release_date FROM movies WHERE id=$1`, id)
	var m domain.MovieInfo
	if err := row.Scan(&m.ID, &m.Title, &m.Format, &m.ReleaseDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *PGCatalogRepository) ListCinemasByCity(ctx context.Context, cityID int64) ([]domain.Cinema, error) {
	rows, err := r.db.Query(ctx, `SELECT id, city_id, name FROM cinemas WHERE city_id=$1 ORDER BY name`, cityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cinemas := make([]domain.Cinema, 0)
	for rows.Next() {
		var c domain.Cinema
		if err := rows.Scan(&c.ID, &c.CityID, &c.Name); err != nil {
			return nil, err
		}
		cinemas = append(cinemas, c)
	}
	return cinemas, rows.Err()
}

func (r *PGCatalogRepository) GetCinemaByID(ctx context.Context, id int64) (*domain.Cinema, error) {
	row := r.db.QueryRow(ctx, `SELECT id, city_id, name FROM cinemas WHERE id=$1`, id)
	var c domain.Cinema
	if err := row.Scan(&c.ID, &c.CityID, &c.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGCatalogRepository) GetSchedulesByMovie(ctx context.Context, cityID, movieID int64) ([]domain.CinemaSchedule, error) {
	rows, err := r.db.Query(ctx, `SELECT c.name, s.room, s.time FROM schedules s
		JOIN cinemas c ON c.id = s.cinema_id
		WHERE c.city_id=$1 AND s.movie_id=$2
		ORDER BY c.name, s.room, s.time`, cityID, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// rows come back sorted by cinema and room, so adjacent rows fold into
	// one schedule entry
	schedules := make([]domain.CinemaSchedule, 0)
	for rows.Next() {
		var name, room string
		var t time.Time
		if err := rows.Scan(&name, &room, &t); err != nil {
			return nil, err
		}
		n := len(schedules)
		if n > 0 && schedules[n-1].CinemaName == name && schedules[n-1].Room == room {
			schedules[n-1].Times = append(schedules[n-1].Times, t)
			continue
		}
		schedules = append(schedules, domain.CinemaSchedule{CinemaName: name, Room: room, Times: []time.Time{t}})
	}
	return schedules, rows.Err()
}

func scanMovies(rows pgx.Rows) ([]domain.MovieInfo, error) {
	movies := make([]domain.MovieInfo, 0)
	for rows.Next() {
		var m domain.MovieInfo
		if err := rows.Scan(&m.ID, &m.Title, &m.Format, &m.ReleaseDate); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

var _ CatalogRepository = (*PGCatalogRepository)(nil)
