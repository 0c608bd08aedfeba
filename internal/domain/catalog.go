package domain

import "time"

type MovieInfo struct {
	ID          int64
	Title       string
	Format      string
	ReleaseDate time.Time
}

type Cinema struct {
	ID     int64
	CityID int64
	Name   string
}

// CinemaSchedule groups showtimes for one movie by cinema and room.
type CinemaSchedule struct {
	CinemaName string
	Room       string
	Times      []time.Time
}
