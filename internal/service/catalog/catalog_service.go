package catalog

import (
	"context"

	"cinebooking/internal/domain"
	"cinebooking/internal/repository"
)

type CatalogUseCase interface {
	ListMovies(ctx context.Context) ([]domain.MovieInfo, error)
	ListPremieres(ctx context.Context) ([]domain.MovieInfo, error)
	GetMovieByID(ctx context.Context, id int64) (*domain.MovieInfo, error)
	ListCinemasByCity(ctx context.Context, cityID int64) ([]domain.Cinema, error)
	GetCinemaByID(ctx context.Context, id int64) (*domain.Cinema, error)
	GetSchedulesByMovie(ctx context.Context, cityID, movieID int64) ([]domain.CinemaSchedule, error)
}

type Cache interface {
	GetMovies(ctx context.Context, key string) ([]domain.MovieInfo, error)
	SetMovies(ctx context.Context, key string, movies []domain.MovieInfo) error
}

const (
	moviesCacheKey    = "all"
	premieresCacheKey = "premieres"
)

type CatalogService struct {
	repo  repository.CatalogRepository
	cache Cache
}

func NewCatalogService(repo repository.CatalogRepository, cache Cache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) ListMovies(ctx context.Context) ([]domain.MovieInfo, error) {
	return s.cachedMovies(ctx, moviesCacheKey, s.repo.ListMovies)
}

func (s *CatalogService) ListPremieres(ctx context.Context) ([]domain.MovieInfo, error) {
	return s.cachedMovies(ctx, premieresCacheKey, s.repo.ListPremieres)
}

func (s *CatalogService) cachedMovies(ctx context.Context, key string, load func(context.Context) ([]domain.MovieInfo, error)) ([]domain.MovieInfo, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetMovies(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	movies, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetMovies(ctx, key, movies)
	}
	return movies, nil
}

func (s *CatalogService) GetMovieByID(ctx context.Context, id int64) (*domain.MovieInfo, error) {
	return s.repo.GetMovieByID(ctx, id)
}

func (s *CatalogService) ListCinemasByCity(ctx context.Context, cityID int64) ([]domain.Cinema, error) {
	return s.repo.ListCinemasByCity(ctx, cityID)
}

func (s *CatalogService) GetCinemaByID(ctx context.Context, id int64) (*domain.Cinema, error) {
	return s.repo.GetCinemaByID(ctx, id)
}

func (s *CatalogService) GetSchedulesByMovie(ctx context.Context, cityID, movieID int64) ([]domain.CinemaSchedule, error) {
	return s.repo.GetSchedulesByMovie(ctx, cityID, movieID)
}

var _ CatalogUseCase = (*CatalogService)(nil)
