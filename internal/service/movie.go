package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/akiram/casting-agency/internal/models"
	"github.com/akiram/casting-agency/internal/repo"
	"github.com/akiram/casting-agency/internal/transport"
)

type MovieService struct {
	Repo *repo.GormRepo
}

// ListMovies returns all movies ordered by ascending id. An empty table is
// reported as ErrNotFound, not as an empty success.
func (s *MovieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.Repo.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if len(movies) == 0 {
		return nil, ErrNotFound
	}
	return movies, nil
}

func (s *MovieService) CreateMovie(ctx context.Context, req transport.CreateMovieRequest) (*models.Movie, error) {
	if req.Title == "" || req.ReleaseYear == 0 {
		return nil, ErrValidation
	}

	movie := &models.Movie{
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
	}
	if err := s.Repo.CreateMovie(ctx, movie); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return movie, nil
}

// PatchMovie overwrites only the fields present in req. The merged result is
// not revalidated against the create rules.
func (s *MovieService) PatchMovie(ctx context.Context, req transport.PatchMovieRequest, id uint) (*models.Movie, error) {
	movie, err := s.Repo.PatchMovie(ctx, req, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return movie, nil
}

// DeleteMovie removes the row and returns the deleted id. Dependent actors
// are left untouched.
func (s *MovieService) DeleteMovie(ctx context.Context, id uint) (uint, error) {
	if err := s.Repo.DeleteMovie(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return id, nil
}
