package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/akiram/casting-agency/internal/models"
	"github.com/akiram/casting-agency/internal/transport"
)

func (r *GormRepo) ListMovies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *GormRepo) CreateMovie(ctx context.Context, movie *models.Movie) error {
	return r.DB.WithContext(ctx).Create(movie).Error
}

func (r *GormRepo) PatchMovie(ctx context.Context, req transport.PatchMovieRequest, id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := r.DB.WithContext(ctx).First(&movie, id).Error; err != nil {
		return nil, err
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.ReleaseYear != nil {
		movie.ReleaseYear = *req.ReleaseYear
	}

	if err := r.DB.WithContext(ctx).Save(&movie).Error; err != nil {
		return nil, err
	}

	return &movie, nil
}

func (r *GormRepo) DeleteMovie(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Movie{}, id)

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
