package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/akiram/casting-agency/internal/models"
	"github.com/akiram/casting-agency/internal/transport"
)

func (r *GormRepo) ListActors(ctx context.Context) ([]models.Actor, error) {
	var actors []models.Actor
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&actors).Error; err != nil {
		return nil, err
	}
	return actors, nil
}

func (r *GormRepo) CreateActor(ctx context.Context, actor *models.Actor) error {
	return r.DB.WithContext(ctx).Create(actor).Error
}

func (r *GormRepo) PatchActor(ctx context.Context, req transport.PatchActorRequest, id uint) (*models.Actor, error) {
	var actor models.Actor
	if err := r.DB.WithContext(ctx).First(&actor, id).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		actor.Name = *req.Name
	}
	if req.Age != nil {
		actor.Age = *req.Age
	}
	if req.Gender != nil {
		actor.Gender = *req.Gender
	}
	if req.MovieID != nil {
		actor.MovieID = req.MovieID
	}

	if err := r.DB.WithContext(ctx).Save(&actor).Error; err != nil {
		return nil, err
	}

	return &actor, nil
}

func (r *GormRepo) DeleteActor(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Actor{}, id)

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
