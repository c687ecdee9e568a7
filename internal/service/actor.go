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

type ActorService struct {
	Repo *repo.GormRepo
}

func (s *ActorService) ListActors(ctx context.Context) ([]models.Actor, error) {
	actors, err := s.Repo.ListActors(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if len(actors) == 0 {
		return nil, ErrNotFound
	}
	return actors, nil
}

// CreateActor requires every field, movie_id included. The referenced movie
// is not verified to exist at write time.
func (s *ActorService) CreateActor(ctx context.Context, req transport.CreateActorRequest) (*models.Actor, error) {
	if req.Name == "" || req.Age == 0 || req.Gender == "" || req.MovieID == 0 {
		return nil, ErrValidation
	}

	movieID := req.MovieID
	actor := &models.Actor{
		Name:    req.Name,
		Age:     req.Age,
		Gender:  req.Gender,
		MovieID: &movieID,
	}
	if err := s.Repo.CreateActor(ctx, actor); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return actor, nil
}

func (s *ActorService) PatchActor(ctx context.Context, req transport.PatchActorRequest, id uint) (*models.Actor, error) {
	actor, err := s.Repo.PatchActor(ctx, req, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return actor, nil
}

func (s *ActorService) DeleteActor(ctx context.Context, id uint) (uint, error) {
	if err := s.Repo.DeleteActor(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return id, nil
}
