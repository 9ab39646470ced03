package services

import (
	"context"
	"fmt"

	"casting-agency/internal/models"
	"casting-agency/internal/repository"

	"github.com/sirupsen/logrus"
)

type ActorService interface {
	ListActors(ctx context.Context) ([]models.Actor, error)
	CreateActor(ctx context.Context, actor *models.Actor) error
	UpdateActor(ctx context.Context, id uint, patch models.ActorPatch) (*models.Actor, error)
	DeleteActor(ctx context.Context, id uint) error
}

type actorService struct {
	repo   repository.ActorRepository
	logger *logrus.Logger
}

func NewActorService(repo repository.ActorRepository, logger *logrus.Logger) ActorService {
	return &actorService{
		repo:   repo,
		logger: logger,
	}
}

func (s *actorService) ListActors(ctx context.Context) ([]models.Actor, error) {
	return s.repo.FindAll(ctx)
}

func (s *actorService) CreateActor(ctx context.Context, actor *models.Actor) error {
	actor.ID = 0
	if err := s.repo.Create(ctx, actor); err != nil {
		return writeFailure("services.CreateActor", fmt.Errorf("failed to create actor: %w", err))
	}
	s.logger.WithField("actor_id", actor.ID).Debug("Actor created")
	return nil
}

func (s *actorService) UpdateActor(ctx context.Context, id uint, patch models.ActorPatch) (*models.Actor, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(existing)
	existing.ID = id

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, writeFailure("services.UpdateActor", fmt.Errorf("failed to update actor %d: %w", id, err))
	}
	return existing, nil
}

func (s *actorService) DeleteActor(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeFailure("services.DeleteActor", fmt.Errorf("failed to delete actor %d: %w", id, err))
	}
	s.logger.WithField("actor_id", id).Debug("Actor deleted")
	return nil
}
