package services

import (
	"context"
	"fmt"

	"casting-agency/internal/apperror"
	"casting-agency/internal/models"
	"casting-agency/internal/repository"

	"github.com/sirupsen/logrus"
)

type MovieService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	CreateMovie(ctx context.Context, movie *models.Movie) error
	UpdateMovie(ctx context.Context, id uint, patch models.MoviePatch) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id uint) error

	// LinkActor adds actorID to the cast of movieID. The movie is checked
	// first, so a missing movie is reported without querying actors.
	LinkActor(ctx context.Context, movieID, actorID uint) error
}

type movieService struct {
	repo      repository.MovieRepository
	actorRepo repository.ActorRepository
	logger    *logrus.Logger
}

func NewMovieService(repo repository.MovieRepository, actorRepo repository.ActorRepository, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:      repo,
		actorRepo: actorRepo,
		logger:    logger,
	}
}

func (s *movieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return s.repo.FindAll(ctx)
}

func (s *movieService) CreateMovie(ctx context.Context, movie *models.Movie) error {
	movie.ID = 0
	if err := s.repo.Create(ctx, movie); err != nil {
		return writeFailure("services.CreateMovie", fmt.Errorf("failed to create movie: %w", err))
	}
	s.logger.WithField("movie_id", movie.ID).Debug("Movie created")
	return nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, patch models.MoviePatch) (*models.Movie, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(existing)
	existing.ID = id

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, writeFailure("services.UpdateMovie", fmt.Errorf("failed to update movie %d: %w", id, err))
	}
	return existing, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeFailure("services.DeleteMovie", fmt.Errorf("failed to delete movie %d: %w", id, err))
	}
	s.logger.WithField("movie_id", id).Debug("Movie deleted")
	return nil
}

func (s *movieService) LinkActor(ctx context.Context, movieID, actorID uint) error {
	if _, err := s.repo.FindByID(ctx, movieID); err != nil {
		return err
	}
	if _, err := s.actorRepo.FindByID(ctx, actorID); err != nil {
		return err
	}
	if err := s.repo.AddActor(ctx, movieID, actorID); err != nil {
		return writeFailure("services.LinkActor", fmt.Errorf("failed to link actor %d to movie %d: %w", actorID, movieID, err))
	}
	s.logger.WithFields(logrus.Fields{
		"movie_id": movieID,
		"actor_id": actorID,
	}).Debug("Actor linked to movie")
	return nil
}

// writeFailure marks a failed persistence write as unprocessable. A missing
// row keeps its not-found kind.
func writeFailure(op string, err error) error {
	if apperror.IsNotFound(err) {
		return err
	}
	return apperror.Processing(op, err)
}
