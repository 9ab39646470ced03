package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"casting-agency/internal/apperror"
	"casting-agency/internal/database"
	"casting-agency/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActorRepository interface {
	Create(ctx context.Context, actor *models.Actor) error
	Update(ctx context.Context, actor *models.Actor) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Actor, error)
	FindAll(ctx context.Context) ([]models.Actor, error)
}

type actorRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewActorRepository(db *database.Database) ActorRepository {
	return &actorRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *actorRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, r.timeout)
}

func (r *actorRepository) Create(ctx context.Context, actor *models.Actor) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Omit(clause.Associations).Create(actor).Error
}

func (r *actorRepository) Update(ctx context.Context, actor *models.Actor) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&models.Actor{ID: actor.ID}).Updates(map[string]interface{}{
		"name":   actor.Name,
		"age":    actor.Age,
		"gender": actor.Gender,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("actors.update", fmt.Errorf("actor %d not found", actor.ID))
	}
	return nil
}

func (r *actorRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("actor_id = ?", id).Delete(&models.MovieActor{}).Error; err != nil {
			return fmt.Errorf("failed to unlink movies: %w", err)
		}
		res := tx.Delete(&models.Actor{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NotFound("actors.delete", fmt.Errorf("actor %d not found", id))
		}
		return nil
	})
}

func (r *actorRepository) FindByID(ctx context.Context, id uint) (*models.Actor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var actor models.Actor
	err := r.db.WithContext(ctx).First(&actor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("actors.find", fmt.Errorf("actor %d not found", id))
		}
		return nil, apperror.Internal("actors.find", err)
	}
	return &actor, nil
}

func (r *actorRepository) FindAll(ctx context.Context) ([]models.Actor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var actors []models.Actor
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&actors).Error; err != nil {
		return nil, apperror.Internal("actors.list", err)
	}
	return actors, nil
}
