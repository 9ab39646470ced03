package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"casting-agency/internal/apperror"
	"casting-agency/internal/database"
	"casting-agency/internal/database/databasetest"
	"casting-agency/internal/models"
	"casting-agency/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// countingActorRepo records every call so tests can assert the actor table was not touched.
type countingActorRepo struct {
	repository.ActorRepository
	calls int
}

func (r *countingActorRepo) FindByID(ctx context.Context, id uint) (*models.Actor, error) {
	r.calls++
	return r.ActorRepository.FindByID(ctx, id)
}

func newServices(t *testing.T) (MovieService, ActorService, *countingActorRepo, *database.Database) {
	t.Helper()
	db := databasetest.New(t)
	movieRepo := repository.NewMovieRepository(db)
	actorRepo := &countingActorRepo{ActorRepository: repository.NewActorRepository(db)}
	log := quietLogger()
	return NewMovieService(movieRepo, actorRepo, log), NewActorService(actorRepo, log), actorRepo, db
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestCreateMovieIgnoresCallerID(t *testing.T) {
	movies, _, _, _ := newServices(t)
	ctx := context.Background()

	movie := &models.Movie{ID: 42, Title: "T", ReleaseDate: mustDate(t, "1999-01-01")}
	require.NoError(t, movies.CreateMovie(ctx, movie))
	assert.NotEqual(t, uint(42), movie.ID)

	list, err := movies.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.MovieView{ID: movie.ID, Title: "T", ReleaseDate: "1999-01-01"}, list[0].View())
}

func TestUpdateMoviePartial(t *testing.T) {
	movies, _, _, _ := newServices(t)
	ctx := context.Background()

	movie := &models.Movie{Title: "Original", ReleaseDate: mustDate(t, "2000-01-01")}
	require.NoError(t, movies.CreateMovie(ctx, movie))

	newDate := mustDate(t, "2001-12-31")
	updated, err := movies.UpdateMovie(ctx, movie.ID, models.MoviePatch{ReleaseDate: &newDate})
	require.NoError(t, err)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "2001-12-31", updated.View().ReleaseDate)

	_, err = movies.UpdateMovie(ctx, movie.ID+100, models.MoviePatch{})
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteMovieTwice(t *testing.T) {
	movies, _, _, _ := newServices(t)
	ctx := context.Background()

	movie := &models.Movie{Title: "Gone", ReleaseDate: mustDate(t, "2000-01-01")}
	require.NoError(t, movies.CreateMovie(ctx, movie))

	require.NoError(t, movies.DeleteMovie(ctx, movie.ID))
	assert.True(t, apperror.IsNotFound(movies.DeleteMovie(ctx, movie.ID)))
}

func TestLinkActorMissingMovieSkipsActorLookup(t *testing.T) {
	movies, actors, actorRepo, _ := newServices(t)
	ctx := context.Background()

	actor := &models.Actor{Name: "Jane", Age: 30, Gender: "female"}
	require.NoError(t, actors.CreateActor(ctx, actor))
	actorRepo.calls = 0

	err := movies.LinkActor(ctx, 999, actor.ID)
	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, actorRepo.calls)
}

func TestLinkActorMissingActor(t *testing.T) {
	movies, _, actorRepo, _ := newServices(t)
	ctx := context.Background()

	movie := &models.Movie{Title: "Cast", ReleaseDate: mustDate(t, "2000-01-01")}
	require.NoError(t, movies.CreateMovie(ctx, movie))

	err := movies.LinkActor(ctx, movie.ID, 999)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, 1, actorRepo.calls)
}

func TestLinkActorKeepsExistingCast(t *testing.T) {
	movies, actors, _, db := newServices(t)
	ctx := context.Background()

	movie := &models.Movie{Title: "Cast", ReleaseDate: mustDate(t, "2000-01-01")}
	require.NoError(t, movies.CreateMovie(ctx, movie))
	first := &models.Actor{Name: "First", Age: 30, Gender: "female"}
	second := &models.Actor{Name: "Second", Age: 35, Gender: "male"}
	require.NoError(t, actors.CreateActor(ctx, first))
	require.NoError(t, actors.CreateActor(ctx, second))

	require.NoError(t, movies.LinkActor(ctx, movie.ID, first.ID))
	require.NoError(t, movies.LinkActor(ctx, movie.ID, second.ID))

	assert.ElementsMatch(t, []uint{first.ID, second.ID}, databasetest.CastIDs(t, db, movie.ID))
}

func TestActorLifecycle(t *testing.T) {
	_, actors, _, _ := newServices(t)
	ctx := context.Background()

	actor := &models.Actor{Name: "Jane", Age: 30, Gender: "female"}
	require.NoError(t, actors.CreateActor(ctx, actor))

	age := 35
	updated, err := actors.UpdateActor(ctx, actor.ID, models.ActorPatch{Age: &age})
	require.NoError(t, err)
	assert.Equal(t, 35, updated.Age)
	assert.Equal(t, "Jane", updated.Name)

	require.NoError(t, actors.DeleteActor(ctx, actor.ID))
	err = actors.DeleteActor(ctx, actor.ID)
	assert.True(t, apperror.IsNotFound(err))
	assert.False(t, errors.Is(err, context.DeadlineExceeded))
}

type failingMovieRepo struct {
	repository.MovieRepository
	err error
}

func (r failingMovieRepo) Create(context.Context, *models.Movie) error { return r.err }

func (r failingMovieRepo) Delete(context.Context, uint) error { return r.err }

func TestWriteFailuresAreProcessing(t *testing.T) {
	_, _, actorRepo, db := newServices(t)
	ctx := context.Background()
	realRepo := repository.NewMovieRepository(db)

	movie := &models.Movie{Title: "Kept", ReleaseDate: mustDate(t, "2000-01-01")}
	require.NoError(t, realRepo.Create(ctx, movie))

	broken := NewMovieService(failingMovieRepo{MovieRepository: realRepo, err: errors.New("disk full")}, actorRepo, quietLogger())
	err := broken.CreateMovie(ctx, &models.Movie{Title: "T", ReleaseDate: mustDate(t, "2000-01-01")})
	assert.Equal(t, apperror.KindProcessing, apperror.KindOf(err))

	err = broken.DeleteMovie(ctx, movie.ID)
	assert.Equal(t, apperror.KindProcessing, apperror.KindOf(err))

	gone := NewMovieService(failingMovieRepo{MovieRepository: realRepo, err: apperror.NotFound("movies.delete", nil)}, actorRepo, quietLogger())
	err = gone.DeleteMovie(ctx, movie.ID)
	assert.True(t, apperror.IsNotFound(err))
}
