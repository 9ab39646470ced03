package repository

import (
	"context"
	"testing"
	"time"

	"casting-agency/internal/apperror"
	"casting-agency/internal/database/databasetest"
	"casting-agency/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestMovieRepositoryCRUD(t *testing.T) {
	db := databasetest.New(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	movie := &models.Movie{Title: "T", ReleaseDate: date(t, "1999-01-01")}
	require.NoError(t, repo.Create(ctx, movie))
	require.NotZero(t, movie.ID)

	found, err := repo.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", found.Title)
	assert.Equal(t, "1999-01-01", found.View().ReleaseDate)

	found.Title = "Renamed"
	require.NoError(t, repo.Update(ctx, found))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Renamed", all[0].Title)

	require.NoError(t, repo.Delete(ctx, movie.ID))
	_, err = repo.FindByID(ctx, movie.ID)
	assert.True(t, apperror.IsNotFound(err))

	err = repo.Delete(ctx, movie.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestActorRepositoryCRUD(t *testing.T) {
	db := databasetest.New(t)
	repo := NewActorRepository(db)
	ctx := context.Background()

	actor := &models.Actor{Name: "Jane", Age: 30, Gender: "female"}
	require.NoError(t, repo.Create(ctx, actor))

	found, err := repo.FindByID(ctx, actor.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ActorView{ID: actor.ID, Name: "Jane", Age: 30, Gender: "female"}, found.View())

	found.Age = 31
	require.NoError(t, repo.Update(ctx, found))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 31, all[0].Age)

	require.NoError(t, repo.Delete(ctx, actor.ID))
	_, err = repo.FindByID(ctx, actor.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestAddActorAppendsAndIsIdempotent(t *testing.T) {
	db := databasetest.New(t)
	movies := NewMovieRepository(db)
	actors := NewActorRepository(db)
	ctx := context.Background()

	movie := &models.Movie{Title: "Ensemble", ReleaseDate: date(t, "2010-05-05")}
	require.NoError(t, movies.Create(ctx, movie))
	a1 := &models.Actor{Name: "One", Age: 20, Gender: "male"}
	a2 := &models.Actor{Name: "Two", Age: 40, Gender: "female"}
	require.NoError(t, actors.Create(ctx, a1))
	require.NoError(t, actors.Create(ctx, a2))

	require.NoError(t, movies.AddActor(ctx, movie.ID, a1.ID))
	require.NoError(t, movies.AddActor(ctx, movie.ID, a2.ID))
	require.NoError(t, movies.AddActor(ctx, movie.ID, a1.ID))

	assert.Equal(t, []uint{a1.ID, a2.ID}, databasetest.CastIDs(t, db, movie.ID))
}

func TestAddActorRejectsDanglingReference(t *testing.T) {
	db := databasetest.New(t)
	movies := NewMovieRepository(db)
	ctx := context.Background()

	movie := &models.Movie{Title: "Solo", ReleaseDate: date(t, "2010-05-05")}
	require.NoError(t, movies.Create(ctx, movie))

	assert.Error(t, movies.AddActor(ctx, movie.ID, 999))
}

func TestDeleteClearsLinks(t *testing.T) {
	db := databasetest.New(t)
	movies := NewMovieRepository(db)
	actors := NewActorRepository(db)
	ctx := context.Background()

	movie := &models.Movie{Title: "Linked", ReleaseDate: date(t, "2015-01-01")}
	require.NoError(t, movies.Create(ctx, movie))
	actor := &models.Actor{Name: "Linked Actor", Age: 33, Gender: "male"}
	require.NoError(t, actors.Create(ctx, actor))
	require.NoError(t, movies.AddActor(ctx, movie.ID, actor.ID))

	require.NoError(t, actors.Delete(ctx, actor.ID))

	assert.Empty(t, databasetest.CastIDs(t, db, movie.ID))

	other := &models.Actor{Name: "Other", Age: 50, Gender: "female"}
	require.NoError(t, actors.Create(ctx, other))
	require.NoError(t, movies.AddActor(ctx, movie.ID, other.ID))
	require.NoError(t, movies.Delete(ctx, movie.ID))

	var count int64
	require.NoError(t, db.Model(&models.MovieActor{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateAfterDeleteDoesNotResurrect(t *testing.T) {
	db := databasetest.New(t)
	movies := NewMovieRepository(db)
	actors := NewActorRepository(db)
	ctx := context.Background()

	movie := &models.Movie{Title: "Gone", ReleaseDate: date(t, "2005-05-05")}
	require.NoError(t, movies.Create(ctx, movie))
	staleMovie, err := movies.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	require.NoError(t, movies.Delete(ctx, movie.ID))

	staleMovie.Title = "patched"
	err = movies.Update(ctx, staleMovie)
	assert.True(t, apperror.IsNotFound(err))
	_, err = movies.FindByID(ctx, movie.ID)
	assert.True(t, apperror.IsNotFound(err))

	actor := &models.Actor{Name: "Gone", Age: 40, Gender: "male"}
	require.NoError(t, actors.Create(ctx, actor))
	staleActor, err := actors.FindByID(ctx, actor.ID)
	require.NoError(t, err)
	require.NoError(t, actors.Delete(ctx, actor.ID))

	staleActor.Age = 41
	err = actors.Update(ctx, staleActor)
	assert.True(t, apperror.IsNotFound(err))
	all, err := actors.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateKeepsZeroAge(t *testing.T) {
	db := databasetest.New(t)
	actors := NewActorRepository(db)
	ctx := context.Background()

	actor := &models.Actor{Name: "Baby", Age: 1, Gender: "female"}
	require.NoError(t, actors.Create(ctx, actor))

	actor.Age = 0
	require.NoError(t, actors.Update(ctx, actor))

	found, err := actors.FindByID(ctx, actor.ID)
	require.NoError(t, err)
	assert.Zero(t, found.Age)
}

func TestReadFailuresAreInternal(t *testing.T) {
	db := databasetest.New(t)
	movies := NewMovieRepository(db)
	require.NoError(t, db.Close())

	_, err := movies.FindAll(context.Background())
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))

	_, err = movies.FindByID(context.Background(), 1)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}

func TestWithTimeoutKeepsExistingDeadline(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	want, _ := parent.Deadline()

	ctx, done := withTimeout(parent, time.Second)
	defer done()
	got, ok := ctx.Deadline()
	require.True(t, ok)
	assert.Equal(t, want, got)

	ctx2, done2 := withTimeout(context.Background(), time.Second)
	defer done2()
	_, ok = ctx2.Deadline()
	assert.True(t, ok)
}
