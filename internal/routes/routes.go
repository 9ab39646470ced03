package routes

import (
	"casting-agency/internal/auth"
	"casting-agency/internal/handlers"

	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

const (
	ScopeGetMovies        = "get:movies"
	ScopeGetActors        = "get:actors"
	ScopePostMovies       = "post:movies"
	ScopePostActors       = "post:actors"
	ScopePostMoviesActors = "post:movies_actors"
	ScopePatchMovies      = "patch:movies"
	ScopePatchActors      = "patch:actors"
	ScopeDeleteMovies     = "delete:movies"
	ScopeDeleteActors     = "delete:actors"
	ScopePostMedia        = "post:media"
)

type Handlers struct {
	Movie  *handlers.MovieHandler
	Actor  *handlers.ActorHandler
	Upload *handlers.UploadHandler // nil when media storage is not configured
	Health fiber.Handler
}

func Setup(app *fiber.App, h Handlers, guard *auth.Guard) {
	// Public routes
	app.Get("/health", h.Health)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Movie routes
	movies := app.Group("/movies")
	{
		movies.Get("/", guard.Require(ScopeGetMovies), h.Movie.ListMovies)
		movies.Post("/", guard.Require(ScopePostMovies), h.Movie.CreateMovie)
		movies.Post("/actors", guard.Require(ScopePostMoviesActors), h.Movie.LinkActor)
		movies.Patch("/:id<int>", guard.Require(ScopePatchMovies), h.Movie.UpdateMovie)
		movies.Delete("/:id<int>", guard.Require(ScopeDeleteMovies), h.Movie.DeleteMovie)
	}

	// Actor routes
	actors := app.Group("/actors")
	{
		actors.Get("/", guard.Require(ScopeGetActors), h.Actor.ListActors)
		actors.Post("/", guard.Require(ScopePostActors), h.Actor.CreateActor)
		actors.Patch("/:id<int>", guard.Require(ScopePatchActors), h.Actor.UpdateActor)
		actors.Delete("/:id<int>", guard.Require(ScopeDeleteActors), h.Actor.DeleteActor)
	}

	if h.Upload != nil {
		uploads := app.Group("/uploads")
		{
			uploads.Get("/presign", guard.Require(ScopePostMedia), h.Upload.GetPresignedURL)
		}
	}
}
