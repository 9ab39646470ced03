package handlers

import (
	"casting-agency/internal/apperror"
	"casting-agency/internal/models"
	"casting-agency/internal/services"
	"casting-agency/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// ListMovies godoc
// @Summary List movies
// @Description List every movie ordered by id
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MovieListResponse "List of movies"
// @Failure 401 {object} utils.ErrorResponseBody "Missing or insufficient token"
// @Failure 500 {object} utils.ErrorResponseBody "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c *fiber.Ctx) error {
	ctx := c.UserContext()

	movies, err := h.service.ListMovies(ctx)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{"movies": models.MovieViews(movies)})
}

// CreateMovie godoc
// @Summary Create a movie
// @Description Create a movie from a title and a YYYY-MM-DD release date
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param movie body CreateMovieRequest true "Movie"
// @Success 200 {object} MovieIDResponse "Movie created"
// @Failure 400 {object} utils.ErrorResponseBody "Missing or invalid field"
// @Failure 401 {object} utils.ErrorResponseBody "Missing or insufficient token"
// @Failure 422 {object} utils.ErrorResponseBody "Unreadable body or date"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	const op = "handlers.CreateMovie"
	ctx := c.UserContext()

	var req CreateMovieRequest
	if _, err := decodeBody(c, op, &req); err != nil {
		return err
	}
	if err := validateRequest(op, &req); err != nil {
		return err
	}

	releaseDate, err := parseReleaseDate(op, *req.ReleaseDate)
	if err != nil {
		return err
	}

	movie := &models.Movie{
		Title:       *req.Title,
		ReleaseDate: releaseDate,
	}
	if err := h.service.CreateMovie(ctx, movie); err != nil {
		return err
	}

	h.logger.WithField("movie_id", movie.ID).Info("Movie created")
	return utils.SuccessResponse(c, fiber.Map{"movie_id": movie.ID})
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Change any of title and release_date. The body must not be empty.
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Param movie body UpdateMovieRequest true "Fields to change"
// @Success 200 {object} MovieIDResponse "Movie updated"
// @Failure 400 {object} utils.ErrorResponseBody "Invalid field"
// @Failure 401 {object} utils.ErrorResponseBody "Missing or insufficient token"
// @Failure 404 {object} utils.ErrorResponseBody "Movie not found"
// @Failure 422 {object} utils.ErrorResponseBody "Empty or unreadable body"
// @Router /movies/{id} [patch]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	const op = "handlers.UpdateMovie"
	ctx := c.UserContext()

	var req UpdateMovieRequest
	fields, err := decodeBody(c, op, &req)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return apperror.Processing(op, errEmptyPatch)
	}

	id, err := pathID(c, op)
	if err != nil {
		return err
	}
	if err := validateRequest(op, &req); err != nil {
		return err
	}

	patch := models.MoviePatch{Title: req.Title}
	if req.ReleaseDate != nil {
		releaseDate, err := parseReleaseDate(op, *req.ReleaseDate)
		if err != nil {
			return err
		}
		patch.ReleaseDate = &releaseDate
	}

	movie, err := h.service.UpdateMovie(ctx, id, patch)
	if err != nil {
		return err
	}

	h.logger.WithField("movie_id", movie.ID).Info("Movie updated")
	return utils.SuccessResponse(c, fiber.Map{"movie_id": movie.ID})
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Delete a movie and its cast links
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 200 {object} MovieIDResponse "Movie deleted"
// @Failure 401 {object} utils.ErrorResponseBody "Missing or insufficient token"
// @Failure 404 {object} utils.ErrorResponseBody "Movie not found"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	const op = "handlers.DeleteMovie"
	ctx := c.UserContext()

	id, err := pathID(c, op)
	if err != nil {
		return err
	}

	if err := h.service.DeleteMovie(ctx, id); err != nil {
		return err
	}

	h.logger.WithField("movie_id", id).Info("Movie deleted")
	return utils.SuccessResponse(c, fiber.Map{"movie_id": id})
}

// LinkActor godoc
// @Summary Add an actor to a movie's cast
// @Description Link an existing actor to an existing movie. Linking twice is a no-op.
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param link body LinkActorRequest true "Actor and movie ids"
// @Success 200 {object} LinkActorResponse "Actor linked"
// @Failure 400 {object} utils.ErrorResponseBody "Missing id"
// @Failure 401 {object} utils.ErrorResponseBody "Missing or insufficient token"
// @Failure 404 {object} utils.ErrorResponseBody "Movie or actor not found"
// @Failure 422 {object} utils.ErrorResponseBody "Unreadable body"
// @Router /movies/actors [post]
func (h *MovieHandler) LinkActor(c *fiber.Ctx) error {
	const op = "handlers.LinkActor"
	ctx := c.UserContext()

	var req LinkActorRequest
	if _, err := decodeBody(c, op, &req); err != nil {
		return err
	}
	if err := validateRequest(op, &req); err != nil {
		return err
	}

	if err := h.service.LinkActor(ctx, *req.MovieID, *req.ActorID); err != nil {
		return err
	}

	h.logger.WithFields(logrus.Fields{
		"movie_id": *req.MovieID,
		"actor_id": *req.ActorID,
	}).Info("Actor linked to movie")
	return utils.SuccessResponse(c, fiber.Map{
		"actor_id": *req.ActorID,
		"movie_id": *req.MovieID,
	})
}
