package handlers

import (
	"casting-agency/internal/apperror"
	"casting-agency/internal/models"
	"casting-agency/internal/services"
	"casting-agency/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ActorHandler struct {
	service services.ActorService
	logger  *logrus.Logger
}

func NewActorHandler(service services.ActorService, logger *logrus.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		logger:  logger,
	}
}

// ListActors godoc
// @Summary List actors
// @Description List every actor ordered by id
// @Tags actors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ActorListResponse "List of actors"
// @Failure 401 {object} utils.ErrorResponseBody "Missing or insufficient token"
// @Failure 500 {object} utils.ErrorResponseBody "Internal server error"
// @Router /actors [get]
func (h *ActorHandler) ListActors(c *fiber.Ctx) error {
	ctx := c.UserContext()

	actors, err := h.service.ListActors(ctx)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{"actors": models.ActorViews(actors)})
}

// CreateActor godoc
// @Summary Create an actor
// @Description Create an actor. Age may be sent as a number or a numeric string.
// @Tags actors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param actor body CreateActorRequest true "Actor"
// @Success 200 {object} ActorIDResponse "Actor created"
// @Failure 400 {object} utils.ErrorResponseBody "Missing or invalid field"
// @Failure 401 {object} utils.ErrorResponseBody "Missing or insufficient token"
// @Failure 422 {object} utils.ErrorResponseBody "Unreadable body or age"
// @Router /actors [post]
func (h *ActorHandler) CreateActor(c *fiber.Ctx) error {
	const op = "handlers.CreateActor"
	ctx := c.UserContext()

	var req CreateActorRequest
	if _, err := decodeBody(c, op, &req); err != nil {
		return err
	}
	if err := validateRequest(op, &req); err != nil {
		return err
	}

	actor := &models.Actor{
		Name:   *req.Name,
		Age:    int(*req.Age),
		Gender: *req.Gender,
	}
	if err := h.service.CreateActor(ctx, actor); err != nil {
		return err
	}

	h.logger.WithField("actor_id", actor.ID).Info("Actor created")
	return utils.SuccessResponse(c, fiber.Map{"actor_id": actor.ID})
}

// UpdateActor godoc
// @Summary Update an actor
// @Description Change any of name, age and gender. The body must not be empty.
// @Tags actors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Actor ID"
// @Param actor body UpdateActorRequest true "Fields to change"
// @Success 200 {object} ActorIDResponse "Actor updated"
// @Failure 400 {object} utils.ErrorResponseBody "Invalid field"
// @Failure 401 {object} utils.ErrorResponseBody "Missing or insufficient token"
// @Failure 404 {object} utils.ErrorResponseBody "Actor not found"
// @Failure 422 {object} utils.ErrorResponseBody "Empty or unreadable body"
// @Router /actors/{id} [patch]
func (h *ActorHandler) UpdateActor(c *fiber.Ctx) error {
	const op = "handlers.UpdateActor"
	ctx := c.UserContext()

	var req UpdateActorRequest
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

	actor, err := h.service.UpdateActor(ctx, id, models.ActorPatch{
		Name:   req.Name,
		Age:    req.Age.IntPtr(),
		Gender: req.Gender,
	})
	if err != nil {
		return err
	}

	h.logger.WithField("actor_id", actor.ID).Info("Actor updated")
	return utils.SuccessResponse(c, fiber.Map{"actor_id": actor.ID})
}

// DeleteActor godoc
// @Summary Delete an actor
// @Description Delete an actor and remove them from every cast
// @Tags actors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Actor ID"
// @Success 200 {object} ActorIDResponse "Actor deleted"
// @Failure 401 {object} utils.ErrorResponseBody "Missing or insufficient token"
// @Failure 404 {object} utils.ErrorResponseBody "Actor not found"
// @Router /actors/{id} [delete]
func (h *ActorHandler) DeleteActor(c *fiber.Ctx) error {
	const op = "handlers.DeleteActor"
	ctx := c.UserContext()

	id, err := pathID(c, op)
	if err != nil {
		return err
	}

	if err := h.service.DeleteActor(ctx, id); err != nil {
		return err
	}

	h.logger.WithField("actor_id", id).Info("Actor deleted")
	return utils.SuccessResponse(c, fiber.Map{"actor_id": id})
}
