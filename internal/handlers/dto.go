package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"casting-agency/internal/apperror"
	"casting-agency/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var errEmptyPatch = errors.New("request body has no fields to update")

type CreateMovieRequest struct {
	Title       *string `json:"title" validate:"required,min=1,max=100" example:"The Casting Call"`
	ReleaseDate *string `json:"release_date" validate:"required" example:"1999-01-01"`
}

type UpdateMovieRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=100" example:"The Casting Call"`
	ReleaseDate *string `json:"release_date" example:"1999-01-01"`
}

type CreateActorRequest struct {
	Name   *string  `json:"name" validate:"required,min=1,max=120" example:"Jane Doe"`
	Age    *FlexInt `json:"age" validate:"required,min=0" swaggertype:"integer" example:"30"`
	Gender *string  `json:"gender" validate:"required,min=1,max=120" example:"female"`
}

type UpdateActorRequest struct {
	Name   *string  `json:"name" validate:"omitempty,min=1,max=120" example:"Jane Doe"`
	Age    *FlexInt `json:"age" validate:"omitempty,min=0" swaggertype:"integer" example:"30"`
	Gender *string  `json:"gender" validate:"omitempty,min=1,max=120" example:"female"`
}

type LinkActorRequest struct {
	ActorID *uint `json:"actor_id" validate:"required" example:"1"`
	MovieID *uint `json:"movie_id" validate:"required" example:"1"`
}

type MovieListResponse struct {
	Success bool               `json:"success" example:"true"`
	Movies  []models.MovieView `json:"movies"`
}

type MovieIDResponse struct {
	Success bool `json:"success" example:"true"`
	MovieID uint `json:"movie_id" example:"1"`
}

type ActorListResponse struct {
	Success bool               `json:"success" example:"true"`
	Actors  []models.ActorView `json:"actors"`
}

type ActorIDResponse struct {
	Success bool `json:"success" example:"true"`
	ActorID uint `json:"actor_id" example:"1"`
}

type LinkActorResponse struct {
	Success bool `json:"success" example:"true"`
	ActorID uint `json:"actor_id" example:"1"`
	MovieID uint `json:"movie_id" example:"1"`
}

// FlexInt decodes from a JSON integer or from a string holding one.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected integer, got %s", data)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("expected integer, got %q", s)
	}
	*f = FlexInt(n)
	return nil
}

func (f *FlexInt) IntPtr() *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// decodeBody parses a JSON object body into dst and returns the keys that were
// present. Empty, malformed or non-object bodies are unprocessable; so is a
// value of the wrong type.
func decodeBody(c *fiber.Ctx, op string, dst interface{}) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := c.BodyParser(&fields); err != nil {
		return nil, apperror.Processing(op, fmt.Errorf("invalid request body: %w", err))
	}
	if fields == nil {
		return nil, apperror.Processing(op, errors.New("request body must be a JSON object"))
	}
	if err := c.BodyParser(dst); err != nil {
		return nil, apperror.Processing(op, fmt.Errorf("invalid request body: %w", err))
	}
	return fields, nil
}

func validateRequest(op string, req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return apperror.Validation(op, err)
	}
	return nil
}

func parseReleaseDate(op, value string) (time.Time, error) {
	date, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, apperror.Processing(op, fmt.Errorf("release_date must be YYYY-MM-DD: %w", err))
	}
	return date, nil
}

// pathID reads the :id route parameter. Ids that do not fit are treated as absent.
func pathID(c *fiber.Ctx, op string) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperror.NotFound(op, fmt.Errorf("invalid id %q", c.Params("id")))
	}
	return uint(id), nil
}
