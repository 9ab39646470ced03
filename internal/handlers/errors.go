package handlers

import (
	"errors"

	"casting-agency/internal/apperror"
	"casting-agency/internal/auth"
	"casting-agency/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorHandler renders every error returned by a handler or middleware as the
// JSON error envelope.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var authErr *auth.AuthError
		if errors.As(err, &authErr) {
			log.WithFields(logrus.Fields{
				"method": c.Method(),
				"path":   c.Path(),
				"status": fiber.StatusUnauthorized,
				"code":   authErr.Code,
				"kind":   authErr.Kind().String(),
			}).Info("Request rejected by auth guard")
			return utils.ErrorWithMessageResponse(c, fiber.StatusUnauthorized, authErr)
		}

		code := statusOf(err)
		entry := log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		})
		switch {
		case code >= fiber.StatusInternalServerError:
			entry.Error("Request error")
		case code == fiber.StatusUnprocessableEntity:
			entry.Warn("Request error")
		default:
			entry.Debug("Request error")
		}

		return utils.ErrorResponse(c, code)
	}
}

func statusOf(err error) int {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr.Kind.Status()
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	return fiber.StatusInternalServerError
}
