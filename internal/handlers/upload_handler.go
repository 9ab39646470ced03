package handlers

import (
	"fmt"

	"casting-agency/internal/apperror"
	"casting-agency/internal/services"
	"casting-agency/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	mediaService *services.MediaService
	logger       *logrus.Logger
}

func NewUploadHandler(mediaService *services.MediaService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		mediaService: mediaService,
		logger:       logger,
	}
}

type UploadResponse struct {
	Success bool                     `json:"success" example:"true"`
	Upload  services.PresignedUpload `json:"upload"`
}

// GetPresignedURL godoc
// @Summary Get presigned URL for an upload
// @Description Reserve a unique object name for a movie poster or actor headshot and sign a PUT for it
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param kind query string true "Media kind" Enums(movies, actors)
// @Param filename query string true "Original file name"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} utils.ErrorResponseBody "Missing or invalid parameter"
// @Failure 401 {object} utils.ErrorResponseBody "Missing or insufficient token"
// @Failure 500 {object} utils.ErrorResponseBody "Internal server error"
// @Router /uploads/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	const op = "handlers.GetPresignedURL"

	kind := c.Query("kind")
	if !services.MediaKinds[kind] {
		return apperror.Validation(op, fmt.Errorf("unknown media kind %q", kind))
	}

	filename := c.Query("filename")
	if filename == "" {
		return apperror.Validation(op, fmt.Errorf("filename is required"))
	}

	upload, err := h.mediaService.GeneratePresignedURL(c.UserContext(), kind, filename)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{"upload": upload})
}
