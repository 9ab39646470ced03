package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponseBody is the envelope every failed request is answered with.
type ErrorResponseBody struct {
	Success bool        `json:"success" example:"false"`
	Error   int         `json:"error" example:"404"`
	Message interface{} `json:"message" swaggertype:"string" example:"Resource not found"`
}

var statusMessages = map[int]string{
	fiber.StatusBadRequest:          "Bad request",
	fiber.StatusUnauthorized:        "Unauthorized",
	fiber.StatusForbidden:           "Forbidden",
	fiber.StatusNotFound:            "Resource not found",
	fiber.StatusMethodNotAllowed:    "Method not allowed",
	fiber.StatusUnprocessableEntity: "Unprocessable entity",
	fiber.StatusInternalServerError: "Internal server error",
}

// StatusMessage returns the fixed message for code and the code actually used.
// Codes outside the table collapse to 500.
func StatusMessage(code int) (int, string) {
	if msg, ok := statusMessages[code]; ok {
		return code, msg
	}
	return fiber.StatusInternalServerError, statusMessages[fiber.StatusInternalServerError]
}

// SuccessResponse sends a 200 with success=true merged into fields.
func SuccessResponse(c *fiber.Ctx, fields fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// ErrorResponse sends the fixed-table error envelope for code.
func ErrorResponse(c *fiber.Ctx, code int) error {
	code, msg := StatusMessage(code)
	return c.Status(code).JSON(ErrorResponseBody{
		Success: false,
		Error:   code,
		Message: msg,
	})
}

// ErrorWithMessageResponse sends an error envelope carrying a caller-supplied
// message instead of the fixed text.
func ErrorWithMessageResponse(c *fiber.Ctx, code int, message interface{}) error {
	return c.Status(code).JSON(ErrorResponseBody{
		Success: false,
		Error:   code,
		Message: message,
	})
}
