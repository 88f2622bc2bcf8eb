package serverutils

import (
	"errors"

	"idea-copilot-be/internal/service"
	"idea-copilot-be/pkg/ai/oracle"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts domain and oracle errors into JSON error
// responses with appropriate status codes.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, message := mapError(err)
		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}

func mapError(err error) (int, string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	switch {
	case errors.Is(err, service.ErrNotMember):
		return fiber.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrWorkspaceNotFound),
		errors.Is(err, service.ErrSeedNotFound),
		errors.Is(err, service.ErrItemNotFound):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrInvalidMode),
		errors.Is(err, service.ErrInvalidLens),
		errors.Is(err, service.ErrEmptyConversation):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrContentFlagged):
		return fiber.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, oracle.ErrEmptyInput):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, oracle.ErrNotConfigured):
		return fiber.StatusServiceUnavailable, err.Error()
	case errors.Is(err, oracle.ErrEmptyResponse),
		errors.Is(err, oracle.ErrUnparsableResponse):
		return fiber.StatusBadGateway, err.Error()
	}

	return fiber.StatusInternalServerError, "Internal server error"
}
