package serverutils

import (
	"errors"

	"agent-chat-be/internal/dto"
	"agent-chat-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into JSON error
// bodies with a matching status code.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var limitErr *entity.ChatLimitError
		if errors.As(err, &limitErr) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(dto.LimitExceededResponse{
				Success:   false,
				Code:      fiber.StatusTooManyRequests,
				Message:   limitErr.Error(),
				ErrorType: "chat_limit",
				Data:      dto.LimitExceededData{Limit: limitErr.Limit, Used: limitErr.Used},
			})
		}

		code, message := StatusFor(err)
		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}

// StatusFor maps an error to an HTTP status and a client-safe message.
func StatusFor(err error) (int, string) {
	var fiberErr *fiber.Error
	var validationErr *ValidationError

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, validationErr.Error()
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	case errors.Is(err, entity.ErrChatNotFound),
		errors.Is(err, entity.ErrAgentNotFound),
		errors.Is(err, entity.ErrMessageNotFound),
		errors.Is(err, entity.ErrNoArtifact):
		return fiber.StatusNotFound, rootMessage(err)
	case errors.Is(err, entity.ErrAgentInactive):
		return fiber.StatusConflict, entity.ErrAgentInactive.Error()
	case errors.Is(err, entity.ErrInvalidIcon):
		return fiber.StatusBadRequest, entity.ErrInvalidIcon.Error()
	case errors.Is(err, entity.ErrInvalidCredentials),
		errors.Is(err, entity.ErrUnauthenticated):
		return fiber.StatusUnauthorized, rootMessage(err)
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}

var knownErrors = []error{
	entity.ErrChatNotFound,
	entity.ErrAgentNotFound,
	entity.ErrMessageNotFound,
	entity.ErrNoArtifact,
	entity.ErrInvalidCredentials,
	entity.ErrUnauthenticated,
}

// rootMessage hides wrapping context (ids, queries) from clients.
func rootMessage(err error) string {
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return err.Error()
}
