package httperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Sentinel errors for the failure taxonomy. Usecases return these (wrapped
// with context via Wrap) and handlers map them to HTTP statuses with Respond.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicate       = errors.New("duplicate entry")
)

// Wrap attaches a human-readable message to a sentinel so errors.Is still
// matches the taxonomy.
func Wrap(sentinel error, msg string) error {
	return fmt.Errorf("%s: %w", msg, sentinel)
}

// Wrapf is Wrap with formatting.
func Wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, sentinel)...)
}

// StatusOf maps an error to its HTTP status. Anything outside the taxonomy
// is an internal failure.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrDuplicate):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// Response is the failure envelope: {"message": "..."}.
type Response struct {
	Message string `json:"message"`
}

// Respond writes the error envelope for err. Internal failures get a generic
// message in the body; the real error goes to the log only.
func Respond(c *fiber.Ctx, log *zap.Logger, err error) error {
	status := StatusOf(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Error("internal error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		msg = "internal server error"
	}
	return c.Status(status).JSON(Response{Message: msg})
}
