package schema

import (
	"errors"

	"schema-engine/core/reconcile"
	"schema-engine/core/registry"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps an error to the HTTP status returned for it.
func statusFor(err error) int {
	switch reconcile.KindOf(err) {
	case reconcile.KindInvalidInput:
		return fiber.StatusBadRequest
	case reconcile.KindAuthorization:
		return fiber.StatusForbidden
	case reconcile.KindReferenceableNotFound:
		return fiber.StatusNotFound
	case reconcile.KindUnsupportedOperation:
		return fiber.StatusNotImplemented
	}
	if errors.Is(err, registry.ErrEmptyName) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, err error) error {
	body := fiber.Map{"error": err.Error()}
	if kind := reconcile.KindOf(err); kind != 0 {
		body["kind"] = kind.String()
	}
	return c.Status(statusFor(err)).JSON(body)
}
