package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// internalError responde 500 con un mensaje genérico. El detalle del error va
// solo al log: los cuerpos de error nunca exponen SQL ni estado interno.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno atendiendo el request")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error interno del servidor",
	})
}
