package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	appauthz "github.com/jhoicas/Backoffice-api/internal/application/authz"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	domauthz "github.com/jhoicas/Backoffice-api/internal/domain/authz"
	"github.com/jhoicas/Backoffice-api/pkg/metrics"
)

// RequirePermission devuelve un middleware Fiber que aplica la decisión de
// autorización de tres niveles sobre la ruta. Group y handler se fijan al
// registrar la ruta; el método se toma del request. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalUserID).
//
// Comportamiento:
//   - 401 NO_ROLES       → el usuario no tiene ningún rol asignado.
//   - 401 NO_PERMISSION  → ningún candidato coincide con un permiso activo.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func RequirePermission(authzUC *appauthz.AuthorizeUseCase, met *metrics.APIMetrics, group, handler string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}

		route := domauthz.Route{Group: group, Method: c.Method(), Handler: handler}
		err := authzUC.Authorize(userID, route)
		switch {
		case err == nil:
			if met != nil {
				met.AuthzDecisions.WithLabelValues("allowed").Inc()
			}
			return c.Next()
		case errors.Is(err, domain.ErrNoRolesAssigned):
			if met != nil {
				met.AuthzDecisions.WithLabelValues("denied_no_roles").Inc()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "NO_ROLES",
				Message: "el usuario no tiene roles asignados",
			})
		case errors.Is(err, domain.ErrNoPermission):
			if met != nil {
				met.AuthzDecisions.WithLabelValues("denied_no_permission").Inc()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "NO_PERMISSION",
				Message: "el usuario no tiene permiso para esta operación",
			})
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "AUTHZ_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}
	}
}
