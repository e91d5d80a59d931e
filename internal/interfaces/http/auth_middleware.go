package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Backoffice-api/internal/application/authz"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/pkg/jwt"
)

// Locals keys para identidad y scope en Fiber.
const (
	LocalUserID     = "user_id"
	LocalStoreScope = "store_scope"
)

// AuthMiddleware valida el Bearer Token JWT, carga el usuario y deja su
// UserID y StoreScope en c.Locals. El scope se recalcula en cada request
// desde las membresías vigentes, no desde el token.
func AuthMiddleware(jwtSecret string, authzUC *authz.AuthorizeUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		user, scope, err := authzUC.CurrentUser(userID)
		if err != nil {
			if err == domain.ErrUnauthorized {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario del token no existe"})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AUTH_CHECK_FAILED", Message: "no se pudo resolver el usuario, intente más tarde"})
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalStoreScope, scope)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetScope devuelve el StoreScope del contexto (después del middleware de auth).
func GetScope(c *fiber.Ctx) domain.StoreScope {
	v := c.Locals(LocalStoreScope)
	if v == nil {
		return domain.StoreScope{}
	}
	s, _ := v.(domain.StoreScope)
	return s
}
