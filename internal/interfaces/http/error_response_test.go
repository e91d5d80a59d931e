package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// El cuerpo del 500 es genérico: el detalle (SQL, constraints, drivers) queda
// solo en el log del servidor.
func TestInternalError_NoFiltraDetalle(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return internalError(c, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "INTERNAL", out.Code)
	assert.Equal(t, "error interno del servidor", out.Message)
	assert.NotContains(t, string(body), "users_email_key")
	assert.NotContains(t, string(body), "pq:")
}
