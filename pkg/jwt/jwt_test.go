package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/pkg/jwt"
)

const (
	testSecret = "secreto-de-prueba-suficientemente-largo"
	testUserID = "user-123"
	testIssuer = "backoffice-api"
)

// Round-trip: un token recién generado se valida y devuelve el mismo user_id.
func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, testUserID, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

// Un token expirado se rechaza aunque la firma sea válida.
func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, testUserID, testIssuer, -1)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, token)
	assert.Error(t, err, "un token vencido no debe validar")
}

// Firmado con otro secreto: la validación falla.
func TestParse_SecretIncorrecto(t *testing.T) {
	token, err := jwt.Generate("otro-secreto", testUserID, testIssuer, 60)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

// Secreto vacío: tanto generar como validar fallan explícitamente.
func TestSecretVacio(t *testing.T) {
	_, err := jwt.Generate("", testUserID, testIssuer, 60)
	assert.Error(t, err)

	_, err = jwt.Parse("", "cualquier.token.aqui")
	assert.Error(t, err)
}

// Un token bien firmado pero sin user_id no identifica a nadie.
func TestParse_SinUserID(t *testing.T) {
	claims := gojwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	token, err := raw.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

// Basura que no es un JWT.
func TestParse_TokenMalformado(t *testing.T) {
	_, err := jwt.Parse(testSecret, "no-es-un-token")
	assert.Error(t, err)
}
