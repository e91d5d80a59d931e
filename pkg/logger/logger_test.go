package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// Sin nivel configurado el default depende del entorno.
func TestNew_NivelPorEntorno(t *testing.T) {
	l := logger.New(logger.Config{Env: "development"})
	assert.Equal(t, zerolog.DebugLevel, l.Zerolog().GetLevel())

	l = logger.New(logger.Config{Env: "production"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

// Un nivel explícito reconocible gana sobre el default del entorno.
func TestNew_NivelExplicito(t *testing.T) {
	l := logger.New(logger.Config{Env: "development", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())

	l = logger.New(logger.Config{Env: "production", Level: "TRACE"})
	assert.Equal(t, zerolog.TraceLevel, l.Zerolog().GetLevel())
}

// Un nivel desconocido no tumba el proceso: cae al default del entorno.
func TestNew_NivelDesconocido(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "ruidoso"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}
