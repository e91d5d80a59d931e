package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger de la aplicación.
type Config struct {
	Env     string // development -> consola legible; resto -> JSON
	Level   string // trace..error; vacío = según el entorno
	Service string // se adjunta como campo fijo en cada evento
}

// Logger logger estructurado del servicio, basado en zerolog.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger del proceso. En development escribe consola legible
// con nivel debug por defecto; en cualquier otro entorno escribe JSON con
// nivel info. Si Service viene, todos los eventos lo llevan como campo.
// También reapunta el logger global de zerolog, de modo que el código que usa
// zerolog/log directamente emite con la misma configuración.
func New(cfg Config) *Logger {
	development := cfg.Env == "development"

	var w io.Writer = os.Stdout
	if development {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	builder := zerolog.New(w).Level(levelFor(cfg.Level, development)).With().Timestamp()
	if cfg.Service != "" {
		builder = builder.Str("service", cfg.Service)
	}
	zl := builder.Logger()

	log.Logger = zl

	return &Logger{zl: zl}
}

// levelFor resuelve el nivel efectivo: el configurado si es reconocible, o el
// default del entorno. Un valor desconocido cae al default en vez de fallar.
func levelFor(s string, development bool) zerolog.Level {
	if lvl, err := zerolog.ParseLevel(strings.ToLower(s)); err == nil && s != "" {
		return lvl
	}
	if development {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un sublogger con campos fijos adicionales.
func (l *Logger) With() zerolog.Context { return l.zl.With() }

// Zerolog expone el logger interno para integraciones que piden la API cruda.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }
