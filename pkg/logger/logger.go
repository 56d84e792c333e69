// Package logger configura el log estructurado del servicio de nómina.
// Todo sale por stdout: JSON en producción para el colector, consola
// legible en desarrollo.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env   string // "development" o "dev" activan la salida de consola
	Level string // trace, debug, info, warn, error; otro valor cae en info
}

// Logger envuelve al zerolog del servicio para inyectarlo en el wiring.
type Logger struct {
	zl zerolog.Logger
}

var niveles = map[string]zerolog.Level{
	"trace": zerolog.TraceLevel,
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// New construye el logger y lo deja también como logger global de zerolog,
// que es el que usan los paquetes que no reciben el wrapper (auditoría,
// traducción de errores HTTP).
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" || cfg.Env == "dev" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	nivel, ok := niveles[cfg.Level]
	if !ok {
		nivel = zerolog.InfoLevel
	}
	zl := zerolog.New(w).Level(nivel).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos, p.ej. el nombre del componente.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}
