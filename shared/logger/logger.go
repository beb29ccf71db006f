package logger

import (
	"context"
	"hotel/config"
	"hotel/shared/constant"
	"io"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(output(os.Getenv("SERVER_ENV")))
	log.Trace().Msg("Zerolog initialized.")
}

// output writes plain JSON lines in production and a human readable console format elsewhere.
func output(env string) io.Writer {
	if env == constant.ServerEnvProduction {
		return os.Stdout
	}

	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// FromContext returns the global logger enriched with the request id and the caller's user id, when present.
func FromContext(ctx context.Context) *zerolog.Logger {
	logCtx := log.With()

	if reqID := middleware.GetReqID(ctx); reqID != "" {
		logCtx = logCtx.Str("request_id", reqID)
	}

	if userID, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && userID != "" {
		logCtx = logCtx.Str("user_id", userID)
	}

	l := logCtx.Logger()

	return &l
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
