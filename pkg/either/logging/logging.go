// Package logging observes two-track pipelines with zerolog. The combinator
// packages perform no I/O themselves; these helpers are plugged in as Tee
// side effects or called on terminal eithers by the host.
package logging

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/ib-77/either/pkg/either"
)

// New constructs a zerolog logger for pipeline observation. By default it
// writes to os.Stderr at the Info level.
func New(opts ...Option) zerolog.Logger {
	cfg := config{
		level:  zerolog.InfoLevel,
		output: os.Stderr,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	logCtx := zerolog.New(cfg.output).Level(cfg.level).With().Timestamp()
	if cfg.name != "" {
		logCtx = logCtx.Str("name", cfg.name)
	}

	return logCtx.Logger()
}

// Outcome logs the terminal either of a finished pipeline: Rights at Debug,
// Lefts at Error (cancellations at Warn).
func Outcome[L, R any](ctx context.Context, logger zerolog.Logger, e either.Either[L, R]) {
	either.MatchVoid(e,
		func(l L) {
			leftEvent(logger, l).Str("pipeline", Pipeline(ctx, defaultPipeline)).Msg("pipeline failed")
		},
		func(r R) {
			logger.Debug().Str("pipeline", Pipeline(ctx, defaultPipeline)).
				Interface("value", r).Msg("pipeline succeeded")
		})
}

// Errors logs every failure wrapped in an error-typed Left as its own
// event, flattening joined errors; Rights produce no output. Cancellations
// log at Warn, everything else at Error.
func Errors[R any](ctx context.Context, logger zerolog.Logger, e either.Either[error, R]) {
	either.MatchVoid(e,
		func(l error) {
			for _, err := range either.GetErrors(l) {
				if either.IsCancellationError(err) {
					logger.Warn().Err(err).
						Str("pipeline", Pipeline(ctx, defaultPipeline)).Msg("pipeline canceled")
					continue
				}
				logger.Error().Err(err).
					Str("pipeline", Pipeline(ctx, defaultPipeline)).Msg("pipeline error")
			}
		},
		func(r R) {})
}

// TeeRight returns a success-track side effect for Tee/DoubleTee stages
// that logs each Right value at Debug.
func TeeRight[R any](logger zerolog.Logger) func(ctx context.Context, r R) {
	return func(ctx context.Context, r R) {
		logger.Debug().Str("pipeline", Pipeline(ctx, defaultPipeline)).
			Interface("value", r).Msg("right")
	}
}

// TeeLeft returns a failure-track side effect for DoubleTee stages that
// logs each Left value.
func TeeLeft[L any](logger zerolog.Logger) func(ctx context.Context, l L) {
	return func(ctx context.Context, l L) {
		leftEvent(logger, l).Str("pipeline", Pipeline(ctx, defaultPipeline)).Msg("left")
	}
}

// leftEvent picks the level and fields for a Left value. Error-typed Lefts
// get proper error fields, with joined errors flattened and cancellations
// demoted to Warn; anything else is logged verbatim at Error.
func leftEvent[L any](logger zerolog.Logger, l L) *zerolog.Event {
	err, ok := any(l).(error)
	if !ok || either.IsNil(err) {
		return logger.Error().Interface("fault", l)
	}

	if either.IsCancellationError(err) {
		return logger.Warn().Err(err)
	}

	if errs := either.GetErrors(err); len(errs) > 1 {
		return logger.Error().Errs("faults", errs)
	}

	return logger.Error().Err(err)
}
