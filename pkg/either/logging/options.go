package logging

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

type OptionKey string

const PipelineOptionKey OptionKey = "pipeline_options"

const defaultPipeline = "unnamed"

// WithPipeline tags ctx with a pipeline name that the tee helpers and
// Outcome attach to every event.
func WithPipeline(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, PipelineOptionKey, name)
}

// Pipeline returns the pipeline name carried by ctx, or defaultName when
// none was set.
func Pipeline(ctx context.Context, defaultName string) string {
	if name, ok := ctx.Value(PipelineOptionKey).(string); ok {
		return name
	}
	return defaultName
}

// Option configures the logger built by New.
type Option func(cfg *config)

type config struct {
	level  zerolog.Level
	output io.Writer
	name   string
}

func WithLevel(level zerolog.Level) Option {
	return func(cfg *config) {
		cfg.level = level
	}
}

func WithOutput(output io.Writer) Option {
	return func(cfg *config) {
		cfg.output = output
	}
}

// WithName stamps a static logger name on every event, independent of the
// per-ctx pipeline tag.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}
