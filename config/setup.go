package config

import (
	"context"

	"github.com/kbukum/querykit/logger"
	"github.com/kbukum/querykit/observability"
)

// Setup wires the global logger and, when enabled, the OpenTelemetry tracer
// and meter providers from cfg. The returned shutdown function flushes and
// stops the telemetry providers; call it on application exit.
func Setup(ctx context.Context, cfg *Config) (func(context.Context) error, error) {
	logger.Init(cfg.Logging)

	if !cfg.Telemetry.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	tp, err := observability.InitTracer(ctx, observability.TracerConfig{
		ServiceName:    cfg.Name,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Environment,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRate:     cfg.Telemetry.SampleRate,
	})
	if err != nil {
		return nil, err
	}

	mp, err := observability.InitMeter(ctx, &observability.MeterConfig{
		ServiceName:    cfg.Name,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Environment,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		Interval:       cfg.Telemetry.Interval,
	})
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}

	return func(ctx context.Context) error {
		var firstErr error
		if err := tp.Shutdown(ctx); err != nil {
			firstErr = err
		}
		if err := mp.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
		return firstErr
	}, nil
}
