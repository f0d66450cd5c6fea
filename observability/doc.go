// Package observability provides OpenTelemetry tracing and metrics
// integration for querykit. The engine itself records nothing; the instrument
// package uses these helpers to trace and meter enumerations opted in by the
// caller.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("reporting"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanEnumerate)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("reporting"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("reporting"))
//	metrics.RecordEnumeration(ctx, "adults-by-city", "ok", 42, duration)
package observability
