// Package instrument provides opt-in observability wrappers for query
// sequences.
//
// Each wrapper returns a new sequence that behaves identically to the one it
// wraps while recording what happens per enumeration: WithLogging emits
// structured log lines correlated by a per-enumeration ID, WithMetrics
// records counts and durations on OpenTelemetry instruments, and WithTracing
// opens a span covering the cursor's lifetime.
//
// Wrappers compose like any other operator and keep the engine's laziness:
// nothing is recorded until the sequence is enumerated, and every enumeration
// is recorded separately.
//
//	s := instrument.WithLogging(pipeline, "adults-by-city", log)
//	s = instrument.WithTracing(s, "adults-by-city")
//	results, err := query.Collect(ctx, s)
package instrument
