package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/querykit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the consuming application.
	ServiceName string
	// ServiceVersion is the version of the consuming application.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for enumeration observability.
type Metrics struct {
	enumerationTotal    metric.Int64Counter
	enumerationDuration metric.Float64Histogram
	enumerationActive   metric.Int64UpDownCounter
	elementTotal        metric.Int64Counter
	errorTotal          metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	enumerationTotal, err := meter.Int64Counter("enumeration.total",
		metric.WithDescription("Total number of completed enumerations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating enumeration.total counter: %w", err)
	}

	enumerationDuration, err := meter.Float64Histogram("enumeration.duration",
		metric.WithDescription("Duration of enumerations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating enumeration.duration histogram: %w", err)
	}

	enumerationActive, err := meter.Int64UpDownCounter("enumeration.active",
		metric.WithDescription("Number of currently active enumerations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating enumeration.active gauge: %w", err)
	}

	elementTotal, err := meter.Int64Counter("element.total",
		metric.WithDescription("Total elements yielded by enumerations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating element.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Total enumeration errors by code and sequence"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error.total counter: %w", err)
	}

	return &Metrics{
		enumerationTotal:    enumerationTotal,
		enumerationDuration: enumerationDuration,
		enumerationActive:   enumerationActive,
		elementTotal:        elementTotal,
		errorTotal:          errorTotal,
	}, nil
}

// RecordEnumerationStart increments the active enumeration count.
func (m *Metrics) RecordEnumerationStart(ctx context.Context) {
	m.enumerationActive.Add(ctx, 1)
}

// RecordEnumeration decrements active enumerations and records the completed
// enumeration with its element count and duration.
func (m *Metrics) RecordEnumeration(ctx context.Context, sequence, status string, elements int64, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("sequence", sequence),
		attribute.String("status", status),
	)
	m.enumerationActive.Add(ctx, -1)
	m.enumerationTotal.Add(ctx, 1, attrs)
	m.elementTotal.Add(ctx, elements, metric.WithAttributes(
		attribute.String("sequence", sequence),
	))
	m.enumerationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("sequence", sequence),
	))
}

// RecordError records an enumeration error by code and sequence.
func (m *Metrics) RecordError(ctx context.Context, code, sequence string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
		attribute.String("sequence", sequence),
	))
}
