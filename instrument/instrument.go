package instrument

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	qerrors "github.com/kbukum/querykit/errors"
	"github.com/kbukum/querykit/logger"
	"github.com/kbukum/querykit/observability"
	"github.com/kbukum/querykit/query"
)

// WithLogging wraps a sequence with enumeration logging. Each enumeration
// gets a fresh ID so interleaved enumerations of the same sequence can be
// told apart in the log.
func WithLogging[T any](s *query.Seq[T], name string, log *logger.Logger) *query.Seq[T] {
	return query.FromFunc(func(ctx context.Context) query.Iterator[T] {
		id := uuid.NewString()
		log.Debug("enumeration started", logger.Fields(
			logger.FieldSequence, name,
			logger.FieldEnumerationID, id,
		))
		return &loggingIter[T]{
			inner: s.Iter(ctx),
			log:   log,
			name:  name,
			id:    id,
			start: time.Now(),
		}
	})
}

// WithMetrics wraps a sequence with metric recording. Records enumeration
// count, element count, duration, and errors.
func WithMetrics[T any](s *query.Seq[T], name string, metrics *observability.Metrics) *query.Seq[T] {
	return query.FromFunc(func(ctx context.Context) query.Iterator[T] {
		metrics.RecordEnumerationStart(ctx)
		return &metricsIter[T]{
			inner:   s.Iter(ctx),
			metrics: metrics,
			name:    name,
			ctx:     ctx,
			start:   time.Now(),
		}
	})
}

// WithTracing wraps a sequence with OpenTelemetry span creation. The span
// opens when the cursor is created and ends when the cursor is exhausted or
// closed, covering the whole enumeration including eager materialization.
func WithTracing[T any](s *query.Seq[T], name string) *query.Seq[T] {
	return query.FromFunc(func(ctx context.Context) query.Iterator[T] {
		spanCtx, span := observability.StartSpan(ctx, observability.SpanEnumerate)
		observability.SetSpanAttribute(spanCtx, observability.AttrSequenceName, name)
		observability.SetSpanAttribute(spanCtx, observability.AttrEnumerationID, uuid.NewString())
		return &tracingIter[T]{
			inner: s.Iter(spanCtx),
			ctx:   spanCtx,
			span:  span,
		}
	})
}

type loggingIter[T any] struct {
	inner    query.Iterator[T]
	log      *logger.Logger
	name     string
	id       string
	start    time.Time
	elements int64
	finished bool
}

func (it *loggingIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.inner.Next(ctx)
	if err != nil {
		it.finish(err)
		return val, false, err
	}
	if !ok {
		it.finish(nil)
		return val, false, nil
	}
	it.elements++
	return val, true, nil
}

func (it *loggingIter[T]) Close() error {
	it.finish(nil)
	return it.inner.Close()
}

func (it *loggingIter[T]) finish(err error) {
	if it.finished {
		return
	}
	it.finished = true
	fields := logger.Fields(
		logger.FieldSequence, it.name,
		logger.FieldEnumerationID, it.id,
		logger.FieldElements, it.elements,
		logger.FieldDuration, time.Since(it.start).Milliseconds(),
	)
	if err != nil {
		fields[logger.FieldError] = err.Error()
		it.log.Error("enumeration failed", fields)
		return
	}
	it.log.Debug("enumeration completed", fields)
}

type metricsIter[T any] struct {
	inner    query.Iterator[T]
	metrics  *observability.Metrics
	name     string
	ctx      context.Context
	start    time.Time
	elements int64
	finished bool
}

func (it *metricsIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.inner.Next(ctx)
	if err != nil {
		it.finish(err)
		return val, false, err
	}
	if !ok {
		it.finish(nil)
		return val, false, nil
	}
	it.elements++
	return val, true, nil
}

func (it *metricsIter[T]) Close() error {
	it.finish(nil)
	return it.inner.Close()
}

func (it *metricsIter[T]) finish(err error) {
	if it.finished {
		return
	}
	it.finished = true
	status := "ok"
	if err != nil {
		status = "error"
		code := string(qerrors.CodeOf(err))
		if code == "" {
			code = "UNKNOWN"
		}
		it.metrics.RecordError(it.ctx, code, it.name)
	}
	it.metrics.RecordEnumeration(it.ctx, it.name, status, it.elements, time.Since(it.start))
}

type tracingIter[T any] struct {
	inner    query.Iterator[T]
	ctx      context.Context
	span     trace.Span
	elements int64
	finished bool
}

func (it *tracingIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.inner.Next(ctx)
	if err != nil {
		it.finish(err)
		return val, false, err
	}
	if !ok {
		it.finish(nil)
		return val, false, nil
	}
	it.elements++
	return val, true, nil
}

func (it *tracingIter[T]) Close() error {
	it.finish(nil)
	return it.inner.Close()
}

func (it *tracingIter[T]) finish(err error) {
	if it.finished {
		return
	}
	it.finished = true
	observability.SetSpanAttribute(it.ctx, observability.AttrElements, it.elements)
	if err != nil {
		observability.SetSpanError(it.ctx, err)
		observability.SetSpanAttribute(it.ctx, observability.AttrStatus, "error")
	} else {
		observability.SetSpanAttribute(it.ctx, observability.AttrStatus, "ok")
	}
	it.span.End()
}
