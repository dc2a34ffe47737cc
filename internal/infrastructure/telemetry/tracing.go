package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "finsight-backend"

// Attribute keys for business spans. Call sites build typed values from
// them, for example AttrFromCache.Bool(true).
const (
	AttrOwnerID            = attribute.Key("owner_id")
	AttrRecommendationType = attribute.Key("recommendation_type")
	AttrFromCache          = attribute.Key("from_cache")
)

// StartSpan opens an internal span on the global provider. Names follow the
// {service}.{operation} convention, like "recommendation.recommend". The
// caller ends the span.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	opts := []trace.SpanStartOption{trace.WithSpanKind(trace.SpanKindInternal)}
	if len(attrs) > 0 {
		opts = append(opts, trace.WithAttributes(attrs...))
	}
	return otel.GetTracerProvider().Tracer(tracerName).Start(ctx, name, opts...)
}

// RecordError records err on the span and flips its status to error.
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
