package tracing

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/viant/rangexml"

var (
	installOnce sync.Once
	installErr  error
)

// Init exports spans as JSON to outputFile, or to os.Stdout when outputFile is empty.
// Only the first installation in a process takes effect.
func Init(serviceName, serviceVersion, outputFile string) error {
	w, err := openOutput(outputFile)
	if err != nil {
		return err
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return fmt.Errorf("failed to create stdout exporter: %w", err)
	}
	return InitWithExporter(serviceName, serviceVersion, exporter)
}

// InitWithExporter installs a provider backed by exporter. A nil exporter is ignored.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	if exporter == nil {
		return nil
	}
	installOnce.Do(func() {
		res, err := resource.New(context.Background(), resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		))
		if err != nil {
			installErr = fmt.Errorf("failed to create trace resource: %w", err)
			return
		}
		otel.SetTracerProvider(sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
			sdktrace.WithResource(res),
		))
	})
	return installErr
}

func openOutput(outputFile string) (io.Writer, error) {
	if outputFile == "" {
		return os.Stdout, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace output %s: %w", outputFile, err)
	}
	return f, nil
}

// Span is a started span; a nil *Span is a valid no-op.
type Span struct {
	span trace.Span
}

// WithAttributes records attrs; string, bool, int and int64 values keep their type,
// anything else is formatted with %v.
func (s *Span) WithAttributes(attrs map[string]interface{}) *Span {
	if s == nil || len(attrs) == 0 {
		return s
	}
	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		switch actual := v.(type) {
		case string:
			kvs = append(kvs, attribute.String(k, actual))
		case bool:
			kvs = append(kvs, attribute.Bool(k, actual))
		case int:
			kvs = append(kvs, attribute.Int(k, actual))
		case int64:
			kvs = append(kvs, attribute.Int64(k, actual))
		default:
			kvs = append(kvs, attribute.String(k, fmt.Sprintf("%v", actual)))
		}
	}
	s.span.SetAttributes(kvs...)
	return s
}

// SetStatus marks the span as failed with err, or as OK when err is nil.
func (s *Span) SetStatus(err error) {
	if s == nil {
		return
	}
	if err == nil {
		s.span.SetStatus(codes.Ok, "")
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// StartSpan starts a child of the span carried by ctx.
func StartSpan(ctx context.Context, name string, kind trace.SpanKind) (context.Context, *Span) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, name, trace.WithSpanKind(kind))
	return ctx, &Span{span: span}
}

// EndSpan records err as the span status and ends it.
func EndSpan(sp *Span, err error) {
	if sp == nil {
		return
	}
	sp.SetStatus(err)
	sp.span.End()
}
