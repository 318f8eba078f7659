package xmldoc

import (
	"github.com/viant/afs"
	"github.com/viant/rangexml/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option configures a Service.
type Option func(s *Service)

// WithFactory sets the per-call transformer factory.
func WithFactory(factory Factory) Option {
	return func(s *Service) {
		s.factory = factory
	}
}

// WithTransformer shares transformer across calls; it has to be safe for
// concurrent use.
func WithTransformer(transformer Transformer) Option {
	return func(s *Service) {
		s.factory = func() (Transformer, error) { return transformer, nil }
	}
}

// WithFS sets the file system used by Store
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithSpanPrefix sets the prefix of span names (<prefix>.encode, <prefix>.store)
func WithSpanPrefix(prefix string) Option {
	return func(s *Service) {
		s.spanPrefix = prefix
	}
}

// WithTracing exports spans to outputFile, or stdout when empty. The first
// tracing installation in a process wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.tracingErr = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTraceExporter exports spans through exporter (OTLP, Jaeger, in-memory ...).
func WithTraceExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.tracingErr = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
