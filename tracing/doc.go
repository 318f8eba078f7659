// Package tracing wires OpenTelemetry into the serializers. Spans are no-ops
// until Init or InitWithExporter installs a provider.
package tracing
