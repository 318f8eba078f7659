package xmldoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/beevik/etree"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/rangexml/tracing"
	"go.opentelemetry.io/otel/trace"
)

const defaultSpanPrefix = "xmldoc"

// Service serializes documents; it holds no per-document state and is safe
// for concurrent use as long as its factory is. The zero value uses the
// default engine and afs file system.
type Service struct {
	factory    Factory
	fs         afs.Service
	spanPrefix string
	tracingErr error
	setup      sync.Once
}

// Serialize returns the textual form of doc. On error the result is empty.
func (s *Service) Serialize(doc *etree.Document) (string, error) {
	buffer := new(bytes.Buffer)
	if err := s.Encode(context.Background(), buffer, doc); err != nil {
		return "", err
	}
	return buffer.String(), nil
}

// Encode writes the textual form of doc to w. A failed transformation may
// leave partial output in w.
func (s *Service) Encode(ctx context.Context, w io.Writer, doc *etree.Document) (err error) {
	s.setup.Do(s.ensureBaseSetup)
	_, span := tracing.StartSpan(ctx, s.spanPrefix+".encode", trace.SpanKindInternal)
	defer func() { tracing.EndSpan(span, err) }()

	counter := &countingWriter{w: w}
	engine, err := s.transform(counter, doc)
	span.WithAttributes(map[string]interface{}{
		"xmldoc.transformer": engine,
		"xmldoc.bytes":       counter.n,
	})
	return err
}

// Store serializes doc and uploads it to URL
func (s *Service) Store(ctx context.Context, URL string, doc *etree.Document) (err error) {
	s.setup.Do(s.ensureBaseSetup)
	ctx, span := tracing.StartSpan(ctx, s.spanPrefix+".store", trace.SpanKindClient)
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]interface{}{"xmldoc.url": URL})

	buffer := new(bytes.Buffer)
	if err = s.Encode(ctx, buffer, doc); err != nil {
		return err
	}
	span.WithAttributes(map[string]interface{}{"xmldoc.bytes": int64(buffer.Len())})
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(buffer.Bytes())); err != nil {
		return fmt.Errorf("failed to store document %s: %w", URL, err)
	}
	return nil
}

// TracingError returns the error of a WithTracing or WithTraceExporter option, if any.
func (s *Service) TracingError() error {
	return s.tracingErr
}

// transform returns the engine type name alongside the outcome.
func (s *Service) transform(w io.Writer, doc *etree.Document) (engine string, err error) {
	if doc == nil {
		return "", ErrNilDocument
	}
	transformer, err := s.factory()
	if err == nil && transformer == nil {
		err = errors.New("factory returned nil transformer")
	}
	if err != nil {
		return "", &TransformationError{Op: "instantiate", Err: err}
	}
	engine = fmt.Sprintf("%T", transformer)
	if closer, ok := transformer.(io.Closer); ok {
		defer func() {
			if cErr := closer.Close(); cErr != nil && err == nil {
				err = &TransformationError{Op: "release", Err: cErr}
			}
		}()
	}
	if tErr := transformer.Transform(w, doc); tErr != nil {
		return engine, &TransformationError{Op: "transform", Err: tErr}
	}
	return engine, nil
}

func (s *Service) ensureBaseSetup() {
	if s.factory == nil {
		s.factory = func() (Transformer, error) { return NewTreeTransformer(), nil }
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.spanPrefix == "" {
		s.spanPrefix = defaultSpanPrefix
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// New creates a Service
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	ret.setup.Do(ret.ensureBaseSetup)
	return ret
}

var defaultService = sync.OnceValue(func() *Service { return New() })

// Serialize returns the textual form of doc using the default engine.
func Serialize(doc *etree.Document) (string, error) {
	return defaultService().Serialize(doc)
}
