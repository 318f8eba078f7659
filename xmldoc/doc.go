// Package xmldoc turns an in-memory XML document tree into text.
//
// Serialization goes through a Transformer, the tree-to-text engine, which is
// obtained from a Factory on every call:
//
//	doc := etree.NewDocument()
//	doc.CreateElement("a")
//	text, err := xmldoc.Serialize(doc) // "<a/>"
//
// A Service can be configured with another engine, a file system for Store and
// OpenTelemetry tracing (WithTracing, WithTraceExporter). The document is only
// read; callers keep ownership.
package xmldoc
