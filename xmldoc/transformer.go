package xmldoc

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// Transformer writes the textual form of a document tree.
type Transformer interface {
	Transform(w io.Writer, doc *etree.Document) error
}

// Factory instantiates a Transformer for a single call. When the returned
// Transformer implements io.Closer it is closed once the call completes.
type Factory func() (Transformer, error)

// TransformerFunc adapts a function to Transformer.
type TransformerFunc func(w io.Writer, doc *etree.Document) error

// Transform calls f.
func (f TransformerFunc) Transform(w io.Writer, doc *etree.Document) error {
	return f(w, doc)
}

type treeTransformer struct{}

// Transform writes doc with its own write settings.
func (treeTransformer) Transform(w io.Writer, doc *etree.Document) error {
	_, err := doc.WriteTo(w)
	return err
}

// NewTreeTransformer returns the default engine, the etree writer.
func NewTreeTransformer() Transformer {
	return treeTransformer{}
}

type tokenTransformer struct{}

// Transform streams doc as encoding/xml tokens. Empty elements are written
// with an explicit end tag and CDATA sections as escaped text.
func (tokenTransformer) Transform(w io.Writer, doc *etree.Document) error {
	enc := xml.NewEncoder(w)
	for _, token := range doc.Child {
		if err := encodeToken(enc, token); err != nil {
			return err
		}
	}
	return enc.Close()
}

// NewTokenTransformer returns an engine built on encoding/xml.
func NewTokenTransformer() Transformer {
	return tokenTransformer{}
}

func encodeToken(enc *xml.Encoder, token etree.Token) error {
	switch actual := token.(type) {
	case *etree.Element:
		return encodeElement(enc, actual)
	case *etree.CharData:
		return enc.EncodeToken(xml.CharData(actual.Data))
	case *etree.Comment:
		if strings.Contains(actual.Data, "--") || strings.HasSuffix(actual.Data, "-") {
			return fmt.Errorf("invalid comment %q: must not contain \"--\" or end with \"-\"", actual.Data)
		}
		return enc.EncodeToken(xml.Comment(actual.Data))
	case *etree.Directive:
		return enc.EncodeToken(xml.Directive(actual.Data))
	case *etree.ProcInst:
		return enc.EncodeToken(xml.ProcInst{Target: actual.Target, Inst: []byte(actual.Inst)})
	default:
		return fmt.Errorf("unsupported token type %T", token)
	}
}

func encodeElement(enc *xml.Encoder, element *etree.Element) error {
	// prefixes are kept verbatim, encoding/xml would otherwise treat them as namespace URLs
	start := xml.StartElement{Name: xml.Name{Local: element.FullTag()}}
	for _, attr := range element.Attr {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: attr.FullKey()}, Value: attr.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range element.Child {
		if err := encodeToken(enc, child); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
