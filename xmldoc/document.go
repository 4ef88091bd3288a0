// Package xmldoc loads metadata XML into a navigable tree and locates
// elements by local name, ignoring namespace prefixes and envelopes.
//
// Exports found in the wild are only loosely valid: DataCite records arrive
// without a namespace, wrapped in OAI-PMH responses, or bundled next to
// ISO 19139 and DIF trees. Matching on the unprefixed name alone lets every
// extractor find its section regardless of how the record was packaged.
package xmldoc

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"

	"github.com/lehigh-university-libraries/curator/problem"
)

// Document is a parsed XML document with a local-name index built once at
// load time. It is never mutated after Load returns and is safe for
// concurrent readers.
type Document struct {
	root  *etree.Element
	order []*etree.Element
	index map[string][]*etree.Element
}

// Load parses raw bytes into a Document. Declared encodings other than
// UTF-8 are decoded through golang.org/x/net/html/charset.
//
// Only tokenizer failures (unclosed tags, bad entities, no root element)
// produce an error, always a *problem.Error with code xml_parse_error.
// Documents that are well formed but schema invalid load normally.
func Load(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	doc.ReadSettings.ValidateInput = true

	if decoded, ok := decodeUTF16(data); ok {
		data = decoded
		doc.ReadSettings.CharsetReader = decodedReader
	}

	if err := doc.ReadFromBytes(data); err != nil {
		return nil, problem.Data(problem.CodeXMLParse, "malformed XML", err)
	}

	root := doc.Root()
	if root == nil {
		msg := "document has no root element"
		if len(bytes.TrimSpace(data)) == 0 {
			msg = "document is empty"
		}
		return nil, problem.Data(problem.CodeXMLParse, msg, nil)
	}

	d := &Document{
		root:  root,
		index: make(map[string][]*etree.Element),
	}
	d.build(root)
	return d, nil
}

func (d *Document) build(el *etree.Element) {
	d.order = append(d.order, el)
	d.index[el.Tag] = append(d.index[el.Tag], el)
	for _, child := range el.ChildElements() {
		d.build(child)
	}
}

// Root returns the document element.
func (d *Document) Root() *etree.Element {
	return d.root
}

// Len returns the number of elements in the document.
func (d *Document) Len() int {
	return len(d.order)
}

// All returns every element with the given local name in document order.
// The result is empty, never nil-with-error, when nothing matches.
func (d *Document) All(name string) []*etree.Element {
	return d.index[name]
}

// First returns the first element with the given local name, or nil.
func (d *Document) First(name string) *etree.Element {
	if els := d.index[name]; len(els) > 0 {
		return els[0]
	}
	return nil
}

// Outside returns the elements named name that have no ancestor whose
// local name is one of containers. It is used to keep <relatedItem>
// titles and creators out of the record's own sections.
func (d *Document) Outside(name string, containers ...string) []*etree.Element {
	var out []*etree.Element
	for _, el := range d.index[name] {
		if !HasAncestor(el, containers...) {
			out = append(out, el)
		}
	}
	return out
}

// Resource returns the element that scopes the DataCite record: the first
// <resource> outside any relatedItem, or the document root when no such
// element exists.
func (d *Document) Resource() *etree.Element {
	if els := d.Outside("resource", "relatedItem"); len(els) > 0 {
		return els[0]
	}
	return d.root
}

// String describes the document for debug logging.
func (d *Document) String() string {
	return fmt.Sprintf("xmldoc(root=%s, elements=%d)", d.root.Tag, len(d.order))
}

// decodeUTF16 converts a document starting with a UTF-16 byte order mark
// to UTF-8.
func decodeUTF16(data []byte) ([]byte, bool) {
	if !HasUTF16BOM(data) {
		return nil, false
	}
	decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Bytes(data)
	if err != nil {
		return nil, false
	}
	return decoded, true
}

// HasUTF16BOM reports whether data starts with a UTF-16 byte order mark
// of either endianness.
func HasUTF16BOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xff, 0xfe}) || bytes.HasPrefix(data, []byte{0xfe, 0xff})
}

// decodedReader serves already decoded UTF-16 content whatever the UTF-16
// label the declaration carries.
func decodedReader(label string, r io.Reader) (io.Reader, error) {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(label)), "utf-16") {
		return r, nil
	}
	return charset.NewReaderLabel(label, r)
}
