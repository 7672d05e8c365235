package wordml

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// NewDecoder returns an xml.Decoder that accepts UTF-8 (with or without BOM),
// UTF-16 with a BOM, and any encoding named in the XML declaration that the
// WHATWG encoding index knows about.
func NewDecoder(r io.Reader) *xml.Decoder {
	br := bufio.NewReader(r)
	head, _ := br.Peek(2)
	transcoded := bytes.HasPrefix(head, bomUTF16BE) || bytes.HasPrefix(head, bomUTF16LE)

	// BOMOverride strips a UTF-8 BOM and switches to UTF-16 decoding when a
	// UTF-16 BOM is present. Other input passes through untouched.
	src := transform.NewReader(br, unicode.BOMOverride(encoding.Nop.NewDecoder()))

	decoder := xml.NewDecoder(src)
	decoder.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		// The declaration still says UTF-16 but the bytes are already UTF-8.
		if transcoded && isUTF16Label(label) {
			return input, nil
		}
		return charset.NewReaderLabel(label, input)
	}
	return decoder
}

func isUTF16Label(label string) bool {
	l := strings.ToLower(strings.TrimSpace(label))
	return strings.HasPrefix(l, "utf-16") || strings.HasPrefix(l, "utf16")
}
