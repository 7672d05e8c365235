// Package container recognises packaged Office files handed to the extractor
// in place of a bare document.xml part. Nothing is unpacked here.
package container

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/richardlehane/mscfb"
)

// Kind is the detected input format.
type Kind int

const (
	// KindXML is anything that is not a recognised container; it goes to the XML parser.
	KindXML Kind = iota
	// KindZIP is an OOXML package (.docx) or any other ZIP archive.
	KindZIP
	// KindOLE is an OLE Compound File, e.g. a legacy Word 97-2003 .doc.
	KindOLE
)

func (k Kind) String() string {
	switch k {
	case KindZIP:
		return "zip"
	case KindOLE:
		return "ole"
	default:
		return "xml"
	}
}

var (
	// ErrZIPPackage is returned for ZIP input.
	ErrZIPPackage = errors.New("input is a ZIP package; extract word/document.xml first")
	// ErrCompoundFile is returned for OLE Compound File input.
	ErrCompoundFile = errors.New("input is an OLE compound file, not WordprocessingML XML")
)

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Sniff inspects the leading bytes of ra.
func Sniff(ra io.ReaderAt) (Kind, error) {
	head := make([]byte, len(oleMagic))
	n, err := ra.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return KindXML, fmt.Errorf("failed to read file header: %w", err)
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, zipMagic):
		return KindZIP, nil
	case bytes.Equal(head, oleMagic):
		return KindOLE, nil
	}
	return KindXML, nil
}

// Check returns nil when ra should be parsed as XML, or an error naming the
// container it actually holds.
func Check(ra io.ReaderAt) error {
	kind, err := Sniff(ra)
	if err != nil {
		return err
	}

	switch kind {
	case KindZIP:
		return ErrZIPPackage
	case KindOLE:
		streams, err := rootStreams(ra)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCompoundFile, err)
		}
		for _, name := range streams {
			if name == "WordDocument" {
				return fmt.Errorf("%w (legacy Word binary document)", ErrCompoundFile)
			}
		}
		return fmt.Errorf("%w (streams: %s)", ErrCompoundFile, strings.Join(streams, ", "))
	}

	return nil
}

// rootStreams lists the entries stored directly under the compound file root.
func rootStreams(ra io.ReaderAt) ([]string, error) {
	doc, err := mscfb.New(ra)
	if err != nil {
		return nil, err
	}

	var names []string
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if len(entry.Path) == 0 {
			names = append(names, entry.Name)
		}
	}
	return names, nil
}
