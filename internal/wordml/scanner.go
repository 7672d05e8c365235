package wordml

import (
	"fmt"
	"io"
	"strings"

	"github.com/hanpama/docxtext/internal/document"
)

// ContentScanner walks a parsed document and emits non-empty paragraphs
type ContentScanner struct {
	// pending holds elements not yet visited, next element on top.
	pending []*Element
}

// NewContentScanner creates a ContentScanner positioned before root
func NewContentScanner(root *Element) *ContentScanner {
	s := &ContentScanner{}
	if root != nil {
		s.pending = []*Element{root}
	}
	return s
}

// Open parses a document.xml stream and returns a scanner over its paragraphs
func Open(r io.Reader) (*ContentScanner, error) {
	root, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return NewContentScanner(root), nil
}

// Next returns the next non-empty paragraph in document order.
//
// Paragraphs nested inside another paragraph are not pruned: the outer
// paragraph includes their run text and they are emitted again on their own.
func (s *ContentScanner) Next() (*document.Paragraph, error) {
	for len(s.pending) > 0 {
		elem := s.pending[len(s.pending)-1]
		s.pending = s.pending[:len(s.pending)-1]

		for i := len(elem.Children) - 1; i >= 0; i-- {
			s.pending = append(s.pending, elem.Children[i])
		}

		if !IsParagraph(elem.Name) {
			continue
		}

		if para := extractParagraph(elem); para.Text != "" {
			return para, nil
		}
	}

	return nil, io.EOF
}

func extractParagraph(p *Element) *document.Paragraph {
	var sb strings.Builder
	runs := 0
	p.Walk(func(e *Element) {
		if IsTextRun(e.Name) && e.Text != "" {
			sb.WriteString(e.Text)
			runs++
		}
	})
	return &document.Paragraph{
		Text: sb.String(),
		Runs: runs,
	}
}
