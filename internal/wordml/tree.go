package wordml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Element is a node of a parsed XML document.
type Element struct {
	Name xml.Name
	// Text is the character data that appears before the first child element.
	Text     string
	Children []*Element
}

// Walk calls fn for e and every descendant in document order (pre-order).
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, child := range e.Children {
		child.Walk(fn)
	}
}

// Parse reads a complete XML document and returns its root element.
// Comments, processing instructions and directives are dropped.
func Parse(r io.Reader) (*Element, error) {
	decoder := NewDecoder(r)

	var (
		root  *Element
		stack []*Element
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("XML parse error: %w", err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			elem := &Element{Name: tok.Name}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("XML parse error: junk after document element at offset %d", decoder.InputOffset())
				}
				root = elem
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, elem)
			}
			stack = append(stack, elem)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(tok)) > 0 {
					return nil, fmt.Errorf("XML parse error: text outside document element at offset %d", decoder.InputOffset())
				}
				continue
			}
			top := stack[len(stack)-1]
			if len(top.Children) == 0 {
				top.Text += string(tok)
			}
		}
	}

	if root == nil {
		return nil, errors.New("XML parse error: no element found")
	}

	return root, nil
}
