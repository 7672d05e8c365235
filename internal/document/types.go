package document

// Paragraph represents a paragraph with the concatenated text of its runs
type Paragraph struct {
	Text string
	// Runs is the number of non-empty text runs that contributed to Text.
	Runs int
}

// ParagraphScanner yields paragraphs in document order and returns io.EOF
// once the document is exhausted.
type ParagraphScanner interface {
	Next() (*Paragraph, error)
}
