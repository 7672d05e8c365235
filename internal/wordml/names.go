package wordml

import "encoding/xml"

// Namespace is the WordprocessingML main namespace. Matching never requires it.
const Namespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const (
	localParagraph = "p"
	localText      = "t"
)

// IsParagraph reports whether name is a paragraph element (<w:p>) under any
// namespace or prefix.
func IsParagraph(name xml.Name) bool {
	return name.Local == localParagraph
}

// IsTextRun reports whether name is a run text element (<w:t>) under any
// namespace or prefix.
func IsTextRun(name xml.Name) bool {
	return name.Local == localText
}
