package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/hanpama/docxtext/internal/document"
)

// Stats summarises what WriteLines produced.
type Stats struct {
	Lines int
	Runs  int
	Bytes int
	// MaxWidth is the display width of the widest line in terminal columns.
	MaxWidth int
}

// WriteLines writes each paragraph from scanner as one line. Lines are
// separated by a single '\n' and the output carries no trailing newline.
func WriteLines(scanner document.ParagraphScanner, w io.Writer) (Stats, error) {
	var stats Stats
	bw := bufio.NewWriter(w)

	for {
		para, err := scanner.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return stats, fmt.Errorf("error reading content: %w", err)
		}

		if stats.Lines > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return stats, err
			}
			stats.Bytes++
		}

		n, err := bw.WriteString(para.Text)
		stats.Bytes += n
		if err != nil {
			return stats, err
		}

		stats.Lines++
		stats.Runs += para.Runs
		if width := displayWidth(para.Text); width > stats.MaxWidth {
			stats.MaxWidth = width
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, err
	}
	return stats, nil
}

// displayWidth calculates the display width of a string using go-runewidth,
// so CJK text counts two columns per character.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
