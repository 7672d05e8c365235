// Package docxtext extracts paragraph text from a WordprocessingML document.xml part.
//
// The input is the XML part on its own, already taken out of the .docx ZIP
// package. Every <w:p> element becomes one line holding the concatenated text
// of the <w:t> elements beneath it. Paragraphs without text are dropped.
//
// # Example Usage
//
//	res, err := docxtext.Extract("word/document.xml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Extracted to", res.OutputPath) // word/document.xml.txt
//
// # Matching
//
// Elements are matched by local name only, so <w:p>, <p> and <x:p> are all
// paragraphs whatever namespace they are bound to. A paragraph nested inside
// another paragraph is counted twice: once inside its parent's line and once
// as its own line.
//
// # Output
//
// Lines are joined with a single '\n' with no trailing newline and written as
// UTF-8. An input without paragraphs yields an empty file.
package docxtext

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hanpama/docxtext/internal/container"
	"github.com/hanpama/docxtext/internal/render"
	"github.com/hanpama/docxtext/internal/wordml"
)

// OutputSuffix is appended to the input path to name the output file.
const OutputSuffix = ".txt"

// Result describes a successful extraction.
type Result struct {
	// OutputPath is empty for ExtractTo.
	OutputPath string
	Paragraphs int
	Runs       int
	Bytes      int
	// MaxWidth is the display width of the widest paragraph in terminal columns.
	MaxWidth int
}

// OutputPath returns the path Extract writes to for input.
func OutputPath(input string) string {
	return input + OutputSuffix
}

// Extract reads the XML file at path and writes its paragraphs to
// OutputPath(path), replacing any existing file.
//
// The document is fully parsed before the output file is opened, so a
// malformed input never creates or truncates the output. All failures are
// returned as *ExtractError.
func Extract(path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, newExtractError(path, err)
	}
	defer file.Close()

	if err := container.Check(file); err != nil {
		return Result{}, newExtractError(path, err)
	}

	root, err := wordml.Parse(file)
	if err != nil {
		return Result{}, newExtractError(path, err)
	}

	out := OutputPath(path)
	res, err := writeFile(out, root)
	if err != nil {
		return Result{}, newExtractError(path, err)
	}
	res.OutputPath = out

	log.Debug().
		Str("input", path).
		Str("output", out).
		Int("paragraphs", res.Paragraphs).
		Int("runs", res.Runs).
		Int("bytes", res.Bytes).
		Int("max_width", res.MaxWidth).
		Msg("extracted document text")

	return res, nil
}

// ExtractTo parses document XML from r and writes the extracted lines to w.
// Nothing is written to w when r is not well-formed.
func ExtractTo(r io.Reader, w io.Writer) (Result, error) {
	root, err := wordml.Parse(r)
	if err != nil {
		return Result{}, err
	}
	return writeTo(w, root)
}

func writeFile(path string, root *wordml.Element) (res Result, err error) {
	f, err := os.Create(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	return writeTo(f, root)
}

func writeTo(w io.Writer, root *wordml.Element) (Result, error) {
	stats, err := render.WriteLines(wordml.NewContentScanner(root), w)
	if err != nil {
		return Result{}, fmt.Errorf("failed to write text: %w", err)
	}

	return Result{
		Paragraphs: stats.Lines,
		Runs:       stats.Runs,
		Bytes:      stats.Bytes,
		MaxWidth:   stats.MaxWidth,
	}, nil
}
