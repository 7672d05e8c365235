package docxtext

import "fmt"

// ExtractError is the single failure kind of Extract. It covers missing
// files, permission problems, malformed XML, unsupported encodings and write
// errors alike.
type ExtractError struct {
	Path string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("error reading %s: %v", e.Path, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

func newExtractError(path string, err error) *ExtractError {
	return &ExtractError{
		Path: path,
		Err:  err,
	}
}
