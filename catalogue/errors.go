package catalogue

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension with no reader.
	ErrUnsupportedFormat = errors.New("catalogue: unsupported format")
	// ErrFormat indicates malformed file content.
	ErrFormat = errors.New("catalogue: malformed content")
)
