package bitmap

import (
	"errors"

	"github.com/ironsheep/anybitmap/internal/codec"
	"github.com/ironsheep/anybitmap/internal/fetch"
	"github.com/ironsheep/anybitmap/internal/format"
)

// Errors reported by this package. Test for them with errors.Is.
var (
	ErrUnrecognizedFormat = format.ErrUnrecognizedFormat
	ErrDecodeFailure      = codec.ErrDecodeFailure
	ErrUnsupportedFormat  = codec.ErrUnsupportedFormat
	ErrFetch              = fetch.ErrFetch

	ErrEmptyInput           = errors.New("empty input")
	ErrIndex                = errors.New("index out of range")
	ErrArgument             = errors.New("invalid argument")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrClosed               = errors.New("image is closed")
)
