package convert

import "errors"

var (
	// ErrNilDataset is returned when EncodeSpec or EncodeResult is given
	// a nil pointer.
	ErrNilDataset = errors.New("convert: dataset is nil")

	// ErrInvalidJSON is returned when Decode's input cannot be parsed as
	// the documented wire shape.
	ErrInvalidJSON = errors.New("convert: invalid JSON input")
)
