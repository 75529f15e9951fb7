package desc

import "errors"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrUnsupportedRoot     = errors.New("unsupported root element")
	ErrNoInputs            = errors.New("no input files matched")
)
