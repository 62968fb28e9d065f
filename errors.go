package pathopen

import "fmt"

// ArgumentError reports an invalid caller-supplied parameter: bad L/K, a
// zero or mismatched raster dimension, or an out-of-range normalisation
// bound. It is a plain string type exactly like progjpeg's FormatError and
// UnsupportedError, not a struct with fields, because nothing in this
// package needs to programmatically inspect the cause beyond the message.
type ArgumentError string

func (e ArgumentError) Error() string { return string(e) }

func argErrorf(format string, args ...interface{}) ArgumentError {
	return ArgumentError(fmt.Sprintf(format, args...))
}
