package stl

import "errors"

// Decoding failures. Every error returned by the decoder wraps exactly one of
// these, so callers can match with errors.Is. All of them are fatal for the
// file being decoded.
var (
	// ErrTruncatedInput means the buffer is shorter than the declared content.
	ErrTruncatedInput = errors.New("truncated STL input")

	// ErrInvalidTriangleCount means the binary triangle count is zero or
	// above the decoder's ceiling.
	ErrInvalidTriangleCount = errors.New("invalid STL triangle count")

	// ErrMalformedGeometry means a coordinate is NaN or infinite, or the
	// vertex data cannot be grouped into triangles.
	ErrMalformedGeometry = errors.New("malformed STL geometry")

	// ErrUnrecoverableFormat covers any other structural violation, such as
	// an ASCII file without a single facet or vertex.
	ErrUnrecoverableFormat = errors.New("unrecoverable STL format")
)
