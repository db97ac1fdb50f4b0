package stl

import "bytes"

// Format identifies the STL encoding of a byte buffer
type Format int

const (
	// Binary is the 80-byte header + uint32 count + 50-byte record encoding
	Binary Format = iota
	// ASCII is the "solid ... endsolid" text encoding
	ASCII
)

func (f Format) String() string {
	switch f {
	case ASCII:
		return "ascii"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// binaryHeaderSize is the mandatory header length of a binary STL file.
const binaryHeaderSize = 80

// DetectFormat classifies data as ASCII or binary STL.
//
// Binary headers may legally start with "solid", so a "solid" prefix only
// counts as ASCII when the buffer also contains both "facet" and "endsolid".
// Buffers shorter than a binary header are reported as Binary; the decoder
// rejects them if they are too short to be valid.
func DetectFormat(data []byte) Format {
	if len(data) < binaryHeaderSize {
		return Binary
	}
	if !bytes.Equal(bytes.ToLower(data[:5]), []byte("solid")) {
		return Binary
	}
	if bytes.Contains(data, []byte("facet")) && bytes.Contains(data, []byte("endsolid")) {
		return ASCII
	}
	return Binary
}
