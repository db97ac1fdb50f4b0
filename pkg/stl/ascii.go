package stl

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/stlmeter/pkg/geometry"
)

// maxASCIILine bounds a single line of an ASCII STL file
const maxASCIILine = 1 << 20

// asciiFacet is the state of the facet block currently being read
type asciiFacet struct {
	normal   geometry.Vector3
	vertices []geometry.Vector3
	bad      bool
}

func (f *asciiFacet) reset(normal geometry.Vector3) {
	f.normal = normal
	f.vertices = f.vertices[:0]
	f.bad = false
}

// walkASCII visits every well-formed facet in file order and returns the
// solid name. Facets that do not close with exactly three parsable vertices
// are skipped. Non-finite coordinates fail the whole file.
func walkASCII(data []byte, fn func(geometry.Triangle)) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxASCIILine)
	scanner.Split(scanLines)

	var (
		name        string
		facet       asciiFacet
		line        int
		facetLines  int
		vertexLines int
	)

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "solid":
			if name == "" && len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}

		case "facet":
			facetLines++
			facet.reset(geometry.Vector3{})
			if len(fields) > 1 && strings.EqualFold(fields[1], "normal") {
				normal, ok, err := parseVector(fields[2:])
				if err != nil {
					return "", fmt.Errorf("%w: facet normal on line %d: %v", ErrMalformedGeometry, line, err)
				}
				facet.normal = normal
				facet.bad = !ok
			}

		case "vertex":
			vertexLines++
			v, ok, err := parseVector(fields[1:])
			if err != nil {
				return "", fmt.Errorf("%w: vertex on line %d: %v", ErrMalformedGeometry, line, err)
			}
			if !ok {
				facet.bad = true
				continue
			}
			facet.vertices = append(facet.vertices, v)

		case "endfacet":
			if !facet.bad && len(facet.vertices) == 3 {
				fn(geometry.NewTriangle(facet.normal, facet.vertices[0], facet.vertices[1], facet.vertices[2]))
			}
			facet.reset(facet.normal)
		}
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: reading ASCII STL: %v", ErrUnrecoverableFormat, err)
	}
	if facetLines == 0 && vertexLines == 0 {
		return "", fmt.Errorf("%w: no facets or vertices found", ErrUnrecoverableFormat)
	}
	return name, nil
}

// scanLines is bufio.ScanLines that also ends lines on a bare \r, as
// written by classic Mac OS tools. \r\n counts as one line ending.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// need one more byte to tell \r from \r\n
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

var errNonFinite = errors.New("non-finite coordinate")

// parseVector parses exactly three coordinates. ok is false for a missing or
// unparsable coordinate; err is set only for values that parse to NaN or ±Inf.
func parseVector(fields []string) (v geometry.Vector3, ok bool, err error) {
	if len(fields) < 3 {
		return geometry.Vector3{}, false, nil
	}
	var c [3]float64
	for i := range c {
		f, perr := strconv.ParseFloat(fields[i], 64)
		if perr != nil && !errors.Is(perr, strconv.ErrRange) {
			return geometry.Vector3{}, false, nil
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return geometry.Vector3{}, false, fmt.Errorf("%w %q", errNonFinite, fields[i])
		}
		c[i] = f
	}
	return geometry.NewVector3(c[0], c[1], c[2]), true, nil
}
