package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadDIMACS parses a DIMACS shortest-path challenge ".gr" stream into a
// CSR Graph. The format is line-oriented:
//
//	c <comment, ignored>
//	p sp <n> <m>     problem line: n vertices, m edges
//	a <u> <v> <w>    1-based edge u->v with weight w (integer or real)
//
// The problem line must appear before any edge line. Vertex indices in
// the returned Graph are 0-based (DIMACS u, v minus one). Negative
// weights yield ErrNegativeWeight; out-of-range endpoints yield
// ErrInvalidVertex; a missing or malformed problem line yields
// ErrInvalidEdge.
func ReadDIMACS(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var b *Builder
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line[0] {
		case 'c':
			continue
		case 'p':
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "sp" {
				return nil, fmt.Errorf("%w: line %d: malformed problem line %q", ErrInvalidEdge, lineNo, line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: vertex count %q: %v", ErrInvalidEdge, lineNo, fields[2], err)
			}
			b, err = NewBuilder(n)
			if err != nil {
				return nil, err
			}
		case 'a':
			if b == nil {
				return nil, fmt.Errorf("%w: line %d: edge before problem line", ErrInvalidEdge, lineNo)
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, fmt.Errorf("%w: line %d: malformed edge line %q", ErrInvalidEdge, lineNo, line)
			}
			u, errU := strconv.Atoi(fields[1])
			v, errV := strconv.Atoi(fields[2])
			w, errW := strconv.ParseFloat(fields[3], 64)
			if errU != nil || errV != nil || errW != nil {
				return nil, fmt.Errorf("%w: line %d: malformed edge fields %q", ErrInvalidEdge, lineNo, line)
			}
			if err := b.AddEdge(u-1, v-1, w); err != nil {
				return nil, fmt.Errorf("%w (line %d)", err, lineNo)
			}
		default:
			return nil, fmt.Errorf("%w: line %d: unrecognized line type %q", ErrInvalidEdge, lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanning DIMACS input: %v", ErrInvalidEdge, err)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: no problem line found", ErrInvalidEdge)
	}

	return b.Finalize(), nil
}
