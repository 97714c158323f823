package grid

import (
	"bufio"
	"fmt"
	"os"
)

// Parse decodes a single 81-character puzzle line. Digits '1'..'9' become
// that value; '.' becomes 0 ("unknown"); any other character, or a line
// whose length is not exactly 81, is a FormatError.
func Parse(line string) (*Grid, error) {
	if len(line) != Cells {
		return nil, newIOError(FormatError,
			fmt.Sprintf("input line is %d characters long, want %d", len(line), Cells), nil)
	}

	g := New()
	for i := 0; i < Cells; i++ {
		c := line[i]
		switch {
		case c == '.':
			g.cells[i] = 0
		case c >= '1' && c <= '9':
			g.cells[i] = int8(c - '0')
		default:
			return nil, newIOError(FormatError,
				fmt.Sprintf("invalid character %q in input", c), nil)
		}
	}
	return g, nil
}

// ReadFromFile reads one puzzle per line from path and parses each with
// Parse. It stops at end of file. The first malformed line short-circuits
// with its FormatError; a path that cannot be opened returns a NoSuchFile
// error. Unlike reading from an open *os.File, this never terminates the
// process - every failure mode is returned to the caller.
func ReadFromFile(path string) ([]*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newIOError(NoSuchFile, "", err)
	}
	defer f.Close()

	var grids []*Grid
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		g, err := Parse(scanner.Text())
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, newIOError(UnknownError, "error reading file", err)
	}

	return grids, nil
}
