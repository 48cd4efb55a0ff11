package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadLensFile reads a lens prescription file: whitespace-separated numeric
// fields, with '#' starting a comment that runs to the end of the line.
// Values are returned in file order, in millimeters; structural validation
// (grouping into four-field records) happens when the prescription is
// built.
func ReadLensFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading lens specification file: %w", err)
	}
	defer f.Close()

	var values []float64
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, field := range strings.Fields(line) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("lens specification file %s:%d: invalid value %q", path, lineNo, field)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lens specification file: %w", err)
	}
	return values, nil
}
