// Package handfile reads newline separated hand records.
package handfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lox/camelcards/camel"
)

// LineError reports a malformed record and where it was found.
type LineError struct {
	Line int // 1-based
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Read parses every line of r. The first malformed line aborts the read.
func Read(r io.Reader) ([]camel.Hand, error) {
	var hands []camel.Hand

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		hand, err := camel.ParseHand(scanner.Text())
		if err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
		hands = append(hands, hand)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", line+1, err)
	}

	return hands, nil
}

// Load opens path and reads every hand in it.
func Load(path string) ([]camel.Hand, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open hands file: %w", err)
	}
	defer f.Close()

	hands, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return hands, nil
}
