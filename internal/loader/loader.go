// Package loader reads newline-delimited JSON log files line by line,
// tolerating malformed lines.
package loader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/valyala/fastjson"

	"logsum/internal/model"
)

// ErrNotFound is returned when the input path does not exist.
var ErrNotFound = errors.New("log file does not exist")

// Warning records a malformed line that was skipped during loading.
type Warning struct {
	Line int
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("Warning: Skipping malformed JSON on line %d", w.Line)
}

// Result contains the decoded records and non-fatal line warnings.
type Result struct {
	Path     string
	Records  model.Collection
	Warnings []Warning
}

// Load reads path and decodes each non-blank line as a JSON value.
// Malformed lines are collected as warnings and never abort the load;
// a missing file is reported as ErrNotFound before any read begins.
func Load(path string) (Result, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Result{}, fmt.Errorf("stat log file: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	result := Result{Path: path}
	scanner := newScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		// One parser per line so retained values stay valid after
		// the scanner buffer is reused.
		value, err := fastjson.ParseBytes(raw)
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{Line: line, Err: err})
			continue
		}
		result.Records = append(result.Records, model.NewRecord(value))
	}

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("scan log file: %w", err)
	}

	return result, nil
}

func newScanner(file *os.File) *bufio.Scanner {
	scanner := bufio.NewScanner(file)
	// Allow large single-line records such as serialized payloads.
	const maxCapacity = 8 * 1024 * 1024
	buf := make([]byte, 1024)
	scanner.Buffer(buf, maxCapacity)
	return scanner
}
