package store

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
)

const (
	readBufferSize = 1024 * 1024

	// maxLineSize bounds one encoded record, terminator excluded.
	maxLineSize = 16 * 1024 * 1024
)

// scanRecords is a bufio.SplitFunc that cuts lines terminated by '\n', '\r' or
// "\r\n". The terminator is not part of the token.
func scanRecords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	i := bytes.IndexAny(data, "\n\r")
	if i < 0 {
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}

	if data[i] == '\n' {
		return i + 1, data[:i], nil
	}

	// '\r' might be followed by '\n' in the next read
	if i+1 == len(data) && !atEOF {
		return 0, nil, nil
	}
	if i+1 < len(data) && data[i+1] == '\n' {
		return i + 2, data[:i], nil
	}
	return i + 1, data[:i], nil
}

// scan reads filename from the beginning and calls f with every decoded
// record, in file order, until f returns false.
//
// In lenient mode the first line that does not decode ends the scan silently,
// the same as end of file. In strict mode blank lines are skipped and a
// malformed line fails with ErrCorruptRecord.
func scan[T any](ctx context.Context, filename string, strict bool, f func(item T) bool) error {

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("%w: open for read: %w", ErrAccess, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(bufio.NewReaderSize(file, readBufferSize))
	// room for the record plus a "\r\n" terminator
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize+2)
	scanner.Split(scanRecords)

	lineNumber := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNumber++

		line := scanner.Bytes()
		item, err := decode[T](line)
		if err != nil {
			if !strict {
				return nil
			}
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			return fmt.Errorf("%w: line %d: %w", ErrCorruptRecord, lineNumber, err)
		}

		if !f(item) {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: read line %d: %w", ErrAccess, lineNumber+1, err)
	}

	return nil
}
