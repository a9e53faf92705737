package store

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

const counterBlockSize = 1024 * 1024

// CountLines returns the number of lines in r. The terminator style ('\n' or
// '\r') is taken from the first terminator found and only that byte is counted
// afterwards, so files mixing both styles give undefined results. Trailing
// bytes without terminator count as one more line.
func CountLines(r io.Reader) (int64, error) {

	block := make([]byte, counterBlockSize)

	var count int64
	var terminator []byte
	var last byte
	empty := true

	for {
		n, err := r.Read(block)
		if n > 0 {
			chunk := block[:n]
			if terminator == nil {
				if i := bytes.IndexAny(chunk, "\n\r"); i >= 0 {
					terminator = []byte{chunk[i]}
				}
			}
			if terminator != nil {
				count += int64(bytes.Count(chunk, terminator))
			}
			last = chunk[n-1]
			empty = false
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	if !empty && last != '\n' && last != '\r' {
		count++
	}

	return count, nil
}

// countFile opens filename and counts its lines.
func countFile(filename string) (int64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, fmt.Errorf("%w: open for count: %w", ErrAccess, err)
	}
	defer f.Close()

	n, err := CountLines(f)
	if err != nil {
		return 0, fmt.Errorf("%w: count lines: %w", ErrAccess, err)
	}

	return n, nil
}
