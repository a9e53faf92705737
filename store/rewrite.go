package store

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// Action tells the rewrite engine what to do with one record.
type Action int

const (
	Keep    Action = iota // write the record unchanged
	Replace               // write the returned replacement
	Drop                  // omit the record
)

type transform[T any] func(item T) (T, Action)

type rewriteStats struct {
	Kept     int
	Replaced int
	Dropped  int
}

// rewrite streams filename through t into tempname and moves the result over
// filename. On any failure, including cancellation, tempname is removed and
// filename is left as it was.
func rewrite[T any](ctx context.Context, filename, tempname string, strict bool, terminator byte, t transform[T]) (stats rewriteStats, err error) {

	info, err := os.Stat(filename)
	if err != nil {
		return stats, fmt.Errorf("%w: stat: %w", ErrAccess, err)
	}

	temp, err := os.OpenFile(tempname, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return stats, fmt.Errorf("%w: open temporary file: %w", ErrAccess, err)
	}
	defer func() {
		if err == nil {
			return
		}
		temp.Close()
		os.Remove(tempname)
	}()

	writer := bufio.NewWriterSize(temp, readBufferSize)

	var writeErr error
	err = scan(ctx, filename, strict, func(item T) bool {
		out, action := t(item)
		switch action {
		case Drop:
			stats.Dropped++
			return true
		case Replace:
			stats.Replaced++
		default:
			stats.Kept++
			out = item
		}

		data, err := encode(out)
		if err != nil {
			writeErr = err
			return false
		}
		data = append(data, terminator)
		if _, err := writer.Write(data); err != nil {
			writeErr = fmt.Errorf("%w: write temporary file: %w", ErrAccess, err)
			return false
		}
		return true
	})
	if err != nil {
		return stats, err
	}
	if writeErr != nil {
		return stats, writeErr
	}

	if err = writer.Flush(); err != nil {
		return stats, fmt.Errorf("%w: flush temporary file: %w", ErrAccess, err)
	}
	if err = temp.Sync(); err != nil {
		return stats, fmt.Errorf("%w: sync temporary file: %w", ErrAccess, err)
	}
	if err = temp.Close(); err != nil {
		return stats, fmt.Errorf("%w: close temporary file: %w", ErrAccess, err)
	}

	if err = ctx.Err(); err != nil {
		return stats, err
	}

	// Rename replaces the destination in a single step, there is no window
	// without a store file.
	if err = os.Rename(tempname, filename); err != nil {
		return stats, fmt.Errorf("%w: replace store: %w", ErrAccess, err)
	}

	return stats, nil
}
