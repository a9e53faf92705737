// Package store keeps typed records as one JSON object per line in a flat file
// and offers query and mutation operations that stream the file instead of
// loading it into memory.
//
// A Store holds no state besides its path: every operation opens the file
// again. Writers are not coordinated, callers must serialize them.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type Store[T Entity[T]] struct {
	filename string
	options  options
}

// New returns a store backed by filename. The parent directory must exist;
// the file itself is neither checked nor created here.
func New[T Entity[T]](filename string, opts ...Option) (*Store[T], error) {

	dir := filepath.Dir(filename)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: directory '%s': %w", ErrConfiguration, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: '%s' is not a directory", ErrConfiguration, dir)
	}

	s := &Store[T]{
		filename: filename,
		options:  defaultOptions(),
	}
	for _, opt := range opts {
		opt(&s.options)
	}

	return s, nil
}

func (s *Store[T]) Filename() string {
	return s.filename
}

func (s *Store[T]) tempFilename() string {
	return s.filename + s.options.tempSuffix
}

func (s *Store[T]) trace(ctx context.Context, msg string, args ...any) {
	s.options.logger.InfoContext(ctx, msg, append([]any{"store", s.filename}, args...)...)
}

// Insert appends entity to the store and returns what was written.
//
// With SequentialID the id becomes the current line count (0 for an empty
// store). Ids are not checked in that case: after a Remove the count can be
// lower than the highest id and the new id may repeat an existing one.
// Without SequentialID an existing record with the same id fails the insert
// with ErrKeyViolation before anything is written.
func (s *Store[T]) Insert(ctx context.Context, entity T, opts InsertOptions) (T, error) {

	if opts.SequentialID {
		n, err := countFile(s.filename)
		if err != nil {
			return entity, err
		}
		entity = entity.WithID(n)
	} else {
		id := entity.ID()
		exists, err := s.Any(ctx, func(item T) bool {
			return item.ID() == id
		})
		if err != nil {
			return entity, err
		}
		if exists {
			return entity, fmt.Errorf("%w: id %d already exists", ErrKeyViolation, id)
		}
	}

	if err := ctx.Err(); err != nil {
		return entity, err
	}

	data, err := encode(entity)
	if err != nil {
		return entity, err
	}
	data = append(data, s.options.terminator)

	f, err := os.OpenFile(s.filename, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return entity, fmt.Errorf("%w: open for append: %w", ErrAccess, err)
	}

	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return entity, fmt.Errorf("%w: append record: %w", ErrAccess, err)
	}

	if opts.Verbose || s.options.verbose {
		s.trace(ctx, "insert", "id", entity.ID(), "sequential", opts.SequentialID)
	}

	return entity, nil
}

// Update replaces the record whose id matches entity. The store is rewritten
// even when nothing matches; the returned bool tells whether a record was
// replaced.
func (s *Store[T]) Update(ctx context.Context, entity T) (bool, error) {

	id := entity.ID()
	stats, err := rewrite[T](ctx, s.filename, s.tempFilename(), s.options.strict, s.options.terminator, func(item T) (T, Action) {
		if item.ID() == id {
			return entity, Replace
		}
		return item, Keep
	})
	if err != nil {
		return false, err
	}

	if s.options.verbose {
		s.trace(ctx, "update", "id", id, "count", stats.Replaced)
	}

	return stats.Replaced > 0, nil
}

// Remove drops every record matching predicate and returns how many were
// dropped. A nil predicate empties the store.
func (s *Store[T]) Remove(ctx context.Context, predicate Predicate[T]) (int, error) {

	stats, err := rewrite[T](ctx, s.filename, s.tempFilename(), s.options.strict, s.options.terminator, func(item T) (T, Action) {
		if predicate.match(item) {
			return item, Drop
		}
		return item, Keep
	})
	if err != nil {
		return 0, err
	}

	if s.options.verbose {
		s.trace(ctx, "remove", "count", stats.Dropped)
	}

	return stats.Dropped, nil
}

// FirstOrDefault returns the first record matching predicate. The bool is
// false when there is none.
func (s *Store[T]) FirstOrDefault(ctx context.Context, predicate Predicate[T]) (T, bool, error) {

	var result T
	found := false
	err := scan(ctx, s.filename, s.options.strict, func(item T) bool {
		if predicate.match(item) {
			result = item
			found = true
			return false
		}
		return true
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	return result, found, nil
}

// LastOrDefault returns the last record matching predicate. It always reads
// the whole store.
func (s *Store[T]) LastOrDefault(ctx context.Context, predicate Predicate[T]) (T, bool, error) {

	var result T
	found := false
	err := scan(ctx, s.filename, s.options.strict, func(item T) bool {
		if predicate.match(item) {
			result = item
			found = true
		}
		return true
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	return result, found, nil
}

// Any reports whether some record matches predicate, stopping at the first one.
func (s *Store[T]) Any(ctx context.Context, predicate Predicate[T]) (bool, error) {
	_, found, err := s.FirstOrDefault(ctx, predicate)
	return found, err
}

// Where returns the records matching predicate in file order.
func (s *Store[T]) Where(ctx context.Context, predicate Predicate[T]) ([]T, error) {

	result := []T{}
	err := scan(ctx, s.filename, s.options.strict, func(item T) bool {
		if predicate.match(item) {
			result = append(result, item)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ToList returns every record in file order.
func (s *Store[T]) ToList(ctx context.Context) ([]T, error) {
	return s.Where(ctx, nil)
}

// Except returns the records whose id is not the id of any of others.
// Only ids are compared.
func (s *Store[T]) Except(ctx context.Context, others []T) ([]T, error) {

	ids := make(map[int64]struct{}, len(others))
	for _, other := range others {
		ids[other.ID()] = struct{}{}
	}

	return s.Where(ctx, func(item T) bool {
		_, excluded := ids[item.ID()]
		return !excluded
	})
}
