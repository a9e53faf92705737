package store

import "errors"

var (
	// ErrConfiguration is returned by New when the store cannot be placed at
	// the given path (its parent directory does not exist).
	ErrConfiguration = errors.New("store configuration")

	// ErrAccess is returned when the store file cannot be opened, read or
	// written at call time.
	ErrAccess = errors.New("store access")

	// ErrKeyViolation is returned by Insert when a record with the same id
	// already exists.
	ErrKeyViolation = errors.New("key violation")

	// ErrRecordTooLarge is returned when an entity encodes to a line longer
	// than the store can read back. Nothing is written.
	ErrRecordTooLarge = errors.New("record too large")

	// ErrCorruptRecord is returned in strict mode when a line cannot be decoded.
	ErrCorruptRecord = errors.New("corrupt record")
)
