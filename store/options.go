package store

import "log/slog"

const DefaultTempSuffix = ".temp"

type options struct {
	logger     *slog.Logger
	verbose    bool
	strict     bool
	tempSuffix string
	terminator byte
}

func defaultOptions() options {
	return options{
		logger:     slog.New(slog.DiscardHandler),
		tempSuffix: DefaultTempSuffix,
		terminator: '\n',
	}
}

// Option configures a Store.
type Option func(o *options)

// WithLogger sets the logger that receives verbose traces.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithVerbose traces every insert, update and remove.
func WithVerbose(verbose bool) Option {
	return func(o *options) {
		o.verbose = verbose
	}
}

// WithStrict makes reads fail with ErrCorruptRecord on a malformed line
// instead of stopping there silently. Blank lines are skipped.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithTempSuffix changes the suffix of the temporary file used by rewrites.
func WithTempSuffix(suffix string) Option {
	return func(o *options) {
		if suffix != "" {
			o.tempSuffix = suffix
		}
	}
}

// WithTerminator selects the line terminator written by the store, '\n' or
// '\r'. Other values are ignored.
func WithTerminator(terminator byte) Option {
	return func(o *options) {
		if terminator == '\n' || terminator == '\r' {
			o.terminator = terminator
		}
	}
}

// InsertOptions tunes a single Insert.
type InsertOptions struct {
	// SequentialID replaces the entity id with the current line count of the
	// store and skips the duplicate check.
	SequentialID bool

	// Verbose traces this insert even if the store is not verbose.
	Verbose bool
}
