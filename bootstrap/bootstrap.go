package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/fulldump/linestore/configuration"
	"github.com/fulldump/linestore/database"
)

var VERSION = "dev"

// Logger builds a tint logger writing to stderr.
func Logger(c *configuration.Configuration) (*slog.Logger, error) {
	noColor := c.NoColor || !isatty.IsTerminal(os.Stderr.Fd())
	return NewLogger(colorable.NewColorable(os.Stderr), c.LogLevel, noColor)
}

func NewLogger(w io.Writer, level string, noColor bool) (*slog.Logger, error) {

	var l slog.Level
	err := l.UnmarshalText([]byte(strings.ToUpper(level)))
	if err != nil {
		return nil, fmt.Errorf("log level '%s': %w", level, err)
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      l,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	})), nil
}

// Bootstrap prepares the logger and loads the database described by c.
func Bootstrap(c *configuration.Configuration) (*database.Database, *slog.Logger, error) {

	logger, err := Logger(c)
	if err != nil {
		return nil, nil, err
	}

	db := database.NewDatabase(&database.Config{
		Dir:     c.Dir,
		Verbose: c.Verbose,
		Strict:  c.Strict,
		Logger:  logger,
	})

	err = db.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load database: %w", err)
	}

	return db, logger, nil
}
