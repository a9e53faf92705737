package bootstrap

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/fulldump/linestore/configuration"
	"github.com/fulldump/linestore/database"
)

func TestNewLogger(t *testing.T) {
	buffer := &bytes.Buffer{}

	logger, err := NewLogger(buffer, "warn", true)
	AssertNil(err)

	logger.Info("hidden")
	logger.Warn("shown", "store", "users")

	AssertFalse(strings.Contains(buffer.String(), "hidden"))
	AssertTrue(strings.Contains(buffer.String(), "shown"))
	AssertTrue(strings.Contains(buffer.String(), "store=users"))
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "chatty", true)
	AssertNotNil(err)
}

func TestBootstrap(t *testing.T) {
	c := configuration.Default()
	c.Dir = filepath.Join(t.TempDir(), "data")
	c.LogLevel = "ERROR"

	db, logger, err := Bootstrap(c)
	AssertNil(err)
	AssertNotNil(logger)
	AssertEqual(db.GetStatus(), database.StatusOperating)
	info, err := os.Stat(c.Dir)
	AssertNil(err)
	AssertTrue(info.IsDir())
}
