package database

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fulldump/linestore/store"
	"github.com/fulldump/linestore/utils"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

type Config struct {
	Dir        string
	Verbose    bool
	Strict     bool
	TempSuffix string // store.DefaultTempSuffix if empty
	Logger     *slog.Logger
}

// Database owns a data directory where every regular file is a store.
type Database struct {
	config *Config
	logger *slog.Logger
	status string
	mutex  sync.Mutex
	stores map[string]string // name -> filename
}

func NewDatabase(config *Config) *Database {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if config.TempSuffix == "" {
		config.TempSuffix = store.DefaultTempSuffix
	}

	return &Database{
		config: config,
		logger: logger,
		status: StatusOpening,
		stores: map[string]string{},
	}
}

func (db *Database) GetStatus() string {
	return db.status
}

// Load makes sure the data directory exists and registers the stores found
// in it. Temporary files left by interrupted rewrites are skipped.
func (db *Database) Load() error {

	dir := db.config.Dir
	db.logger.Info("loading database", "dir", dir)

	err := os.MkdirAll(dir, 0755)
	if err != nil {
		db.status = StatusClosing
		return fmt.Errorf("create data directory: %w", err)
	}

	err = filepath.WalkDir(dir, func(filename string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(filename, db.config.TempSuffix) {
			db.logger.Warn("leftover temporary file", "file", filename)
			return nil
		}

		name, err := filepath.Rel(dir, filename)
		if err != nil {
			return err
		}
		name = filepath.ToSlash(name)

		t0 := time.Now()
		n, err := countLines(filename)
		if err != nil {
			db.logger.Error("open store", "name", name, "error", err)
			return err
		}
		db.logger.Info("store loaded", "name", name, "lines", n, "elapsed", time.Since(t0))

		db.register(name, filename)

		return nil
	})
	if err != nil {
		db.status = StatusClosing
		return err
	}

	db.status = StatusOperating

	return nil
}

func countLines(filename string) (int64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return store.CountLines(f)
}

func (db *Database) register(name, filename string) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.stores[name] = filename
}

// Filename returns the path of the store called name inside the data
// directory. Names must be local: relative, without ".." escaping the
// directory and not ending with the temporary suffix.
func (db *Database) Filename(name string) (string, error) {
	local := filepath.FromSlash(name)
	if !filepath.IsLocal(local) || strings.HasSuffix(name, db.config.TempSuffix) {
		return "", fmt.Errorf("invalid store name '%s'", name)
	}
	return filepath.Join(db.config.Dir, local), nil
}

// CreateStore creates an empty store file.
func (db *Database) CreateStore(name string) error {

	db.mutex.Lock()
	defer db.mutex.Unlock()

	if _, exists := db.stores[name]; exists {
		return fmt.Errorf("store '%s' already exists", name)
	}

	filename, err := db.Filename(name)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0666)
	if err != nil {
		return fmt.Errorf("create store '%s': %w", name, err)
	}
	err = f.Close()
	if err != nil {
		return fmt.Errorf("create store '%s': %w", name, err)
	}

	db.stores[name] = filename

	return nil
}

func (db *Database) DropStore(name string) error {

	db.mutex.Lock()
	defer db.mutex.Unlock()

	if _, err := db.Filename(name); err != nil {
		return err
	}

	filename, exists := db.stores[name]
	if !exists {
		return fmt.Errorf("store '%s' not found", name)
	}

	err := os.Remove(filename)
	if err != nil {
		return fmt.Errorf("drop store '%s': %w", name, err)
	}

	delete(db.stores, name)

	return nil
}

// ListStores returns the known store names, sorted.
func (db *Database) ListStores() []string {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	return utils.GetKeys(db.stores)
}

func (db *Database) Has(name string) bool {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	_, exists := db.stores[name]
	return exists
}

// Open returns a typed store over the store called name. It fails if the
// store was neither loaded nor created through db.
func Open[T store.Entity[T]](db *Database, name string, options ...store.Option) (*store.Store[T], error) {

	if !db.Has(name) {
		return nil, fmt.Errorf("store '%s' not found", name)
	}

	filename, err := db.Filename(name)
	if err != nil {
		return nil, err
	}

	options = append([]store.Option{
		store.WithLogger(db.logger.With("name", name)),
		store.WithVerbose(db.config.Verbose),
		store.WithStrict(db.config.Strict),
		store.WithTempSuffix(db.config.TempSuffix),
	}, options...)

	return store.New[T](filename, options...)
}
