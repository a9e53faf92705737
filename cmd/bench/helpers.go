package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/google/uuid"

	"github.com/fulldump/linestore/bootstrap"
	"github.com/fulldump/linestore/configuration"
	"github.com/fulldump/linestore/database"
	"github.com/fulldump/linestore/store"
)

type Document struct {
	Id    int64  `json:"Id"`
	Uuid  string `json:"Uuid"`
	N     int64  `json:"N"`
	Value string `json:"Value"`
}

func (d Document) ID() int64 {
	return d.Id
}

func (d Document) WithID(id int64) Document {
	d.Id = id
	return d
}

type Env struct {
	Config Config
	DB     *database.Database
	Logger *slog.Logger
	Ctx    context.Context
}

func TempDir() (string, func()) {
	dir, err := os.MkdirTemp("", "linestore_bench_*")
	if err != nil {
		panic("Could not create temp directory: " + err.Error())
	}

	cleanup := func() {
		os.RemoveAll(dir)
	}

	return dir, cleanup
}

var stdout io.Writer = os.Stdout

// PrintConfig writes conf as indented JSON.
func PrintConfig(w io.Writer, conf *configuration.Configuration) error {
	return json.MarshalEncode(jsontext.NewEncoder(w, jsontext.WithIndent("    ")), conf)
}

func NewEnv(c Config) (*Env, error) {

	conf := configuration.Default()
	conf.LogLevel = c.LogLevel
	conf.Verbose = c.Verbose
	conf.Strict = c.Strict
	conf.Dir = c.Dir
	if conf.Dir == "" {
		dir, cleanup := TempDir()
		cleanups = append(cleanups, cleanup)
		conf.Dir = dir
	}

	if c.ShowConfig {
		err := PrintConfig(stdout, conf)
		if err != nil {
			return nil, err
		}
	}

	db, logger, err := bootstrap.Bootstrap(conf)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	return &Env{
		Config: c,
		DB:     db,
		Logger: logger,
		Ctx:    context.Background(),
	}, nil
}

// CreateStore creates a uniquely named store and opens it.
func (e *Env) CreateStore() (*store.Store[Document], error) {

	name := "bench-" + uuid.New().String()
	err := e.DB.CreateStore(name)
	if err != nil {
		return nil, err
	}

	return database.Open[Document](e.DB, name)
}

// Preload fills s with n documents without paying the duplicate check.
func (e *Env) Preload(s *store.Store[Document], n int64) error {
	for i := int64(0); i < n; i++ {
		_, err := s.Insert(e.Ctx, NewDocument(i), store.InsertOptions{SequentialID: true})
		if err != nil {
			return fmt.Errorf("preload document %d: %w", i, err)
		}
	}
	return nil
}

func NewDocument(n int64) Document {
	return Document{
		Uuid:  uuid.New().String(),
		N:     n,
		Value: fmt.Sprintf("value-%d", n),
	}
}

func (e *Env) Report(test string, n int64, t0 time.Time) {
	elapsed := time.Since(t0)
	e.Logger.Info(test,
		"n", n,
		"elapsed", elapsed,
		"ops_per_second", int64(float64(n)/elapsed.Seconds()),
	)
}
