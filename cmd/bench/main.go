package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/linestore/bootstrap"
)

type Config struct {
	Test       string `usage:"name of the test: ALL | INSERT | UPDATE | REMOVE | SCAN"`
	Dir        string `usage:"data directory, a temporary one if empty"`
	N          int64  `usage:"number of documents"`
	Updates    int    `usage:"number of updates for the UPDATE test"`
	LogLevel   string `usage:"log level: DEBUG | INFO | WARN | ERROR"`
	Verbose    bool   `usage:"trace every insert, update and remove"`
	Strict     bool   `usage:"fail on corrupt lines instead of stopping the read"`
	Version    bool   `usage:"show version and exit"`
	ShowConfig bool   `usage:"print the effective database configuration"`
}

var cleanups []func()

func main() {

	c := Config{
		Test:     "ALL",
		N:        10_000,
		Updates:  10,
		LogLevel: "INFO",
	}
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	err := run(c)
	for _, cleanup := range cleanups {
		cleanup()
	}
	if err != nil {
		slog.Error("bench failed", "error", err)
		os.Exit(1)
	}
}

func run(c Config) error {

	env, err := NewEnv(c)
	if err != nil {
		return err
	}

	switch strings.ToUpper(c.Test) {
	case "ALL":
		for _, test := range []func(*Env) error{TestInsert, TestScan, TestUpdate, TestRemove} {
			if err := test(env); err != nil {
				return err
			}
		}
		return nil
	case "INSERT":
		return TestInsert(env)
	case "UPDATE":
		return TestUpdate(env)
	case "REMOVE":
		return TestRemove(env)
	case "SCAN":
		return TestScan(env)
	default:
		return fmt.Errorf("unknown test %s", c.Test)
	}
}
