package store

import (
	"os"
	"path/filepath"
	"testing"
)

type User struct {
	Id   int64  `json:"Id"`
	Name string `json:"Name"`
	Age  int    `json:"Age"`
}

func (u User) ID() int64 {
	return u.Id
}

func (u User) WithID(id int64) User {
	u.Id = id
	return u
}

// Environment runs f with the path of a fresh, empty store file.
func Environment(t *testing.T, f func(filename string)) {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "users")
	err := os.WriteFile(filename, nil, 0666)
	if err != nil {
		t.Fatal(err)
	}

	f(filename)
}

func newUsers(t *testing.T, filename string, options ...Option) *Store[User] {
	t.Helper()

	s, err := New[User](filename, options...)
	if err != nil {
		t.Fatal(err)
	}

	return s
}

func lineCount(t *testing.T, filename string) int64 {
	t.Helper()

	n, err := countFile(filename)
	if err != nil {
		t.Fatal(err)
	}

	return n
}
