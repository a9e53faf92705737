package utils

import (
	"testing"

	"github.com/fulldump/biff"
)

func TestGetKeys(t *testing.T) {
	biff.AssertEqual(GetKeys(map[string]int{"b": 2, "c": 3, "a": 1}), []string{"a", "b", "c"})
	biff.AssertEqual(GetKeys(map[string]int{}), []string{})
}

func TestRemarshal(t *testing.T) {
	type Item struct {
		Id   int64
		Tags []string
	}

	document := map[string]interface{}{}
	err := Remarshal(Item{Id: 3, Tags: []string{"x"}}, &document)

	biff.AssertNil(err)
	biff.AssertEqual(document, map[string]interface{}{
		"Id":   3.0,
		"Tags": []interface{}{"x"},
	})
}
