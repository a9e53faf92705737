package store

import (
	"fmt"

	"github.com/SierraSoftworks/connor"

	"github.com/fulldump/linestore/utils"
)

// Filter matches records against mongo-like conditions, for example
//
//	{"Name": {"$eq": "Sara"}, "Age": {"$gt": 30}}
//
// An empty filter matches everything. Match errors make the record not match;
// the first one is kept and reported by Err.
type Filter[T any] struct {
	conditions map[string]interface{}
	err        error
}

func NewFilter[T any](conditions map[string]interface{}) *Filter[T] {
	return &Filter[T]{
		conditions: conditions,
	}
}

func (f *Filter[T]) Match(item T) bool {

	if len(f.conditions) == 0 {
		return true
	}

	document := map[string]interface{}{}
	err := utils.Remarshal(item, &document)
	if err != nil {
		f.fail(fmt.Errorf("remarshal: %w", err))
		return false
	}

	match, err := connor.Match(f.conditions, document)
	if err != nil {
		f.fail(fmt.Errorf("match: %w", err))
		return false
	}

	return match
}

func (f *Filter[T]) fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

// Err returns the first error found while matching, if any.
func (f *Filter[T]) Err() error {
	return f.err
}
