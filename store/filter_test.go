package store

import (
	"context"
	"testing"

	. "github.com/fulldump/biff"
	"github.com/google/uuid"
)

func TestFilter(t *testing.T) {
	Environment(t, func(filename string) {

		ctx := context.Background()
		s := newUsers(t, filename)
		names := []string{}
		for i := 0; i < 5; i++ {
			name := uuid.New().String()
			names = append(names, name)
			_, err := s.Insert(ctx, User{Name: name, Age: 20 + i*5}, InsertOptions{SequentialID: true})
			AssertNil(err)
		}

		t.Run("equal", func(t *testing.T) {
			filter := NewFilter[User](map[string]interface{}{
				"Name": map[string]interface{}{"$eq": names[3]},
			})
			list, err := s.Where(ctx, filter.Match)
			AssertNil(err)
			AssertNil(filter.Err())
			AssertEqual(list, []User{{Id: 3, Name: names[3], Age: 35}})
		})

		t.Run("greater than", func(t *testing.T) {
			filter := NewFilter[User](map[string]interface{}{
				"Age": map[string]interface{}{"$gt": 30.0},
			})
			n, err := s.Remove(ctx, filter.Match)
			AssertNil(err)
			AssertNil(filter.Err())
			AssertEqual(n, 2)
		})

		t.Run("empty filter matches everything", func(t *testing.T) {
			filter := NewFilter[User](nil)
			list, err := s.Where(ctx, filter.Match)
			AssertNil(err)
			AssertEqual(len(list), 3)
		})
	})
}
