package main

import (
	"fmt"
	"time"

	"github.com/fulldump/linestore/store"
)

func TestScan(e *Env) error {

	s, err := e.CreateStore()
	if err != nil {
		return err
	}
	err = e.Preload(s, e.Config.N)
	if err != nil {
		return err
	}

	{
		t0 := time.Now()
		list, err := s.ToList(e.Ctx)
		if err != nil {
			return err
		}
		if int64(len(list)) != e.Config.N {
			return fmt.Errorf("expected %d documents, got %d", e.Config.N, len(list))
		}
		e.Report("SCAN ToList", e.Config.N, t0)
	}

	{
		t0 := time.Now()
		_, found, err := s.LastOrDefault(e.Ctx, nil)
		if err != nil {
			return err
		}
		if !found && e.Config.N > 0 {
			return fmt.Errorf("last document not found")
		}
		e.Report("SCAN LastOrDefault", e.Config.N, t0)
	}

	{
		t0 := time.Now()
		filter := store.NewFilter[Document](map[string]interface{}{
			"N": map[string]interface{}{"$gt": float64(e.Config.N / 2)},
		})
		matches, err := s.Where(e.Ctx, filter.Match)
		if err != nil {
			return err
		}
		if err := filter.Err(); err != nil {
			return err
		}
		e.Logger.Debug("filter matches", "count", len(matches))
		e.Report("SCAN Where filter", e.Config.N, t0)
	}

	return nil
}
