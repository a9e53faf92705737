package main

import (
	"fmt"
	"math/rand/v2"
	"time"
)

func TestUpdate(e *Env) error {

	s, err := e.CreateStore()
	if err != nil {
		return err
	}
	err = e.Preload(s, e.Config.N)
	if err != nil {
		return err
	}
	if e.Config.N == 0 {
		return nil
	}

	t0 := time.Now()
	for i := 0; i < e.Config.Updates; i++ {
		id := rand.Int64N(e.Config.N)
		doc := NewDocument(id).WithID(id)
		doc.Value = "updated"
		updated, err := s.Update(e.Ctx, doc)
		if err != nil {
			return err
		}
		if !updated {
			return fmt.Errorf("document %d not updated", id)
		}
	}
	e.Report("UPDATE", int64(e.Config.Updates), t0)

	return nil
}
