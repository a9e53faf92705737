package main

import (
	"fmt"
	"time"
)

func TestRemove(e *Env) error {

	s, err := e.CreateStore()
	if err != nil {
		return err
	}
	err = e.Preload(s, e.Config.N)
	if err != nil {
		return err
	}

	t0 := time.Now()
	removed, err := s.Remove(e.Ctx, func(d Document) bool {
		return d.N%2 == 0
	})
	if err != nil {
		return err
	}
	e.Report("REMOVE", e.Config.N, t0)

	expected := int((e.Config.N + 1) / 2)
	if removed != expected {
		return fmt.Errorf("expected %d removed documents, got %d", expected, removed)
	}

	return nil
}
