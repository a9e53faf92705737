package main

import (
	"time"
)

func TestInsert(e *Env) error {

	s, err := e.CreateStore()
	if err != nil {
		return err
	}

	t0 := time.Now()
	err = e.Preload(s, e.Config.N)
	if err != nil {
		return err
	}
	e.Report("INSERT", e.Config.N, t0)

	return nil
}
