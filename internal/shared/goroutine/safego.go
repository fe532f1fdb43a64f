// Package goroutine provides utilities for safely launching goroutines with panic recovery.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/brt06a/Testv5/internal/shared/logger"
)

// SafeGo launches fn in a goroutine; a panic is logged with its stack
// instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go run(log, name, fn)
}

func run(log logger.Interface, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("goroutine panicked",
				"goroutine", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()
	fn()
}

// Group tracks panic-safe background tasks so shutdown can wait for them.
type Group struct {
	log logger.Interface
	wg  sync.WaitGroup
}

func NewGroup(log logger.Interface) *Group {
	return &Group{log: log}
}

// Go runs fn in a tracked goroutine.
func (g *Group) Go(name string, fn func()) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		run(g.log, name, fn)
	}()
}

// Wait blocks until every task finished or ctx is done.
func (g *Group) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
