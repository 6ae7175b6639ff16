package shooter

import (
	"sync"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestLockedWorldConcurrentAccess(t *testing.T) {
	lw := NewLockedWorld(newTestWorld(t, nil))

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			lw.Step(core.Input{Left: i%2 == 0, Right: i%2 == 1}, frame)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			lw.SpawnEnemy()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			lw.Fire()
		}
	}()
	wg.Wait()

	var steps int
	lw.Do(func(w *World) { steps = w.Steps() })
	snap := lw.Snapshot()
	if snap.Steps != steps {
		t.Errorf("snapshot steps = %d, world steps = %d", snap.Steps, steps)
	}
	if steps == 0 {
		t.Error("expected steps to run")
	}
}

func TestLockedWorldReset(t *testing.T) {
	lw := NewLockedWorld(newTestWorld(t, nil))
	lw.SpawnEnemy()
	lw.Fire()
	lw.Reset()

	snap := lw.Snapshot()
	if snap.EnemyCount != 0 || snap.ProjectileCount != 0 {
		t.Errorf("snapshot after reset = %+v", snap)
	}
}
