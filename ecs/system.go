package ecs

import (
	"context"
	"time"
)

// Stage orders when a system runs within a tick.
type Stage int

const (
	StagePreUpdate Stage = iota
	StageUpdate
	StagePostUpdate
	StageRender
)

func (s Stage) String() string {
	switch s {
	case StagePreUpdate:
		return "pre_update"
	case StageUpdate:
		return "update"
	case StagePostUpdate:
		return "post_update"
	case StageRender:
		return "render"
	default:
		return "unknown"
	}
}

// System is user-defined behavior that runs once per tick against an App.
// Implementations typically hold a QuerySystem and any state that persists
// between ticks.
type System interface {
	Name() string
	Update(app *App, dt float64) error
}

// Initializer is implemented by systems that need one-time setup (e.g.
// building their QuerySystem, inserting a default resource) before the
// first tick. SystemManager.InitAll detects it via type assertion.
type Initializer interface {
	Init(app *App) error
}

type systemEntry struct {
	system  System
	stage   Stage
	enabled bool
}

// SystemManager holds every registered system, ordered within each stage
// by registration order, and runs them in stage order:
// pre_update, update, post_update, render.
type SystemManager struct {
	byName map[string]*systemEntry
	stages [4][]*systemEntry
}

// NewSystemManager creates an empty SystemManager.
func NewSystemManager() *SystemManager {
	return &SystemManager{byName: make(map[string]*systemEntry)}
}

// Add registers system under stage. It is an error to register two
// systems with the same Name().
func (sm *SystemManager) Add(system System, stage Stage) error {
	name := system.Name()
	if _, exists := sm.byName[name]; exists {
		return DuplicateSystemNameError{Name: name}
	}
	entry := &systemEntry{system: system, stage: stage, enabled: true}
	sm.byName[name] = entry
	sm.stages[stage] = append(sm.stages[stage], entry)
	return nil
}

// SetEnabled toggles whether a registered system runs during UpdateAll.
// Returns false if no system with that name is registered.
func (sm *SystemManager) SetEnabled(name string, enabled bool) bool {
	entry, ok := sm.byName[name]
	if !ok {
		return false
	}
	entry.enabled = enabled
	return true
}

// InitAll calls Init on every registered system that implements
// Initializer, in stage order.
func (sm *SystemManager) InitAll(app *App) error {
	for _, stage := range sm.stages {
		for _, entry := range stage {
			if initializer, ok := entry.system.(Initializer); ok {
				if err := initializer.Init(app); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// UpdateAll runs every enabled system once, in stage order
// (pre_update, update, post_update, render). It stops at the first error,
// wrapping it in a SystemUpdateError naming the failing system.
func (sm *SystemManager) UpdateAll(app *App, dt float64) error {
	for _, stage := range sm.stages {
		for _, entry := range stage {
			if !entry.enabled {
				continue
			}
			if err := entry.system.Update(app, dt); err != nil {
				return SystemUpdateError{System: entry.system.Name(), Cause: err}
			}
		}
	}
	return nil
}

// Run calls UpdateAll repeatedly at interval until ctx is cancelled,
// stopping early if UpdateAll returns an error.
func (sm *SystemManager) Run(ctx context.Context, app *App, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := sm.UpdateAll(app, dt); err != nil {
				return err
			}
		}
	}
}
