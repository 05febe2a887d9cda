package ecs_test

import (
	"errors"
	"testing"

	"github.com/ashgrove-sim/stratum/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSystem struct {
	name string
	log  *[]string
	err  error
}

func (s *recordingSystem) Name() string { return s.name }

func (s *recordingSystem) Update(app *ecs.App, dt float64) error {
	*s.log = append(*s.log, s.name)
	return s.err
}

type initializingSystem struct {
	recordingSystem
	initialized bool
}

func (s *initializingSystem) Init(app *ecs.App) error {
	s.initialized = true
	return nil
}

func TestSystemManagerRunsInStageOrder(t *testing.T) {
	sm := ecs.NewSystemManager()
	var log []string

	require.NoError(t, sm.Add(&recordingSystem{name: "render", log: &log}, ecs.StageRender))
	require.NoError(t, sm.Add(&recordingSystem{name: "pre", log: &log}, ecs.StagePreUpdate))
	require.NoError(t, sm.Add(&recordingSystem{name: "update", log: &log}, ecs.StageUpdate))
	require.NoError(t, sm.Add(&recordingSystem{name: "post", log: &log}, ecs.StagePostUpdate))

	require.NoError(t, sm.UpdateAll(nil, 0.016))

	assert.Equal(t, []string{"pre", "update", "post", "render"}, log)
}

func TestSystemManagerRejectsDuplicateName(t *testing.T) {
	sm := ecs.NewSystemManager()
	var log []string

	require.NoError(t, sm.Add(&recordingSystem{name: "dup", log: &log}, ecs.StageUpdate))
	err := sm.Add(&recordingSystem{name: "dup", log: &log}, ecs.StageUpdate)

	var dupErr ecs.DuplicateSystemNameError
	assert.ErrorAs(t, err, &dupErr)
}

func TestSystemManagerStopsTickOnError(t *testing.T) {
	sm := ecs.NewSystemManager()
	var log []string
	boom := errors.New("boom")

	require.NoError(t, sm.Add(&recordingSystem{name: "first", log: &log, err: boom}, ecs.StageUpdate))
	require.NoError(t, sm.Add(&recordingSystem{name: "second", log: &log}, ecs.StageUpdate))

	err := sm.UpdateAll(nil, 0.016)

	var updateErr ecs.SystemUpdateError
	require.ErrorAs(t, err, &updateErr)
	assert.Equal(t, "first", updateErr.System)
	assert.Equal(t, []string{"first"}, log, "systems after the failing one must not run this tick")
}

func TestSystemManagerSetEnabledSkipsSystem(t *testing.T) {
	sm := ecs.NewSystemManager()
	var log []string
	require.NoError(t, sm.Add(&recordingSystem{name: "toggle", log: &log}, ecs.StageUpdate))

	assert.True(t, sm.SetEnabled("toggle", false))
	require.NoError(t, sm.UpdateAll(nil, 0.016))
	assert.Empty(t, log)

	assert.False(t, sm.SetEnabled("missing", false))
}

func TestSystemManagerInitAllCallsOptionalInitializer(t *testing.T) {
	sm := ecs.NewSystemManager()
	var log []string
	sys := &initializingSystem{recordingSystem: recordingSystem{name: "init", log: &log}}
	require.NoError(t, sm.Add(sys, ecs.StageUpdate))

	require.NoError(t, sm.InitAll(nil))
	assert.True(t, sys.initialized)
}
