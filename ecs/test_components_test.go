package ecs_test

import "github.com/ashgrove-sim/stratum/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type PlayerController struct{}

type AI struct {
	State int
}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string
type Temperature float64

type Inventory struct {
	Items []string
}

type Target struct {
	Enemy string
}

func newTestRegistry() *ecs.TypeRegistry {
	registry := ecs.NewTypeRegistry()
	ecs.RegisterComponentType[Position](registry)
	ecs.RegisterComponentType[Velocity](registry)
	ecs.RegisterComponentType[Name](registry)
	ecs.RegisterComponentType[Health](registry)
	ecs.RegisterComponentType[PlayerController](registry)
	ecs.RegisterComponentType[AI](registry)
	ecs.RegisterComponentType[Score](registry)
	ecs.RegisterComponentType[Tag](registry)
	ecs.RegisterComponentType[Temperature](registry)
	ecs.RegisterComponentType[Inventory](registry)
	ecs.RegisterComponentType[Target](registry)
	return registry
}
