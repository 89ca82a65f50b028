package geometry

import (
	"github.com/nathanleiby/raytracing-one-weekend/pkg/core"
)

// World is an ordered collection of hittable objects that is itself
// hittable: a hit against the world is the closest hit among its members.
type World struct {
	Objects []core.Hittable
}

// NewWorld creates a world containing the given objects
func NewWorld(objects ...core.Hittable) *World {
	return &World{Objects: objects}
}

// Add appends objects to the world
func (w *World) Add(objects ...core.Hittable) {
	w.Objects = append(w.Objects, objects...)
}

// Clear removes all objects from the world
func (w *World) Clear() {
	w.Objects = nil
}

// Hit queries every member object and returns the hit with the smallest t.
// Scanning shrinks tMax to the closest hit so far, so later members can
// only win by being strictly closer.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range w.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
