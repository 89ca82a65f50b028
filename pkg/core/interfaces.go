package core

import "math/rand"

// HitRecord contains information about a ray-object intersection.
// Records are built fresh on every intersection query and never persisted.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit outward surface normal (away from the surface interior)
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray struck the outward-normal side
	Material  Material // Material of the hit object
}

// SetFaceNormal records the outward normal and determines front/back face.
// The normal always points away from the surface interior; FrontFace alone
// encodes which side the ray came from. outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	h.Normal = outwardNormal
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Per-channel light-loss factor
}

// Material is the interface for surfaces that can scatter rays.
// A false return means the ray was absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Hittable is the interface for objects that can be intersected by rays.
// Hit returns the nearest intersection with tMin <= t <= tMax, or false
// if there is none in range.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}
