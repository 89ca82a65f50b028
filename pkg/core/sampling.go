package core

import "math/rand"

// RandomVec3 generates a vector with components uniform in [0, 1)
func RandomVec3(random *rand.Rand) Vec3 {
	return Vec3{
		X: random.Float64(),
		Y: random.Float64(),
		Z: random.Float64(),
	}
}

// RandomVec3InRange generates a vector with components uniform in [min, max)
func RandomVec3InRange(minVal, maxVal float64, random *rand.Rand) Vec3 {
	span := maxVal - minVal
	return Vec3{
		X: minVal + span*random.Float64(),
		Y: minVal + span*random.Float64(),
		Z: minVal + span*random.Float64(),
	}
}

// RandomInUnitSphere generates a random point inside the unit sphere
// via rejection sampling
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3InRange(-1, 1, random)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a random direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInHemisphere generates a random point in the unit sphere,
// flipped to lie in the hemisphere around normal
func RandomInHemisphere(normal Vec3, random *rand.Rand) Vec3 {
	v := RandomInUnitSphere(random)
	if v.Dot(normal) > 0.0 {
		return v
	}
	return v.Negate()
}
