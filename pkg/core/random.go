package core

import (
	"math"
	"math/rand"
)

// RandomRange returns a random float64 in [min, max)
func RandomRange(random *rand.Rand, min, max float64) float64 {
	return min + (max-min)*random.Float64()
}

// RandomVec3 returns a vector whose components are uniform in [min, max)
func RandomVec3(random *rand.Rand, min, max float64) Vec3 {
	return Vec3{
		X: RandomRange(random, min, max),
		Y: RandomRange(random, min, max),
		Z: RandomRange(random, min, max),
	}
}

// RandomUnitVector returns a direction uniformly distributed on the unit sphere.
// Points are rejection sampled from the [-1,1] cube; tiny vectors are rejected
// because normalizing them underflows.
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3(random, -1, 1)
		lensq := p.LengthSquared()
		if 1e-160 < lensq && lensq <= 1 {
			return p.Divide(math.Sqrt(lensq))
		}
	}
}

// RandomInUnitDisk returns a point uniformly distributed in the unit disk on the z=0 plane
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(RandomRange(random, -1, 1), RandomRange(random, -1, 1), 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// SampleSquare returns an offset uniformly distributed in the [-0.5,0.5]² square
func SampleSquare(random *rand.Rand) Vec3 {
	return NewVec3(random.Float64()-0.5, random.Float64()-0.5, 0)
}
