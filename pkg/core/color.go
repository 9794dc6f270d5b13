package core

import "math"

// FromHSV converts hue, saturation and value (each in [0,1]) to a linear RGB color
func FromHSV(h, s, v float64) Vec3 {
	i := int(math.Floor(h * 6))
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch ((i % 6) + 6) % 6 {
	case 0:
		return NewVec3(v, t, p)
	case 1:
		return NewVec3(q, v, p)
	case 2:
		return NewVec3(p, v, t)
	case 3:
		return NewVec3(p, q, v)
	case 4:
		return NewVec3(t, p, v)
	default:
		return NewVec3(v, p, q)
	}
}
