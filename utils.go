package lampshade

import "math"

const (
	pi  = math.Pi
	tau = 2 * pi
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Mix does a linear interpolation from x to y, a = [0,1].
// Mix(x, y, 0) == x and Mix(x, y, 1) == y hold exactly.
func Mix(x, y, a float64) float64 {
	return x*(1-a) + y*a
}

// angleAt returns the azimuth of the j'th of n equal steps around the circle.
func angleAt(j, n int) float64 {
	return (float64(j) / float64(n)) * tau
}
