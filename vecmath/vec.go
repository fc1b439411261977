// Package vecmath holds the plain vector records and the city-object
// tagging scheme shared by the citymodel and granularity packages.
package vecmath

// Vec2f is a 2D single-precision vector, used for texture coordinates
// and for the UV4 city-object tag channel.
type Vec2f struct {
	X, Y float32
}

// Vec3d is a 3D double-precision vector, used for mesh vertex positions.
type Vec3d struct {
	X, Y, Z float64
}
